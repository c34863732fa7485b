// Package generator performs the file operations behind enzo's
// scaffolding: writing, appending, creating directories, moving,
// splicing lines into existing files and patching package.json.
//
// # Mutator
//
// Every operation goes through a Mutator bound to a project.Context:
//
//	m := generator.NewMutator(afero.NewOsFs(), pctx, reporter)
//	m.WriteFile("src/index.js", content, "")   // create app/src/index.js
//	m.AddScript("start", "node server/server.js")
//
// Operations never return an error. Each returns a Result and prints a
// status line, or a failure message through the Reporter. A failed step
// does not stop the ones after it.
//
// # Inserting lines
//
// Insert places a new line by index, below a matching line, or below a
// line the user picks:
//
//	m.Insert(path, "import 'x'", generator.AtLine(0))
//	m.Insert(path, "app.use(cors())", generator.After("app.use(helmet())"))
//	m.Insert(path, "line", nil) // asks the Chooser set with WithChooser
//
// # Pipelines
//
// Execute runs a list of Operations and collects their Results. With
// DryRun set it only prints what each step would do.
package generator
