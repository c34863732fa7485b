// Package output provides styled terminal output for enzo.
//
// # Status lines
//
// Every file operation reports one line through a Reporter:
//
//	r := output.NewReporter(os.Stdout, os.Stderr, verbose)
//	r.Status(output.Create, "myapp/README.md")  // create myapp/README.md
//	r.Status(output.Move, "src/a.js into lib/a.js")
//
// The first word of a status line is always the classification
// (create, mutate, delete, move, append, insert, skip), so the output can
// be parsed by scripts.
//
// # Failures
//
// Reporter.Failure prints a short context message. With verbose output
// enabled the raw error follows it:
//
//	Couldn't create file ./app/index.js. ERROR: permission denied
//
// # Helpers
//
// Success, Error, Warning, Info, Step and Verbose print one-off messages
// for commands. SetVerbose controls Verbose.
package output
