package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/enzojs/enzo/generator"
	"github.com/enzojs/enzo/internal/installer"
	"github.com/enzojs/enzo/internal/scaffold"
	"github.com/enzojs/enzo/output"
	"github.com/enzojs/enzo/project"
	"github.com/enzojs/enzo/templates"
)

// NewCmd creates and returns the 'new' command for scaffolding projects
func NewCmd(app *App) *cobra.Command {
	var opts scaffold.Options
	var skipExisting, confirmOverwrite bool
	var templateDir string

	cmd := &cobra.Command{
		Use:   "new <project-name>",
		Short: "Create a new project",
		Long: fmt.Sprintf(`Creates a new project directory with:
• .gitignore, README.md, package.json and .env
• scripts/ and scripts/templates/ for project generators
• the selected frontend, backend, database and test setup
• enzo.yml recording those choices

Every step runs even if an earlier one failed; failures are listed and
the command exits 1. Packages are installed with yarn when it is
available, npm otherwise.

Choices:
  --frontend  %s
  --backend   %s
  --database  %s
  --testing   %s

Example:
  enzo new shop --backend express --database postgres --testing jest`,
			strings.Join(scaffold.Frontends, "|"),
			strings.Join(scaffold.Backends, "|"),
			strings.Join(scaffold.Databases, "|"),
			strings.Join(scaffold.Testing, "|")),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			opts.Name = args[0]
			opts = opts.Normalize()
			if err := opts.Validate(); err != nil {
				return err
			}

			var ask func(string) bool
			if app.Interactive {
				p := app.prompter()
				ask = func(path string) bool {
					return p.Confirm(fmt.Sprintf("Overwrite %s?", project.PrettyPath(path)), false)
				}
			}
			strategy, err := generator.NewConflictStrategy(skipExisting, confirmOverwrite, ask)
			if err != nil {
				return err
			}
			opts.AllowExisting = skipExisting || confirmOverwrite

			if project.IsProject(app.Fs, ".") {
				output.Warning(fmt.Sprintf("Creating %s inside the enzo project %s", opts.Name, app.projectName()))
			}

			pm := choosePackageManager(cmd, app, opts.Name, app.NewRunner("."))
			inst := installer.New(app.NewRunner("./"+opts.Name), pm, app.log("installer"))

			srcOpts := []templates.Option{templates.WithLogger(app.log("templates"))}
			if templateDir != "" {
				srcOpts = append(srcOpts, templates.WithOverrideDir(templateDir))
			}
			src := templates.NewSource(app.Fs, srcOpts...)

			m := app.mutator(opts.Name, generator.WithConflictStrategy(strategy))
			output.Verbose(fmt.Sprintf("Creating new project: %s", opts.Name))

			report, err := scaffold.New(m, src, inst, app.reporter(), app.Stdout).
				WithLogger(app.log("scaffold")).
				Run(ctx, opts)
			switch {
			case err == nil:
			case errors.Is(err, scaffold.ErrProjectDir):
				return ErrFailed
			case report == nil, errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
				return err
			default:
				// the installer failure has been printed
				return ErrFailed
			}

			if failures := report.Failed(); len(failures) > 0 {
				output.Error(fmt.Sprintf("%d of %d steps failed", len(failures), len(report.Results)))
				for _, f := range failures {
					output.Step(f.String())
				}
				return ErrFailed
			}
			if !opts.DryRun {
				output.Success(fmt.Sprintf("Created project: %s", opts.Name))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Frontend, "frontend", "react", "Frontend framework")
	cmd.Flags().StringVar(&opts.Backend, "backend", scaffold.None, "Backend framework")
	cmd.Flags().StringVar(&opts.Database, "database", scaffold.None, "Database driver")
	cmd.Flags().StringVar(&opts.Testing, "testing", scaffold.None, "Test runner")
	cmd.Flags().BoolVar(&opts.Redux, "redux", false, "Add a redux store (requires --frontend react)")
	cmd.Flags().BoolVar(&opts.SkipInstall, "skip-install", false, "Do not install packages")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Print the steps without touching the filesystem")
	cmd.Flags().BoolVar(&skipExisting, "skip-existing", false, "Keep files that already exist")
	cmd.Flags().BoolVar(&confirmOverwrite, "confirm-overwrite", false, "Ask before overwriting existing files")
	cmd.Flags().StringVar(&templateDir, "templates", "", "Directory with replacements for the built-in templates")

	return cmd
}

// choosePackageManager uses the configured manager, then lock files and
// installed tools. An interactive user may turn down yarn.
func choosePackageManager(cmd *cobra.Command, app *App, dir string, probe installer.Prober) project.PackageManager {
	if app.Config != nil && app.Config.PackageManager != project.Unset {
		return app.Config.PackageManager
	}
	pm := installer.Detect(cmd.Context(), app.Fs, dir, probe)
	if pm == project.Yarn && app.Interactive {
		if !app.prompter().Confirm("Use yarn to install packages?", true) {
			return project.NPM
		}
	}
	return pm
}
