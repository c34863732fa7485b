package commands

import (
	"github.com/spf13/cobra"

	"github.com/enzojs/enzo/internal/config"
	"github.com/enzojs/enzo/output"
	"github.com/enzojs/enzo/project"
)

// Version is set at build time with -ldflags "-X ...commands.Version=...".
var Version = "0.1.0"

// RootCmd creates and returns the root command for the enzo CLI
func RootCmd(app *App) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "enzo",
		Short: "Scaffold and grow JavaScript projects",
		Long: `enzo creates React/Express projects and keeps editing them afterwards:
adding package.json scripts, splicing lines into files and moving
folders around, while reporting every change it makes.

Settings are read from enzo.yml in the current directory and from
ENZO_ENV, ENZO_VERBOSE and ENZO_PACKAGE_MANAGER.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(app.Fs, ".")
			if err != nil {
				return err
			}
			if verbose {
				cfg.Verbose = true
			}
			app.Config = cfg
			output.SetWriter(app.Stdout)
			output.SetVerbose(cfg.Mode() == project.Verbose)
			if cfg.File != "" {
				app.log("config").WithField("file", cfg.File).Debug("loaded config")
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show raw errors and debug output")
	cmd.SetIn(app.Stdin)
	cmd.SetOut(app.Stdout)
	cmd.SetErr(app.Stderr)

	cmd.AddCommand(
		NewCmd(app),
		ScriptCmd(app),
		InsertCmd(app),
		AppendCmd(app),
		MoveCmd(app),
		InstallCmd(app),
		InfoCmd(app),
		VersionCmd(),
	)
	return cmd
}
