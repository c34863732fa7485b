package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/enzojs/enzo/internal/installer"
	"github.com/enzojs/enzo/output"
	"github.com/enzojs/enzo/project"
)

// InstallCmd installs packages into the current project.
func InstallCmd(app *App) *cobra.Command {
	var dev bool

	cmd := &cobra.Command{
		Use:   "install <package...>",
		Short: "Install packages with the project's package manager",
		Long: `Installs packages with yarn or npm. The manager comes from
package_manager in enzo.yml or ENZO_PACKAGE_MANAGER, then from the lock
file in the current directory, then from whether yarn is installed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner := app.NewRunner(".")

			pm := project.Unset
			if app.Config != nil {
				pm = app.Config.PackageManager
			}
			if pm == project.Unset {
				pm = installer.Detect(ctx, app.Fs, ".", runner)
			}

			mode := project.Prod
			if dev {
				mode = project.Dev
			}

			inst := installer.New(runner, pm, app.log("installer"))
			if err := inst.Install(ctx, mode, args...); err != nil {
				app.reporter().Failure("Failed to install "+strings.Join(args, " "), err)
				return ErrFailed
			}
			output.Success(fmt.Sprintf("Installed %s with %s", strings.Join(args, " "), pm))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dev, "dev", "D", false, "Install as development dependencies")
	return cmd
}
