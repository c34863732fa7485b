package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/enzojs/enzo/internal/installer"
	"github.com/enzojs/enzo/output"
	"github.com/enzojs/enzo/project"
)

// InfoCmd describes the project in the current directory.
func InfoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show what the current project was created with",
		Long: `Prints the choices recorded in enzo.yml and the package manager that
install would use. Outside an enzo project the directory name is shown
as the project name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			found, rec, err := project.Detect(app.Fs, ".")
			if err != nil {
				return err
			}

			pm := project.Unset
			if app.Config != nil {
				pm = app.Config.PackageManager
			}
			if pm == project.Unset && found {
				pm = rec.PackageManager
			}
			if pm == project.Unset {
				pm = installer.Detect(cmd.Context(), app.Fs, ".", app.NewRunner("."))
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-17s %s\n", "Project:", app.projectName())
			if found {
				stack := rec.Project
				fmt.Fprintf(w, "%-17s %s\n", "Frontend:", orNone(stack.Frontend))
				fmt.Fprintf(w, "%-17s %s\n", "Backend:", orNone(stack.Backend))
				fmt.Fprintf(w, "%-17s %s\n", "Database:", orNone(stack.Database))
				fmt.Fprintf(w, "%-17s %s\n", "Testing:", orNone(stack.Testing))
				fmt.Fprintf(w, "%-17s %t\n", "Redux:", stack.Redux)
			}
			fmt.Fprintf(w, "%-17s %s\n", "Package manager:", pm)

			if !found {
				output.Warning(fmt.Sprintf("No %s here; this is not an enzo project", project.RecordFile))
			}
			return nil
		},
	}
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
