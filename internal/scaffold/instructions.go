package scaffold

import (
	"fmt"

	"github.com/enzojs/enzo/internal/installer"
	"github.com/enzojs/enzo/project"
)

// Instructions returns the lines printed after a project is created.
func Instructions(opts Options, pm project.PackageManager, scripts []Script) []string {
	run := installer.RunPrefix(pm)
	lines := []string{
		"",
		fmt.Sprintf("Your project %s is ready!", opts.Name),
		"",
		fmt.Sprintf("  cd %s", opts.Name),
	}
	if opts.SkipInstall {
		install := "npm install"
		if pm == project.Yarn {
			install = "yarn"
		}
		lines = append(lines, "  "+install)
	}

	scripts = dedupeScripts(scripts)
	for _, name := range []string{"start", "dev", "test"} {
		for _, s := range scripts {
			if s.Name == name {
				lines = append(lines, fmt.Sprintf("  %s %s", run, s.Name))
			}
		}
	}

	if len(scripts) > 0 {
		lines = append(lines, "", "Available scripts:")
		for _, s := range scripts {
			lines = append(lines, fmt.Sprintf("  %-10s %s", s.Name, s.Help))
		}
	}
	return lines
}
