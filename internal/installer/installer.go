// Package installer picks a package manager for a project and installs
// the dependencies a scaffold collected.
package installer

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/enzojs/enzo/exec"
	"github.com/enzojs/enzo/output"
	"github.com/enzojs/enzo/project"
)

// ErrNoPackages is returned by Install when given nothing to install.
var ErrNoPackages = errors.New("no packages to install")

// Prober reports whether a command is usable on this machine.
type Prober interface {
	Available(ctx context.Context, name string, args ...string) bool
}

// Detect chooses a package manager for the project in dir. A lock file
// decides first; otherwise yarn is used when it is installed.
func Detect(ctx context.Context, fs afero.Fs, dir string, probe Prober) project.PackageManager {
	if ok, _ := afero.Exists(fs, filepath.Join(dir, "yarn.lock")); ok {
		return project.Yarn
	}
	if ok, _ := afero.Exists(fs, filepath.Join(dir, "package-lock.json")); ok {
		return project.NPM
	}
	if probe != nil && probe.Available(ctx, "yarnpkg", "--version") {
		return project.Yarn
	}
	return project.NPM
}

// Command returns the command line that installs names with pm.
func Command(pm project.PackageManager, mode project.DepMode, names ...string) (string, []string) {
	if pm == project.Yarn {
		args := append([]string{"add"}, names...)
		if mode == project.Dev {
			args = append(args, "--dev")
		}
		return "yarn", args
	}
	flag := "--save"
	if mode == project.Dev {
		flag = "--save-dev"
	}
	return "npm", append([]string{"install", flag}, names...)
}

// RunPrefix is how scripts are invoked with pm, e.g. "yarn start".
func RunPrefix(pm project.PackageManager) string {
	if pm == project.Yarn {
		return "yarn"
	}
	return "npm run"
}

// Installer runs package manager commands in a project directory.
type Installer struct {
	runner  exec.Runner
	manager project.PackageManager
	log     *logrus.Entry
}

// New creates an Installer. runner must already be scoped to the project
// directory (see exec.Executor.In).
func New(runner exec.Runner, pm project.PackageManager, log *logrus.Entry) *Installer {
	if pm == project.Unset {
		pm = project.NPM
	}
	if log == nil {
		log = output.Discard()
	}
	return &Installer{runner: runner, manager: pm, log: log}
}

// Manager returns the package manager in use.
func (i *Installer) Manager() project.PackageManager {
	return i.manager
}

// Install adds names to the project as mode dependencies.
func (i *Installer) Install(ctx context.Context, mode project.DepMode, names ...string) error {
	if len(names) == 0 {
		return ErrNoPackages
	}
	name, args := Command(i.manager, mode, names...)
	i.log.WithFields(logrus.Fields{"manager": i.manager, "mode": mode, "packages": names}).Debug("installing")
	if err := i.runner.Run(ctx, name, args...); err != nil {
		return fmt.Errorf("failed to install %s dependencies: %w", mode, err)
	}
	return nil
}

// InstallAll installs every accumulated dependency, production first.
// Empty groups are skipped.
func (i *Installer) InstallAll(ctx context.Context, deps *project.Dependencies) error {
	if deps == nil {
		return nil
	}
	for _, mode := range []project.DepMode{project.Prod, project.Dev} {
		names := deps.List(mode)
		if len(names) == 0 {
			continue
		}
		if err := i.Install(ctx, mode, names...); err != nil {
			return err
		}
	}
	return nil
}
