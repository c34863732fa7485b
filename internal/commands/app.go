package commands

import (
	"errors"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/enzojs/enzo/exec"
	"github.com/enzojs/enzo/generator"
	"github.com/enzojs/enzo/input"
	"github.com/enzojs/enzo/internal/config"
	"github.com/enzojs/enzo/internal/installer"
	"github.com/enzojs/enzo/output"
	"github.com/enzojs/enzo/project"
)

// ErrFailed is returned by a command whose failure has already been
// printed. main exits 1 without printing it again.
var ErrFailed = errors.New("command failed")

// Runner runs and probes package managers.
type Runner interface {
	exec.Runner
	installer.Prober
}

// App is what every command shares. Tests replace its fields.
type App struct {
	Fs          afero.Fs
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
	Interactive bool
	// WorkDir is the directory enzo was started in.
	WorkDir string

	// NewRunner returns a runner working in dir.
	NewRunner func(dir string) Runner
	// Chooser picks a line for insert when no locator flag is given.
	Chooser generator.Chooser

	Config *config.Config
	logger *logrus.Logger
	prompt *input.Prompter
}

// DefaultApp wires the real filesystem, terminal and executor.
func DefaultApp() *App {
	interactive := input.IsInteractive()
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return &App{
		Fs:          afero.NewOsFs(),
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Interactive: interactive,
		WorkDir:     wd,
		NewRunner: func(dir string) Runner {
			return exec.NewExecutor(&exec.Options{Spinner: interactive}).In(dir)
		},
		Chooser: input.LineChooser("Insert after which line?"),
	}
}

func (a *App) mode() project.Mode {
	if a.Config == nil {
		return project.Normal
	}
	return a.Config.Mode()
}

func (a *App) verbose() bool {
	return a.mode() == project.Verbose
}

// log returns the debug logger, tagged with component.
func (a *App) log(component string) *logrus.Entry {
	if a.logger == nil {
		a.logger = output.NewLogger(a.Stderr, a.verbose())
	}
	return output.Component(a.logger, component)
}

func (a *App) reporter() *output.Reporter {
	return output.NewReporter(a.Stdout, a.Stderr, a.verbose())
}

// projectName names the project in WorkDir: the name recorded in
// enzo.yml, or the directory name.
func (a *App) projectName() string {
	if a.Config != nil && a.Config.ProjectName != "" {
		return a.Config.ProjectName
	}
	return project.CWDName(a.WorkDir)
}

// prompter is created once so its buffered reader owns Stdin.
func (a *App) prompter() *input.Prompter {
	if a.prompt == nil {
		a.prompt = input.NewPrompter(a.Stdin, a.Stdout)
	}
	return a.prompt
}

// mutator returns a Mutator scoped to the project directory name, or to
// the working directory when name is empty.
func (a *App) mutator(name string, opts ...generator.Option) *generator.Mutator {
	opts = append([]generator.Option{
		generator.WithLogger(a.log("generator")),
	}, opts...)
	if a.Interactive && a.Chooser != nil {
		opts = append(opts, generator.WithChooser(a.Chooser))
	}
	pctx := project.New(name, a.mode())
	if a.Config != nil {
		pctx = pctx.WithManager(a.Config.PackageManager)
	}
	return generator.NewMutator(a.Fs, pctx, a.reporter(), opts...)
}

// failed turns a Result into the command's error.
func failed(res generator.Result) error {
	if res.OK() {
		return nil
	}
	return ErrFailed
}
