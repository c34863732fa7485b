// Package scaffold creates new enzo projects.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/enzojs/enzo/generator"
	"github.com/enzojs/enzo/output"
	"github.com/enzojs/enzo/project"
	"github.com/enzojs/enzo/templates"
)

// ErrProjectDir is returned when the project directory could not be
// created. Nothing else is generated in that case.
var ErrProjectDir = errors.New("could not create project directory")

// Installer installs the dependencies a plan collected.
type Installer interface {
	InstallAll(ctx context.Context, deps *project.Dependencies) error
	Manager() project.PackageManager
}

// Scaffolder turns Options into file operations and runs them.
type Scaffolder struct {
	m         *generator.Mutator
	src       *templates.Source
	installer Installer
	report    *output.Reporter
	out       io.Writer
	log       *logrus.Entry
}

// New creates a Scaffolder. The Mutator's context decides where the
// project is created and collects its dependencies.
func New(m *generator.Mutator, src *templates.Source, inst Installer, report *output.Reporter, out io.Writer) *Scaffolder {
	if out == nil {
		out = os.Stdout
	}
	return &Scaffolder{
		m:         m,
		src:       src,
		installer: inst,
		report:    report,
		out:       out,
		log:       output.Discard(),
	}
}

// WithLogger sets the logger used for debug tracing.
func (s *Scaffolder) WithLogger(log *logrus.Entry) *Scaffolder {
	s.log = log
	return s
}

// Run generates the project, installs its packages and prints what to
// do next. File operations are best-effort: the returned report lists
// every failure. The error is non-nil only when generation stopped
// early or installation failed.
func (s *Scaffolder) Run(ctx context.Context, opts Options) (*generator.Report, error) {
	opts = opts.Normalize()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if s.m.Context().Name != opts.Name {
		return nil, fmt.Errorf("%w: mutator is scoped to %q, not %q", ErrInvalidOptions, s.m.Context().Name, opts.Name)
	}

	pm := s.installer.Manager()
	p, err := s.plan(opts, pm)
	if err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"project": opts.Name, "steps": len(p.ops)}).Debug("planned project")

	exec := generator.ExecuteOptions{DryRun: opts.DryRun, Writer: s.out}
	root, err := generator.Execute(ctx, s.m, p.ops[:1], exec)
	if err != nil {
		return root, err
	}
	if !root.OK() {
		return root, fmt.Errorf("%w ./%s", ErrProjectDir, opts.Name)
	}
	rest, err := generator.Execute(ctx, s.m, p.ops[1:], exec)
	report := &generator.Report{Results: append(root.Results, rest.Results...)}
	if err != nil {
		return report, err
	}

	deps := s.m.Context().Deps
	switch {
	case opts.DryRun:
		for _, mode := range []project.DepMode{project.Prod, project.Dev} {
			if names := deps.Joined(mode); names != "" {
				fmt.Fprintf(s.out, "✓ [DRY RUN] Install %s dependencies with %s: %s\n", mode, pm, names)
			}
		}
		return report, nil
	case opts.SkipInstall || deps.Empty():
	default:
		s.report.Message(fmt.Sprintf("Installing packages with %s", pm))
		if err := s.installer.InstallAll(ctx, deps); err != nil {
			s.report.Failure("Failed to install packages", err)
			return report, err
		}
	}

	for _, line := range Instructions(opts, pm, p.scripts) {
		s.report.Message(line)
	}
	return report, nil
}

// Plan returns the operations Run would execute for opts, in order.
// The first operation always creates the project directory.
func (s *Scaffolder) Plan(opts Options) ([]generator.Operation, error) {
	opts = opts.Normalize()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	p, err := s.plan(opts, s.installer.Manager())
	if err != nil {
		return nil, err
	}
	return p.ops, nil
}

func (s *Scaffolder) plan(opts Options, pm project.PackageManager) (*plan, error) {
	p := newPlan(s.src, s.m.Context().Deps, opts, pm)

	p.common()
	if opts.Frontend == "react" {
		p.react()
		if opts.Redux {
			p.redux()
		}
	}
	if opts.Backend == "express" {
		p.express()
	}
	if opts.Database != "" {
		p.database()
	}
	if opts.Testing == "jest" {
		p.jest()
	}
	p.finish()

	if p.err != nil {
		return nil, p.err
	}
	return p, nil
}
