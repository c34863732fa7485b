package scaffold

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/enzojs/enzo/project"
)

// ErrInvalidOptions wraps every validation failure.
var ErrInvalidOptions = errors.New("invalid options")

// None disables a part of the stack.
const None = "none"

var (
	Frontends = []string{"react", None}
	Backends  = []string{"express", None}
	Databases = []string{"postgres", "mongo", None}
	Testing   = []string{"jest", None}
)

// Options are the selections for a new project.
type Options struct {
	Name     string
	Frontend string
	Backend  string
	Database string
	Testing  string
	Redux    bool

	SkipInstall bool
	DryRun      bool
	// AllowExisting lets generation continue into an existing project
	// directory; existing folders are skipped.
	AllowExisting bool
}

// Normalize lower-cases the selections and maps "none" to empty.
func (o Options) Normalize() Options {
	norm := func(s string) string {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == None {
			return ""
		}
		return s
	}
	o.Name = strings.TrimSpace(o.Name)
	o.Frontend = norm(o.Frontend)
	o.Backend = norm(o.Backend)
	o.Database = norm(o.Database)
	o.Testing = norm(o.Testing)
	return o
}

// Validate checks a normalized Options.
func (o Options) Validate() error {
	switch {
	case o.Name == "":
		return fmt.Errorf("%w: project name is required", ErrInvalidOptions)
	case o.Name == "." || o.Name == ".." || strings.ContainsAny(o.Name, `/\`):
		return fmt.Errorf("%w: project name %q must be a plain directory name", ErrInvalidOptions, o.Name)
	}

	checks := []struct {
		flag, value string
		allowed     []string
	}{
		{"frontend", o.Frontend, Frontends},
		{"backend", o.Backend, Backends},
		{"database", o.Database, Databases},
		{"testing", o.Testing, Testing},
	}
	for _, c := range checks {
		if c.value != "" && !slices.Contains(c.allowed, c.value) {
			return fmt.Errorf("%w: unknown %s %q (want %s)", ErrInvalidOptions, c.flag, c.value, strings.Join(c.allowed, "|"))
		}
	}

	if o.Redux && o.Frontend != "react" {
		return fmt.Errorf("%w: --redux requires --frontend react", ErrInvalidOptions)
	}
	return nil
}

// Stack returns the selections as recorded in enzo.yml.
func (o Options) Stack() project.Stack {
	return project.Stack{
		Name:     o.Name,
		Frontend: o.Frontend,
		Backend:  o.Backend,
		Database: o.Database,
		Testing:  o.Testing,
		Redux:    o.Redux,
	}
}
