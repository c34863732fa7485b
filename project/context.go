package project

import (
	"errors"
	"path/filepath"
	"strings"
)

// ErrEmptyPath is returned by Resolve when there is neither a logical
// path nor a project name to fall back on.
var ErrEmptyPath = errors.New("empty path with no active project")

// Mode controls how much detail enzo prints.
type Mode int

const (
	Normal Mode = iota
	Verbose
)

func (m Mode) String() string {
	if m == Verbose {
		return "verbose"
	}
	return "normal"
}

// PackageManager names the tool used to install dependencies.
type PackageManager string

const (
	Unset PackageManager = ""
	Yarn  PackageManager = "yarn"
	NPM   PackageManager = "npm"
)

// Context carries the active project name, output mode and install
// choices for a single CLI invocation. It is passed by value; the With*
// methods return modified copies.
type Context struct {
	Name    string
	Mode    Mode
	Manager PackageManager
	Deps    *Dependencies
}

// New returns a Context with an empty dependency accumulator.
func New(name string, mode Mode) Context {
	return Context{
		Name: name,
		Mode: mode,
		Deps: NewDependencies(),
	}
}

// WithName returns a copy of c scoped to the project directory name.
func (c Context) WithName(name string) Context {
	c.Name = name
	return c
}

// WithMode returns a copy of c with the given output mode.
func (c Context) WithMode(mode Mode) Context {
	c.Mode = mode
	return c
}

// WithManager returns a copy of c with the given package manager.
func (c Context) WithManager(pm PackageManager) Context {
	c.Manager = pm
	return c
}

// Verbose reports whether raw errors and debug lines should be shown.
func (c Context) Verbose() bool {
	return c.Mode == Verbose
}

// Resolve maps a logical path onto the path used on disk.
//
//	name set:   ./<name>/<path>
//	name unset: ./<path>
//
// An empty path resolves to the project directory itself ("./<name>/")
// and is an error when no name is set.
func (c Context) Resolve(logical string) (string, error) {
	if logical == "" && c.Name == "" {
		return "", ErrEmptyPath
	}
	if c.Name != "" {
		return "./" + c.Name + "/" + logical, nil
	}
	return "./" + logical, nil
}

// Root is the directory every resolved path lives under.
func (c Context) Root() string {
	if c.Name == "" {
		return "."
	}
	return "./" + c.Name
}

// PrettyPath shortens a resolved path for status lines: "./app/src/" is
// shown as "app/src".
func PrettyPath(p string) string {
	p = filepath.ToSlash(p)
	for strings.HasPrefix(p, "./") {
		p = p[2:]
	}
	p = strings.TrimRight(p, "/")
	if p == "" {
		return "."
	}
	return p
}

// CWDName returns the last element of dir, used as the default project
// name when enzo runs inside an existing project.
func CWDName(dir string) string {
	return filepath.Base(filepath.Clean(dir))
}
