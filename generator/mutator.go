package generator

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/enzojs/enzo/output"
	"github.com/enzojs/enzo/project"
)

const (
	fileMode = 0o644
	dirMode  = 0o755
)

var errDirNotEmpty = errors.New("directory not empty")

// reservedDirs are left in place by MoveAllFilesInDir.
var reservedDirs = map[string]bool{
	"actions":    true,
	"components": true,
	"store":      true,
	"api":        true,
}

// Chooser asks the user to pick one of lines.
type Chooser func(lines []string) (string, error)

// Option configures a Mutator.
type Option func(*Mutator)

// WithChooser sets the prompt Insert uses when no locator is given.
func WithChooser(c Chooser) Option {
	return func(m *Mutator) { m.chooser = c }
}

// WithLogger sets the debug logger.
func WithLogger(l *logrus.Entry) Option {
	return func(m *Mutator) { m.log = l }
}

// WithConflictStrategy sets how WriteFile treats existing files.
func WithConflictStrategy(s ConflictStrategy) Option {
	return func(m *Mutator) { m.conflict = s }
}

// Mutator performs file operations for a project. Every operation
// returns a Result and reports it; none of them returns an error or
// stops on failure.
//
// A Mutator is not safe for concurrent use.
type Mutator struct {
	fs       afero.Fs
	pctx     project.Context
	report   *output.Reporter
	log      *logrus.Entry
	chooser  Chooser
	conflict ConflictStrategy
}

// NewMutator creates a Mutator over fs for the project in pctx. A
// context without a dependency store gets an empty one.
func NewMutator(fs afero.Fs, pctx project.Context, report *output.Reporter, opts ...Option) *Mutator {
	if pctx.Deps == nil {
		pctx.Deps = project.NewDependencies()
	}
	m := &Mutator{
		fs:       fs,
		pctx:     pctx,
		report:   report,
		log:      output.Discard(),
		conflict: OverwriteStrategy{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Context returns the project context the Mutator resolves paths against.
func (m *Mutator) Context() project.Context {
	return m.pctx
}

// Fs returns the underlying filesystem.
func (m *Mutator) Fs() afero.Fs {
	return m.fs
}

// reject reports an argument error and returns it as a Result. The raw
// error is not shown since msg already says everything.
func (m *Mutator) reject(op output.Class, kind error, msg string) Result {
	m.report.Failure(msg, nil)
	return Result{Op: op, Err: argErr(kind, msg)}
}

func (m *Mutator) fail(op output.Class, path, context string, err error) Result {
	m.report.Failure(context, err)
	m.log.WithFields(logrus.Fields{"op": op.String(), "path": path}).WithError(err).Debug("operation failed")
	return Result{Op: op, Path: path, Err: err}
}

func (m *Mutator) done(op output.Class, path, message string) Result {
	if message != "" {
		m.report.Message(message)
	} else {
		m.report.Status(op, path)
	}
	return Result{Op: op, Path: path}
}

// WriteFile writes content to the resolved path. The result is Mutate
// when the file existed beforehand and Create otherwise. A non-empty
// message replaces the status line.
func (m *Mutator) WriteFile(path, content, message string) Result {
	if path == "" {
		return m.reject(output.Create, ErrPathRequired, "No filePath specified.")
	}
	target, err := m.pctx.Resolve(path)
	if err != nil {
		return m.reject(output.Create, ErrInvalidArgument, "No filePath specified.")
	}
	pretty := project.PrettyPath(target)

	op := output.Create
	if exists, _ := afero.Exists(m.fs, target); exists {
		op = output.Mutate
		if m.conflict.Resolve(target) == Keep {
			return m.done(output.Skip, pretty, "")
		}
	}

	m.log.WithFields(logrus.Fields{"op": op.String(), "path": target, "bytes": len(content)}).Debug("writing file")
	if err := afero.WriteFile(m.fs, target, []byte(content), fileMode); err != nil {
		return m.fail(op, pretty, "Couldn't create file "+target, ioErr(err))
	}
	return m.done(op, pretty, message)
}

// WriteJSON writes v as 2-space indented JSON.
func (m *Mutator) WriteJSON(path string, v any) Result {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		target, rerr := m.pctx.Resolve(path)
		if path == "" || rerr != nil {
			return m.WriteFile(path, "", "")
		}
		return m.fail(output.Create, project.PrettyPath(target), "Couldn't create file "+target, fmt.Errorf("%w: %w", ErrInvalidArgument, err))
	}
	return m.WriteFile(path, string(data)+"\n", "")
}

// Mkdir creates a single directory. Parents are not created. An empty
// path creates the project directory itself.
func (m *Mutator) Mkdir(path, message string) Result {
	target, err := m.pctx.Resolve(path)
	if err != nil {
		return m.reject(output.Create, ErrInvalidArgument, "Unable to create folder")
	}
	pretty := project.PrettyPath(target)

	m.log.WithFields(logrus.Fields{"op": "mkdir", "path": target}).Debug("creating directory")
	if err := m.fs.Mkdir(target, dirMode); err != nil {
		return m.fail(output.Create, pretty, "Error making directory "+target, ioErr(err))
	}
	return m.done(output.Create, pretty, message)
}

// CreateFolders creates each path in order with Mkdir.
func (m *Mutator) CreateFolders(paths ...string) []Result {
	results := make([]Result, 0, len(paths))
	for _, p := range paths {
		results = append(results, m.Mkdir(p, ""))
	}
	return results
}

// EnsureScriptsFolder creates scripts/ and scripts/templates/ when they
// are missing. Existing ones are reported as skipped.
func (m *Mutator) EnsureScriptsFolder() []Result {
	results := make([]Result, 0, 2)
	for _, dir := range []string{"scripts", "scripts/templates"} {
		target, _ := m.pctx.Resolve(dir)
		if ok, _ := afero.DirExists(m.fs, target); ok {
			results = append(results, m.done(output.Skip, project.PrettyPath(target), ""))
			continue
		}
		results = append(results, m.Mkdir(dir, ""))
	}
	return results
}

// AppendFile appends content to the resolved path, creating the file if
// needed.
func (m *Mutator) AppendFile(path, content string) Result {
	if path == "" {
		return m.reject(output.Append, ErrMissingArgument, "File not provided.")
	}
	if content == "" {
		return m.reject(output.Append, ErrMissingArgument, "No string to append provided.")
	}
	target, _ := m.pctx.Resolve(path)
	pretty := project.PrettyPath(target)

	m.log.WithFields(logrus.Fields{"op": "append", "path": target, "bytes": len(content)}).Debug("appending to file")
	if err := appendTo(m.fs, target, content); err != nil {
		return m.fail(output.Append, pretty, "Failed to append "+target, ioErr(err))
	}
	return m.done(output.Append, pretty, "")
}

func appendTo(fs afero.Fs, path, content string) error {
	f, err := fs.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, fileMode)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Rename moves oldPath to newPath. Both paths are used as given; they are
// not resolved against the project.
func (m *Mutator) Rename(oldPath, newPath string) Result {
	if oldPath == "" {
		return m.reject(output.Move, ErrMissingArgument,
			"First parameter oldName is undefined: rename requires oldName and newName")
	}
	if newPath == "" {
		return m.reject(output.Move, ErrMissingArgument,
			"Second parameter newName is undefined: rename requires oldName and newName")
	}

	m.log.WithFields(logrus.Fields{"op": "move", "from": oldPath, "to": newPath}).Debug("renaming")
	if err := m.fs.Rename(oldPath, newPath); err != nil {
		return m.fail(output.Move, project.PrettyPath(oldPath), "Error renaming "+oldPath, ioErr(err))
	}
	m.report.Status(output.Move, fmt.Sprintf("%s into %s",
		strings.TrimPrefix(oldPath, "./"), strings.TrimPrefix(newPath, "./")))
	return Result{Op: output.Move, Path: project.PrettyPath(newPath)}
}

// MoveAllFilesInDir moves every entry of src into dst, except the
// reserved directories actions, components, store and api, then removes
// src. Removal fails, and is reported, when src still has entries.
//
// The returned slice holds one Result per move followed by the removal.
func (m *Mutator) MoveAllFilesInDir(src, dst string) []Result {
	if src == "" {
		return []Result{m.reject(output.Move, ErrMissingArgument, "No directory to search specified.")}
	}
	if dst == "" {
		return []Result{m.reject(output.Move, ErrMissingArgument, "No directory to move files to specified.")}
	}

	entries, err := afero.ReadDir(m.fs, src)
	if err != nil {
		return []Result{m.fail(output.Move, project.PrettyPath(src), "Failed to read directory", ioErr(err))}
	}

	results := make([]Result, 0, len(entries)+1)
	for _, entry := range entries {
		if reservedDirs[entry.Name()] {
			m.log.WithFields(logrus.Fields{"op": "move", "entry": entry.Name()}).Debug("leaving reserved directory in place")
			continue
		}
		results = append(results, m.Rename(src+"/"+entry.Name(), dst+"/"+entry.Name()))
	}
	return append(results, m.removeDir(src))
}

func (m *Mutator) removeDir(dir string) Result {
	pretty := project.PrettyPath(dir)
	m.log.WithFields(logrus.Fields{"op": "delete", "path": dir}).Debug("removing directory")
	if empty, err := afero.IsEmpty(m.fs, dir); err == nil && !empty {
		err := &os.PathError{Op: "remove", Path: dir, Err: errDirNotEmpty}
		return m.fail(output.Delete, pretty, "Failed to delete "+pretty, ioErr(err))
	}
	if err := m.fs.Remove(dir); err != nil {
		return m.fail(output.Delete, pretty, "Failed to delete "+pretty, ioErr(err))
	}
	return m.done(output.Delete, pretty, "")
}
