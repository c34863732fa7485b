package generator

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/enzojs/enzo/manifest"
	"github.com/enzojs/enzo/output"
	"github.com/enzojs/enzo/project"
)

// Operation is one step of a generation pipeline.
//
// Apply performs the step through a Mutator and returns its results.
// Description is shown instead when running with --dry-run
// (e.g., "Create src/index.js (234 bytes)").
type Operation interface {
	Apply(m *Mutator) []Result
	Description() string
}

// WriteFileOp writes a project-relative file.
type WriteFileOp struct {
	Path    string
	Content string
	Message string // optional replacement for the status line
}

func (op *WriteFileOp) Apply(m *Mutator) []Result {
	return []Result{m.WriteFile(op.Path, op.Content, op.Message)}
}

func (op *WriteFileOp) Description() string {
	return fmt.Sprintf("Write %s (%d bytes)", op.Path, len(op.Content))
}

// WriteJSONOp writes Value as indented JSON.
type WriteJSONOp struct {
	Path  string
	Value any
}

func (op *WriteJSONOp) Apply(m *Mutator) []Result {
	return []Result{m.WriteJSON(op.Path, op.Value)}
}

func (op *WriteJSONOp) Description() string {
	return fmt.Sprintf("Write %s (JSON)", op.Path)
}

// MkdirOp creates a single project-relative directory. An empty Path
// creates the project directory.
type MkdirOp struct {
	Path string
	// IfMissing reports skip instead of failing when the directory exists.
	IfMissing bool
}

func (op *MkdirOp) Apply(m *Mutator) []Result {
	if op.IfMissing {
		if target, err := m.Context().Resolve(op.Path); err == nil {
			if ok, _ := afero.DirExists(m.Fs(), target); ok {
				return []Result{m.done(output.Skip, project.PrettyPath(target), "")}
			}
		}
	}
	return []Result{m.Mkdir(op.Path, "")}
}

func (op *MkdirOp) Description() string {
	if op.Path == "" {
		return "Create project directory"
	}
	return fmt.Sprintf("Create directory %s", op.Path)
}

// FoldersOp creates several project-relative directories in order.
type FoldersOp struct {
	Paths     []string
	IfMissing bool
}

func (op *FoldersOp) Apply(m *Mutator) []Result {
	if !op.IfMissing {
		return m.CreateFolders(op.Paths...)
	}
	var results []Result
	for _, p := range op.Paths {
		results = append(results, (&MkdirOp{Path: p, IfMissing: true}).Apply(m)...)
	}
	return results
}

func (op *FoldersOp) Description() string {
	return fmt.Sprintf("Create directories %s", strings.Join(op.Paths, ", "))
}

// ScriptsFolderOp makes sure scripts/ and scripts/templates/ exist.
type ScriptsFolderOp struct{}

func (op *ScriptsFolderOp) Apply(m *Mutator) []Result {
	return m.EnsureScriptsFolder()
}

func (op *ScriptsFolderOp) Description() string {
	return "Create scripts/ and scripts/templates/"
}

// AppendOp appends to a project-relative file.
type AppendOp struct {
	Path    string
	Content string
}

func (op *AppendOp) Apply(m *Mutator) []Result {
	return []Result{m.AppendFile(op.Path, op.Content)}
}

func (op *AppendOp) Description() string {
	return fmt.Sprintf("Append %d bytes to %s", len(op.Content), op.Path)
}

// InsertOp splices a line into a project-relative file.
type InsertOp struct {
	Path    string
	Content string
	At      Locator
}

func (op *InsertOp) Apply(m *Mutator) []Result {
	target, err := m.Context().Resolve(op.Path)
	if err != nil {
		return []Result{m.reject(output.Insert, ErrMissingArgument, "No file specified.")}
	}
	return []Result{m.Insert(target, op.Content, op.At)}
}

func (op *InsertOp) Description() string {
	return fmt.Sprintf("Insert line into %s", op.Path)
}

// MoveDirOp moves the contents of one project-relative directory into
// another and removes the source.
type MoveDirOp struct {
	From string
	To   string
}

func (op *MoveDirOp) Apply(m *Mutator) []Result {
	from, errFrom := m.Context().Resolve(op.From)
	to, errTo := m.Context().Resolve(op.To)
	if errFrom != nil {
		from = ""
	}
	if errTo != nil {
		to = ""
	}
	return m.MoveAllFilesInDir(from, to)
}

func (op *MoveDirOp) Description() string {
	return fmt.Sprintf("Move contents of %s into %s", op.From, op.To)
}

// ScriptOp registers a package.json script.
type ScriptOp struct {
	Name string
	Body string
}

func (op *ScriptOp) Apply(m *Mutator) []Result {
	return []Result{m.AddScript(op.Name, op.Body)}
}

func (op *ScriptOp) Description() string {
	return fmt.Sprintf("Add script %q to package.json", op.Name)
}

// ManifestOp applies an arbitrary patch to package.json.
type ManifestOp struct {
	Summary string
	Patch   func(*manifest.Manifest) error
}

func (op *ManifestOp) Apply(m *Mutator) []Result {
	return []Result{m.PatchManifest(output.Mutate, op.Summary, op.Patch)}
}

func (op *ManifestOp) Description() string {
	return fmt.Sprintf("Update package.json: %s", op.Summary)
}
