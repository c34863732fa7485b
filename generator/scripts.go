package generator

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/enzojs/enzo/manifest"
	"github.com/enzojs/enzo/output"
	"github.com/enzojs/enzo/project"
)

// ManifestFile is the package descriptor patched by AddScript.
const ManifestFile = "package.json"

// AddScript sets scripts[name] = body in the project's package.json.
// An existing script is replaced; a warning is printed when its body
// changes.
func (m *Mutator) AddScript(name, body string) Result {
	if name == "" {
		return m.reject(output.Insert, ErrMissingArgument, "No script name provided.")
	}
	description := fmt.Sprintf("%s script into %s", name, ManifestFile)

	return m.PatchManifest(output.Insert, description, func(man *manifest.Manifest) error {
		if prev, ok := man.Script(name); ok && prev != body {
			m.report.Warn(fmt.Sprintf("script %q already exists (%q), replacing it", name, prev))
		}
		return man.SetScript(name, body)
	})
}

// ScriptTaken reports whether package.json already defines name.
func (m *Mutator) ScriptTaken(name string) (bool, error) {
	man, _, err := m.loadManifest()
	if err != nil {
		return false, err
	}
	return man.HasScript(name), nil
}

// PatchManifest loads package.json, applies patch and writes the result
// back with 2-space indentation. Nothing is written if patch fails.
func (m *Mutator) PatchManifest(op output.Class, description string, patch func(*manifest.Manifest) error) Result {
	man, target, err := m.loadManifest()
	pretty := project.PrettyPath(target)
	if err != nil {
		return m.fail(op, pretty, "Couldn't read "+pretty, err)
	}

	if err := patch(man); err != nil {
		return m.fail(op, pretty, "Couldn't update "+pretty, fmt.Errorf("%w: %w", ErrInvalidArgument, err))
	}

	m.log.WithFields(logrus.Fields{"op": op.String(), "path": target}).Debug("writing manifest")
	if err := afero.WriteFile(m.fs, target, man.Bytes(), fileMode); err != nil {
		return m.fail(op, pretty, "Couldn't write "+pretty, ioErr(err))
	}
	m.report.Status(op, description)
	return Result{Op: op, Path: pretty}
}

func (m *Mutator) loadManifest() (*manifest.Manifest, string, error) {
	target, _ := m.pctx.Resolve(ManifestFile)

	data, err := afero.ReadFile(m.fs, target)
	if err != nil {
		return nil, target, fmt.Errorf("%w: %w", ErrManifestMissing, err)
	}
	man, err := manifest.Parse(data)
	if err != nil {
		return nil, target, fmt.Errorf("%w: %w", ErrManifestParse, err)
	}
	return man, target, nil
}
