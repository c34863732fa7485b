// Package templates holds the files enzo scaffolds into new projects and
// loads them, preferring a project's own copy under scripts/templates.
package templates

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/enzojs/enzo/output"
	"github.com/enzojs/enzo/project"
)

//go:embed files
var embedded embed.FS

// ErrNotFound is returned when no template exists under an id.
var ErrNotFound = errors.New("template not found")

// OverrideDir is where a project keeps its own templates.
const OverrideDir = "scripts/templates"

// templateExt marks files that are executed as text templates.
const templateExt = ".tmpl"

const overridePrefix = "override:"

// Data is what templates are rendered with.
type Data struct {
	Name  string
	Stack project.Stack
	// Run is the command prefix for package.json scripts ("yarn", "npm run").
	Run string
}

// Source resolves template ids such as "react/App.js" to file contents.
type Source struct {
	fs       afero.Fs
	override string
	files    fs.FS
	renderer *Renderer
	log      *logrus.Entry
}

// Option configures a Source.
type Option func(*Source)

// WithOverrideDir makes Source look in dir before the built-in files.
func WithOverrideDir(dir string) Option {
	return func(s *Source) { s.override = dir }
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(log *logrus.Entry) Option {
	return func(s *Source) { s.log = log }
}

// NewSource creates a Source reading overrides from fsys.
func NewSource(fsys afero.Fs, opts ...Option) *Source {
	sub, err := fs.Sub(embedded, "files")
	if err != nil {
		panic(err)
	}
	s := &Source{
		fs:       fsys,
		files:    sub,
		renderer: NewRenderer(),
		log:      output.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the raw contents of id. Template ids (".tmpl") are
// returned unrendered.
func (s *Source) Load(id string) (string, error) {
	data, _, err := s.read(id)
	return data, err
}

// Render returns id rendered with data. Plain files are returned as is;
// the ".tmpl" suffix may be left off the id.
func (s *Source) Render(id string, data Data) (string, error) {
	text, resolved, err := s.read(id)
	if errors.Is(err, ErrNotFound) && !strings.HasSuffix(id, templateExt) {
		text, resolved, err = s.read(id + templateExt)
	}
	if err != nil {
		return "", err
	}
	if !strings.HasSuffix(resolved, templateExt) {
		return text, nil
	}
	var out []byte
	if origin, ok := strings.CutPrefix(resolved, overridePrefix); ok {
		out, err = s.renderer.RenderString(resolved, text, data)
		s.log.WithField("template", origin).Debug("rendered project template")
	} else {
		out, err = s.renderer.RenderFS(s.files, resolved, data)
	}
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// LoadJSON decodes the JSON file id into v.
func (s *Source) LoadJSON(id string, v any) error {
	text, err := s.Load(id)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(text), v); err != nil {
		return fmt.Errorf("failed to parse template '%s': %w", id, err)
	}
	return nil
}

// Exists reports whether id resolves to a file.
func (s *Source) Exists(id string) bool {
	_, _, err := s.read(id)
	return err == nil
}

// read returns the contents of id and a key naming where they came from.
func (s *Source) read(id string) (string, string, error) {
	clean := path.Clean(strings.TrimPrefix(filepath.ToSlash(id), "/"))
	if clean == "." || strings.HasPrefix(clean, "../") {
		return "", "", fmt.Errorf("%w: %q", ErrNotFound, id)
	}

	if s.override != "" {
		p := filepath.Join(s.override, filepath.FromSlash(clean))
		b, err := afero.ReadFile(s.fs, p)
		switch {
		case err == nil:
			s.log.WithFields(logrus.Fields{"template": id, "path": p}).Debug("using project template")
			return string(b), overridePrefix + clean, nil
		case !os.IsNotExist(err):
			return "", "", fmt.Errorf("failed to read template '%s': %w", p, err)
		}
	}

	b, err := fs.ReadFile(s.files, clean)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", "", fmt.Errorf("%w: %q", ErrNotFound, id)
		}
		return "", "", fmt.Errorf("failed to read template '%s': %w", id, err)
	}
	s.log.WithField("template", id).Debug("using built-in template")
	return string(b), clean, nil
}
