// Package manifest reads and patches package.json files.
//
// A Manifest exposes the fields enzo cares about as typed values and keeps
// the original document for everything else, so unknown keys and key
// order survive a round trip.
package manifest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
	"golang.org/x/mod/semver"
)

var (
	// ErrInvalid means the document is not a usable package.json.
	ErrInvalid = errors.New("invalid package.json")
	// ErrVersion means a version string is not semver.
	ErrVersion = errors.New("invalid version")
)

var prettyOptions = &pretty.Options{Indent: "  "}

// Manifest is a parsed package.json. The typed fields are refreshed after
// every change; write through the Set methods, not the fields.
type Manifest struct {
	Name            string
	Version         string
	Scripts         map[string]string
	Dependencies    map[string]string
	DevDependencies map[string]string

	raw []byte
}

// Parse validates data and loads the typed fields. The root must be an
// object, and scripts/dependencies must be objects when present.
func Parse(data []byte) (*Manifest, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrInvalid)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: root is not an object", ErrInvalid)
	}
	for _, key := range []string{"scripts", "dependencies", "devDependencies"} {
		if v := root.Get(key); v.Exists() && !v.IsObject() {
			return nil, fmt.Errorf("%w: %s is not an object", ErrInvalid, key)
		}
	}

	m := &Manifest{raw: append([]byte(nil), data...)}
	m.load()
	return m, nil
}

// New returns an empty manifest for a project called name.
func New(name string) *Manifest {
	m := &Manifest{raw: []byte(`{}`)}
	if name != "" {
		_ = m.set("name", name)
	}
	return m
}

func (m *Manifest) load() {
	root := gjson.ParseBytes(m.raw)
	m.Name = root.Get("name").String()
	m.Version = root.Get("version").String()
	m.Scripts = stringMap(root.Get("scripts"))
	m.Dependencies = stringMap(root.Get("dependencies"))
	m.DevDependencies = stringMap(root.Get("devDependencies"))
}

func stringMap(res gjson.Result) map[string]string {
	out := map[string]string{}
	res.ForEach(func(k, v gjson.Result) bool {
		out[k.String()] = v.String()
		return true
	})
	return out
}

func (m *Manifest) set(path string, value any) error {
	raw, err := sjson.SetBytes(m.raw, path, value)
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", path, err)
	}
	m.raw = raw
	m.load()
	return nil
}

// Script returns the command registered under name.
func (m *Manifest) Script(name string) (string, bool) {
	body, ok := m.Scripts[name]
	return body, ok
}

// HasScript reports whether a script called name exists.
func (m *Manifest) HasScript(name string) bool {
	_, ok := m.Scripts[name]
	return ok
}

// SetScript sets scripts[name] = body, creating scripts if needed.
// An existing entry is replaced.
func (m *Manifest) SetScript(name, body string) error {
	if name == "" {
		return fmt.Errorf("%w: empty script name", ErrInvalid)
	}
	return m.set(objectKey("scripts", name), body)
}

// SetName sets the package name.
func (m *Manifest) SetName(name string) error {
	return m.set("name", name)
}

// SetVersion sets the package version after checking it is semver.
// A leading "v" is accepted and dropped.
func (m *Manifest) SetVersion(version string) error {
	v := strings.TrimPrefix(version, "v")
	if !semver.IsValid("v" + v) {
		return fmt.Errorf("%w: %q", ErrVersion, version)
	}
	return m.set("version", v)
}

// AddDependency records name@version under dependencies or devDependencies.
func (m *Manifest) AddDependency(name, version string, dev bool) error {
	key := "dependencies"
	if dev {
		key = "devDependencies"
	}
	return m.set(objectKey(key, name), version)
}

// objectKey builds an sjson path to parent[name]. The ":" prefix keeps
// sjson from creating an array when name is all digits.
func objectKey(parent, name string) string {
	return parent + ".:" + gjson.Escape(name)
}

// Set writes value at a gjson-style path, for fields without a typed
// accessor.
func (m *Manifest) Set(path string, value any) error {
	return m.set(path, value)
}

// Get reads any field by gjson path.
func (m *Manifest) Get(path string) gjson.Result {
	return gjson.GetBytes(m.raw, path)
}

// Bytes renders the manifest with 2-space indentation and a trailing
// newline. Key order is that of the parsed document.
func (m *Manifest) Bytes() []byte {
	return pretty.PrettyOptions(m.raw, prettyOptions)
}
