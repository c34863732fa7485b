package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// RecordFile is the name of the project record at a project root.
const RecordFile = "enzo.yml"

// Record describes what a project was scaffolded with.
type Record struct {
	Project        Stack          `yaml:"project"`
	PackageManager PackageManager `yaml:"package_manager,omitempty"`
}

// Stack lists the selections made when the project was created.
type Stack struct {
	Name     string `yaml:"name"`
	Frontend string `yaml:"frontend,omitempty"`
	Backend  string `yaml:"backend,omitempty"`
	Database string `yaml:"database,omitempty"`
	Testing  string `yaml:"testing,omitempty"`
	Redux    bool   `yaml:"redux,omitempty"`
}

// Marshal renders the record as YAML.
func (r *Record) Marshal() (string, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s: %w", RecordFile, err)
	}
	return string(data), nil
}

// IsProject checks if dir contains enzo.yml.
func IsProject(fs afero.Fs, dir string) bool {
	_, err := fs.Stat(filepath.Join(dir, RecordFile))
	return err == nil
}

// Detect looks for enzo.yml in dir and parses it.
// A missing file is not an error: found is false and the record nil.
func Detect(fs afero.Fs, dir string) (bool, *Record, error) {
	data, err := afero.ReadFile(fs, filepath.Join(dir, RecordFile))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil, nil
		}
		return false, nil, fmt.Errorf("failed to read %s: %w", RecordFile, err)
	}

	var rec Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return false, nil, fmt.Errorf("failed to parse %s: %w", RecordFile, err)
	}
	return true, &rec, nil
}
