// Package config loads enzo's settings from enzo.yml and ENZO_
// environment variables.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/enzojs/enzo/project"
)

// EnvDevelopment turns on verbose output, as if --verbose were given.
const EnvDevelopment = "development"

// Config holds the settings for one invocation.
type Config struct {
	Env            string
	Verbose        bool
	PackageManager project.PackageManager
	// ProjectName is set when dir holds an enzo project record.
	ProjectName string
	// File is the config file read, empty when none was found.
	File string
}

// Mode returns the output mode the settings ask for.
func (c *Config) Mode() project.Mode {
	if c.Verbose || c.Env == EnvDevelopment {
		return project.Verbose
	}
	return project.Normal
}

// Load reads dir/enzo.yml, if present, with ENZO_ENV, ENZO_VERBOSE and
// ENZO_PACKAGE_MANAGER taking precedence over the file.
func Load(fs afero.Fs, dir string) (*Config, error) {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("ENZO")
	v.AutomaticEnv()

	v.SetDefault("env", "production")
	v.SetDefault("verbose", false)
	v.SetDefault("package_manager", "")

	cfg := &Config{}
	path := filepath.Join(dir, project.RecordFile)
	if ok, _ := afero.Exists(fs, path); ok {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", project.RecordFile, err)
		}
		cfg.File = path
	}

	cfg.Env = v.GetString("env")
	cfg.Verbose = v.GetBool("verbose")
	cfg.ProjectName = v.GetString("project.name")

	switch pm := project.PackageManager(v.GetString("package_manager")); pm {
	case project.Unset, project.Yarn, project.NPM:
		cfg.PackageManager = pm
	default:
		return nil, fmt.Errorf("unknown package_manager %q (want yarn or npm)", pm)
	}

	return cfg, nil
}
