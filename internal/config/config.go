package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RunConfig holds everything needed for a single Renovate container run.
// It is built once at startup and passed to the invoker.
type RunConfig struct {
	// ConfigFile is the Renovate config file on the host, as supplied
	ConfigFile string `yaml:"config_file"`

	// EnvFile is the KEY=VALUE file handed to the engine's --env-file
	EnvFile string `yaml:"env_file"`

	// Image is the Renovate container image
	Image string `yaml:"image"`

	// Engine is the container engine binary ("docker", "podman", or "auto")
	Engine string `yaml:"engine"`

	// LogLevel controls log verbosity (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// ExtraArgs are forwarded verbatim to Renovate inside the container
	ExtraArgs []string `yaml:"-"`
}

// Clone returns a deep copy of the config.
func (c *RunConfig) Clone() *RunConfig {
	out := *c
	if c.ExtraArgs != nil {
		out.ExtraArgs = append([]string(nil), c.ExtraArgs...)
	}
	return &out
}

// Load builds the run configuration from defaults, then the user defaults
// file, then environment overrides. Command-line flags are applied by the
// caller on top of the result, followed by Validate.
//
// A missing defaults file is not an error.
func Load() (*RunConfig, error) {
	path, err := UserConfigPath()
	if err != nil {
		// No home directory; fall back to defaults and env
		cfg := DefaultRunConfig()
		applyEnvOverrides(cfg)
		return cfg, nil
	}
	return LoadFromPath(path)
}

// LoadFromPath is Load with an explicit defaults file path.
func LoadFromPath(path string) (*RunConfig, error) {
	cfg := DefaultRunConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Note: missing defaults file is not an error (use defaults)
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}
