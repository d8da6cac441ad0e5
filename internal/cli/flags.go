package cli

import (
	"github.com/spf13/pflag"

	"github.com/RevCBH/renovate-run/internal/config"
)

// runFlags holds the values bound to the root command's flags
type runFlags struct {
	ConfigFile string // Renovate config file (default: renovate.json)
	EnvFile    string // Env file passed via --env-file (default: renovate.env)
	Image      string // Renovate image
	Engine     string // Container engine binary
	Verbose    bool   // Debug logging
	DryRun     bool   // Print the engine command instead of running it
}

func (f *runFlags) register(fs *pflag.FlagSet) {
	fs.SortFlags = false
	fs.StringVarP(&f.ConfigFile, "configfile", "c", config.DefaultConfigFile, "Renovate config file, created if missing")
	fs.StringVarP(&f.Engine, "engine", "E", config.DefaultEngine, `Container engine binary ("docker", "podman", or "auto")`)
	fs.StringVarP(&f.EnvFile, "envfile", "e", config.DefaultEnvFile, "Env file with Renovate credentials, created if missing")
	fs.StringVarP(&f.Image, "image", "i", config.DefaultImage, "Renovate container image")
	fs.BoolVarP(&f.Verbose, "verbose", "v", false, "Verbose output")
	fs.BoolVar(&f.DryRun, "dry-run", false, "Print the container command without running it")
}

// resolveConfig layers explicitly set flags over the loaded configuration
// and attaches the forwarded arguments. Flags left at their defaults do not
// override file or environment values.
func (f *runFlags) resolveConfig(base *config.RunConfig, fs *pflag.FlagSet, args []string) (*config.RunConfig, error) {
	cfg := base.Clone()

	if fs.Changed("configfile") {
		cfg.ConfigFile = f.ConfigFile
	}
	if fs.Changed("envfile") {
		cfg.EnvFile = f.EnvFile
	}
	if fs.Changed("image") {
		cfg.Image = f.Image
	}
	if fs.Changed("engine") {
		cfg.Engine = f.Engine
	}
	if f.Verbose {
		cfg.LogLevel = "debug"
	}
	cfg.ExtraArgs = append([]string(nil), args...)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
