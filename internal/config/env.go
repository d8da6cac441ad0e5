package config

import "os"

// envOverrides maps environment variables to config field setters.
var envOverrides = []struct {
	envVar string
	apply  func(*RunConfig, string)
}{
	{
		envVar: "RENOVATE_RUN_CONFIGFILE",
		apply: func(c *RunConfig, v string) {
			c.ConfigFile = v
		},
	},
	{
		envVar: "RENOVATE_RUN_ENVFILE",
		apply: func(c *RunConfig, v string) {
			c.EnvFile = v
		},
	},
	{
		envVar: "RENOVATE_RUN_IMAGE",
		apply: func(c *RunConfig, v string) {
			c.Image = v
		},
	},
	{
		envVar: "RENOVATE_RUN_ENGINE",
		apply: func(c *RunConfig, v string) {
			c.Engine = v
		},
	},
	{
		envVar: "RENOVATE_RUN_LOG_LEVEL",
		apply: func(c *RunConfig, v string) {
			c.LogLevel = v
		},
	},
}

// applyEnvOverrides modifies config in place with environment variable values.
func applyEnvOverrides(cfg *RunConfig) {
	for _, override := range envOverrides {
		if val := os.Getenv(override.envVar); val != "" {
			override.apply(cfg, val)
		}
	}
}
