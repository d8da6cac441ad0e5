package config

import (
	"testing"
)

// clearEnv blanks every override variable so the host environment
// cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, o := range envOverrides {
		t.Setenv(o.envVar, "")
	}
}

func TestEnvOverrides_Image(t *testing.T) {
	clearEnv(t)
	cfg := &RunConfig{Image: "original"}
	t.Setenv("RENOVATE_RUN_IMAGE", "ghcr.io/renovatebot/renovate:38")

	applyEnvOverrides(cfg)

	if cfg.Image != "ghcr.io/renovatebot/renovate:38" {
		t.Errorf("expected Image to be overridden, got '%s'", cfg.Image)
	}
}

func TestEnvOverrides_Engine(t *testing.T) {
	clearEnv(t)
	cfg := &RunConfig{Engine: "docker"}
	t.Setenv("RENOVATE_RUN_ENGINE", "podman")

	applyEnvOverrides(cfg)

	if cfg.Engine != "podman" {
		t.Errorf("expected Engine to be 'podman', got '%s'", cfg.Engine)
	}
}

func TestEnvOverrides_EmptyNoChange(t *testing.T) {
	clearEnv(t)
	cfg := &RunConfig{
		ConfigFile: "original.json",
		EnvFile:    "original.env",
		Image:      "original-image",
		Engine:     "original-engine",
		LogLevel:   "original-level",
	}

	applyEnvOverrides(cfg)

	if cfg.ConfigFile != "original.json" {
		t.Errorf("expected ConfigFile to remain 'original.json', got '%s'", cfg.ConfigFile)
	}
	if cfg.EnvFile != "original.env" {
		t.Errorf("expected EnvFile to remain 'original.env', got '%s'", cfg.EnvFile)
	}
	if cfg.Image != "original-image" {
		t.Errorf("expected Image to remain 'original-image', got '%s'", cfg.Image)
	}
	if cfg.Engine != "original-engine" {
		t.Errorf("expected Engine to remain 'original-engine', got '%s'", cfg.Engine)
	}
	if cfg.LogLevel != "original-level" {
		t.Errorf("expected LogLevel to remain 'original-level', got '%s'", cfg.LogLevel)
	}
}

func TestEnvOverrides_MultipleVars(t *testing.T) {
	clearEnv(t)
	cfg := DefaultRunConfig()
	t.Setenv("RENOVATE_RUN_CONFIGFILE", "ci/renovate.json5")
	t.Setenv("RENOVATE_RUN_ENVFILE", "ci/renovate.env")
	t.Setenv("RENOVATE_RUN_LOG_LEVEL", "debug")

	applyEnvOverrides(cfg)

	if cfg.ConfigFile != "ci/renovate.json5" {
		t.Errorf("expected ConfigFile to be 'ci/renovate.json5', got '%s'", cfg.ConfigFile)
	}
	if cfg.EnvFile != "ci/renovate.env" {
		t.Errorf("expected EnvFile to be 'ci/renovate.env', got '%s'", cfg.EnvFile)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected LogLevel to be 'debug', got '%s'", cfg.LogLevel)
	}
}
