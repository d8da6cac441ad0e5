package config

import (
	"os"
	"path/filepath"
)

// UserConfigEnv names the variable that points at an alternative defaults file.
const UserConfigEnv = "RENOVATE_RUN_CONFIG"

// UserConfigPath returns the location of the user defaults file:
// $RENOVATE_RUN_CONFIG, else $XDG_CONFIG_HOME/renovate-run/config.yaml,
// else ~/.config/renovate-run/config.yaml.
func UserConfigPath() (string, error) {
	if p := os.Getenv(UserConfigEnv); p != "" {
		return p, nil
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "renovate-run", "config.yaml"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "renovate-run", "config.yaml"), nil
}
