package testutil

import (
	"path/filepath"
	"testing"
)

var runEnvVars = []string{
	"RENOVATE_RUN_CONFIGFILE",
	"RENOVATE_RUN_ENVFILE",
	"RENOVATE_RUN_IMAGE",
	"RENOVATE_RUN_ENGINE",
	"RENOVATE_RUN_LOG_LEVEL",
}

// IsolateRunEnv clears the variables that override run configuration and
// points the user defaults file at an empty temp location, so the host's
// settings cannot leak into a test.
func IsolateRunEnv(t *testing.T) {
	t.Helper()
	for _, key := range runEnvVars {
		t.Setenv(key, "")
	}
	t.Setenv("RENOVATE_RUN_CONFIG", filepath.Join(t.TempDir(), "config.yaml"))
}
