package container

import (
	"errors"
	"fmt"
	"os/exec"
)

// AutoEngine asks LookupEngine to pick whichever runtime is installed.
const AutoEngine = "auto"

// ErrNoRuntime is returned when no container runtime is found.
var ErrNoRuntime = errors.New("no container runtime found (need docker or podman)")

// ErrEngineNotFound is returned when the requested engine binary is not on PATH.
var ErrEngineNotFound = errors.New("container engine not found")

// DetectRuntime finds an available container runtime.
// Checks docker first, then podman. Verifies the binary actually works
// by running `<runtime> version`.
func DetectRuntime() (string, error) {
	for _, bin := range []string{"docker", "podman"} {
		if _, err := exec.LookPath(bin); err != nil {
			continue
		}
		cmd := exec.Command(bin, "version")
		if err := cmd.Run(); err != nil {
			continue
		}
		return bin, nil
	}
	return "", ErrNoRuntime
}

// LookupEngine resolves the engine name to use. "auto" defers to
// DetectRuntime; any other name must be an executable on PATH (or a path
// to one).
func LookupEngine(name string) (string, error) {
	if name == AutoEngine {
		return DetectRuntime()
	}
	if _, err := exec.LookPath(name); err != nil {
		return "", fmt.Errorf("%w: %s", ErrEngineNotFound, name)
	}
	return name, nil
}
