package container

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
)

// stopGracePeriod bounds how long a cancelled engine may take to exit
// before it is killed.
const stopGracePeriod = 10 * time.Second

// ErrInterrupted is returned when the run's context is cancelled before the
// engine exits on its own.
var ErrInterrupted = errors.New("container run interrupted")

// ExitError reports a container run that finished with a non-zero status.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("container exited with status %d", e.Code)
}

// CLIEngine implements Runner using the docker/podman CLI.
type CLIEngine struct {
	binary string // "docker", "podman", ...

	// Stdin, Stdout and Stderr default to the process's own streams
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Log logrus.FieldLogger
}

// NewCLIEngine creates a Runner using the specified engine binary.
// Use LookupEngine to resolve and verify the binary first.
func NewCLIEngine(binary string) *CLIEngine {
	return &CLIEngine{
		binary: binary,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Log:    logrus.StandardLogger(),
	}
}

// Command returns the full command line Run would execute.
func (e *CLIEngine) Command(spec RunSpec) []string {
	return append([]string{e.binary}, BuildArgs(spec)...)
}

// Run starts the Renovate container and waits for it to exit. Stdout is
// rewritten so the internal config path reads as the user's own path.
func (e *CLIEngine) Run(ctx context.Context, spec RunSpec) error {
	args := BuildArgs(spec)
	internal := spec.InternalConfigPath()

	e.Log.WithFields(logrus.Fields{
		"engine":  e.binary,
		"image":   spec.Image,
		"config":  spec.ConfigPath,
		"envfile": spec.EnvPath,
		"mount":   internal,
	}).Debug("starting renovate container")
	e.Log.Debugf("+ %s %s", e.binary, strings.Join(args, " "))

	stdout := NewPathRewriter(e.Stdout, internal, spec.ConfigFile)

	cmd := exec.CommandContext(ctx, e.binary, args...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = e.Stderr
	// On cancellation let the engine stop its container before it is killed
	cmd.Cancel = func() error {
		return cmd.Process.Signal(syscall.SIGTERM)
	}
	cmd.WaitDelay = stopGracePeriod

	runErr := cmd.Run()
	if err := stdout.Close(); err != nil && runErr == nil {
		runErr = fmt.Errorf("write output: %w", err)
	}
	if ctx.Err() != nil {
		// A stopped run never counts as a success, whatever the engine reported
		e.Log.WithError(runErr).Debug("renovate container interrupted")
		return fmt.Errorf("%w: %v", ErrInterrupted, context.Cause(ctx))
	}
	if runErr == nil {
		e.Log.Debug("renovate container finished")
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			// Killed by a signal
			code = 1
		}
		e.Log.WithField("code", code).Debug("renovate container failed")
		return &ExitError{Code: code}
	}
	return fmt.Errorf("failed to run %s: %w", e.binary, runErr)
}

// Verify CLIEngine implements Runner interface
var _ Runner = (*CLIEngine)(nil)
