package cli

import (
	"errors"

	"github.com/RevCBH/renovate-run/internal/container"
)

// UsageError is a command-line error that should be followed by usage text.
type UsageError struct {
	Err   error
	Usage string
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by the CLI to a process exit code.
// A failed container run keeps the container's own status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *container.ExitError
	if errors.As(err, &exitErr) && exitErr.Code > 0 {
		return exitErr.Code
	}
	return 1
}
