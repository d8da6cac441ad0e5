package container

import "context"

// Runner runs Renovate in a container.
type Runner interface {
	// Run starts the container described by spec and blocks until it exits.
	// A non-zero container exit is reported as *ExitError.
	Run(ctx context.Context, spec RunSpec) error

	// Command returns the full command line Run would execute.
	Command(spec RunSpec) []string
}
