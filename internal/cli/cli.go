package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/RevCBH/renovate-run/internal/container"
)

// EngineFactory builds the Runner for an engine name.
type EngineFactory func(engine string, stdout, stderr io.Writer, log logrus.FieldLogger) (container.Runner, error)

// App represents the CLI application with all wired dependencies
type App struct {
	// Root command
	rootCmd *cobra.Command

	// Flag values
	flags runFlags

	// Runtime dependencies
	log          *logrus.Logger
	newEngine    EngineFactory
	startSignals func(*SignalHandler)

	// Version information
	versionInfo VersionInfo
}

// VersionInfo holds build-time version details
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// New creates a new CLI application
func New() *App {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	app := &App{
		log:          log,
		newEngine:    defaultEngineFactory,
		startSignals: (*SignalHandler).Start,
	}
	app.setupRootCmd()
	return app
}

// Execute runs the CLI application with os.Args
func (a *App) Execute() error {
	return a.rootCmd.Execute()
}

// Run executes the CLI with args, reports any error on stderr, and returns
// the process exit code.
func (a *App) Run(args []string) int {
	if args == nil {
		// cobra falls back to os.Args for nil
		args = []string{}
	}
	a.rootCmd.SetArgs(args)

	err := a.Execute()
	if err == nil {
		return 0
	}

	stderr := a.rootCmd.ErrOrStderr()
	var exitErr *container.ExitError
	if !errors.As(err, &exitErr) {
		// The container already reported its own failure
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprint(stderr, usageErr.Usage)
	}
	return ExitCode(err)
}

// SetOutput redirects the CLI's and the container's stdout and stderr.
func (a *App) SetOutput(stdout, stderr io.Writer) {
	a.rootCmd.SetOut(stdout)
	a.rootCmd.SetErr(stderr)
	a.log.SetOutput(stderr)
}

// SetVersion sets the version string reported by --version
func (a *App) SetVersion(version, commit, date string) {
	a.versionInfo = VersionInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	a.rootCmd.Version = version
	a.rootCmd.SetVersionTemplate(versionTemplate(a))
}

// setupRootCmd configures the root Cobra command
func (a *App) setupRootCmd() {
	a.rootCmd = &cobra.Command{
		Use:   "renovate-run [flags] [--] [renovate args...]",
		Short: "Run Renovate in a container with local config and env files",
		Long: `renovate-run launches the Renovate container image with a local config
file bind-mounted and a local env file supplying credentials.

Missing config and env files are created from starter templates. Arguments
that are not flags of renovate-run are passed to Renovate unchanged; put
them after -- if they start with a dash.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRenovate(cmd, args)
		},
	}

	a.flags.register(a.rootCmd.Flags())

	a.rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{Err: err, Usage: cmd.UsageString()}
	})

	a.rootCmd.Version = "dev"
	a.rootCmd.SetVersionTemplate(versionTemplate(a))
}
