package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/RevCBH/renovate-run/internal/config"
	"github.com/RevCBH/renovate-run/internal/container"
	"github.com/RevCBH/renovate-run/internal/scaffold"
)

// defaultEngineFactory verifies the engine is installed and wraps it in a CLIEngine.
func defaultEngineFactory(engine string, stdout, stderr io.Writer, log logrus.FieldLogger) (container.Runner, error) {
	binary, err := container.LookupEngine(engine)
	if err != nil {
		return nil, err
	}
	eng := container.NewCLIEngine(binary)
	eng.Stdout = stdout
	eng.Stderr = stderr
	eng.Log = log
	return eng, nil
}

// runRenovate is the root command: resolve config, ensure files, run the container.
func (a *App) runRenovate(cmd *cobra.Command, args []string) error {
	base, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg, err := a.flags.resolveConfig(base, cmd.Flags(), args)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := a.configureLogging(cfg.LogLevel); err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{
		"configfile": cfg.ConfigFile,
		"envfile":    cfg.EnvFile,
		"image":      cfg.Image,
		"engine":     cfg.Engine,
		"args":       cfg.ExtraArgs,
	}).Debug("resolved run configuration")

	notices := newNotifier(cmd.ErrOrStderr())

	configPath, created, err := scaffold.EnsureConfigFile(cfg.ConfigFile)
	if err != nil {
		return fmt.Errorf("failed to prepare config file: %w", err)
	}
	if created {
		notices.Created(cfg.ConfigFile, "Renovate config")
	}

	envPath, created, err := scaffold.EnsureEnvFile(cfg.EnvFile)
	if err != nil {
		return fmt.Errorf("failed to prepare env file: %w", err)
	}
	if created {
		notices.Created(cfg.EnvFile, "env file; add RENOVATE_TOKEN before running against a real platform")
	}

	spec := container.RunSpec{
		ConfigFile: cfg.ConfigFile,
		ConfigPath: configPath,
		EnvPath:    envPath,
		Image:      cfg.Image,
		Args:       cfg.ExtraArgs,
	}

	runner, err := a.newEngine(cfg.Engine, cmd.OutOrStdout(), cmd.ErrOrStderr(), a.log)
	if err != nil {
		return err
	}

	if a.flags.DryRun {
		fmt.Fprintln(cmd.OutOrStdout(), shellJoin(runner.Command(spec)))
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Ctrl-C reaches the engine through the process group; a signal sent to
	// this process alone is forwarded by cancelling the run.
	handler := NewSignalHandler(cancel)
	handler.OnShutdown(func() {
		a.log.Info("signal received, stopping container")
	})
	a.startSignals(handler)
	defer handler.Stop()

	return runner.Run(ctx, spec)
}

func (a *App) configureLogging(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	a.log.SetLevel(lvl)
	return nil
}

// shellJoin renders args as a single shell-safe line.
func shellJoin(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		quoted[i] = shellQuote(arg)
	}
	return strings.Join(quoted, " ")
}

func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if strings.IndexFunc(s, needsQuoting) < 0 {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func needsQuoting(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	case strings.ContainsRune("-_./:=@,+%", r):
		return false
	}
	return true
}
