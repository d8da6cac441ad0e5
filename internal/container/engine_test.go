package container

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RevCBH/renovate-run/internal/testutil"
)

func newTestEngine(t *testing.T) (*CLIEngine, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	eng := NewCLIEngine(testutil.StubEngine(t))
	var stdout, stderr bytes.Buffer
	eng.Stdin = nil
	eng.Stdout = &stdout
	eng.Stderr = &stderr
	logger, _ := test.NewNullLogger()
	eng.Log = logger
	return eng, &stdout, &stderr
}

func testSpec() RunSpec {
	return RunSpec{
		ConfigFile: "test.json",
		ConfigPath: "/work/test.json",
		EnvPath:    "/work/test.env",
		Image:      "docker.io/renovate/renovate:full",
		Args:       []string{"org/repo"},
	}
}

func TestCLIEngine_ImplementsRunnerInterface(t *testing.T) {
	var _ Runner = (*CLIEngine)(nil)
}

func TestCLIEngine_Command(t *testing.T) {
	eng := NewCLIEngine("podman")

	cmd := eng.Command(testSpec())

	assert.Equal(t, "podman", cmd[0])
	assert.Equal(t, BuildArgs(testSpec()), cmd[1:])
}

func TestCLIEngine_RunRewritesOutput(t *testing.T) {
	eng, stdout, _ := newTestEngine(t)

	err := eng.Run(context.Background(), testSpec())
	require.NoError(t, err)

	out := stdout.String()
	assert.NotContains(t, out, "/usr/src/app/config.json")
	assert.Contains(t, out, "RENOVATE_CONFIG_FILE=test.json")
	assert.Contains(t, out, "/work/test.json:test.json")
	assert.Contains(t, out, "--env-file\n/work/test.env\n")
	assert.True(t, strings.HasSuffix(out, "docker.io/renovate/renovate:full\norg/repo\n"))
}

func TestCLIEngine_RunPropagatesExitCode(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	t.Setenv("STUB_ENGINE_EXIT", "3")

	err := eng.Run(context.Background(), testSpec())
	require.Error(t, err)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr), "expected ExitError, got %T", err)
	assert.Equal(t, 3, exitErr.Code)
	assert.Equal(t, "container exited with status 3", exitErr.Error())
}

func TestCLIEngine_RunMissingBinary(t *testing.T) {
	eng := NewCLIEngine("/nonexistent/engine")
	logger, _ := test.NewNullLogger()
	eng.Log = logger

	err := eng.Run(context.Background(), testSpec())
	require.Error(t, err)

	var exitErr *ExitError
	assert.False(t, errors.As(err, &exitErr))
	assert.Contains(t, err.Error(), "failed to run /nonexistent/engine")
}

func TestCLIEngine_RunLogsCommand(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	eng.Log = logger

	require.NoError(t, eng.Run(context.Background(), testSpec()))

	var sawCommand bool
	for _, entry := range hook.AllEntries() {
		if strings.HasPrefix(entry.Message, "+ ") {
			sawCommand = true
			assert.Contains(t, entry.Message, "RENOVATE_CONFIG_FILE=/usr/src/app/config.json")
		}
	}
	assert.True(t, sawCommand, "debug log should include the command line")
}

func TestCLIEngine_RunCancelStopsEngine(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	t.Setenv("STUB_ENGINE_SLEEP", "5")

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(200*time.Millisecond, cancel)

	start := time.Now()
	err := eng.Run(ctx, testSpec())
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInterrupted), "expected ErrInterrupted, got %v", err)
	assert.Less(t, elapsed, 3*time.Second, "engine should be stopped on cancel")
}

func TestCLIEngine_RunCancelAfterCleanExitStillFails(t *testing.T) {
	eng, _, _ := newTestEngine(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := eng.Run(ctx, testSpec())
	assert.True(t, errors.Is(err, ErrInterrupted), "expected ErrInterrupted, got %v", err)
}
