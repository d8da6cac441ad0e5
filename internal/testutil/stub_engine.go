package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// stubEngineScript prints each argument on its own line, then, when
// $STUB_ENGINE_SLEEP is set, replaces itself with `sleep` for that many
// seconds. It exits with $STUB_ENGINE_EXIT (default 0).
const stubEngineScript = `#!/bin/sh
for arg in "$@"; do
  echo "$arg"
done
if [ -n "$STUB_ENGINE_SLEEP" ]; then
  exec sleep "$STUB_ENGINE_SLEEP"
fi
exit ${STUB_ENGINE_EXIT:-0}
`

// StubEngine writes an executable container engine stand-in that echoes
// its arguments, and returns its path. Skips on platforms without /bin/sh.
func StubEngine(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub engine requires /bin/sh")
	}

	path := filepath.Join(t.TempDir(), "stub-engine")
	if err := os.WriteFile(path, []byte(stubEngineScript), 0755); err != nil {
		t.Fatalf("failed to write stub engine: %v", err)
	}
	return path
}
