// Package testutil provides the shared harness used by package and
// integration tests to run complete scenarios through the App.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/fleetgrid/internal/app"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of a scenario run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	Result    *app.Result
}

// RunScenarioTest writes files into a temporary directory and runs the
// scenario found at entry, a path relative to that directory. An empty entry
// runs the built-in scenario.
func RunScenarioTest(t *testing.T, files map[string]string, entry string) *HarnessResult {
	t.Helper()
	return RunScenarioTestWithContext(context.Background(), t, files, entry)
}

// RunScenarioTestWithContext is RunScenarioTest with a caller-provided context.
func RunScenarioTestWithContext(ctx context.Context, t *testing.T, files map[string]string, entry string) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	cfg := &app.Config{LogLevel: "debug", LogFormat: "text"}
	if entry != "" {
		cfg.ScenarioPath = filepath.Join(tmpDir, entry)
	}

	out := &SafeBuffer{}
	logs := &SafeBuffer{}
	res := &HarnessResult{}

	a, err := app.NewApp(out, logs, cfg, app.LoaderFor(cfg.ScenarioPath))
	if err == nil {
		res.Result, err = a.Run(ctx)
	}
	res.Err = err
	res.Output = out.String()
	res.LogOutput = logs.String()

	if os.Getenv("FLEETGRID_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), res.LogOutput)
	}
	return res
}
