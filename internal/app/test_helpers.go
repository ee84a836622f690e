package app

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/buildgrid/internal/registry"
	"github.com/specialistvlad/buildgrid/internal/testutil"
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

// SetupAppTest creates a new app instance for system testing.
func SetupAppTest(t *testing.T, cfg *Config, modules ...registry.Module) (*App, *SafeBuffer) {
	t.Helper()

	out := &SafeBuffer{}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	testApp := NewApp(out, cfg, modules...)

	t.Cleanup(func() {
		if os.Getenv("BUILDGRID_TEST_LOGS") == "true" {
			t.Logf("--- Full Output for %s ---\n%s", t.Name(), out.String())
		}
	})

	return testApp, out
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	LogOutput string
	Err       error
	App       *App
}

// RunIntegrationTest writes files into a temporary directory, then loads
// entry (relative to that directory) through a fresh app. Panics raised while
// registering modules are reported through Err.
func RunIntegrationTest(t *testing.T, files map[string]string, entry string, modules ...registry.Module) *HarnessResult {
	t.Helper()

	dir := testutil.WriteFiles(t, files)
	cfg := &Config{BuildFile: filepath.Join(dir, entry), LogLevel: "debug", LogFormat: "text"}

	var (
		testApp  *App
		out      *SafeBuffer
		panicErr any
	)
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		testApp, out = SetupAppTest(t, cfg, modules...)
	}()
	if panicErr != nil {
		return &HarnessResult{Err: fmt.Errorf("application startup panicked | %v", panicErr)}
	}

	err := testApp.LoadBuildFile()
	return &HarnessResult{
		LogOutput: out.String(),
		Err:       err,
		App:       testApp,
	}
}
