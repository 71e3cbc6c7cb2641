// Package testutil provides a harness for integration tests that run whole
// studies against a throwaway directory tree.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/specialistvlad/statgrid/internal/app"
	"github.com/specialistvlad/statgrid/internal/registry"
	"github.com/specialistvlad/statgrid/internal/report"
	"github.com/stretchr/testify/require"
)

// RootToken in a file's content is replaced by the test's root directory,
// so study files can point a local source at fixtures.
const RootToken = "{{root}}"

// StudiesDir is the directory, relative to the root, that the app loads.
const StudiesDir = "studies"

// SafeBuffer is a thread-safe buffer for capturing output in tests.
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

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Root      string
	Output    string
	LogOutput string
	Err       error
	App       *app.App
}

// Options tune a harness run. Zero values mean text output and four workers.
type Options struct {
	Format    report.Format
	Workers   int
	StudyName string
	Modules   []registry.Module
}

// RunIntegrationTest runs with default options and a background context.
func RunIntegrationTest(t *testing.T, files map[string]string, modules ...registry.Module) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, Options{Modules: modules})
}

// RunIntegrationTestWithContext writes files below a fresh root directory,
// loads everything under StudiesDir and runs it. Startup errors and run
// errors both end up in Err.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, opts Options) *HarnessResult {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, StudiesDir), 0o755))

	// Test paths are relative (e.g. "results/a/stats.txt") and create their
	// own subdirectories.
	for name, content := range files {
		filePath := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		content = strings.ReplaceAll(content, RootToken, root)
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}

	if opts.Format == "" {
		opts.Format = report.FormatText
	}
	if opts.Workers == 0 {
		opts.Workers = 4
	}
	cfg, err := app.NewConfig(app.Config{
		StudyPath:    filepath.Join(root, StudiesDir),
		StudyName:    opts.StudyName,
		OutputFormat: opts.Format,
		LogLevel:     "debug",
		LogFormat:    "text",
		WorkerCount:  opts.Workers,
	})
	require.NoError(t, err)

	out := &SafeBuffer{}
	logBuffer := &SafeBuffer{}
	modules := append(app.CoreModules(), opts.Modules...)

	testApp, err := app.NewApp(out, logBuffer, cfg, nil, modules...)
	if err == nil {
		err = testApp.Run(ctx)
	}

	if os.Getenv("STATGRID_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		Root:      root,
		Output:    out.String(),
		LogOutput: logBuffer.String(),
		Err:       err,
		App:       testApp,
	}
}
