package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yahna8/store-and-inventory-microservice/internal/config"
)

func TestCleanupLogs_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2026-01-%02d_00-00-00", i+1))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o600))

	cleanupLogs(dir, 9)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Len(t, names, 10)
	assert.Contains(t, names, "notes.txt")
	assert.NotContains(t, names, "session_2026-01-01_00-00-00.log")
	assert.Contains(t, names, "session_2026-01-12_00-00-00.log")
}

func TestSetupLogger_StdoutOnly(t *testing.T) {
	f, err := SetupLogger(&config.Config{LogLevel: "info", LogFormat: "json", Environment: "test"})
	require.NoError(t, err)
	assert.Nil(t, f)
}

func TestSetupLogger_WritesSessionFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	f, err := SetupLogger(&config.Config{LogLevel: "debug", LogFormat: "text", LogDir: dir})
	require.NoError(t, err)
	require.NotNil(t, f)
	t.Cleanup(func() { _ = f.Close() })

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), LogMsgLoggingInitialized)
}

type fakeWorker struct {
	stopped bool
	err     error
}

func (w *fakeWorker) Shutdown(context.Context) error {
	w.stopped = true
	return w.err
}

type fakePool struct{ closed bool }

func (p *fakePool) Ping(context.Context) error { return nil }
func (p *fakePool) Close() { p.closed = true }

func TestGracefulShutdown_StopsEverything(t *testing.T) {
	pool := &fakePool{}
	sweeper := &fakeWorker{}
	broken := &fakeWorker{err: errors.New("stuck")}

	components := NewShutdownComponents(nil, pool)
	components.AddWorker("sweeper", sweeper)
	components.AddWorker("broken", broken)

	GracefulShutdown(t.Context(), components)

	assert.True(t, sweeper.stopped)
	assert.True(t, broken.stopped)
	assert.True(t, pool.closed, "pool is closed even when a worker fails")
}
