package app

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_StopsOnCancel(t *testing.T) {
	cfg, logs := testConfig(t)

	application, err := NewApplication(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- application.Run(ctx) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after the context was cancelled")
	}
	assert.Contains(t, logs.String(), "Diagnostics server listening")
}

func TestRun_ListenError(t *testing.T) {
	blocker, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer blocker.Close()

	cfg, _ := testConfig(t)
	cfg.WirecheckConfig.Server.Port = blocker.Addr().(*net.TCPAddr).Port

	application, err := NewApplication(cfg)
	require.NoError(t, err)

	err = application.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}

func TestRun_AppliesLoggingLevelChanges(t *testing.T) {
	cfg, logs := testConfig(t)

	application, err := NewApplication(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- application.Run(ctx) }()

	require.Eventually(t, func() bool {
		return strings.Contains(logs.String(), "Watching")
	}, 5*time.Second, 10*time.Millisecond)

	path := filepath.Join(cfg.ConfigPath, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0644))

	require.Eventually(t, func() bool {
		return strings.Contains(logs.String(), `Applied logging level \"debug\"`)
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}
