package main

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/rpggio/proposta/internal/config"
	"github.com/stretchr/testify/require"
)

func TestRun_MissingAPIKey(t *testing.T) {
	t.Setenv("PROPOSTA_CONFIG_PATH", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")

	err := run(context.Background())
	require.ErrorIs(t, err, config.ErrMissingAPIKey)
}

func TestRun_ListenFailureReturnsAndFlushesLog(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()
	port := busy.Addr().(*net.TCPAddr).Port

	logPath := filepath.Join(t.TempDir(), "proposta.log")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("PROPOSTA_SERVER_HOST", "127.0.0.1")
	t.Setenv("PROPOSTA_SERVER_PORT", strconv.Itoa(port))
	t.Setenv("PROPOSTA_LOG_PATH", logPath)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	require.Error(t, run(ctx))

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "server error")
}

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())
	return port
}

func TestRun_StopsOnCancel(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("PROPOSTA_SERVER_HOST", "127.0.0.1")
	t.Setenv("PROPOSTA_SERVER_PORT", strconv.Itoa(freePort(t)))
	t.Setenv("PROPOSTA_LOG_PATH", filepath.Join(t.TempDir(), "proposta.log"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, run(ctx))
}
