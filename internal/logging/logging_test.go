package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpggio/proposta/internal/config"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	require.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	require.Equal(t, slog.LevelError, ParseLevel("error"))
	require.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNew_JSONToFallback(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := New(config.LogConfig{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)
	defer closer.Close()

	logger.Debug("hidden")
	logger.Info("shown", "section", "introduction")
	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, `"section":"introduction"`)
}

func TestFileWriter_KeepsNewestTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "proposta.log")
	w, err := OpenFile(path, 20, 10)
	require.NoError(t, err)

	_, err = w.Write([]byte(strings.Repeat("a", 15)))
	require.NoError(t, err)
	_, err = w.Write([]byte("0123456789"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "0123456789", string(data))
}

func TestOpenFile_RejectsKeepAboveMax(t *testing.T) {
	_, err := OpenFile(filepath.Join(t.TempDir(), "x.log"), 10, 20)
	require.Error(t, err)
}
