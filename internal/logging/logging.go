// Package logging builds the application slog logger.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/rpggio/proposta/internal/config"
)

// New creates a logger for cfg. Output goes to cfg.Path when set, otherwise
// to fallback. The returned closer releases the log file, if any.
func New(cfg config.LogConfig, fallback io.Writer) (*slog.Logger, io.Closer, error) {
	out := fallback
	var closer io.Closer = nopCloser{}
	if cfg.Path != "" {
		w, err := OpenFile(cfg.Path, DefaultMaxBytes, DefaultKeepBytes)
		if err != nil {
			return nil, nil, err
		}
		out, closer = w, w
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}
	return slog.New(handler), closer, nil
}

// ParseLevel maps a config level name to a slog level; unknown names are info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
