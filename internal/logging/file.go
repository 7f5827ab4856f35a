package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

const (
	DefaultMaxBytes  = 6 * 1024 * 1024
	DefaultKeepBytes = 5 * 1024 * 1024
)

// FileWriter appends to a log file and, once it grows past maxBytes, cuts
// it down to its newest keepBytes.
type FileWriter struct {
	mu        sync.Mutex
	file      *os.File
	maxBytes  int64
	keepBytes int64
}

// OpenFile opens (or creates) the log file at path.
func OpenFile(path string, maxBytes, keepBytes int64) (*FileWriter, error) {
	if keepBytes > maxBytes {
		return nil, fmt.Errorf("log keep size %d exceeds max size %d", keepBytes, maxBytes)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	w := &FileWriter{file: file, maxBytes: maxBytes, keepBytes: keepBytes}
	if err := w.trim(); err != nil {
		_ = file.Close()
		return nil, err
	}
	return w, nil
}

func (w *FileWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	n, err := w.file.Write(p)
	if err != nil {
		return n, err
	}
	return n, w.trim()
}

// Close closes the underlying file.
func (w *FileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.Close()
}

func (w *FileWriter) trim() error {
	info, err := w.file.Stat()
	if err != nil {
		return err
	}
	size := info.Size()
	if size <= w.maxBytes {
		return nil
	}

	tail := make([]byte, w.keepBytes)
	n, err := w.file.ReadAt(tail, size-w.keepBytes)
	if err != nil && err != io.EOF {
		return err
	}
	if err := w.file.Truncate(0); err != nil {
		return err
	}
	// O_APPEND writes always land at the end, which is now offset 0.
	_, err = w.file.Write(tail[:n])
	return err
}
