// Package logging builds the charmbracelet loggers used across the game.
package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Prefix is attached to every log line.
const Prefix = "snake"

// New creates a logger writing to w at the named level.
// An empty level means warn.
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl := log.WarnLevel
	if level != "" {
		parsed, err := log.ParseLevel(strings.ToLower(level))
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		lvl = parsed
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           lvl,
	}), nil
}

// stderr receives held log output when a logger opened without a file closes.
var stderr io.Writer = os.Stderr

// Open creates a logger for the given file path. With an empty path the
// log lines are held in memory and written to stderr by the close function,
// so they never land on top of a running game's frames. The returned close
// function must be called when logging is done.
func Open(path, level string) (*log.Logger, func() error, error) {
	if path == "" {
		held := &heldOutput{}
		logger, err := New(held, level)
		if err != nil {
			return nil, nil, err
		}
		return logger, held.flush, nil
	}

	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("logging: create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: open log file: %w", err)
	}

	logger, err := New(f, level)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f.Close, nil
}

// heldOutput buffers log output until flush. The logger serializes writes.
type heldOutput struct {
	buf bytes.Buffer
}

func (h *heldOutput) Write(p []byte) (int, error) {
	return h.buf.Write(p)
}

func (h *heldOutput) flush() error {
	if h.buf.Len() == 0 {
		return nil
	}
	if _, err := h.buf.WriteTo(stderr); err != nil {
		return fmt.Errorf("logging: flush held output: %w", err)
	}
	return nil
}
