package main

import (
	"log/slog"
	"os"
	"path/filepath"
)

// logCloser closes the current log file, if any.
var logCloser = func() error { return nil }

// newLogger returns a text logger on stderr, or a JSON logger appending to
// path when one is set. verbose lowers the level to debug. A previously
// opened log file is closed.
func newLogger(path string, verbose bool) (*slog.Logger, error) {
	if err := closeLog(); err != nil {
		return nil, err
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if path == "" {
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	logCloser = f.Close
	return slog.New(slog.NewJSONHandler(f, opts)), nil
}

func closeLog() error {
	err := logCloser()
	logCloser = func() error { return nil }
	return err
}
