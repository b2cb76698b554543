package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// newLogger returns a timestamped logger writing to w at the global level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           logLevel,
	})
}

// openTUILogger logs to ~/.arcade/arcade.log, since Bubble Tea owns the
// terminal while a game runs. The returned closer must be called on exit.
// If the file cannot be opened, logs are discarded.
func openTUILogger() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return newLogger(io.Discard, "arcade"), func() {}
	}

	dir := filepath.Join(home, ".arcade")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newLogger(io.Discard, "arcade"), func() {}
	}

	f, err := os.OpenFile(filepath.Join(dir, "arcade.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return newLogger(io.Discard, "arcade"), func() {}
	}

	return newLogger(f, "arcade"), func() { f.Close() }
}
