package main

import (
	"log/slog"
	"os"

	"github.com/phsym/console-slog"
)

// initLogger builds the process-wide structured logger, writing
// human-readable colored output to stderr. Adapted from
// x-ipcviewer's InitLogger: debug is opt-in via verbose (main.go
// sets it when DWM_DEBUG is non-empty), everything else stays at info.
func initLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := console.NewHandler(os.Stderr, &console.HandlerOptions{
		Level: level,
	})
	return slog.New(handler)
}
