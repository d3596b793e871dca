// Package logger holds the CLI's shared slog.Logger, discarding output
// unless enabled by a command-line flag.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// L is the global logger instance. It discards all output by default.
// Call Init to enable logging to stderr.
var L *slog.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Options configures logger initialization.
type Options struct {
	Enabled bool       // If false, all logging is discarded.
	Level   slog.Level // Minimum log level. Default: LevelInfo when enabled.
}

// Init configures logging. Call from main() before any log calls.
func Init(opts Options) {
	if !opts.Enabled {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}
	L = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: opts.Level}))
}

func Debug(msg string, args ...any) { L.Debug(msg, args...) }
func Info(msg string, args ...any)  { L.Info(msg, args...) }
func Warn(msg string, args ...any)  { L.Warn(msg, args...) }
func Error(msg string, args ...any) { L.Error(msg, args...) }
