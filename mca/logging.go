package mca

import (
	"io"
	"log/slog"
)

// log is the package's diagnostic logger, discarding output by default.
// SetLogger lets a caller (typically a CLI's --verbose flag) point it at
// a real handler; the recursive NBT codec never logs, only the lenient
// region reader's skip path in region.go.
var log = slog.New(slog.NewTextHandler(io.Discard, nil))

// SetLogger replaces the package's diagnostic logger. Passing nil
// restores the default discarding logger.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	log = l
}
