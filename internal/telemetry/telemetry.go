// Package telemetry provides the process-wide structured logger, built on
// log/slog rather than a hand-rolled printf-tag convention.
package telemetry

import (
	"log/slog"
	"os"
)

// New returns a logger that writes structured text records to stderr,
// keeping stdout free for REPL output.
func New(level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
