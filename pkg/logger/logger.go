package logger

import (
	"log/slog"
	"os"
)

var Log *slog.Logger

// Init installs the process-wide JSON logger. Level is configurable so local
// runs can keep debug output without flooding production logs.
func Init(level slog.Level) {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	Log = slog.New(handler)
}

// L returns the configured logger, falling back to slog's default so pure
// helpers (statistics date parsing, exporters) can log without wiring.
func L() *slog.Logger {
	if Log != nil {
		return Log
	}
	return slog.Default()
}
