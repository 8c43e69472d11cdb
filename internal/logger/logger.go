package logger

import (
	"io"
	"log/slog"
	"os"
)

const serviceName = "orderboard"

// New creates a preconfigured slog.Logger writing JSON to stdout.
func New() *slog.Logger {
	return newLogger(os.Stdout)
}

func newLogger(w io.Writer) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(handler).With(slog.String("service", serviceName))
}
