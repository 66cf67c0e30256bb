package logging

import (
	"log/slog"
	"os"
)

// Setup configures the global logger. Components log through the package-level
// slog API; the service attribute tags every record.
func Setup(serviceName string) *slog.Logger {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	logger := slog.New(handler).With("service", serviceName)
	slog.SetDefault(logger)
	return logger
}
