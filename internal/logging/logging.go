package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Init configures the process-wide slog logger. Output is text unless
// SUPPLYCHAIN_JSON_LOG=1/true/json; level comes from SUPPLYCHAIN_LOG_LEVEL.
func Init(service string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: levelFromEnv()}
	var handler slog.Handler
	if jsonMode() {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler).With("service", service)
	slog.SetDefault(logger)
	return logger
}

func jsonMode() bool {
	switch strings.ToLower(os.Getenv("SUPPLYCHAIN_JSON_LOG")) {
	case "1", "true", "json":
		return true
	default:
		return false
	}
}

func levelFromEnv() slog.Leveler {
	switch strings.ToLower(os.Getenv("SUPPLYCHAIN_LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
