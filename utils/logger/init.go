package logger

import (
	"log/slog"
	"os"
	"strings"
)

var Logger *slog.Logger

func init() {
	// Usable before InitLogger runs, e.g. in tests.
	Logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// Options controls the process-wide logger.
type Options struct {
	Level       string
	Format      string
	OTelEnabled bool
	ServiceName string
}

func InitLogger() *slog.Logger {
	return InitLoggerWithOptions(Options{Level: "info", Format: "text"})
}

// InitLoggerWithOptions builds the logger from configuration and installs it as the slog default.
func InitLoggerWithOptions(opts Options) *slog.Logger {
	level := ParseLevel(opts.Level)

	var handler slog.Handler
	if opts.OTelEnabled {
		handler = NewMultiHandler(stdoutHandler(opts.Format, level), NewOTelHandler(opts.ServiceName))
	} else {
		handler = stdoutHandler(opts.Format, level)
	}

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	Logger.Info("Logger initialized", "level", level.String(), "format", opts.Format, "otel", opts.OTelEnabled)

	return Logger
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

func stdoutHandler(format string, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if format == "text" {
		return slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.NewJSONHandler(os.Stdout, opts)
}
