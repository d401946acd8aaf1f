package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"pouchesitaly/config"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps slog.Logger so handlers can log structured fields
// without touching slog directly.
type Logger struct {
	*slog.Logger
}

var logger *Logger

// Init builds the global logger from LOG_LEVEL / LOG_FORMAT / LOG_FILE.
// With LOG_FILE set, output rotates via lumberjack; otherwise stdout.
func Init() error {
	var (
		handler slog.Handler
		level   slog.Level
		writer  io.Writer
	)

	switch config.Config("LOG_LEVEL") {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	if filePath := config.Config("LOG_FILE"); filePath != "" {
		if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
			return err
		}
		writer = &lumberjack.Logger{
			Filename:   filePath,
			MaxSize:    50, // MB
			MaxBackups: 5,
			MaxAge:     28,
			Compress:   true,
		}
	} else {
		writer = os.Stdout
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	if config.Config("LOG_FORMAT") == "text" {
		handler = slog.NewTextHandler(writer, opts)
	} else {
		handler = slog.NewJSONHandler(writer, opts)
	}

	logger = &Logger{Logger: slog.New(handler)}
	return nil
}

// GetLogger returns the global logger, falling back to slog.Default
// so packages can log before Init runs (tests, schedulers).
func GetLogger() *Logger {
	if logger == nil {
		return &Logger{Logger: slog.Default()}
	}
	return logger
}

func Debug(msg string, args ...any) {
	GetLogger().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	GetLogger().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	GetLogger().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	GetLogger().Error(msg, args...)
}

func InfoContext(ctx context.Context, msg string, args ...any) {
	GetLogger().InfoContext(ctx, msg, args...)
}

func ErrorContext(ctx context.Context, msg string, args ...any) {
	GetLogger().ErrorContext(ctx, msg, args...)
}

// With creates a logger carrying fixed fields (e.g. request_id).
func With(args ...any) *Logger {
	return &Logger{Logger: GetLogger().With(args...)}
}
