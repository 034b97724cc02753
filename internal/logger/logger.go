// Package logger configures the service's slog logger and carries a request scoped
// logger through the request context.
//
// dev and test environments log to the console using tint, staging and prod log JSON.
package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// LevelNone disables logging. It is above every level the service logs at.
const LevelNone = slog.Level(12)

// InitLogger creates the application logger and installs it as the slog default.
func InitLogger(level slog.Level, environment string) *slog.Logger {
	var handler slog.Handler

	switch environment {
	case "prod", "staging":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	default:
		handler = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    environment == "test",
		})
	}

	appLogger := slog.New(handler)
	slog.SetDefault(appLogger)
	return appLogger
}

// ParseLogLevel maps a LOG_LEVEL value to a slog level.
// Unrecognised values fall back to info; "none" switches logging off.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "none", "off":
		return LevelNone
	default:
		return slog.LevelInfo
	}
}

type contextKey int

const (
	requestLoggerKey contextKey = iota
	logAttrsKey
)

// logAttrs collects attributes added by handlers during a request.
// They are written on the final "request completed" log line.
type logAttrs struct {
	attrs []slog.Attr
}

// ContextWithRequestLogger returns a copy of ctx carrying the request logger.
func ContextWithRequestLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, requestLoggerKey, l)
}

// ContextRequestLogger returns the request logger stored in ctx, or the default logger.
func ContextRequestLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(requestLoggerKey).(*slog.Logger); ok && l != nil {
		return l
	}
	return slog.Default()
}

// ContextWithLogAttrs adds attributes to the final request log line.
// It is a no-op outside of the RequestLogging middleware.
func ContextWithLogAttrs(ctx context.Context, attrs ...slog.Attr) {
	if holder, ok := ctx.Value(logAttrsKey).(*logAttrs); ok {
		holder.attrs = append(holder.attrs, attrs...)
	}
}

func contextLogAttrs(ctx context.Context) []slog.Attr {
	if holder, ok := ctx.Value(logAttrsKey).(*logAttrs); ok {
		return holder.attrs
	}
	return nil
}
