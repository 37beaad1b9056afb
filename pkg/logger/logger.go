// Package logger provides a structured, levelled logger built on log/slog.
//
// The key extension over plain slog is WithCtx: it returns the logger the
// request middleware stored in the context, so every log line from a handler
// carries the request_id:
//
//	log := logger.WithCtx(r.Context())
//	log.Error("Error creating the product", "message", err.Error())
//	// → time=... level=ERROR msg="Error creating the product" request_id=... message=...
package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/shashiranjanraj/kashvi-products/config"
)

var L *slog.Logger

func init() {
	L = slog.New(consoleHandler(config.AppEnv()))
	slog.SetDefault(L)
}

func consoleHandler(env string) slog.Handler {
	switch env {
	case "production", "prod":
		// structured JSON for log aggregators
		return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	case "testing", "test":
		return slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
	default:
		return slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
}

// Setup rebuilds L from the loaded config. When LOG_MONGO_URI is set, records
// are also shipped to MongoDB. The returned func flushes and disconnects the
// sink and must be called on shutdown.
func Setup() (func(), error) {
	console := consoleHandler(config.AppEnv())

	uri := config.LogMongoURI()
	if uri == "" {
		L = slog.New(console)
		slog.SetDefault(L)
		return func() {}, nil
	}

	mh, err := NewMongoHandler(uri, config.LogMongoDB(), config.LogMongoCollection())
	if err != nil {
		L = slog.New(console)
		slog.SetDefault(L)
		return func() {}, err
	}

	L = slog.New(NewMultiHandler(console, mh))
	slog.SetDefault(L)
	return mh.Close, nil
}

// ctxKey is the unexported key used to store a per-request *slog.Logger.
type ctxKey struct{}

// WithCtx returns the *slog.Logger injected by middleware.Logger, which is
// pre-tagged with the request_id. Falls back to the base logger.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// InjectLogger stores a *slog.Logger into ctx.
// Called by the Logger middleware; not usually needed in application code.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// Debug logs at DEBUG level.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level.
func Error(msg string, args ...any) { L.Error(msg, args...) }
