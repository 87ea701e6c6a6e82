package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type ctxKey string

const (
	runIDKey ctxKey = ContextKeyRunID
	gameKey  ctxKey = ContextKeyGame
)

// InitLogger sets the default slog logger writing to stdout.
func InitLogger(cfg Config) {
	InitLoggerWithWriter(cfg, os.Stdout)
}

// InitLoggerWithWriter sets the default slog logger writing to w, with the
// config's base attributes on every record.
func InitLoggerWithWriter(cfg Config, w io.Writer) {
	slog.SetDefault(slog.New(cfg.NewHandler(w)))
}

// GenerateRunID creates a new UUID for tracing one pipeline run.
func GenerateRunID() string {
	return uuid.NewString()
}

// WithRunID returns a new context containing the run ID.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// RunIDFromContext extracts the run ID from the context, if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(runIDKey).(string)
	return id, ok && id != ""
}

// GetRunID returns the run ID or an empty string.
func GetRunID(ctx context.Context) string {
	id, _ := RunIDFromContext(ctx)
	return id
}

// WithGame returns a new context tagged with the game being processed.
func WithGame(ctx context.Context, game string) context.Context {
	return context.WithValue(ctx, gameKey, game)
}

// FromContext returns a logger that includes run_id and game when present.
func FromContext(ctx context.Context) *slog.Logger {
	log := slog.Default()
	if ctx == nil {
		return log
	}
	if id, ok := RunIDFromContext(ctx); ok {
		log = log.With(AttrKeyRunID, id)
	}
	if game, ok := ctx.Value(gameKey).(string); ok && game != "" {
		log = log.With(AttrKeyGame, game)
	}
	return log
}

func Debug(msg string, args ...any) { slog.Default().Debug(msg, args...) }

func Info(msg string, args ...any) { slog.Default().Info(msg, args...) }

func Warn(msg string, args ...any) { slog.Default().Warn(msg, args...) }

func Error(msg string, args ...any) { slog.Default().Error(msg, args...) }
