package logger

import (
	"context"
	"log/slog"
	"os"
)

type ctxKey uint8

const (
	ctxKeyRequestID ctxKey = iota
	ctxKeyUserID
	ctxKeyIP
)

const originService = "chanmkt-api"

type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if v, ok := ctx.Value(ctxKeyRequestID).(string); ok && v != "" {
		record.Add("request_id", v)
	}

	if v, ok := ctx.Value(ctxKeyUserID).(string); ok && v != "" {
		record.Add("user_id", v)
	}

	if v, ok := ctx.Value(ctxKeyIP).(string); ok && v != "" {
		record.Add("ip", v)
	}

	record.Add("origin_service", originService)

	return h.Handler.Handle(ctx, record)
}

func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func New(level slog.Level) *slog.Logger {
	log := slog.New(&Handler{slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})})

	slog.SetDefault(log)

	return log
}

func SetRequestID(ctx context.Context, reqID string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, reqID)
}

func SetUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxKeyUserID, userID)
}

func SetIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, ctxKeyIP, ip)
}
