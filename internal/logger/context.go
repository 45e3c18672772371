package logger

import (
	"context"
	"log/slog"
)

// Ключи для context
type contextKey string

const (
	requestIDKey contextKey = "request_id"
	vkUserIDKey  contextKey = "vk_user_id"
)

// WithRequestID добавляет request ID в context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithVKUserID добавляет VK user ID в context
func WithVKUserID(ctx context.Context, vkUserID string) context.Context {
	return context.WithValue(ctx, vkUserIDKey, vkUserID)
}

// GetRequestID извлекает request ID из context
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// GetVKUserID извлекает VK user ID из context
func GetVKUserID(ctx context.Context) string {
	if vkUserID, ok := ctx.Value(vkUserIDKey).(string); ok {
		return vkUserID
	}
	return ""
}

// FromContext создает логгер с полями из context.
// Автоматически добавляет request_id и vk_user_id, если они есть.
func FromContext(ctx context.Context) *slog.Logger {
	logger := GetLogger()

	if requestID := GetRequestID(ctx); requestID != "" {
		logger = logger.With("request_id", requestID)
	}
	if vkUserID := GetVKUserID(ctx); vkUserID != "" {
		logger = logger.With("vk_user_id", vkUserID)
	}

	return logger
}

// CtxDebug логирует debug сообщение с полями из context
func CtxDebug(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Debug(msg, args...)
}

// CtxInfo логирует info сообщение с полями из context
func CtxInfo(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Info(msg, args...)
}

// CtxWarn логирует warning с полями из context
func CtxWarn(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Warn(msg, args...)
}

// CtxError логирует error с полями из context
func CtxError(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Error(msg, args...)
}

// CtxWithError логирует ошибку с полями из context
func CtxWithError(ctx context.Context, msg string, err error, args ...any) {
	FromContext(ctx).With("error", err.Error()).Error(msg, args...)
}
