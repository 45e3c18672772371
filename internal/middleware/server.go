package middleware

import (
	"log/slog"
	"time"

	"vk_randomizer_backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDMiddleware присваивает каждому запросу уникальный id.
// Id попадает в контекст логгера и в заголовок ответа.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		ctx := logger.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// VKUserMiddleware пробрасывает идентификатор пользователя VK из заголовка
// в контекст логгера. Аутентификации здесь нет, id носит информационный характер.
func VKUserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if vkUserID := c.GetHeader("X-VK-User-ID"); vkUserID != "" {
			ctx := logger.WithVKUserID(c.Request.Context(), vkUserID)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}

func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		log := logger.FromContext(c.Request.Context())
		fields := []any{
			slog.String("client_ip", c.ClientIP()),
			slog.String("user_agent", c.Request.UserAgent()),
			slog.Int("status", c.Writer.Status()),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Duration("duration", duration),
			slog.Int("size_bytes", c.Writer.Size()),
		}
		if c.Writer.Status() >= 500 {
			log.Error("HTTP Server Error", fields...)
		} else if c.Writer.Status() >= 400 {
			log.Warn("HTTP Client Error", fields...)
		} else {
			log.Info("HTTP Request", fields...)
		}
	}
}
