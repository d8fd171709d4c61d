// Package context carries request-scoped values between middleware, handlers
// and usecases: the request ID, a request logger and the caller's user ID.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
	userIDKey
)

// HeaderXRequestID is echoed back on every response.
const HeaderXRequestID = "X-Request-Id"

// echo.Context store keys.
const (
	KeyRequestID = "request_id"
	KeyUserID    = "userID"
)

// GetRequestID returns the request ID stored on c, falling back to the
// request context and finally to a fresh UUID.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(KeyRequestID).(string); ok && id != "" {
		return id
	}
	if id := GetRequestIDFromContext(c.Request().Context()); id != "" {
		return id
	}

	return uuid.New().String()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(KeyRequestID, requestID)
}

// GetRequestIDFromContext returns "" when no ID is set.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetLoggerOrDefault returns the request logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// WithUserID records the authenticated caller on ctx so code below the
// handler layer can attribute work without an echo.Context.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext reports the caller set by WithUserID.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)

	return id, ok && id != uuid.Nil
}
