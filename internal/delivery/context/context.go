// Package context carries request-scoped values (request ID and logger) between
// the HTTP layer and the services it calls.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type contextKey int

const (
	requestIDKey contextKey = iota
	loggerKey
)

// echoRequestIDKey is where the request ID lives on echo.Context.
const echoRequestIDKey = "request_id"

// HeaderXRequestID is the header a caller may use to supply its own request ID.
const HeaderXRequestID = echo.HeaderXRequestID

// RequestID returns the request ID stored on the echo context, or "" outside a traced request.
func RequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok {
		return id
	}

	return ""
}

// Bind stores the request ID on c and returns ctx carrying the ID and a logger tagged with it.
func Bind(c echo.Context, ctx context.Context, requestID string, logger *slog.Logger) context.Context {
	c.Set(echoRequestIDKey, requestID)

	ctx = context.WithValue(ctx, requestIDKey, requestID)

	return context.WithValue(ctx, loggerKey, logger.With(slog.String("request_id", requestID)))
}

// RequestIDFromContext returns the request ID carried by ctx, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// LoggerFromContext returns the request-scoped logger, or fallback when ctx has none.
func LoggerFromContext(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
