package middleware

import (
	"log/slog"
	"time"

	"dropzone/config"
	deliverycontext "dropzone/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestMiddleware tags every request with an ID and, in debug mode, writes an access log line
type RequestMiddleware struct {
	logger    *slog.Logger
	accessLog bool
}

// NewRequestMiddleware creates the request tracing middleware
func NewRequestMiddleware(logger *slog.Logger, cfg *config.Config) *RequestMiddleware {
	return &RequestMiddleware{
		logger:    logger,
		accessLog: cfg.Env.Debug,
	}
}

// Trace reuses the caller's X-Request-Id or mints one, echoes it back and binds a
// request-scoped logger into the request context
func (m *RequestMiddleware) Trace(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx := deliverycontext.Bind(c, c.Request().Context(), requestID, m.logger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// AccessLog logs method, route, status and latency once the handler returns
func (m *RequestMiddleware) AccessLog(next echo.HandlerFunc) echo.HandlerFunc {
	if !m.accessLog {
		return next
	}

	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			// Render now so the logged status is the one the client sees.
			c.Error(err)
		}

		req := c.Request()
		status := c.Response().Status
		attrs := []slog.Attr{
			slog.String("method", req.Method),
			slog.String("route", c.Path()),
			slog.String("uri", req.URL.RequestURI()),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.String("remote_ip", c.RealIP()),
		}
		if err != nil {
			attrs = append(attrs, slog.Any("error", err))
		}

		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}

		logger := deliverycontext.LoggerFromContext(req.Context(), m.logger)
		logger.LogAttrs(req.Context(), level, "HTTP request", attrs...)

		return nil
	}
}
