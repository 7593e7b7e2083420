// Package middleware holds the echo middleware of the API server.
package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"dropzone/internal/delivery/api/response"
	deliverycontext "dropzone/internal/delivery/context"
	domainerrors "dropzone/internal/domain/errors"
	"dropzone/internal/errors"

	"github.com/labstack/echo/v4"
)

const httpErrorCode = "HTTP_ERROR"

// ErrorMiddleware renders handler errors into the error envelope
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler. Every error is
// reduced to an AppError; anything unrecognised becomes INTERNAL_ERROR.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	appErr, details := classify(err)
	if appErr.HTTPCode() >= http.StatusInternalServerError {
		req := c.Request()
		deliverycontext.LoggerFromContext(req.Context(), m.logger).LogAttrs(req.Context(), slog.LevelError, "Request failed",
			slog.String("code", appErr.ErrorCode()),
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Any("error", err),
		)
	}

	_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}

func classify(err error) (domainerrors.AppError, any) {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return appErr, errorDetails(err, appErr)
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}

		return domainerrors.NewBaseError(httpErr.Code, httpErrorCode, message, ""), nil
	}

	return domainerrors.ErrInternalError, nil
}

// errorDetails returns the AppError's own details, or the context a caller wrapped it with.
func errorDetails(err error, appErr domainerrors.AppError) any {
	if details := appErr.Details(); details != "" {
		return details
	}

	if prefix, found := strings.CutSuffix(err.Error(), ": "+appErr.Error()); found {
		return prefix
	}

	return nil
}
