// Package handler holds the echo handlers of the API.
package handler

import (
	"time"

	domainerrors "dropzone/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// uuidParam parses a UUID path parameter
func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails(name + ": must be a UUID")
	}

	return id, nil
}

// parseDate reads an optional YYYY-MM-DD value; the empty string yields nil
func parseDate(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(name + ": must be a YYYY-MM-DD date")
	}

	return &date, nil
}

// bindAndValidate binds the request into req and runs its validate tags
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("request body could not be decoded")
	}

	return c.Validate(req)
}
