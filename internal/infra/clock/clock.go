// Package clock provides the wall clock used by the services.
package clock

import (
	"time"

	"dropzone/internal/domain/service"
)

type systemClock struct{}

// NewSystemClock returns a Clock backed by time.Now.
func NewSystemClock() service.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}
