package repository

import (
	"context"
	"time"

	"dropzone/internal/domain/entity"
	"dropzone/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrCapacitySlotNotFound is returned when incrementing a slot that does not exist.
	ErrCapacitySlotNotFound = errors.New("capacity slot not found")
)

// CapacitySlotRepository defines the interface for pickup slot capacity operations.
type CapacitySlotRepository interface {
	// GetOrCreateSlot returns the slot for (dropPointID, date, startHour), creating it with
	// the default capacity and duration when absent. Concurrent callers receive the same slot.
	GetOrCreateSlot(ctx context.Context, dropPointID uuid.UUID, date time.Time, startHour int) (*entity.CapacitySlot, error)

	// IncrementSlotUsage atomically adds kg to the slot's used capacity and returns the updated slot.
	IncrementSlotUsage(ctx context.Context, slotID uuid.UUID, kg float64) (*entity.CapacitySlot, error)
}
