package entity

import (
	"time"

	"github.com/google/uuid"
)

// CapacitySlot is a pickup window at a drop point with a throughput ceiling.
// UsedCapacityKg may exceed MaxCapacityKg when a fallback assignment over-books the slot.
type CapacitySlot struct {
	ID             uuid.UUID
	DropPointID    uuid.UUID
	Date           time.Time // Calendar date at midnight.
	StartHour      int
	DurationHours  int
	MaxCapacityKg  float64
	UsedCapacityKg float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AvailableKg returns the remaining capacity; negative when over-booked.
func (s *CapacitySlot) AvailableKg() float64 {
	return s.MaxCapacityKg - s.UsedCapacityKg
}

// CanAccept reports whether quantityKg fits in the remaining capacity.
func (s *CapacitySlot) CanAccept(quantityKg float64) bool {
	return s.AvailableKg() >= quantityKg
}
