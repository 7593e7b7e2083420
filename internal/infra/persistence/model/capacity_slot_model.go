package model

import (
	"time"

	"github.com/google/uuid"
)

// CapacitySlotModel is the GORM-specific struct for the 'capacity_slots' table.
// One row exists per drop point, date and start hour.
type CapacitySlotModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DropPointID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_capacity_slots_on_point_date_hour"`
	SlotDate       time.Time `gorm:"type:date;not null;uniqueIndex:idx_capacity_slots_on_point_date_hour"`
	StartHour      int       `gorm:"not null;uniqueIndex:idx_capacity_slots_on_point_date_hour"`
	DurationHours  int       `gorm:"not null"`
	MaxCapacityKg  float64   `gorm:"type:decimal(12,2);not null"`
	UsedCapacityKg float64   `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CapacitySlotModel) TableName() string {
	return "capacity_slots"
}
