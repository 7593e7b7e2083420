package model

import (
	"time"

	"github.com/google/uuid"
)

// AssignmentModel is the GORM-specific struct for the 'assignments' table.
type AssignmentModel struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ListingID           uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	SupplierID          uuid.UUID      `gorm:"type:uuid;not null;index:idx_assignments_on_supplier_status"`
	DropPointID         uuid.UUID      `gorm:"type:uuid;not null;index"`
	DropPoint           DropPointModel `gorm:"foreignKey:DropPointID"`
	SupplierLatitude    float64        `gorm:"type:decimal(10,8);not null"`
	SupplierLongitude   float64        `gorm:"type:decimal(11,8);not null"`
	DistanceKm          float64        `gorm:"type:decimal(8,2);not null"`
	PickupWindowStart   time.Time      `gorm:"not null"`
	PickupWindowEnd     time.Time      `gorm:"not null"`
	CratesNeeded        int            `gorm:"not null"`
	Status              string         `gorm:"type:varchar(20);not null;index:idx_assignments_on_supplier_status"`
	ChangeReason        *string        `gorm:"type:text"`
	PreviousDropPointID *uuid.UUID     `gorm:"type:uuid"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (AssignmentModel) TableName() string {
	return "assignments"
}

// AllModels lists every model managed by AutoMigrate, parents first.
func AllModels() []any {
	return []any{
		&DropPointModel{},
		&DropPointCrateModel{},
		&CapacitySlotModel{},
		&AssignmentModel{},
	}
}
