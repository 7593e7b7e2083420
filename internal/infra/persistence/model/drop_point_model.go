package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DayHoursDocument is the stored opening window of a single weekday.
type DayHoursDocument struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// HoursDocument maps lower-case English weekday names to their opening window.
// A missing weekday means the drop point is closed that day.
type HoursDocument map[string]DayHoursDocument

// DropPointModel is the GORM-specific struct for the 'drop_points' table.
type DropPointModel struct {
	ID        uuid.UUID                         `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string                            `gorm:"type:varchar(255);not null"`
	Address   string                            `gorm:"type:text;not null"`
	District  string                            `gorm:"type:varchar(100);not null;index"`
	Latitude  float64                           `gorm:"type:decimal(10,8);not null;index:idx_drop_points_on_location"`
	Longitude float64                           `gorm:"type:decimal(11,8);not null;index:idx_drop_points_on_location"`
	IsActive  bool                              `gorm:"not null"`
	Hours     datatypes.JSONType[HoursDocument] `gorm:"type:jsonb;not null"`
	Crates    []DropPointCrateModel             `gorm:"foreignKey:DropPointID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DropPointModel) TableName() string {
	return "drop_points"
}

// DropPointCrateModel is the GORM-specific struct for the 'drop_point_crates' table.
// It holds the crate stock of one crop type at one drop point.
type DropPointCrateModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DropPointID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_drop_point_crates_on_point_crop"`
	CropType    string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_drop_point_crates_on_point_crop"`
	Count       int       `gorm:"not null;default:0;check:count >= 0"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (DropPointCrateModel) TableName() string {
	return "drop_point_crates"
}
