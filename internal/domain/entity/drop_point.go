// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"dropzone/internal/domain/geo"

	"github.com/google/uuid"
)

// DropPoint is a fixed physical location where farmers hand over produce.
type DropPoint struct {
	ID        uuid.UUID      // The Global Unique Identifier (GUID) for the drop point.
	Name      string         // Display name, e.g. "Kolar APMC Gate 2".
	Address   string         // The full, human-readable street address.
	District  string         // Administrative district the point belongs to.
	Location  geo.Coordinate // Geographic position of the point.
	IsActive  bool           // Inactive points are never offered as candidates.
	Hours     OperatingHours // Opening window per weekday.
	Crates    CrateInventory // Crates available per crop type.
	CreatedAt time.Time      // Timestamp of when this drop point was created.
	UpdatedAt time.Time      // Timestamp of the last modification.
}

// NearbyDropPoint is a drop point annotated with its distance from a query coordinate.
type NearbyDropPoint struct {
	DropPoint  *DropPoint
	DistanceKm float64
}

// CrateInventory maps a normalized crop type to the number of crates available.
type CrateInventory map[string]int

// NormalizeCropType canonicalizes a crop type name for inventory lookups.
func NormalizeCropType(cropType string) string {
	return strings.ToLower(strings.TrimSpace(cropType))
}

// Count returns the crates available for cropType, or 0 when it is not stocked.
func (c CrateInventory) Count(cropType string) int {
	if c == nil {
		return 0
	}

	return c[NormalizeCropType(cropType)]
}
