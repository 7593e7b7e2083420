// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"dropzone/internal/domain/entity"
	"dropzone/internal/domain/geo"
	"dropzone/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for drop point persistence.
var (
	// ErrDropPointNotFound is returned when a drop point is not found.
	ErrDropPointNotFound = errors.New("drop point not found")
)

// NearbyQuery describes a bounded-radius drop point search.
type NearbyQuery struct {
	Center          geo.Coordinate
	RadiusKm        float64
	Limit           int
	IncludeInactive bool
}

// DropPointRepository defines the interface for drop point database operations.
type DropPointRepository interface {
	// FindDropPointByID retrieves a drop point, including its crate inventory.
	// Returns ErrDropPointNotFound if no drop point has that ID.
	FindDropPointByID(ctx context.Context, id uuid.UUID) (*entity.DropPoint, error)

	// FindNearby returns drop points within query.RadiusKm of query.Center,
	// sorted by ascending distance and capped at query.Limit.
	FindNearby(ctx context.Context, query NearbyQuery) ([]*entity.NearbyDropPoint, error)

	// GetCrateCount returns the crates stocked for a normalized crop type, 0 if none.
	GetCrateCount(ctx context.Context, dropPointID uuid.UUID, cropType string) (int, error)
}
