package usecase

import (
	"context"
	"time"

	"dropzone/internal/domain/entity"
	"dropzone/internal/domain/geo"

	"github.com/google/uuid"
)

// NearbyInput represents a nearby drop point search
type NearbyInput struct {
	Location geo.Coordinate
	RadiusKm float64 // Defaults to the configured nearby radius when zero
}

// NearbyDropPoint is a drop point annotated with its distance and open status
type NearbyDropPoint struct {
	DropPoint  *entity.DropPoint
	DistanceKm float64
	IsOpenNow  bool
}

// SlotView describes the pickup slot of a drop point on a given date
type SlotView struct {
	Slot         *entity.CapacitySlot
	AvailableKg  float64
	PickupWindow PickupWindow
}

// DropPointUsecase defines the interface for drop point queries
type DropPointUsecase interface {
	// GetNearbyDropPoints lists active drop points around a location, nearest first
	GetNearbyDropPoints(ctx context.Context, input *NearbyInput) ([]*NearbyDropPoint, error)

	// GetDropPoint returns a single drop point with its hours and crates
	GetDropPoint(ctx context.Context, id uuid.UUID) (*entity.DropPoint, error)

	// GetSlot returns the pickup slot of a drop point for a date, the next business day when nil
	GetSlot(ctx context.Context, dropPointID uuid.UUID, date *time.Time) (*SlotView, error)
}
