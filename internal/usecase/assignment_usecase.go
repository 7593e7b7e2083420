package usecase

import (
	"context"
	"time"

	"dropzone/internal/domain/entity"
	"dropzone/internal/domain/geo"

	"github.com/google/uuid"
)

// AssignInput represents a request to place a produce listing at a drop point
type AssignInput struct {
	ListingID     uuid.UUID
	SupplierID    uuid.UUID
	Location      geo.Coordinate
	CropType      string
	QuantityKg    float64
	PreferredDate *time.Time // Defaults to the next business day when nil
}

// ReassignInput represents a manual move of an assignment to another drop point
type ReassignInput struct {
	ListingID      uuid.UUID
	NewDropPointID uuid.UUID
	Reason         string
}

// DropPointSummary is the public view of the drop point an assignment points at
type DropPointSummary struct {
	ID         uuid.UUID      `json:"id"`
	Name       string         `json:"name"`
	Address    string         `json:"address"`
	Location   geo.Coordinate `json:"location"`
	DistanceKm float64        `json:"distance_km"`
}

// PickupWindow is the interval during which the produce is collected
type PickupWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// AssignmentResult is returned by assignment operations
type AssignmentResult struct {
	Assignment   *entity.Assignment
	DropPoint    *DropPointSummary
	PickupWindow PickupWindow
	CratesNeeded int
	// Fallback is set when no candidate satisfied both capacity and crates
	Fallback bool
}

// AssignmentUsecase defines the interface for drop point assignment use cases
type AssignmentUsecase interface {
	// Assign picks the nearest drop point with enough slot capacity and crates,
	// falling back to the nearest candidate when none qualifies
	Assign(ctx context.Context, input *AssignInput) (*AssignmentResult, error)

	// GetAssignment returns the listing's assignment, or nil when there is none
	GetAssignment(ctx context.Context, listingID uuid.UUID) (*AssignmentResult, error)

	// GetUpcomingDeliveries lists the supplier's ASSIGNED assignments by pickup time
	GetUpcomingDeliveries(ctx context.Context, supplierID uuid.UUID) ([]*AssignmentResult, error)

	// Reassign moves an assignment to another drop point without re-checking constraints
	Reassign(ctx context.Context, input *ReassignInput) (*AssignmentResult, error)
}
