package entity

import (
	"time"

	"dropzone/internal/domain/geo"

	"github.com/google/uuid"
)

// AssignmentStatus is the lifecycle state of an assignment.
type AssignmentStatus string

const (
	AssignmentStatusAssigned   AssignmentStatus = "ASSIGNED"
	AssignmentStatusReassigned AssignmentStatus = "REASSIGNED"
)

// Assignment links a produce listing to the drop point its supplier delivers to.
type Assignment struct {
	ID                  uuid.UUID
	ListingID           uuid.UUID // One assignment per listing.
	SupplierID          uuid.UUID
	DropPointID         uuid.UUID
	SupplierLocation    geo.Coordinate // Supplier position at request time.
	DistanceKm          float64        // Distance to the originally assigned point, 2 d.p.
	PickupWindowStart   time.Time
	PickupWindowEnd     time.Time
	CratesNeeded        int
	Status              AssignmentStatus
	ChangeReason        *string    // Set only on reassignment.
	PreviousDropPointID *uuid.UUID // Set only on reassignment.
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// AssignmentUpdate carries the fields a reassignment changes.
type AssignmentUpdate struct {
	DropPointID         uuid.UUID
	Status              AssignmentStatus
	ChangeReason        string
	PreviousDropPointID uuid.UUID
}

// AssignmentWithDropPoint is an assignment hydrated with its current drop point.
type AssignmentWithDropPoint struct {
	Assignment *Assignment
	DropPoint  *DropPoint
}
