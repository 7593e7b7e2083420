package service

import (
	"context"
	"time"
)

// Assignment event types
const (
	EventAssignmentCreated    = "assignment.created"
	EventAssignmentReassigned = "assignment.reassigned"
)

// AssignmentEvent describes a change to a listing's drop point assignment
type AssignmentEvent struct {
	RequestID           string    `json:"request_id,omitempty"` // For distributed tracing
	Type                string    `json:"type"`
	AssignmentID        string    `json:"assignment_id"`
	ListingID           string    `json:"listing_id"`
	SupplierID          string    `json:"supplier_id"`
	DropPointID         string    `json:"drop_point_id"`
	PreviousDropPointID string    `json:"previous_drop_point_id,omitempty"`
	ChangeReason        string    `json:"change_reason,omitempty"`
	PickupWindowStart   time.Time `json:"pickup_window_start"`
	PickupWindowEnd     time.Time `json:"pickup_window_end"`
	CratesNeeded        int       `json:"crates_needed"`
	Fallback            bool      `json:"fallback,omitempty"` // Assigned without a feasible candidate
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAssignmentEvent publishes an assignment event for downstream consumers
	PublishAssignmentEvent(ctx context.Context, event *AssignmentEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
