package repository

import (
	"context"

	"dropzone/internal/domain/entity"
	"dropzone/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrAssignmentNotFound is returned when no assignment exists for a listing.
	ErrAssignmentNotFound = errors.New("assignment not found")
	// ErrDuplicateAssignment is returned when a listing already has an assignment.
	ErrDuplicateAssignment = errors.New("listing already has an assignment")
)

// AssignmentRepository defines the interface for assignment database operations.
type AssignmentRepository interface {
	// CreateAssignment persists a new assignment.
	CreateAssignment(ctx context.Context, assignment *entity.Assignment) error

	// FindAssignmentByListing retrieves the assignment for a listing together with its drop point.
	// Returns ErrAssignmentNotFound if the listing has no assignment.
	FindAssignmentByListing(ctx context.Context, listingID uuid.UUID) (*entity.AssignmentWithDropPoint, error)

	// UpdateAssignment applies a reassignment to the listing's assignment.
	UpdateAssignment(ctx context.Context, listingID uuid.UUID, update entity.AssignmentUpdate) error

	// FindAssignmentsBySupplier lists a supplier's assignments with the given status,
	// ordered by pickup window start ascending.
	FindAssignmentsBySupplier(ctx context.Context, supplierID uuid.UUID, status entity.AssignmentStatus) ([]*entity.AssignmentWithDropPoint, error)
}
