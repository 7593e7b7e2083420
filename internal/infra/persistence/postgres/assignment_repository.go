package postgres

import (
	"context"
	"log/slog"

	"dropzone/internal/domain/entity"
	domainerrors "dropzone/internal/domain/errors"
	"dropzone/internal/domain/geo"
	"dropzone/internal/domain/repository"
	"dropzone/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// assignmentRepository implements the repository.AssignmentRepository interface.
type assignmentRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewAssignmentRepository is the constructor for assignmentRepository.
func NewAssignmentRepository(db *gorm.DB, logger *slog.Logger) repository.AssignmentRepository {
	return &assignmentRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAssignment persists a new assignment.
func (repo *assignmentRepository) CreateAssignment(ctx context.Context, assignment *entity.Assignment) error {
	assignmentM := fromAssignmentDomain(assignment)

	if err := repo.db.WithContext(ctx).Omit("DropPoint").Create(assignmentM).Error; err != nil {
		switch classifyViolation(err) {
		case violationUnique:
			return repository.ErrDuplicateAssignment
		case violationForeignKey:
			return repository.ErrDropPointNotFound
		case violationNotNull, violationCheck:
			return domainerrors.ErrValidationFailed.WrapMessage("missing required assignment information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create assignment")
	}

	assignment.ID = assignmentM.ID
	assignment.CreatedAt = assignmentM.CreatedAt
	assignment.UpdatedAt = assignmentM.UpdatedAt

	return nil
}

// FindAssignmentByListing retrieves a listing's assignment and its current drop point.
func (repo *assignmentRepository) FindAssignmentByListing(ctx context.Context, listingID uuid.UUID) (*entity.AssignmentWithDropPoint, error) {
	var assignmentM model.AssignmentModel

	if err := repo.db.WithContext(ctx).
		Preload("DropPoint").
		Where("listing_id = ?", listingID).
		First(&assignmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAssignmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find assignment by listing")
	}

	return repo.toAssignmentWithDropPoint(&assignmentM), nil
}

// UpdateAssignment moves the listing's assignment to another drop point.
// Distance and pickup window are left as they were.
func (repo *assignmentRepository) UpdateAssignment(ctx context.Context, listingID uuid.UUID, update entity.AssignmentUpdate) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AssignmentModel{}).
		Where("listing_id = ?", listingID).
		Updates(map[string]any{
			"drop_point_id":          update.DropPointID,
			"status":                 string(update.Status),
			"change_reason":          update.ChangeReason,
			"previous_drop_point_id": update.PreviousDropPointID,
		})

	if result.Error != nil {
		if classifyViolation(result.Error) == violationForeignKey {
			return repository.ErrDropPointNotFound
		}

		return errors.Wrap(result.Error, "failed to update assignment")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAssignmentNotFound
	}

	return nil
}

// FindAssignmentsBySupplier lists a supplier's assignments in a status, earliest pickup first.
func (repo *assignmentRepository) FindAssignmentsBySupplier(ctx context.Context, supplierID uuid.UUID, status entity.AssignmentStatus) ([]*entity.AssignmentWithDropPoint, error) {
	var assignmentModels []*model.AssignmentModel

	if err := repo.db.WithContext(ctx).
		Preload("DropPoint").
		Where("supplier_id = ? AND status = ?", supplierID, string(status)).
		Order("pickup_window_start ASC").
		Find(&assignmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find assignments by supplier")
	}

	assignments := make([]*entity.AssignmentWithDropPoint, 0, len(assignmentModels))
	for _, assignmentM := range assignmentModels {
		assignments = append(assignments, repo.toAssignmentWithDropPoint(assignmentM))
	}

	return assignments, nil
}

// --- Mapper Functions ---

func (repo *assignmentRepository) toAssignmentWithDropPoint(data *model.AssignmentModel) *entity.AssignmentWithDropPoint {
	result := &entity.AssignmentWithDropPoint{
		Assignment: toAssignmentDomain(data),
	}
	if data.DropPoint.ID != uuid.Nil {
		result.DropPoint = toDropPointDomain(&data.DropPoint, repo.logger)
	}

	return result
}

// toAssignmentDomain converts a GORM AssignmentModel to a domain Assignment entity.
func toAssignmentDomain(data *model.AssignmentModel) *entity.Assignment {
	if data == nil {
		return nil
	}

	return &entity.Assignment{
		ID:                  data.ID,
		ListingID:           data.ListingID,
		SupplierID:          data.SupplierID,
		DropPointID:         data.DropPointID,
		SupplierLocation:    geo.Coordinate{Lat: data.SupplierLatitude, Lng: data.SupplierLongitude},
		DistanceKm:          data.DistanceKm,
		PickupWindowStart:   data.PickupWindowStart,
		PickupWindowEnd:     data.PickupWindowEnd,
		CratesNeeded:        data.CratesNeeded,
		Status:              entity.AssignmentStatus(data.Status),
		ChangeReason:        data.ChangeReason,
		PreviousDropPointID: data.PreviousDropPointID,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

// fromAssignmentDomain converts a domain Assignment entity to a GORM AssignmentModel.
func fromAssignmentDomain(data *entity.Assignment) *model.AssignmentModel {
	if data == nil {
		return nil
	}

	return &model.AssignmentModel{
		ID:                  data.ID,
		ListingID:           data.ListingID,
		SupplierID:          data.SupplierID,
		DropPointID:         data.DropPointID,
		SupplierLatitude:    data.SupplierLocation.Lat,
		SupplierLongitude:   data.SupplierLocation.Lng,
		DistanceKm:          data.DistanceKm,
		PickupWindowStart:   data.PickupWindowStart,
		PickupWindowEnd:     data.PickupWindowEnd,
		CratesNeeded:        data.CratesNeeded,
		Status:              string(data.Status),
		ChangeReason:        data.ChangeReason,
		PreviousDropPointID: data.PreviousDropPointID,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
