package postgres

import (
	"context"
	"time"

	"dropzone/config"
	"dropzone/internal/domain/entity"
	"dropzone/internal/domain/repository"
	"dropzone/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// capacitySlotRepository implements the repository.CapacitySlotRepository interface.
type capacitySlotRepository struct {
	db                *gorm.DB
	durationHours     int
	defaultCapacityKg float64
}

// NewCapacitySlotRepository is the constructor for capacitySlotRepository.
// New slots take their width and capacity from the assignment configuration.
func NewCapacitySlotRepository(db *gorm.DB, cfg *config.Config) repository.CapacitySlotRepository {
	assignmentCfg := cfg.Assignment
	if assignmentCfg == nil {
		assignmentCfg = config.DefaultAssignmentConfig()
	}

	return &capacitySlotRepository{
		db:                db,
		durationHours:     assignmentCfg.SlotDurationHours,
		defaultCapacityKg: assignmentCfg.DefaultCapacityKg,
	}
}

// GetOrCreateSlot inserts the slot if missing and then reads it back.
// The unique (drop_point_id, slot_date, start_hour) index makes concurrent calls converge on one row.
func (repo *capacitySlotRepository) GetOrCreateSlot(ctx context.Context, dropPointID uuid.UUID, date time.Time, startHour int) (*entity.CapacitySlot, error) {
	slotDate := toSlotDate(date)

	slotM := &model.CapacitySlotModel{
		DropPointID:   dropPointID,
		SlotDate:      slotDate,
		StartHour:     startHour,
		DurationHours: repo.durationHours,
		MaxCapacityKg: repo.defaultCapacityKg,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "drop_point_id"}, {Name: "slot_date"}, {Name: "start_hour"}},
			DoNothing: true,
		}).
		Create(slotM).Error; err != nil {
		if classifyViolation(err) == violationForeignKey {
			return nil, repository.ErrDropPointNotFound
		}

		return nil, errors.Wrap(err, "failed to create capacity slot")
	}

	var found model.CapacitySlotModel
	if err := repo.db.WithContext(ctx).
		Where("drop_point_id = ? AND slot_date = ? AND start_hour = ?", dropPointID, slotDate, startHour).
		Take(&found).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find capacity slot")
	}

	return toCapacitySlotDomain(&found), nil
}

// IncrementSlotUsage adds kg to the used capacity in a single UPDATE so concurrent
// increments never overwrite each other.
func (repo *capacitySlotRepository) IncrementSlotUsage(ctx context.Context, slotID uuid.UUID, kg float64) (*entity.CapacitySlot, error) {
	var slotM model.CapacitySlotModel

	result := repo.db.WithContext(ctx).
		Model(&slotM).
		Clauses(clause.Returning{}).
		Where("id = ?", slotID).
		Update("used_capacity_kg", gorm.Expr("used_capacity_kg + ?", kg))
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to increment slot usage")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrCapacitySlotNotFound
	}

	return toCapacitySlotDomain(&slotM), nil
}

// toSlotDate keeps the calendar date of t as seen in t's location.
func toSlotDate(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// --- Mapper Functions ---

func toCapacitySlotDomain(data *model.CapacitySlotModel) *entity.CapacitySlot {
	if data == nil {
		return nil
	}

	return &entity.CapacitySlot{
		ID:             data.ID,
		DropPointID:    data.DropPointID,
		Date:           data.SlotDate,
		StartHour:      data.StartHour,
		DurationHours:  data.DurationHours,
		MaxCapacityKg:  data.MaxCapacityKg,
		UsedCapacityKg: data.UsedCapacityKg,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
