package postgres

import (
	"context"
	"log/slog"
	"sort"

	"dropzone/internal/domain/entity"
	"dropzone/internal/domain/geo"
	"dropzone/internal/domain/repository"
	"dropzone/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// dropPointRepository implements the repository.DropPointRepository interface.
type dropPointRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewDropPointRepository is the constructor for dropPointRepository.
func NewDropPointRepository(db *gorm.DB, logger *slog.Logger) repository.DropPointRepository {
	return &dropPointRepository{
		db:     db,
		logger: logger,
	}
}

// FindDropPointByID retrieves a drop point with its crate inventory.
func (repo *dropPointRepository) FindDropPointByID(ctx context.Context, id uuid.UUID) (*entity.DropPoint, error) {
	var pointM model.DropPointModel

	if err := repo.db.WithContext(ctx).
		Preload("Crates").
		Where("id = ?", id).
		First(&pointM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDropPointNotFound
		}

		return nil, errors.Wrap(err, "failed to find drop point by ID")
	}

	return toDropPointDomain(&pointM, repo.logger), nil
}

// FindNearby loads the points inside the bounding box of the search circle,
// then keeps those within the exact great-circle radius, nearest first.
func (repo *dropPointRepository) FindNearby(ctx context.Context, query repository.NearbyQuery) ([]*entity.NearbyDropPoint, error) {
	if query.Limit <= 0 || query.RadiusKm < 0 {
		return []*entity.NearbyDropPoint{}, nil
	}

	minC, maxC := geo.BoundingBox(query.Center, query.RadiusKm)

	tx := repo.db.WithContext(ctx).
		Model(&model.DropPointModel{}).
		Where("latitude BETWEEN ? AND ?", minC.Lat, maxC.Lat)

	// A box wrapping the antimeridian cannot be expressed as one longitude range.
	if minC.Lng >= -180 && maxC.Lng <= 180 {
		tx = tx.Where("longitude BETWEEN ? AND ?", minC.Lng, maxC.Lng)
	}
	if !query.IncludeInactive {
		tx = tx.Where("is_active = ?", true)
	}

	var pointModels []*model.DropPointModel
	if err := tx.Preload("Crates").Find(&pointModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find nearby drop points")
	}

	return rankNearby(query.Center, pointModels, query.RadiusKm, query.Limit, repo.logger), nil
}

// rankNearby keeps the points within radiusKm of center, sorts them nearest
// first and returns at most limit of them. Equal distances keep their input order.
func rankNearby(center geo.Coordinate, pointModels []*model.DropPointModel, radiusKm float64, limit int, logger *slog.Logger) []*entity.NearbyDropPoint {
	nearby := make([]*entity.NearbyDropPoint, 0, len(pointModels))
	for _, pointM := range pointModels {
		point := toDropPointDomain(pointM, logger)
		distance := geo.Haversine(center, point.Location)
		if distance > radiusKm {
			continue
		}
		nearby = append(nearby, &entity.NearbyDropPoint{
			DropPoint:  point,
			DistanceKm: distance,
		})
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})

	if limit >= 0 && len(nearby) > limit {
		nearby = nearby[:limit]
	}

	return nearby
}

// GetCrateCount returns the stock of a crop type at a drop point, 0 when none is recorded.
func (repo *dropPointRepository) GetCrateCount(ctx context.Context, dropPointID uuid.UUID, cropType string) (int, error) {
	var crateM model.DropPointCrateModel

	err := repo.db.WithContext(ctx).
		Where("drop_point_id = ? AND crop_type = ?", dropPointID, entity.NormalizeCropType(cropType)).
		Take(&crateM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}

		return 0, errors.Wrap(err, "failed to get crate count")
	}

	return crateM.Count, nil
}

// --- Mapper Functions ---

// toDropPointDomain converts a GORM DropPointModel to a domain DropPoint entity.
func toDropPointDomain(data *model.DropPointModel, logger *slog.Logger) *entity.DropPoint {
	if data == nil {
		return nil
	}

	return &entity.DropPoint{
		ID:        data.ID,
		Name:      data.Name,
		Address:   data.Address,
		District:  data.District,
		Location:  geo.Coordinate{Lat: data.Latitude, Lng: data.Longitude},
		IsActive:  data.IsActive,
		Hours:     toOperatingHours(data.Hours.Data(), logger.With(slog.String("drop_point_id", data.ID.String()))),
		Crates:    toCrateInventory(data.Crates),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// toOperatingHours reads the stored weekday document. Unknown weekday names and
// malformed times are logged and treated as closed.
func toOperatingHours(doc model.HoursDocument, logger *slog.Logger) entity.OperatingHours {
	hours := entity.NewOperatingHours()

	for name, window := range doc {
		day, ok := entity.WeekdayFromName(name)
		if !ok {
			logger.Warn("Ignoring unknown weekday in operating hours", slog.String("weekday", name))

			continue
		}

		daily, err := entity.NewDailyHours(window.Open, window.Close)
		if err != nil {
			logger.Warn("Ignoring malformed operating hours",
				slog.String("weekday", name),
				slog.Any("error", err),
			)

			continue
		}
		hours[day] = daily
	}

	return hours
}

func toCrateInventory(crates []model.DropPointCrateModel) entity.CrateInventory {
	inventory := make(entity.CrateInventory, len(crates))
	for _, crate := range crates {
		inventory[entity.NormalizeCropType(crate.CropType)] += crate.Count
	}

	return inventory
}
