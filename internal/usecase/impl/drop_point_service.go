package impl

import (
	"context"
	"log/slog"
	"time"

	"dropzone/config"
	deliverycontext "dropzone/internal/delivery/context"
	"dropzone/internal/domain/entity"
	domainerrors "dropzone/internal/domain/errors"
	"dropzone/internal/domain/geo"
	"dropzone/internal/domain/repository"
	"dropzone/internal/domain/service"
	"dropzone/internal/errors"
	"dropzone/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// DropPointServiceParams holds dependencies for the drop point service, injected by Fx
type DropPointServiceParams struct {
	fx.In

	DropPointRepo repository.DropPointRepository
	SlotRepo      repository.CapacitySlotRepository
	Clock         service.Clock
	Config        *config.Config
	Logger        *slog.Logger
}

type dropPointService struct {
	dropPointRepo repository.DropPointRepository
	slotRepo      repository.CapacitySlotRepository
	clock         service.Clock
	cfg           *config.AssignmentConfig
	schedule      pickupSchedule
	logger        *slog.Logger
}

// NewDropPointService creates a new drop point service instance
func NewDropPointService(params DropPointServiceParams) usecase.DropPointUsecase {
	cfg := params.Config.Assignment
	if cfg == nil {
		cfg = config.DefaultAssignmentConfig()
	}

	return &dropPointService{
		dropPointRepo: params.DropPointRepo,
		slotRepo:      params.SlotRepo,
		clock:         params.Clock,
		cfg:           cfg,
		schedule:      newPickupSchedule(cfg),
		logger:        params.Logger,
	}
}

// GetNearbyDropPoints lists active drop points within the radius, nearest first,
// flagging the ones open at the current local time
func (s *dropPointService) GetNearbyDropPoints(ctx context.Context, input *usecase.NearbyInput) ([]*usecase.NearbyDropPoint, error) {
	radiusKm := input.RadiusKm
	if radiusKm <= 0 {
		radiusKm = s.cfg.NearbyRadiusKm
	}

	points, err := s.dropPointRepo.FindNearby(ctx, repository.NearbyQuery{
		Center:   input.Location,
		RadiusKm: radiusKm,
		Limit:    s.cfg.NearbyLimit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find nearby drop points")
	}

	now := s.clock.Now().In(s.schedule.loc)
	results := make([]*usecase.NearbyDropPoint, 0, len(points))
	for _, point := range points {
		results = append(results, &usecase.NearbyDropPoint{
			DropPoint:  point.DropPoint,
			DistanceKm: geo.RoundKm(point.DistanceKm),
			IsOpenNow:  point.DropPoint.Hours.IsOpenAt(now),
		})
	}

	deliverycontext.LoggerFromContext(ctx, s.logger).Debug("Nearby drop points resolved",
		slog.Float64("radius_km", radiusKm),
		slog.Int("count", len(results)),
	)

	return results, nil
}

// GetDropPoint returns a drop point by ID
func (s *dropPointService) GetDropPoint(ctx context.Context, id uuid.UUID) (*entity.DropPoint, error) {
	point, err := s.dropPointRepo.FindDropPointByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDropPointNotFound) {
			return nil, domainerrors.ErrDropPointNotFound
		}

		return nil, errors.Wrap(err, "failed to find drop point")
	}

	return point, nil
}

// GetSlot returns the drop point's pickup slot for the date, creating it on first access
func (s *dropPointService) GetSlot(ctx context.Context, dropPointID uuid.UUID, date *time.Time) (*usecase.SlotView, error) {
	if _, err := s.GetDropPoint(ctx, dropPointID); err != nil {
		return nil, err
	}

	slotDate := s.schedule.resolveDate(date, s.clock.Now())
	slot, err := s.slotRepo.GetOrCreateSlot(ctx, dropPointID, slotDate, s.cfg.SlotStartHour)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve capacity slot")
	}

	return &usecase.SlotView{
		Slot:         slot,
		AvailableKg:  slot.AvailableKg(),
		PickupWindow: s.schedule.window(slotDate),
	}, nil
}
