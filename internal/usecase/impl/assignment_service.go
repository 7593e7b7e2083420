package impl

import (
	"context"
	"log/slog"
	"math"
	"strings"
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

// AssignmentServiceParams holds dependencies for the assignment service, injected by Fx
type AssignmentServiceParams struct {
	fx.In

	DropPointRepo  repository.DropPointRepository
	SlotRepo       repository.CapacitySlotRepository
	AssignmentRepo repository.AssignmentRepository
	Publisher      service.EventPublisher
	Clock          service.Clock
	Config         *config.Config
	Logger         *slog.Logger
}

type assignmentService struct {
	dropPointRepo  repository.DropPointRepository
	slotRepo       repository.CapacitySlotRepository
	assignmentRepo repository.AssignmentRepository
	publisher      service.EventPublisher
	clock          service.Clock
	cfg            *config.AssignmentConfig
	schedule       pickupSchedule
	logger         *slog.Logger
}

// NewAssignmentService creates a new assignment service instance
func NewAssignmentService(params AssignmentServiceParams) usecase.AssignmentUsecase {
	cfg := params.Config.Assignment
	if cfg == nil {
		cfg = config.DefaultAssignmentConfig()
	}

	return &assignmentService{
		dropPointRepo:  params.DropPointRepo,
		slotRepo:       params.SlotRepo,
		assignmentRepo: params.AssignmentRepo,
		publisher:      params.Publisher,
		clock:          params.Clock,
		cfg:            cfg,
		schedule:       newPickupSchedule(cfg),
		logger:         params.Logger,
	}
}

// candidateChoice is the drop point picked for an assignment and the slot it books into
type candidateChoice struct {
	candidate *entity.NearbyDropPoint
	slot      *entity.CapacitySlot
	fallback  bool
}

// Assign places a listing at the nearest drop point that has both slot capacity and crates
func (s *assignmentService) Assign(ctx context.Context, input *usecase.AssignInput) (*usecase.AssignmentResult, error) {
	if input == nil || input.QuantityKg <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity must be greater than zero")
	}

	logger := deliverycontext.LoggerFromContext(ctx, s.logger).With(
		slog.String("listing_id", input.ListingID.String()),
	)

	date := s.schedule.resolveDate(input.PreferredDate, s.clock.Now())
	cratesNeeded := s.cratesNeeded(input.QuantityKg)

	candidates, err := s.dropPointRepo.FindNearby(ctx, repository.NearbyQuery{
		Center:   input.Location,
		RadiusKm: s.cfg.SearchRadiusKm,
		Limit:    s.cfg.MaxCandidates,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find candidate drop points")
	}
	if len(candidates) == 0 {
		return nil, domainerrors.ErrNoDropPointsFound
	}

	choice, err := s.selectCandidate(ctx, candidates, date, input.CropType, input.QuantityKg, cratesNeeded)
	if err != nil {
		return nil, err
	}

	reserved, err := s.slotRepo.IncrementSlotUsage(ctx, choice.slot.ID, input.QuantityKg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reserve slot capacity")
	}

	if choice.fallback {
		logger.Warn("No feasible drop point, assigned to nearest candidate",
			slog.String("drop_point_id", choice.candidate.DropPoint.ID.String()),
			slog.Int("candidates", len(candidates)),
			slog.Float64("used_kg", reserved.UsedCapacityKg),
			slog.Float64("max_kg", reserved.MaxCapacityKg),
			slog.Float64("overshoot_kg", math.Max(0, reserved.UsedCapacityKg-reserved.MaxCapacityKg)),
		)
	}

	window := s.schedule.window(date)
	point := choice.candidate.DropPoint
	assignment := &entity.Assignment{
		ListingID:         input.ListingID,
		SupplierID:        input.SupplierID,
		DropPointID:       point.ID,
		SupplierLocation:  input.Location,
		DistanceKm:        geo.RoundKm(choice.candidate.DistanceKm),
		PickupWindowStart: window.Start,
		PickupWindowEnd:   window.End,
		CratesNeeded:      cratesNeeded,
		Status:            entity.AssignmentStatusAssigned,
	}

	if err := s.assignmentRepo.CreateAssignment(ctx, assignment); err != nil {
		// The slot reservation above is not released.
		if errors.Is(err, repository.ErrDuplicateAssignment) {
			return nil, domainerrors.ErrAssignmentConflict
		}

		return nil, errors.Wrap(err, "failed to create assignment")
	}

	logger.Info("Listing assigned to drop point",
		slog.String("drop_point_id", point.ID.String()),
		slog.Float64("distance_km", assignment.DistanceKm),
		slog.Int("crates_needed", cratesNeeded),
		slog.Bool("fallback", choice.fallback),
	)

	result := &usecase.AssignmentResult{
		Assignment:   assignment,
		DropPoint:    newDropPointSummary(point, assignment.DistanceKm),
		PickupWindow: window,
		CratesNeeded: cratesNeeded,
		Fallback:     choice.fallback,
	}
	s.publish(ctx, logger, service.EventAssignmentCreated, result)

	return result, nil
}

// selectCandidate walks the candidates nearest first and returns the first one whose
// slot has room for quantityKg and whose crate stock covers cratesNeeded.
// When none qualifies, the nearest candidate is returned as a fallback.
func (s *assignmentService) selectCandidate(
	ctx context.Context,
	candidates []*entity.NearbyDropPoint,
	date time.Time,
	cropType string,
	quantityKg float64,
	cratesNeeded int,
) (*candidateChoice, error) {
	cropType = entity.NormalizeCropType(cropType)

	for _, candidate := range candidates {
		slot, err := s.slotRepo.GetOrCreateSlot(ctx, candidate.DropPoint.ID, date, s.cfg.SlotStartHour)
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve capacity slot")
		}
		if !slot.CanAccept(quantityKg) {
			continue
		}

		crates, err := s.dropPointRepo.GetCrateCount(ctx, candidate.DropPoint.ID, cropType)
		if err != nil {
			return nil, errors.Wrap(err, "failed to get crate count")
		}
		if crates < cratesNeeded {
			continue
		}

		return &candidateChoice{candidate: candidate, slot: slot}, nil
	}

	nearest := candidates[0]
	slot, err := s.slotRepo.GetOrCreateSlot(ctx, nearest.DropPoint.ID, date, s.cfg.SlotStartHour)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve fallback capacity slot")
	}

	return &candidateChoice{candidate: nearest, slot: slot, fallback: true}, nil
}

// cratesNeeded is ceil(quantityKg / kgPerCrate), at least one crate
func (s *assignmentService) cratesNeeded(quantityKg float64) int {
	crates := int(math.Ceil(quantityKg / s.cfg.KgPerCrate))
	if crates < 1 {
		return 1
	}

	return crates
}

// GetAssignment returns the listing's assignment, or nil when the listing has none
func (s *assignmentService) GetAssignment(ctx context.Context, listingID uuid.UUID) (*usecase.AssignmentResult, error) {
	found, err := s.assignmentRepo.FindAssignmentByListing(ctx, listingID)
	if err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find assignment by listing")
	}

	return newAssignmentResult(found), nil
}

// GetUpcomingDeliveries lists a supplier's ASSIGNED assignments, earliest pickup first
func (s *assignmentService) GetUpcomingDeliveries(ctx context.Context, supplierID uuid.UUID) ([]*usecase.AssignmentResult, error) {
	assignments, err := s.assignmentRepo.FindAssignmentsBySupplier(ctx, supplierID, entity.AssignmentStatusAssigned)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find assignments by supplier")
	}

	results := make([]*usecase.AssignmentResult, 0, len(assignments))
	for _, assignment := range assignments {
		results = append(results, newAssignmentResult(assignment))
	}

	return results, nil
}

// Reassign moves the listing's assignment to another drop point. Distance, window,
// capacity and crates are left untouched.
func (s *assignmentService) Reassign(ctx context.Context, input *usecase.ReassignInput) (*usecase.AssignmentResult, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("reassign input is required")
	}

	logger := deliverycontext.LoggerFromContext(ctx, s.logger).With(
		slog.String("listing_id", input.ListingID.String()),
	)

	current, err := s.assignmentRepo.FindAssignmentByListing(ctx, input.ListingID)
	if err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return nil, domainerrors.ErrAssignmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find assignment by listing")
	}

	if _, err := s.dropPointRepo.FindDropPointByID(ctx, input.NewDropPointID); err != nil {
		if errors.Is(err, repository.ErrDropPointNotFound) {
			return nil, domainerrors.ErrDropPointNotFound
		}

		return nil, errors.Wrap(err, "failed to find drop point")
	}

	previousDropPointID := current.Assignment.DropPointID
	err = s.assignmentRepo.UpdateAssignment(ctx, input.ListingID, entity.AssignmentUpdate{
		DropPointID:         input.NewDropPointID,
		Status:              entity.AssignmentStatusReassigned,
		ChangeReason:        strings.TrimSpace(input.Reason),
		PreviousDropPointID: previousDropPointID,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrAssignmentNotFound):
			return nil, domainerrors.ErrAssignmentNotFound
		case errors.Is(err, repository.ErrDropPointNotFound):
			return nil, domainerrors.ErrDropPointNotFound
		}

		return nil, errors.Wrap(err, "failed to update assignment")
	}

	updated, err := s.assignmentRepo.FindAssignmentByListing(ctx, input.ListingID)
	if err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return nil, domainerrors.ErrUpdateFailed
		}

		return nil, errors.Wrap(err, "failed to reload assignment")
	}

	logger.Info("Assignment moved to another drop point",
		slog.String("previous_drop_point_id", previousDropPointID.String()),
		slog.String("drop_point_id", input.NewDropPointID.String()),
	)

	result := newAssignmentResult(updated)
	s.publish(ctx, logger, service.EventAssignmentReassigned, result)

	return result, nil
}

// publish emits an assignment event. Failures are logged and never fail the operation.
func (s *assignmentService) publish(ctx context.Context, logger *slog.Logger, eventType string, result *usecase.AssignmentResult) {
	if s.publisher == nil {
		return
	}

	assignment := result.Assignment
	event := &service.AssignmentEvent{
		RequestID:         deliverycontext.RequestIDFromContext(ctx),
		Type:              eventType,
		AssignmentID:      assignment.ID.String(),
		ListingID:         assignment.ListingID.String(),
		SupplierID:        assignment.SupplierID.String(),
		DropPointID:       assignment.DropPointID.String(),
		PickupWindowStart: assignment.PickupWindowStart,
		PickupWindowEnd:   assignment.PickupWindowEnd,
		CratesNeeded:      assignment.CratesNeeded,
		Fallback:          result.Fallback,
	}
	if assignment.PreviousDropPointID != nil {
		event.PreviousDropPointID = assignment.PreviousDropPointID.String()
	}
	if assignment.ChangeReason != nil {
		event.ChangeReason = *assignment.ChangeReason
	}

	if err := s.publisher.PublishAssignmentEvent(ctx, event); err != nil {
		logger.Error("Failed to publish assignment event",
			slog.String("type", eventType),
			slog.Any("error", err),
		)
	}
}

// newAssignmentResult builds the public result of a stored assignment
func newAssignmentResult(found *entity.AssignmentWithDropPoint) *usecase.AssignmentResult {
	assignment := found.Assignment

	return &usecase.AssignmentResult{
		Assignment: assignment,
		DropPoint:  newDropPointSummary(found.DropPoint, assignment.DistanceKm),
		PickupWindow: usecase.PickupWindow{
			Start: assignment.PickupWindowStart,
			End:   assignment.PickupWindowEnd,
		},
		CratesNeeded: assignment.CratesNeeded,
	}
}

func newDropPointSummary(point *entity.DropPoint, distanceKm float64) *usecase.DropPointSummary {
	if point == nil {
		return nil
	}

	return &usecase.DropPointSummary{
		ID:         point.ID,
		Name:       point.Name,
		Address:    point.Address,
		Location:   point.Location,
		DistanceKm: distanceKm,
	}
}
