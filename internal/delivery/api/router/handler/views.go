package handler

import (
	"strings"
	"time"

	"dropzone/internal/domain/entity"
	"dropzone/internal/domain/geo"
	"dropzone/internal/domain/service"
	"dropzone/internal/usecase"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// AssignmentView is the JSON shape of an assignment
type AssignmentView struct {
	ID                  uuid.UUID                 `json:"id"`
	ListingID           uuid.UUID                 `json:"listing_id"`
	SupplierID          uuid.UUID                 `json:"supplier_id"`
	Status              entity.AssignmentStatus   `json:"status"`
	DropPoint           *usecase.DropPointSummary `json:"drop_point"`
	SupplierLocation    geo.Coordinate            `json:"supplier_location"`
	DistanceKm          float64                   `json:"distance_km"`
	PickupWindow        usecase.PickupWindow      `json:"pickup_window"`
	CratesNeeded        int                       `json:"crates_needed"`
	Fallback            bool                      `json:"fallback,omitempty"`
	ChangeReason        *string                   `json:"change_reason,omitempty"`
	PreviousDropPointID *uuid.UUID                `json:"previous_drop_point_id,omitempty"`
	CreatedAt           time.Time                 `json:"created_at"`
	UpdatedAt           time.Time                 `json:"updated_at"`
}

func newAssignmentView(result *usecase.AssignmentResult) *AssignmentView {
	assignment := result.Assignment

	return &AssignmentView{
		ID:                  assignment.ID,
		ListingID:           assignment.ListingID,
		SupplierID:          assignment.SupplierID,
		Status:              assignment.Status,
		DropPoint:           result.DropPoint,
		SupplierLocation:    assignment.SupplierLocation,
		DistanceKm:          assignment.DistanceKm,
		PickupWindow:        result.PickupWindow,
		CratesNeeded:        result.CratesNeeded,
		Fallback:            result.Fallback,
		ChangeReason:        assignment.ChangeReason,
		PreviousDropPointID: assignment.PreviousDropPointID,
		CreatedAt:           assignment.CreatedAt,
		UpdatedAt:           assignment.UpdatedAt,
	}
}

// DayHoursView is one weekday of a drop point's opening hours
type DayHoursView struct {
	Closed bool   `json:"closed,omitempty"`
	Open   string `json:"open,omitempty"`
	Close  string `json:"close,omitempty"`
}

// DropPointView is the JSON shape of a drop point
type DropPointView struct {
	ID       uuid.UUID               `json:"id"`
	Name     string                  `json:"name"`
	Address  string                  `json:"address"`
	District string                  `json:"district"`
	Location geo.Coordinate          `json:"location"`
	IsActive bool                    `json:"is_active"`
	Hours    map[string]DayHoursView `json:"hours"`
	Crates   entity.CrateInventory   `json:"crates"`
}

func newDropPointView(point *entity.DropPoint) *DropPointView {
	hours := make(map[string]DayHoursView, len(point.Hours))
	for day, daily := range point.Hours {
		name := strings.ToLower(time.Weekday(day).String())
		if daily.Closed {
			hours[name] = DayHoursView{Closed: true}

			continue
		}
		hours[name] = DayHoursView{Open: daily.Open.String(), Close: daily.Close.String()}
	}

	crates := point.Crates
	if crates == nil {
		crates = entity.CrateInventory{}
	}

	return &DropPointView{
		ID:       point.ID,
		Name:     point.Name,
		Address:  point.Address,
		District: point.District,
		Location: point.Location,
		IsActive: point.IsActive,
		Hours:    hours,
		Crates:   crates,
	}
}

// NearbyDropPointView is a drop point in a nearby search
type NearbyDropPointView struct {
	*DropPointView
	DistanceKm float64 `json:"distance_km"`
	IsOpenNow  bool    `json:"is_open_now"`
}

// SlotView is the JSON shape of a pickup slot and its load
type SlotView struct {
	ID             uuid.UUID            `json:"id"`
	DropPointID    uuid.UUID            `json:"drop_point_id"`
	Date           string               `json:"date"`
	StartHour      int                  `json:"start_hour"`
	DurationHours  int                  `json:"duration_hours"`
	MaxCapacityKg  float64              `json:"max_capacity_kg"`
	UsedCapacityKg float64              `json:"used_capacity_kg"`
	AvailableKg    float64              `json:"available_kg"`
	PickupWindow   usecase.PickupWindow `json:"pickup_window"`
}

func newSlotView(view *usecase.SlotView) *SlotView {
	slot := view.Slot

	return &SlotView{
		ID:             slot.ID,
		DropPointID:    slot.DropPointID,
		Date:           slot.Date.Format(dateLayout),
		StartHour:      slot.StartHour,
		DurationHours:  slot.DurationHours,
		MaxCapacityKg:  slot.MaxCapacityKg,
		UsedCapacityKg: slot.UsedCapacityKg,
		AvailableKg:    view.AvailableKg,
		PickupWindow:   view.PickupWindow,
	}
}

// PickupPassClaimsView is what a verified pickup pass tells the drop point operator
type PickupPassClaimsView struct {
	AssignmentID uuid.UUID            `json:"assignment_id"`
	ListingID    uuid.UUID            `json:"listing_id"`
	SupplierID   uuid.UUID            `json:"supplier_id"`
	DropPointID  uuid.UUID            `json:"drop_point_id"`
	CratesNeeded int                  `json:"crates_needed"`
	PickupWindow usecase.PickupWindow `json:"pickup_window"`
}

func newPickupPassClaimsView(claims *service.PickupPassClaims) *PickupPassClaimsView {
	return &PickupPassClaimsView{
		AssignmentID: claims.AssignmentID,
		ListingID:    claims.ListingID,
		SupplierID:   claims.SupplierID,
		DropPointID:  claims.DropPointID,
		CratesNeeded: claims.CratesNeeded,
		PickupWindow: usecase.PickupWindow{
			Start: claims.PickupWindowStart,
			End:   claims.PickupWindowEnd,
		},
	}
}

// PickupPassView is an issued pickup pass
type PickupPassView struct {
	Token     string                `json:"token"`
	ExpiresAt time.Time             `json:"expires_at"`
	Pass      *PickupPassClaimsView `json:"pass"`
}
