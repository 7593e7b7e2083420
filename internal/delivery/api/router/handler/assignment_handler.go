package handler

import (
	"log/slog"
	"net/http"

	"dropzone/internal/delivery/api/response"
	domainerrors "dropzone/internal/domain/errors"
	"dropzone/internal/domain/geo"
	"dropzone/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AssignmentHandlerParams holds dependencies for AssignmentHandler, injected by Fx.
type AssignmentHandlerParams struct {
	fx.In

	AssignmentUC usecase.AssignmentUsecase
	Logger       *slog.Logger
}

// AssignmentHandler serves assignment creation, lookup and reassignment
type AssignmentHandler struct {
	assignmentUC usecase.AssignmentUsecase
	logger       *slog.Logger
}

// NewAssignmentHandler is the constructor for AssignmentHandler
func NewAssignmentHandler(params AssignmentHandlerParams) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentUC: params.AssignmentUC,
		logger:       params.Logger,
	}
}

// LocationRequest is a coordinate in a request body
type LocationRequest struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lng float64 `json:"lng" validate:"min=-180,max=180"`
}

// AssignRequest represents the request body for assigning a listing
type AssignRequest struct {
	ListingID     uuid.UUID       `json:"listing_id" validate:"required"`
	SupplierID    uuid.UUID       `json:"supplier_id" validate:"required"`
	Location      LocationRequest `json:"location"`
	CropType      string          `json:"crop_type" validate:"required,max=64"`
	QuantityKg    float64         `json:"quantity_kg" validate:"gt=0"`
	PreferredDate string          `json:"preferred_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// ReassignRequest represents the request body for moving an assignment
type ReassignRequest struct {
	NewDropPointID uuid.UUID `json:"new_drop_point_id" validate:"required"`
	Reason         string    `json:"reason" validate:"required,max=500"`
}

// Assign handles placing a listing at a drop point
func (h *AssignmentHandler) Assign(c echo.Context) error {
	var req AssignRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	preferredDate, err := parseDate("preferred_date", req.PreferredDate)
	if err != nil {
		return err
	}

	result, err := h.assignmentUC.Assign(c.Request().Context(), &usecase.AssignInput{
		ListingID:     req.ListingID,
		SupplierID:    req.SupplierID,
		Location:      geo.Coordinate{Lat: req.Location.Lat, Lng: req.Location.Lng},
		CropType:      req.CropType,
		QuantityKg:    req.QuantityKg,
		PreferredDate: preferredDate,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, newAssignmentView(result))
}

// GetAssignment handles looking up a listing's assignment
func (h *AssignmentHandler) GetAssignment(c echo.Context) error {
	listingID, err := uuidParam(c, "listingId")
	if err != nil {
		return err
	}

	result, err := h.assignmentUC.GetAssignment(c.Request().Context(), listingID)
	if err != nil {
		return err
	}
	if result == nil {
		return domainerrors.ErrAssignmentNotFound
	}

	return response.Success(c, http.StatusOK, newAssignmentView(result))
}

// Reassign handles moving an assignment to another drop point
func (h *AssignmentHandler) Reassign(c echo.Context) error {
	listingID, err := uuidParam(c, "listingId")
	if err != nil {
		return err
	}

	var req ReassignRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.assignmentUC.Reassign(c.Request().Context(), &usecase.ReassignInput{
		ListingID:      listingID,
		NewDropPointID: req.NewDropPointID,
		Reason:         req.Reason,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newAssignmentView(result))
}

// GetUpcomingDeliveries handles listing a supplier's pending deliveries
func (h *AssignmentHandler) GetUpcomingDeliveries(c echo.Context) error {
	supplierID, err := uuidParam(c, "supplierId")
	if err != nil {
		return err
	}

	results, err := h.assignmentUC.GetUpcomingDeliveries(c.Request().Context(), supplierID)
	if err != nil {
		return err
	}

	views := make([]*AssignmentView, 0, len(results))
	for _, result := range results {
		views = append(views, newAssignmentView(result))
	}

	return response.Success(c, http.StatusOK, views)
}
