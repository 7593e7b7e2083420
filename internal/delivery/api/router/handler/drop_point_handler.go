package handler

import (
	"log/slog"
	"net/http"

	"dropzone/internal/delivery/api/response"
	domainerrors "dropzone/internal/domain/errors"
	"dropzone/internal/domain/geo"
	"dropzone/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DropPointHandlerParams holds dependencies for DropPointHandler, injected by Fx.
type DropPointHandlerParams struct {
	fx.In

	DropPointUC usecase.DropPointUsecase
	Logger      *slog.Logger
}

// DropPointHandler serves drop point lookups
type DropPointHandler struct {
	dropPointUC usecase.DropPointUsecase
	logger      *slog.Logger
}

// NewDropPointHandler is the constructor for DropPointHandler
func NewDropPointHandler(params DropPointHandlerParams) *DropPointHandler {
	return &DropPointHandler{
		dropPointUC: params.DropPointUC,
		logger:      params.Logger,
	}
}

// NearbyRequest holds the nearby search query
type NearbyRequest struct {
	Lat      float64 `json:"lat" validate:"min=-90,max=90"`
	Lng      float64 `json:"lng" validate:"min=-180,max=180"`
	RadiusKm float64 `json:"radius" validate:"gte=0,lte=200"`
}

// GetNearbyDropPoints handles GET /drop-points/nearby?lat=&lng=&radius=
func (h *DropPointHandler) GetNearbyDropPoints(c echo.Context) error {
	var req NearbyRequest
	err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &req.Lat).
		MustFloat64("lng", &req.Lng).
		Float64("radius", &req.RadiusKm).
		BindError()
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("lat and lng are required numbers, radius must be a number")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	points, err := h.dropPointUC.GetNearbyDropPoints(c.Request().Context(), &usecase.NearbyInput{
		Location: geo.Coordinate{Lat: req.Lat, Lng: req.Lng},
		RadiusKm: req.RadiusKm,
	})
	if err != nil {
		return err
	}

	views := make([]*NearbyDropPointView, 0, len(points))
	for _, point := range points {
		views = append(views, &NearbyDropPointView{
			DropPointView: newDropPointView(point.DropPoint),
			DistanceKm:    point.DistanceKm,
			IsOpenNow:     point.IsOpenNow,
		})
	}

	return response.Success(c, http.StatusOK, views)
}

// GetDropPoint handles reading a single drop point
func (h *DropPointHandler) GetDropPoint(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	point, err := h.dropPointUC.GetDropPoint(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newDropPointView(point))
}

// GetSlot handles GET /drop-points/:id/slots?date=YYYY-MM-DD
func (h *DropPointHandler) GetSlot(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	date, err := parseDate("date", c.QueryParam("date"))
	if err != nil {
		return err
	}

	view, err := h.dropPointUC.GetSlot(c.Request().Context(), id, date)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newSlotView(view))
}
