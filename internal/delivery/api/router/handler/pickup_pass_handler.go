package handler

import (
	"log/slog"
	"net/http"

	"dropzone/internal/delivery/api/response"
	"dropzone/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PickupPassHandlerParams holds dependencies for PickupPassHandler, injected by Fx.
type PickupPassHandlerParams struct {
	fx.In

	PickupPassUC usecase.PickupPassUsecase
	Logger       *slog.Logger
}

// PickupPassHandler issues and verifies pickup passes
type PickupPassHandler struct {
	pickupPassUC usecase.PickupPassUsecase
	logger       *slog.Logger
}

// NewPickupPassHandler is the constructor for PickupPassHandler
func NewPickupPassHandler(params PickupPassHandlerParams) *PickupPassHandler {
	return &PickupPassHandler{
		pickupPassUC: params.PickupPassUC,
		logger:       params.Logger,
	}
}

// VerifyPickupPassRequest is a pass presented at a drop point, either as the
// raw token or as the scanned QR payload
type VerifyPickupPassRequest struct {
	Token       string    `json:"token" validate:"required_without=QRData"`
	QRData      string    `json:"qr_data" validate:"required_without=Token"`
	DropPointID uuid.UUID `json:"drop_point_id" validate:"required"`
}

// IssuePickupPass handles issuing a signed pass for a listing
func (h *PickupPassHandler) IssuePickupPass(c echo.Context) error {
	listingID, err := uuidParam(c, "listingId")
	if err != nil {
		return err
	}

	pass, err := h.pickupPassUC.IssuePickupPass(c.Request().Context(), listingID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, &PickupPassView{
		Token:     pass.Token,
		ExpiresAt: pass.ExpiresAt,
		Pass:      newPickupPassClaimsView(pass.Claims),
	})
}

// RenderPickupPassQR handles returning a listing's pass as a PNG QR code
func (h *PickupPassHandler) RenderPickupPassQR(c echo.Context) error {
	listingID, err := uuidParam(c, "listingId")
	if err != nil {
		return err
	}

	png, err := h.pickupPassUC.RenderPickupPassQR(c.Request().Context(), listingID)
	if err != nil {
		return err
	}

	return response.PNG(c, "pickup-pass.png", png)
}

// VerifyPickupPass handles checking a pass at a drop point
func (h *PickupPassHandler) VerifyPickupPass(c echo.Context) error {
	var req VerifyPickupPassRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	claims, err := h.pickupPassUC.VerifyPickupPass(c.Request().Context(), &usecase.VerifyPickupPassInput{
		Token:       req.Token,
		QRData:      req.QRData,
		DropPointID: req.DropPointID,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newPickupPassClaimsView(claims))
}
