package usecase

import (
	"context"
	"time"

	"dropzone/internal/domain/service"

	"github.com/google/uuid"
)

// PickupPass is a signed pass a supplier shows at the drop point
type PickupPass struct {
	Token     string
	ExpiresAt time.Time
	Claims    *service.PickupPassClaims
}

// VerifyPickupPassInput represents a pass check at a drop point.
// Either Token or QRData (the scanned QR payload) must be set.
type VerifyPickupPassInput struct {
	Token       string
	QRData      string
	DropPointID uuid.UUID
}

// PickupPassUsecase defines the interface for pickup pass use cases
type PickupPassUsecase interface {
	// IssuePickupPass signs a pass for the listing's current assignment
	IssuePickupPass(ctx context.Context, listingID uuid.UUID) (*PickupPass, error)

	// RenderPickupPassQR returns the listing's pickup pass as a PNG QR code
	RenderPickupPassQR(ctx context.Context, listingID uuid.UUID) ([]byte, error)

	// VerifyPickupPass validates a pass presented at a drop point
	VerifyPickupPass(ctx context.Context, input *VerifyPickupPassInput) (*service.PickupPassClaims, error)
}
