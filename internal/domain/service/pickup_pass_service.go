package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// PickupPassClaims are the claims carried by a signed pickup pass.
type PickupPassClaims struct {
	AssignmentID      uuid.UUID `json:"aid"`
	ListingID         uuid.UUID `json:"lid"`
	SupplierID        uuid.UUID `json:"sid"`
	DropPointID       uuid.UUID `json:"dpid"`
	CratesNeeded      int       `json:"crates"`
	PickupWindowStart time.Time `json:"ws"`
	PickupWindowEnd   time.Time `json:"we"`
	jwt.RegisteredClaims
}

// ErrPickupPassExpired is returned by Issue when the pass would already be
// expired at signing time.
var ErrPickupPassExpired = errors.New("pickup pass window has closed")

// PickupPassService issues and validates pickup passes handed to suppliers.
type PickupPassService interface {
	// Issue signs a pass for the given claims and returns the token with the
	// claims as signed, registered claims included.
	Issue(claims PickupPassClaims) (string, *PickupPassClaims, error)

	// Verify parses a pass and checks its signature and expiry.
	Verify(token string) (*PickupPassClaims, error)
}
