// Package auth provides concrete implementations for pickup pass signing.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"dropzone/config"
	"dropzone/internal/domain/service"
	"dropzone/internal/errors"
)

const pickupPassIssuer = "dropzone"

// jwtPickupPassService signs pickup passes as HS256 JWTs.
type jwtPickupPassService struct {
	secret []byte
	grace  time.Duration // How long a pass stays valid after its window closes.
	now    func() time.Time
}

// NewPickupPassService is the constructor for the JWT backed pickup pass service.
func NewPickupPassService(cfg *config.Config) (service.PickupPassService, error) {
	if cfg.PickupPass == nil || cfg.PickupPass.Secret == "" {
		return nil, errors.New("pickup pass secret must be provided")
	}
	return &jwtPickupPassService{
		secret: []byte(cfg.PickupPass.Secret),
		grace:  cfg.PickupPass.GracePeriod,
		now:    time.Now,
	}, nil
}

// Issue signs the claims. The pass expires grace after the pickup window ends;
// a pass that would already be expired is refused with service.ErrPickupPassExpired.
func (s *jwtPickupPassService) Issue(claims service.PickupPassClaims) (string, *service.PickupPassClaims, error) {
	now := s.now()
	expiresAt := claims.PickupWindowEnd.Add(s.grace)
	if !now.Before(expiresAt) {
		return "", nil, service.ErrPickupPassExpired
	}

	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    pickupPassIssuer,
		Subject:   claims.ListingID.String(),
		ID:        claims.AssignmentID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to sign pickup pass")
	}
	return signed, &claims, nil
}

// Verify checks the signature, issuer and expiry of a pass and returns its claims.
func (s *jwtPickupPassService) Verify(tokenString string) (*service.PickupPassClaims, error) {
	claims := &service.PickupPassClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	},
		jwt.WithIssuer(pickupPassIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse pickup pass")
	}
	if !token.Valid {
		return nil, errors.New("pickup pass is not valid")
	}
	return claims, nil
}
