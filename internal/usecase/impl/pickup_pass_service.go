package impl

import (
	"context"
	"log/slog"

	deliverycontext "dropzone/internal/delivery/context"
	domainerrors "dropzone/internal/domain/errors"
	"dropzone/internal/domain/repository"
	"dropzone/internal/domain/service"
	"dropzone/internal/errors"
	"dropzone/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// PickupPassServiceParams holds dependencies for the pickup pass service, injected by Fx
type PickupPassServiceParams struct {
	fx.In

	AssignmentRepo repository.AssignmentRepository
	PassSvc        service.PickupPassService
	QRCodeSvc      service.QRCodeService
	Logger         *slog.Logger
}

type pickupPassService struct {
	assignmentRepo repository.AssignmentRepository
	passSvc        service.PickupPassService
	qrCodeSvc      service.QRCodeService
	logger         *slog.Logger
}

// NewPickupPassService creates a new pickup pass service instance
func NewPickupPassService(params PickupPassServiceParams) usecase.PickupPassUsecase {
	return &pickupPassService{
		assignmentRepo: params.AssignmentRepo,
		passSvc:        params.PassSvc,
		qrCodeSvc:      params.QRCodeSvc,
		logger:         params.Logger,
	}
}

// IssuePickupPass signs a pass for the listing's current drop point and pickup window
func (s *pickupPassService) IssuePickupPass(ctx context.Context, listingID uuid.UUID) (*usecase.PickupPass, error) {
	found, err := s.assignmentRepo.FindAssignmentByListing(ctx, listingID)
	if err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return nil, domainerrors.ErrAssignmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find assignment by listing")
	}

	assignment := found.Assignment
	claims := service.PickupPassClaims{
		AssignmentID:      assignment.ID,
		ListingID:         assignment.ListingID,
		SupplierID:        assignment.SupplierID,
		DropPointID:       assignment.DropPointID,
		CratesNeeded:      assignment.CratesNeeded,
		PickupWindowStart: assignment.PickupWindowStart,
		PickupWindowEnd:   assignment.PickupWindowEnd,
	}

	token, signed, err := s.passSvc.Issue(claims)
	if err != nil {
		if errors.Is(err, service.ErrPickupPassExpired) {
			return nil, domainerrors.ErrPickupWindowClosed
		}

		return nil, errors.Wrap(err, "failed to issue pickup pass")
	}

	pass := &usecase.PickupPass{
		Token:  token,
		Claims: signed,
	}
	if signed.ExpiresAt != nil {
		pass.ExpiresAt = signed.ExpiresAt.Time
	}

	return pass, nil
}

// RenderPickupPassQR issues a pass and renders it as a PNG QR code
func (s *pickupPassService) RenderPickupPassQR(ctx context.Context, listingID uuid.UUID) ([]byte, error) {
	pass, err := s.IssuePickupPass(ctx, listingID)
	if err != nil {
		return nil, err
	}

	png, err := s.qrCodeSvc.GeneratePickupPassQR(pass.Token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render pickup pass QR code")
	}

	return png, nil
}

// VerifyPickupPass checks a pass presented at a drop point. A pass is rejected when its
// signature or expiry is invalid, when it names another drop point, or when the
// assignment has since moved to another drop point.
func (s *pickupPassService) VerifyPickupPass(ctx context.Context, input *usecase.VerifyPickupPassInput) (*service.PickupPassClaims, error) {
	logger := deliverycontext.LoggerFromContext(ctx, s.logger)

	token := input.Token
	if token == "" {
		if input.QRData == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("token or qr data is required")
		}

		parsed, err := s.qrCodeSvc.ParsePickupPassQR(input.QRData)
		if err != nil {
			logger.Info("Rejected unreadable pickup pass QR code", slog.Any("error", err))

			return nil, domainerrors.ErrInvalidPickupPass
		}
		token = parsed
	}

	claims, err := s.passSvc.Verify(token)
	if err != nil {
		logger.Info("Rejected pickup pass", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidPickupPass
	}

	if claims.DropPointID != input.DropPointID {
		return nil, domainerrors.ErrPickupPassWrongDropPoint
	}

	found, err := s.assignmentRepo.FindAssignmentByListing(ctx, claims.ListingID)
	if err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return nil, domainerrors.ErrInvalidPickupPass
		}

		return nil, errors.Wrap(err, "failed to find assignment by listing")
	}

	if found.Assignment.DropPointID != claims.DropPointID {
		logger.Info("Rejected pickup pass for reassigned listing",
			slog.String("listing_id", claims.ListingID.String()),
		)

		return nil, domainerrors.ErrInvalidPickupPass
	}

	return claims, nil
}
