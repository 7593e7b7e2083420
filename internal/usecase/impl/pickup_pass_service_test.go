package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"dropzone/internal/domain/entity"
	domainerrors "dropzone/internal/domain/errors"
	"dropzone/internal/domain/geo"
	"dropzone/internal/domain/repository"
	"dropzone/internal/domain/service"
	mockRepo "dropzone/internal/mocks/repository"
	mockService "dropzone/internal/mocks/service"
	"dropzone/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pickupPassMocks struct {
	assignmentRepo *mockRepo.MockAssignmentRepository
	passSvc        *mockService.MockPickupPassService
	qrCodeSvc      *mockService.MockQRCodeService
}

func newTestPickupPassService(t *testing.T) (usecase.PickupPassUsecase, *pickupPassMocks) {
	t.Helper()

	mocks := &pickupPassMocks{
		assignmentRepo: mockRepo.NewMockAssignmentRepository(t),
		passSvc:        mockService.NewMockPickupPassService(t),
		qrCodeSvc:      mockService.NewMockQRCodeService(t),
	}

	svc := NewPickupPassService(PickupPassServiceParams{
		AssignmentRepo: mocks.assignmentRepo,
		PassSvc:        mocks.passSvc,
		QRCodeSvc:      mocks.qrCodeSvc,
		Logger:         testLogger(),
	})

	return svc, mocks
}

func newStoredAssignment(point *entity.DropPoint) *entity.AssignmentWithDropPoint {
	return &entity.AssignmentWithDropPoint{
		Assignment: &entity.Assignment{
			ID:                uuid.New(),
			ListingID:         uuid.New(),
			SupplierID:        uuid.New(),
			DropPointID:       point.ID,
			PickupWindowStart: testDate.Add(7 * time.Hour),
			PickupWindowEnd:   testDate.Add(9 * time.Hour),
			CratesNeeded:      3,
			Status:            entity.AssignmentStatusAssigned,
		},
		DropPoint: point,
	}
}

func claimsOf(assignment *entity.Assignment, expiresAt time.Time) *service.PickupPassClaims {
	return &service.PickupPassClaims{
		AssignmentID:      assignment.ID,
		ListingID:         assignment.ListingID,
		SupplierID:        assignment.SupplierID,
		DropPointID:       assignment.DropPointID,
		CratesNeeded:      assignment.CratesNeeded,
		PickupWindowStart: assignment.PickupWindowStart,
		PickupWindowEnd:   assignment.PickupWindowEnd,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
}

func TestPickupPassService_IssuePickupPass(t *testing.T) {
	ctx := context.Background()
	point := newDropPoint("A", geo.Coordinate{Lat: 13.1445, Lng: 78.1350})

	t.Run("signs the current assignment", func(t *testing.T) {
		svc, m := newTestPickupPassService(t)
		stored := newStoredAssignment(point)
		assignment := stored.Assignment
		expiresAt := assignment.PickupWindowEnd.Add(2 * time.Hour)

		m.assignmentRepo.EXPECT().FindAssignmentByListing(ctx, assignment.ListingID).Return(stored, nil)
		m.passSvc.EXPECT().
			Issue(mock.MatchedBy(func(claims service.PickupPassClaims) bool {
				return claims.AssignmentID == assignment.ID &&
					claims.DropPointID == point.ID &&
					claims.CratesNeeded == 3 &&
					claims.PickupWindowEnd.Equal(assignment.PickupWindowEnd)
			})).
			Return("signed-token", claimsOf(assignment, expiresAt), nil)

		pass, err := svc.IssuePickupPass(ctx, assignment.ListingID)
		require.NoError(t, err)
		assert.Equal(t, "signed-token", pass.Token)
		assert.True(t, pass.ExpiresAt.Equal(expiresAt))
		assert.Equal(t, assignment.ListingID, pass.Claims.ListingID)
	})

	t.Run("no assignment", func(t *testing.T) {
		svc, m := newTestPickupPassService(t)
		listingID := uuid.New()

		m.assignmentRepo.EXPECT().FindAssignmentByListing(ctx, listingID).Return(nil, repository.ErrAssignmentNotFound)

		pass, err := svc.IssuePickupPass(ctx, listingID)
		assert.ErrorIs(t, err, domainerrors.ErrAssignmentNotFound)
		assert.Nil(t, pass)
	})

	t.Run("signing failure", func(t *testing.T) {
		svc, m := newTestPickupPassService(t)
		stored := newStoredAssignment(point)

		m.assignmentRepo.EXPECT().FindAssignmentByListing(ctx, stored.Assignment.ListingID).Return(stored, nil)
		m.passSvc.EXPECT().Issue(mock.Anything).Return("", nil, errors.New("bad key"))

		_, err := svc.IssuePickupPass(ctx, stored.Assignment.ListingID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to issue pickup pass")
	})

	t.Run("window already closed", func(t *testing.T) {
		svc, m := newTestPickupPassService(t)
		stored := newStoredAssignment(point)

		m.assignmentRepo.EXPECT().FindAssignmentByListing(ctx, stored.Assignment.ListingID).Return(stored, nil)
		m.passSvc.EXPECT().Issue(mock.Anything).Return("", nil, service.ErrPickupPassExpired)

		pass, err := svc.IssuePickupPass(ctx, stored.Assignment.ListingID)
		assert.ErrorIs(t, err, domainerrors.ErrPickupWindowClosed)
		assert.Nil(t, pass)
	})
}

func TestPickupPassService_RenderPickupPassQR(t *testing.T) {
	ctx := context.Background()
	point := newDropPoint("A", geo.Coordinate{Lat: 13.1445, Lng: 78.1350})
	svc, m := newTestPickupPassService(t)
	stored := newStoredAssignment(point)
	assignment := stored.Assignment
	png := []byte{0x89, 'P', 'N', 'G'}

	m.assignmentRepo.EXPECT().FindAssignmentByListing(ctx, assignment.ListingID).Return(stored, nil)
	m.passSvc.EXPECT().Issue(mock.Anything).Return("signed-token", claimsOf(assignment, assignment.PickupWindowEnd), nil)
	m.qrCodeSvc.EXPECT().GeneratePickupPassQR("signed-token").Return(png, nil)

	got, err := svc.RenderPickupPassQR(ctx, assignment.ListingID)
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestPickupPassService_VerifyPickupPass(t *testing.T) {
	ctx := context.Background()
	point := newDropPoint("A", geo.Coordinate{Lat: 13.1445, Lng: 78.1350})
	other := newDropPoint("B", geo.Coordinate{Lat: 13.2000, Lng: 78.1350})

	t.Run("valid token", func(t *testing.T) {
		svc, m := newTestPickupPassService(t)
		stored := newStoredAssignment(point)
		claims := claimsOf(stored.Assignment, stored.Assignment.PickupWindowEnd)

		m.passSvc.EXPECT().Verify("signed-token").Return(claims, nil)
		m.assignmentRepo.EXPECT().FindAssignmentByListing(ctx, stored.Assignment.ListingID).Return(stored, nil)

		got, err := svc.VerifyPickupPass(ctx, &usecase.VerifyPickupPassInput{Token: "signed-token", DropPointID: point.ID})
		require.NoError(t, err)
		assert.Equal(t, claims, got)
	})

	t.Run("valid QR payload", func(t *testing.T) {
		svc, m := newTestPickupPassService(t)
		stored := newStoredAssignment(point)
		claims := claimsOf(stored.Assignment, stored.Assignment.PickupWindowEnd)

		m.qrCodeSvc.EXPECT().ParsePickupPassQR(`{"type":"pickup_pass","v":1,"pass":"signed-token"}`).Return("signed-token", nil)
		m.passSvc.EXPECT().Verify("signed-token").Return(claims, nil)
		m.assignmentRepo.EXPECT().FindAssignmentByListing(ctx, stored.Assignment.ListingID).Return(stored, nil)

		got, err := svc.VerifyPickupPass(ctx, &usecase.VerifyPickupPassInput{QRData: `{"type":"pickup_pass","v":1,"pass":"signed-token"}`, DropPointID: point.ID})
		require.NoError(t, err)
		assert.Equal(t, stored.Assignment.ID, got.AssignmentID)
	})

	t.Run("nothing presented", func(t *testing.T) {
		svc, _ := newTestPickupPassService(t)

		_, err := svc.VerifyPickupPass(ctx, &usecase.VerifyPickupPassInput{DropPointID: point.ID})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("unreadable QR payload", func(t *testing.T) {
		svc, m := newTestPickupPassService(t)

		m.qrCodeSvc.EXPECT().ParsePickupPassQR("garbage").Return("", errors.New("failed to unmarshal QR code data"))

		_, err := svc.VerifyPickupPass(ctx, &usecase.VerifyPickupPassInput{QRData: "garbage", DropPointID: point.ID})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidPickupPass)
	})

	t.Run("expired or tampered token", func(t *testing.T) {
		svc, m := newTestPickupPassService(t)

		m.passSvc.EXPECT().Verify("stale-token").Return(nil, jwt.ErrTokenExpired)

		_, err := svc.VerifyPickupPass(ctx, &usecase.VerifyPickupPassInput{Token: "stale-token", DropPointID: point.ID})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidPickupPass)
	})

	t.Run("presented at another drop point", func(t *testing.T) {
		svc, m := newTestPickupPassService(t)
		stored := newStoredAssignment(point)

		m.passSvc.EXPECT().Verify("signed-token").Return(claimsOf(stored.Assignment, stored.Assignment.PickupWindowEnd), nil)

		_, err := svc.VerifyPickupPass(ctx, &usecase.VerifyPickupPassInput{Token: "signed-token", DropPointID: other.ID})
		assert.ErrorIs(t, err, domainerrors.ErrPickupPassWrongDropPoint)
	})

	t.Run("listing reassigned since issue", func(t *testing.T) {
		svc, m := newTestPickupPassService(t)
		stored := newStoredAssignment(point)
		claims := claimsOf(stored.Assignment, stored.Assignment.PickupWindowEnd)

		moved := *stored.Assignment
		moved.DropPointID = other.ID
		moved.Status = entity.AssignmentStatusReassigned

		m.passSvc.EXPECT().Verify("signed-token").Return(claims, nil)
		m.assignmentRepo.EXPECT().
			FindAssignmentByListing(ctx, stored.Assignment.ListingID).
			Return(&entity.AssignmentWithDropPoint{Assignment: &moved, DropPoint: other}, nil)

		_, err := svc.VerifyPickupPass(ctx, &usecase.VerifyPickupPassInput{Token: "signed-token", DropPointID: point.ID})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidPickupPass)
	})

	t.Run("assignment gone", func(t *testing.T) {
		svc, m := newTestPickupPassService(t)
		stored := newStoredAssignment(point)

		m.passSvc.EXPECT().Verify("signed-token").Return(claimsOf(stored.Assignment, stored.Assignment.PickupWindowEnd), nil)
		m.assignmentRepo.EXPECT().
			FindAssignmentByListing(ctx, stored.Assignment.ListingID).
			Return(nil, repository.ErrAssignmentNotFound)

		_, err := svc.VerifyPickupPass(ctx, &usecase.VerifyPickupPassInput{Token: "signed-token", DropPointID: point.ID})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidPickupPass)
	})
}
