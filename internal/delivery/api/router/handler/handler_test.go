package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dropzone/config"
	"dropzone/internal/delivery/api"
	"dropzone/internal/delivery/api/router"
	"dropzone/internal/delivery/api/router/handler"
	"dropzone/internal/domain/entity"
	domainerrors "dropzone/internal/domain/errors"
	"dropzone/internal/domain/geo"
	"dropzone/internal/domain/service"
	mockUsecase "dropzone/internal/mocks/usecase"
	"dropzone/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	echo         *echo.Echo
	assignmentUC *mockUsecase.MockAssignmentUsecase
	dropPointUC  *mockUsecase.MockDropPointUsecase
	pickupPassUC *mockUsecase.MockPickupPassUsecase
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := &testServer{
		assignmentUC: mockUsecase.NewMockAssignmentUsecase(t),
		dropPointUC:  mockUsecase.NewMockDropPointUsecase(t),
		pickupPassUC: mockUsecase.NewMockPickupPassUsecase(t),
	}

	srv.echo = api.NewEcho(&config.Config{}, logger)
	router.NewRouter(router.RouterParams{
		AssignmentHandler: handler.NewAssignmentHandler(handler.AssignmentHandlerParams{AssignmentUC: srv.assignmentUC, Logger: logger}),
		DropPointHandler:  handler.NewDropPointHandler(handler.DropPointHandlerParams{DropPointUC: srv.dropPointUC, Logger: logger}),
		PickupPassHandler: handler.NewPickupPassHandler(handler.PickupPassHandlerParams{PickupPassUC: srv.pickupPassUC, Logger: logger}),
	}).RegisterRoutes(srv.echo)

	return srv
}

func (s *testServer) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func sampleResult() *usecase.AssignmentResult {
	pointID := uuid.New()
	start := time.Date(2024, 6, 11, 7, 0, 0, 0, time.UTC)

	return &usecase.AssignmentResult{
		Assignment: &entity.Assignment{
			ID:                uuid.New(),
			ListingID:         uuid.New(),
			SupplierID:        uuid.New(),
			DropPointID:       pointID,
			SupplierLocation:  geo.Coordinate{Lat: 13.14, Lng: 78.135},
			DistanceKm:        0.5,
			PickupWindowStart: start,
			PickupWindowEnd:   start.Add(2 * time.Hour),
			CratesNeeded:      3,
			Status:            entity.AssignmentStatusAssigned,
		},
		DropPoint: &usecase.DropPointSummary{
			ID:         pointID,
			Name:       "Kolar APMC Gate 2",
			Address:    "APMC Yard, Kolar",
			Location:   geo.Coordinate{Lat: 13.1445, Lng: 78.135},
			DistanceKm: 0.5,
		},
		PickupWindow: usecase.PickupWindow{Start: start, End: start.Add(2 * time.Hour)},
		CratesNeeded: 3,
	}
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestAssignmentHandler_Assign(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		srv := newTestServer(t)
		result := sampleResult()
		listingID := result.Assignment.ListingID

		srv.assignmentUC.EXPECT().
			Assign(mock.Anything, mock.MatchedBy(func(input *usecase.AssignInput) bool {
				return input.ListingID == listingID &&
					input.CropType == "tomato" &&
					input.QuantityKg == 120 &&
					input.Location == geo.Coordinate{Lat: 13.14, Lng: 78.135} &&
					input.PreferredDate != nil &&
					input.PreferredDate.Format("2006-01-02") == "2024-06-11"
			})).
			Return(result, nil)

		body := `{"listing_id":"` + listingID.String() + `","supplier_id":"` + uuid.NewString() + `",
			"location":{"lat":13.14,"lng":78.135},"crop_type":"tomato","quantity_kg":120,"preferred_date":"2024-06-11"}`
		rec := srv.do(http.MethodPost, "/api/v1/assignments", body)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		env := decode(t, rec)
		assert.NotEmpty(t, env.Meta.RequestID)

		var view handler.AssignmentView
		require.NoError(t, json.Unmarshal(env.Data, &view))
		assert.Equal(t, listingID, view.ListingID)
		assert.Equal(t, "Kolar APMC Gate 2", view.DropPoint.Name)
		assert.Equal(t, 3, view.CratesNeeded)
		assert.Equal(t, entity.AssignmentStatusAssigned, view.Status)
		assert.True(t, view.PickupWindow.Start.Equal(result.PickupWindow.Start))
	})

	t.Run("invalid body", func(t *testing.T) {
		srv := newTestServer(t)

		body := `{"listing_id":"` + uuid.NewString() + `","supplier_id":"` + uuid.NewString() + `",
			"location":{"lat":95,"lng":78.135},"crop_type":"tomato","quantity_kg":0}`
		rec := srv.do(http.MethodPost, "/api/v1/assignments", body)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Contains(t, env.Error.Details, "quantity_kg: gt=0")
		assert.Contains(t, env.Error.Details, "location.lat: max=90")
	})

	t.Run("malformed preferred date", func(t *testing.T) {
		srv := newTestServer(t)

		body := `{"listing_id":"` + uuid.NewString() + `","supplier_id":"` + uuid.NewString() + `",
			"location":{"lat":13.14,"lng":78.135},"crop_type":"tomato","quantity_kg":10,"preferred_date":"11/06/2024"}`
		rec := srv.do(http.MethodPost, "/api/v1/assignments", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("undecodable body", func(t *testing.T) {
		srv := newTestServer(t)

		rec := srv.do(http.MethodPost, "/api/v1/assignments", `{"quantity_kg":"lots"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
	})

	t.Run("no drop points in range", func(t *testing.T) {
		srv := newTestServer(t)
		srv.assignmentUC.EXPECT().Assign(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrNoDropPointsFound)

		body := `{"listing_id":"` + uuid.NewString() + `","supplier_id":"` + uuid.NewString() + `",
			"location":{"lat":0,"lng":0},"crop_type":"tomato","quantity_kg":10}`
		rec := srv.do(http.MethodPost, "/api/v1/assignments", body)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "NO_DROP_POINTS_FOUND", decode(t, rec).Error.Code)
	})

	t.Run("collaborator failure hides details", func(t *testing.T) {
		srv := newTestServer(t)
		srv.assignmentUC.EXPECT().Assign(mock.Anything, mock.Anything).Return(nil, errors.New("pq: connection refused"))

		body := `{"listing_id":"` + uuid.NewString() + `","supplier_id":"` + uuid.NewString() + `",
			"location":{"lat":13.14,"lng":78.135},"crop_type":"tomato","quantity_kg":10}`
		rec := srv.do(http.MethodPost, "/api/v1/assignments", body)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
		assert.Nil(t, env.Error.Details)
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})
}

func TestAssignmentHandler_GetAssignment(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		srv := newTestServer(t)
		result := sampleResult()
		srv.assignmentUC.EXPECT().GetAssignment(mock.Anything, result.Assignment.ListingID).Return(result, nil)

		rec := srv.do(http.MethodGet, "/api/v1/assignments/"+result.Assignment.ListingID.String(), "")

		require.Equal(t, http.StatusOK, rec.Code)
		var view handler.AssignmentView
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &view))
		assert.Equal(t, result.Assignment.ID, view.ID)
	})

	t.Run("absent", func(t *testing.T) {
		srv := newTestServer(t)
		listingID := uuid.New()
		srv.assignmentUC.EXPECT().GetAssignment(mock.Anything, listingID).Return(nil, nil)

		rec := srv.do(http.MethodGet, "/api/v1/assignments/"+listingID.String(), "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "ASSIGNMENT_NOT_FOUND", decode(t, rec).Error.Code)
	})

	t.Run("malformed listing id", func(t *testing.T) {
		srv := newTestServer(t)

		rec := srv.do(http.MethodGet, "/api/v1/assignments/not-a-uuid", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "listingId: must be a UUID", decode(t, rec).Error.Details)
	})
}

func TestAssignmentHandler_Reassign(t *testing.T) {
	t.Run("moved", func(t *testing.T) {
		srv := newTestServer(t)
		result := sampleResult()
		reason := "road closed"
		previous := uuid.New()
		result.Assignment.Status = entity.AssignmentStatusReassigned
		result.Assignment.ChangeReason = &reason
		result.Assignment.PreviousDropPointID = &previous
		listingID := result.Assignment.ListingID
		newPointID := result.DropPoint.ID

		srv.assignmentUC.EXPECT().
			Reassign(mock.Anything, &usecase.ReassignInput{ListingID: listingID, NewDropPointID: newPointID, Reason: reason}).
			Return(result, nil)

		body := `{"new_drop_point_id":"` + newPointID.String() + `","reason":"road closed"}`
		rec := srv.do(http.MethodPut, "/api/v1/assignments/"+listingID.String()+"/reassign", body)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var view handler.AssignmentView
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &view))
		assert.Equal(t, entity.AssignmentStatusReassigned, view.Status)
		require.NotNil(t, view.PreviousDropPointID)
		assert.Equal(t, previous, *view.PreviousDropPointID)
		assert.Equal(t, "road closed", *view.ChangeReason)
	})

	t.Run("reason required", func(t *testing.T) {
		srv := newTestServer(t)

		body := `{"new_drop_point_id":"` + uuid.NewString() + `"}`
		rec := srv.do(http.MethodPut, "/api/v1/assignments/"+uuid.NewString()+"/reassign", body)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode(t, rec).Error.Details, "reason: required")
	})

	t.Run("unknown drop point", func(t *testing.T) {
		srv := newTestServer(t)
		srv.assignmentUC.EXPECT().Reassign(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrDropPointNotFound)

		body := `{"new_drop_point_id":"` + uuid.NewString() + `","reason":"full"}`
		rec := srv.do(http.MethodPut, "/api/v1/assignments/"+uuid.NewString()+"/reassign", body)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "DROP_POINT_NOT_FOUND", decode(t, rec).Error.Code)
	})
}

func TestAssignmentHandler_GetUpcomingDeliveries(t *testing.T) {
	srv := newTestServer(t)
	supplierID := uuid.New()
	srv.assignmentUC.EXPECT().
		GetUpcomingDeliveries(mock.Anything, supplierID).
		Return([]*usecase.AssignmentResult{sampleResult(), sampleResult()}, nil)

	rec := srv.do(http.MethodGet, "/api/v1/suppliers/"+supplierID.String()+"/deliveries", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var views []handler.AssignmentView
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &views))
	assert.Len(t, views, 2)
}

func TestDropPointHandler_GetNearbyDropPoints(t *testing.T) {
	t.Run("lists points with open flag", func(t *testing.T) {
		srv := newTestServer(t)
		hours := entity.NewOperatingHours()
		hours[time.Monday] = entity.DailyHours{Open: 6 * 60, Close: 18 * 60}
		point := &entity.DropPoint{
			ID:       uuid.New(),
			Name:     "Kolar APMC Gate 2",
			Location: geo.Coordinate{Lat: 13.1445, Lng: 78.135},
			IsActive: true,
			Hours:    hours,
			Crates:   entity.CrateInventory{"tomato": 40},
		}

		srv.dropPointUC.EXPECT().
			GetNearbyDropPoints(mock.Anything, &usecase.NearbyInput{Location: geo.Coordinate{Lat: 13.14, Lng: 78.135}, RadiusKm: 5}).
			Return([]*usecase.NearbyDropPoint{{DropPoint: point, DistanceKm: 0.5, IsOpenNow: true}}, nil)

		rec := srv.do(http.MethodGet, "/api/v1/drop-points/nearby?lat=13.14&lng=78.135&radius=5", "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var views []map[string]any
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &views))
		require.Len(t, views, 1)
		assert.Equal(t, "Kolar APMC Gate 2", views[0]["name"])
		assert.Equal(t, 0.5, views[0]["distance_km"])
		assert.Equal(t, true, views[0]["is_open_now"])
		assert.Equal(t, map[string]any{"open": "06:00", "close": "18:00"}, views[0]["hours"].(map[string]any)["monday"])
		assert.Equal(t, map[string]any{"closed": true}, views[0]["hours"].(map[string]any)["sunday"])
	})

	t.Run("missing coordinates", func(t *testing.T) {
		srv := newTestServer(t)

		rec := srv.do(http.MethodGet, "/api/v1/drop-points/nearby?lat=13.14", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
	})

	t.Run("out of range latitude", func(t *testing.T) {
		srv := newTestServer(t)

		rec := srv.do(http.MethodGet, "/api/v1/drop-points/nearby?lat=123&lng=78.135", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode(t, rec).Error.Details, "lat: max=90")
	})
}

func TestDropPointHandler_GetDropPoint(t *testing.T) {
	srv := newTestServer(t)
	id := uuid.New()
	srv.dropPointUC.EXPECT().GetDropPoint(mock.Anything, id).Return(nil, domainerrors.ErrDropPointNotFound)

	rec := srv.do(http.MethodGet, "/api/v1/drop-points/"+id.String(), "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "DROP_POINT_NOT_FOUND", decode(t, rec).Error.Code)
}

func TestDropPointHandler_GetSlot(t *testing.T) {
	srv := newTestServer(t)
	pointID := uuid.New()
	date := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)
	slot := &entity.CapacitySlot{
		ID:             uuid.New(),
		DropPointID:    pointID,
		Date:           date,
		StartHour:      7,
		DurationHours:  2,
		MaxCapacityKg:  1000,
		UsedCapacityKg: 250,
	}

	srv.dropPointUC.EXPECT().
		GetSlot(mock.Anything, pointID, &date).
		Return(&usecase.SlotView{
			Slot:        slot,
			AvailableKg: 750,
			PickupWindow: usecase.PickupWindow{
				Start: date.Add(7 * time.Hour),
				End:   date.Add(9 * time.Hour),
			},
		}, nil)

	rec := srv.do(http.MethodGet, "/api/v1/drop-points/"+pointID.String()+"/slots?date=2024-06-14", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var view handler.SlotView
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &view))
	assert.Equal(t, "2024-06-14", view.Date)
	assert.Equal(t, 750.0, view.AvailableKg)
	assert.Equal(t, 250.0, view.UsedCapacityKg)
}

func TestPickupPassHandler(t *testing.T) {
	claims := &service.PickupPassClaims{
		AssignmentID:      uuid.New(),
		ListingID:         uuid.New(),
		SupplierID:        uuid.New(),
		DropPointID:       uuid.New(),
		CratesNeeded:      2,
		PickupWindowStart: time.Date(2024, 6, 11, 7, 0, 0, 0, time.UTC),
		PickupWindowEnd:   time.Date(2024, 6, 11, 9, 0, 0, 0, time.UTC),
	}

	t.Run("issue", func(t *testing.T) {
		srv := newTestServer(t)
		expiresAt := claims.PickupWindowEnd.Add(2 * time.Hour)
		srv.pickupPassUC.EXPECT().
			IssuePickupPass(mock.Anything, claims.ListingID).
			Return(&usecase.PickupPass{Token: "signed-token", ExpiresAt: expiresAt, Claims: claims}, nil)

		rec := srv.do(http.MethodGet, "/api/v1/assignments/"+claims.ListingID.String()+"/pass", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var view handler.PickupPassView
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &view))
		assert.Equal(t, "signed-token", view.Token)
		assert.True(t, view.ExpiresAt.Equal(expiresAt))
		assert.Equal(t, claims.DropPointID, view.Pass.DropPointID)
	})

	t.Run("png", func(t *testing.T) {
		srv := newTestServer(t)
		png := []byte{0x89, 'P', 'N', 'G', '\r', '\n'}
		srv.pickupPassUC.EXPECT().RenderPickupPassQR(mock.Anything, claims.ListingID).Return(png, nil)

		rec := srv.do(http.MethodGet, "/api/v1/assignments/"+claims.ListingID.String()+"/pass.png", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, png, rec.Body.Bytes())
	})

	t.Run("pickup window closed", func(t *testing.T) {
		srv := newTestServer(t)
		srv.pickupPassUC.EXPECT().
			RenderPickupPassQR(mock.Anything, claims.ListingID).
			Return(nil, domainerrors.ErrPickupWindowClosed)

		rec := srv.do(http.MethodGet, "/api/v1/assignments/"+claims.ListingID.String()+"/pass.png", "")

		require.Equal(t, http.StatusGone, rec.Code)
		assert.Equal(t, "PICKUP_WINDOW_CLOSED", decode(t, rec).Error.Code)
	})

	t.Run("verify", func(t *testing.T) {
		srv := newTestServer(t)
		srv.pickupPassUC.EXPECT().
			VerifyPickupPass(mock.Anything, &usecase.VerifyPickupPassInput{Token: "signed-token", DropPointID: claims.DropPointID}).
			Return(claims, nil)

		body := `{"token":"signed-token","drop_point_id":"` + claims.DropPointID.String() + `"}`
		rec := srv.do(http.MethodPost, "/api/v1/pickup-passes/verify", body)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var view handler.PickupPassClaimsView
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &view))
		assert.Equal(t, claims.AssignmentID, view.AssignmentID)
		assert.Equal(t, 2, view.CratesNeeded)
	})

	t.Run("verify at the wrong drop point", func(t *testing.T) {
		srv := newTestServer(t)
		srv.pickupPassUC.EXPECT().
			VerifyPickupPass(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrPickupPassWrongDropPoint)

		body := `{"qr_data":"{}","drop_point_id":"` + uuid.NewString() + `"}`
		rec := srv.do(http.MethodPost, "/api/v1/pickup-passes/verify", body)

		require.Equal(t, http.StatusForbidden, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "PICKUP_PASS_WRONG_DROP_POINT", env.Error.Code)
		assert.Nil(t, env.Error.Details)
	})

	t.Run("verify needs token or qr data", func(t *testing.T) {
		srv := newTestServer(t)

		body := `{"drop_point_id":"` + uuid.NewString() + `"}`
		rec := srv.do(http.MethodPost, "/api/v1/pickup-passes/verify", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRequestIDPropagation(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/assignments/not-a-uuid", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-42")
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get(echo.HeaderXRequestID))
	assert.Equal(t, "req-42", decode(t, rec).Meta.RequestID)
}
