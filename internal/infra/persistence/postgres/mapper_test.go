package postgres

import (
	"log/slog"
	"testing"
	"time"

	"dropzone/internal/domain/entity"
	"dropzone/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestToOperatingHours(t *testing.T) {
	doc := model.HoursDocument{
		"monday":   {Open: "06:00", Close: "18:00"},
		"Tuesday":  {Open: "07:30", Close: "12:00"},
		"saturday": {Open: "00:00", Close: "00:00"},
		"funday":   {Open: "06:00", Close: "18:00"},
		"friday":   {Open: "6am", Close: "18:00"},
	}

	hours := toOperatingHours(doc, slog.New(slog.DiscardHandler))

	monday := hours.Day(time.Monday)
	assert.False(t, monday.Closed)
	assert.Equal(t, "06:00", monday.Open.String())
	assert.Equal(t, "18:00", monday.Close.String())

	tuesday := hours.Day(time.Tuesday)
	assert.False(t, tuesday.Closed)
	assert.Equal(t, "07:30", tuesday.Open.String())

	assert.True(t, hours.Day(time.Saturday).Closed, "00:00-00:00 is a closed day")
	assert.True(t, hours.Day(time.Friday).Closed, "malformed times are treated as closed")
	assert.True(t, hours.Day(time.Sunday).Closed, "missing days are closed")
}

func TestToCrateInventory(t *testing.T) {
	inventory := toCrateInventory([]model.DropPointCrateModel{
		{CropType: "Tomato", Count: 10},
		{CropType: "onion", Count: 4},
	})

	assert.Equal(t, 10, inventory.Count("tomato"))
	assert.Equal(t, 10, inventory.Count("TOMATO"))
	assert.Equal(t, 4, inventory.Count("Onion"))
	assert.Equal(t, 0, inventory.Count("potato"))
}

func TestToSlotDate(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)

	// 01:00 IST on June 11 is still June 10 in UTC; the slot keeps the local date.
	got := toSlotDate(time.Date(2024, 6, 11, 1, 0, 0, 0, ist))
	assert.Equal(t, time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC), got)
}

func TestToDropPointDomain(t *testing.T) {
	id := uuid.New()
	pointM := &model.DropPointModel{
		ID:        id,
		Name:      "Kolar APMC Gate 2",
		Latitude:  13.1367,
		Longitude: 78.1292,
		IsActive:  true,
		Hours:     datatypes.NewJSONType(model.HoursDocument{"monday": {Open: "06:00", Close: "18:00"}}),
		Crates:    []model.DropPointCrateModel{{DropPointID: id, CropType: "tomato", Count: 7}},
	}

	point := toDropPointDomain(pointM, slog.New(slog.DiscardHandler))
	require.NotNil(t, point)
	assert.Equal(t, id, point.ID)
	assert.InDelta(t, 13.1367, point.Location.Lat, 1e-9)
	assert.InDelta(t, 78.1292, point.Location.Lng, 1e-9)
	assert.True(t, point.IsActive)
	assert.Equal(t, 7, point.Crates.Count("tomato"))
	assert.True(t, point.Hours.IsOpenAt(time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)))

	assert.Nil(t, toDropPointDomain(nil, slog.New(slog.DiscardHandler)))
}

func TestAssignmentMapping(t *testing.T) {
	reason := "road closed"
	previous := uuid.New()
	assignment := &entity.Assignment{
		ListingID:           uuid.New(),
		SupplierID:          uuid.New(),
		DropPointID:         uuid.New(),
		DistanceKm:          3.25,
		CratesNeeded:        2,
		Status:              entity.AssignmentStatusReassigned,
		ChangeReason:        &reason,
		PreviousDropPointID: &previous,
	}
	assignment.SupplierLocation.Lat = 12.97
	assignment.SupplierLocation.Lng = 77.59

	assignmentM := fromAssignmentDomain(assignment)
	assert.Equal(t, "REASSIGNED", assignmentM.Status)
	assert.Equal(t, 12.97, assignmentM.SupplierLatitude)
	assert.Equal(t, 77.59, assignmentM.SupplierLongitude)

	back := toAssignmentDomain(assignmentM)
	assert.Equal(t, assignment, back)
}
