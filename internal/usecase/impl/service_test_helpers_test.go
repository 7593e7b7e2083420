package impl

import (
	"io"
	"log/slog"
	"time"

	"dropzone/config"
	"dropzone/internal/domain/entity"
	"dropzone/internal/domain/geo"

	"github.com/google/uuid"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	assignment := config.DefaultAssignmentConfig()
	assignment.TimeZone = "UTC"

	return &config.Config{Assignment: assignment}
}

// weekdayHours returns hours open 06:00-18:00 every day.
func weekdayHours() entity.OperatingHours {
	hours := entity.NewOperatingHours()
	for day := range hours {
		hours[day] = entity.DailyHours{Open: 6 * 60, Close: 18 * 60}
	}

	return hours
}

func newDropPoint(name string, location geo.Coordinate) *entity.DropPoint {
	return &entity.DropPoint{
		ID:       uuid.New(),
		Name:     name,
		Address:  name + " road",
		District: "Kolar",
		Location: location,
		IsActive: true,
		Hours:    weekdayHours(),
	}
}

func nearbyOf(origin geo.Coordinate, points ...*entity.DropPoint) []*entity.NearbyDropPoint {
	nearby := make([]*entity.NearbyDropPoint, 0, len(points))
	for _, point := range points {
		nearby = append(nearby, &entity.NearbyDropPoint{
			DropPoint:  point,
			DistanceKm: geo.Haversine(origin, point.Location),
		})
	}

	return nearby
}

func newSlot(pointID uuid.UUID, date time.Time, usedKg float64) *entity.CapacitySlot {
	return &entity.CapacitySlot{
		ID:             uuid.New(),
		DropPointID:    pointID,
		Date:           date,
		StartHour:      7,
		DurationHours:  2,
		MaxCapacityKg:  1000,
		UsedCapacityKg: usedKg,
	}
}

func reserved(slot *entity.CapacitySlot, kg float64) *entity.CapacitySlot {
	updated := *slot
	updated.UsedCapacityKg += kg

	return &updated
}
