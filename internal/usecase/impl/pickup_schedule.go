package impl

import (
	"time"

	"dropzone/config"
	"dropzone/internal/usecase"
)

// pickupSchedule turns dates into pickup slots using the configured start hour,
// slot width, rest day and time zone.
type pickupSchedule struct {
	startHour     int
	durationHours int
	restDay       time.Weekday
	loc           *time.Location
}

func newPickupSchedule(cfg *config.AssignmentConfig) pickupSchedule {
	return pickupSchedule{
		startHour:     cfg.SlotStartHour,
		durationHours: cfg.SlotDurationHours,
		restDay:       time.Weekday(cfg.RestDay),
		loc:           cfg.Location(),
	}
}

// nextBusinessDay is tomorrow at local midnight, moved one more day when tomorrow is the rest day.
func (s pickupSchedule) nextBusinessDay(now time.Time) time.Time {
	year, month, day := now.In(s.loc).Date()
	date := time.Date(year, month, day+1, 0, 0, 0, 0, s.loc)
	if date.Weekday() == s.restDay {
		date = date.AddDate(0, 0, 1)
	}

	return date
}

// resolveDate returns the calendar date of preferred at local midnight,
// or the next business day when preferred is nil.
func (s pickupSchedule) resolveDate(preferred *time.Time, now time.Time) time.Time {
	if preferred == nil {
		return s.nextBusinessDay(now)
	}

	year, month, day := preferred.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, s.loc)
}

// window is the pickup window of the slot on date, in local wall-clock time.
func (s pickupSchedule) window(date time.Time) usecase.PickupWindow {
	year, month, day := date.Date()

	return usecase.PickupWindow{
		Start: time.Date(year, month, day, s.startHour, 0, 0, 0, s.loc),
		End:   time.Date(year, month, day, s.startHour+s.durationHours, 0, 0, 0, s.loc),
	}
}
