package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ClockTime is a wall-clock time of day expressed in minutes since midnight.
type ClockTime int

// ParseClockTime parses an "HH:MM" string.
func ParseClockTime(s string) (ClockTime, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("invalid clock time %q: expected HH:MM", s)
	}

	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid clock time %q: bad hour", s)
	}

	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid clock time %q: bad minute", s)
	}

	return ClockTime(hour*60 + minute), nil
}

// ClockTimeOf returns the minute of day of t in t's location.
func ClockTimeOf(t time.Time) ClockTime {
	return ClockTime(t.Hour()*60 + t.Minute())
}

// String formats the clock time as "HH:MM".
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// DailyHours is the opening window of a single weekday.
type DailyHours struct {
	Closed bool      // The drop point does not open on this day.
	Open   ClockTime // Inclusive opening time.
	Close  ClockTime // Exclusive closing time.
}

// ClosedDay is the DailyHours value for a day without opening hours.
var ClosedDay = DailyHours{Closed: true}

// NewDailyHours builds DailyHours from "HH:MM" strings.
// The legacy "00:00"-"00:00" pair is read as a closed day.
func NewDailyHours(open, close string) (DailyHours, error) {
	openAt, err := ParseClockTime(open)
	if err != nil {
		return DailyHours{}, err
	}

	closeAt, err := ParseClockTime(close)
	if err != nil {
		return DailyHours{}, err
	}

	if openAt == 0 && closeAt == 0 {
		return ClosedDay, nil
	}

	return DailyHours{Open: openAt, Close: closeAt}, nil
}

// Contains reports whether the minute of day falls within [Open, Close).
// Windows crossing midnight are never satisfied.
func (d DailyHours) Contains(at ClockTime) bool {
	if d.Closed {
		return false
	}

	return at >= d.Open && at < d.Close
}

// OperatingHours holds one entry per weekday, indexed by time.Weekday.
// The zero value has every day open for a zero-length window, so build it with
// NewOperatingHours or set each day explicitly.
type OperatingHours [7]DailyHours

// NewOperatingHours returns hours with every day closed.
func NewOperatingHours() OperatingHours {
	var hours OperatingHours
	for i := range hours {
		hours[i] = ClosedDay
	}

	return hours
}

// Day returns the hours for the given weekday.
func (h OperatingHours) Day(day time.Weekday) DailyHours {
	return h[day]
}

// IsOpenAt reports whether the drop point is open at t, using t's weekday and minute of day.
func (h OperatingHours) IsOpenAt(t time.Time) bool {
	return h[t.Weekday()].Contains(ClockTimeOf(t))
}

// WeekdayFromName resolves an English weekday name, case-insensitively.
func WeekdayFromName(name string) (time.Weekday, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for day := time.Sunday; day <= time.Saturday; day++ {
		if strings.ToLower(day.String()) == normalized {
			return day, true
		}
	}

	return time.Sunday, false
}
