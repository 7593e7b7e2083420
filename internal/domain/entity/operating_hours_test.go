package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		in      string
		want    ClockTime
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "06:00", want: 360},
		{in: "18:30", want: 1110},
		{in: " 23:59 ", want: 1439},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "1200", wantErr: true},
		{in: "ab:cd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClockTime(tt.in)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClockTime_String(t *testing.T) {
	assert.Equal(t, "06:05", ClockTime(365).String())
	assert.Equal(t, "00:00", ClockTime(0).String())
}

func TestNewDailyHours_ClosedSentinel(t *testing.T) {
	day, err := NewDailyHours("00:00", "00:00")
	require.NoError(t, err)
	assert.True(t, day.Closed)

	day, err = NewDailyHours("06:00", "18:00")
	require.NoError(t, err)
	assert.False(t, day.Closed)
	assert.Equal(t, ClockTime(360), day.Open)
	assert.Equal(t, ClockTime(1080), day.Close)
}

func TestOperatingHours_IsOpenAt(t *testing.T) {
	// 2026-10-14 is a Wednesday.
	at := func(hour, minute int) time.Time {
		return time.Date(2026, 10, 14, hour, minute, 0, 0, time.UTC)
	}

	hours := NewOperatingHours()
	day, err := NewDailyHours("06:00", "18:00")
	require.NoError(t, err)
	hours[time.Wednesday] = day

	assert.True(t, hours.IsOpenAt(at(12, 0)))
	assert.True(t, hours.IsOpenAt(at(6, 0)))
	assert.False(t, hours.IsOpenAt(at(18, 0)))
	assert.False(t, hours.IsOpenAt(at(19, 0)))
	assert.False(t, hours.IsOpenAt(at(5, 0)))

	// No entry for Thursday.
	assert.False(t, hours.IsOpenAt(at(12, 0).AddDate(0, 0, 1)))
}

func TestOperatingHours_ClosedSentinelNeverOpen(t *testing.T) {
	hours := NewOperatingHours()
	day, err := NewDailyHours("00:00", "00:00")
	require.NoError(t, err)
	hours[time.Wednesday] = day

	for hour := 0; hour < 24; hour++ {
		assert.False(t, hours.IsOpenAt(time.Date(2026, 10, 14, hour, 0, 0, 0, time.UTC)))
	}
}

func TestDailyHours_NoCrossMidnight(t *testing.T) {
	day, err := NewDailyHours("22:00", "02:00")
	require.NoError(t, err)

	assert.False(t, day.Contains(ClockTime(23*60)))
	assert.False(t, day.Contains(ClockTime(60)))
}

func TestWeekdayFromName(t *testing.T) {
	day, ok := WeekdayFromName("Monday")
	assert.True(t, ok)
	assert.Equal(t, time.Monday, day)

	day, ok = WeekdayFromName(" sunday ")
	assert.True(t, ok)
	assert.Equal(t, time.Sunday, day)

	_, ok = WeekdayFromName("funday")
	assert.False(t, ok)
}
