package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriodStart(t *testing.T) {
	// Wednesday, 15th of a 31-day month.
	now := time.Date(2025, time.October, 15, 14, 30, 45, 0, time.UTC)

	tests := []struct {
		period string
		want   time.Time
	}{
		{"day", time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC)},
		{"week", now.Add(-7 * 24 * time.Hour)},
		{"month", time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)},
		{"year", time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{"quincena", time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)}, // unknown falls back to month
		{"", time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			assert.Equal(t, tt.want, PeriodStart(tt.period, now))
		})
	}
}

func TestPeriodStartKeepsLocation(t *testing.T) {
	loc := time.FixedZone("CLT", -4*3600)
	now := time.Date(2025, time.June, 3, 23, 59, 0, 0, loc)

	start := PeriodStart("day", now)
	assert.Equal(t, loc, start.Location())
	assert.Equal(t, 3, start.Day())
}

func TestDayBounds(t *testing.T) {
	now := time.Date(2025, time.October, 15, 14, 30, 0, 0, time.UTC)

	start, end := DayBounds(now, 0)
	assert.Equal(t, time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, 24*time.Hour, end.Sub(start))

	start, end = DayBounds(now, 6)
	assert.Equal(t, time.Date(2025, time.October, 9, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.October, 10, 0, 0, 0, 0, time.UTC), end)
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2025, time.October, 10, 23, 0, 0, 0, time.UTC)
	b := time.Date(2025, time.October, 15, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, 5, DaysBetween(a, b))
	assert.Equal(t, 0, DaysBetween(b, b))
}
