package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeToNoon(t *testing.T) {
	loc := time.FixedZone("TEST", -5*3600)

	early := time.Date(2025, 3, 10, 0, 30, 0, 0, loc)
	late := time.Date(2025, 3, 10, 23, 59, 59, 0, loc)

	assert.Equal(t, time.Date(2025, 3, 10, 12, 0, 0, 0, loc), NormalizeToNoon(early))
	assert.Equal(t, time.Date(2025, 3, 10, 12, 0, 0, 0, loc), NormalizeToNoon(late))
}

func TestDayBoundsCoverWholeDay(t *testing.T) {
	loc := time.UTC
	noon := time.Date(2025, 3, 10, 12, 0, 0, 0, loc)

	start, end := DayBounds(noon)

	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, loc), end)

	// A noon-normalized booking lands inside the window regardless of the
	// query's time of day.
	for _, q := range []time.Time{
		time.Date(2025, 3, 10, 0, 0, 0, 0, loc),
		time.Date(2025, 3, 10, 8, 15, 0, 0, loc),
		time.Date(2025, 3, 10, 23, 59, 59, 999000000, loc),
	} {
		s, e := DayBounds(q)
		assert.False(t, noon.Before(s) || !noon.Before(e), "noon must fall in bounds of %v", q)
	}

	// ...and outside the windows of the neighboring days.
	prevStart, prevEnd := DayBounds(noon.AddDate(0, 0, -1))
	nextStart, nextEnd := DayBounds(noon.AddDate(0, 0, 1))
	assert.True(t, noon.Before(prevStart) || !noon.Before(prevEnd))
	assert.True(t, noon.Before(nextStart) || !noon.Before(nextEnd))
}

func TestIsPastDay(t *testing.T) {
	loc := time.UTC
	now := time.Date(2025, 3, 10, 9, 30, 0, 0, loc)

	yesterday := time.Date(2025, 3, 9, 12, 0, 0, 0, loc)
	today := time.Date(2025, 3, 10, 12, 0, 0, 0, loc)
	tomorrow := time.Date(2025, 3, 11, 12, 0, 0, 0, loc)

	assert.True(t, IsPastDay(yesterday, now))
	assert.False(t, IsPastDay(today, now), "today is not a past day")
	assert.False(t, IsPastDay(tomorrow, now))
}

func TestSameDay(t *testing.T) {
	loc := time.UTC

	a := time.Date(2025, 3, 10, 12, 0, 0, 0, loc)
	b := time.Date(2025, 3, 10, 23, 0, 0, 0, loc)
	c := time.Date(2025, 3, 11, 0, 0, 0, 0, loc)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, c))
}
