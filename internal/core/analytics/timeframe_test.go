package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRangeForPeriod(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 12, 30, 0, 0, time.UTC)

	t.Run("Day is the calendar day of now", func(t *testing.T) {
		t.Parallel()
		r := RangeForPeriod(PeriodDay, now)

		assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), r.Start)
		assert.Equal(t, time.Date(2025, 6, 15, 23, 59, 59, 999000000, time.UTC), r.End)
	})

	t.Run("Week is a rolling window ending at now", func(t *testing.T) {
		t.Parallel()
		r := RangeForPeriod(PeriodWeek, now)

		assert.Equal(t, now.AddDate(0, 0, -7), r.Start)
		assert.Equal(t, now, r.End)
	})

	t.Run("Month and year are rolling, not calendar-aligned", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, now.AddDate(0, -1, 0), RangeForPeriod(PeriodMonth, now).Start)
		assert.Equal(t, now.AddDate(-1, 0, 0), RangeForPeriod(PeriodYear, now).Start)
	})

	t.Run("Edge Case: unknown period falls back to week", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, RangeForPeriod(PeriodWeek, now), RangeForPeriod("fortnight", now))
		assert.Equal(t, RangeForPeriod(PeriodWeek, now), RangeForPeriod("", now))
	})
}

func TestDateRangeContains(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 7, 23, 59, 59, 0, time.UTC)
	r := DateRange{Start: start, End: end}

	assert.True(t, r.Contains(start), "start boundary is inclusive")
	assert.True(t, r.Contains(end), "end boundary is inclusive")
	assert.True(t, r.Contains(start.Add(time.Hour)))
	assert.False(t, r.Contains(start.Add(-time.Millisecond)))
	assert.False(t, r.Contains(end.Add(time.Millisecond)))
}

func TestFilterInRange(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	r := RangeForPeriod(PeriodWeek, now)

	stamps := []time.Time{
		now.AddDate(0, 0, -1),
		now.AddDate(0, 0, -10),
		{}, // zero timestamps are dropped
		now,
	}

	kept := filterInRange(stamps, func(t time.Time) time.Time { return t }, r)
	assert.Len(t, kept, 2)
}
