package analytics

import "time"

const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// DateRange is an inclusive [Start, End] window.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// RangeForPeriod computes the window for a period token. "day" is the
// calendar day of now; "week", "month", and "year" are rolling windows
// ending at now, NOT calendar-aligned. Unknown tokens fall back to the
// week window.
func RangeForPeriod(period string, now time.Time) DateRange {
	switch period {
	case PeriodDay:
		start := startOfDay(now)
		return DateRange{Start: start, End: start.AddDate(0, 0, 1).Add(-time.Millisecond)}
	case PeriodMonth:
		return DateRange{Start: now.AddDate(0, -1, 0), End: now}
	case PeriodYear:
		return DateRange{Start: now.AddDate(-1, 0, 0), End: now}
	case PeriodWeek:
		return DateRange{Start: now.AddDate(0, 0, -7), End: now}
	}
	return DateRange{Start: now.AddDate(0, 0, -7), End: now}
}

func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// rollingDays is the [now-n days, now] window used for "this week",
// "last 3 days" and similar named windows.
func rollingDays(now time.Time, n int) DateRange {
	return DateRange{Start: now.AddDate(0, 0, -n), End: now}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// dayKey collapses a timestamp to its calendar date string, the unit all
// streak and per-day bucketing works in.
func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// filterInRange keeps the items whose timestamp falls inside the window.
// Items without a usable timestamp (zero time) are dropped.
func filterInRange[T any](items []T, at func(T) time.Time, r DateRange) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		t := at(item)
		if t.IsZero() {
			continue
		}
		if r.Contains(t) {
			out = append(out, item)
		}
	}
	return out
}
