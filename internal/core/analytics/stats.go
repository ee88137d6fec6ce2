package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/lucapasini/tracely/internal/core/domain"
)

// Snapshot is the full, unfiltered record set for one user plus the
// reference clock. The analytics functions never touch storage or the
// wall clock: everything is derived from this value.
type Snapshot struct {
	Goals      []*domain.Goal
	Todos      []*domain.Todo
	Activities []*domain.Activity
	Sessions   []*domain.TimeSession
	Entries    []*domain.ProgressEntry
	Notes      []*domain.Note
	Period     string
	Now        time.Time
}

// CalculateComprehensiveStats derives the full statistics snapshot. Empty
// inputs produce zero-valued metrics, never errors.
func CalculateComprehensiveStats(s Snapshot) *domain.ComprehensiveStats {
	period := normalizePeriod(s.Period)
	window := RangeForPeriod(period, s.Now)

	goals := filterInRange(s.Goals, goalTime, window)
	todos := filterInRange(s.Todos, todoTime, window)
	notes := filterInRange(s.Notes, noteTime, window)
	entries := sortByEntryDate(filterInRange(s.Entries, entryTime, window))
	sessions := countableSessions(s.Sessions)

	return &domain.ComprehensiveStats{
		Period:       period,
		RangeStart:   dayKey(window.Start),
		RangeEnd:     dayKey(window.End),
		Overview:     buildOverview(goals, todos, notes, s.Activities, entries, s.Now),
		TimeTracking: buildTimeTracking(sessions, s.Activities, s.Now),
		Productivity: buildProductivity(s.Goals, s.Todos, s.Entries, s.Now),
		Engagement:   buildEngagement(sessions, s.Entries, s.Todos, s.Now),
		Wellbeing:    buildWellbeing(entries),
	}
}

func normalizePeriod(period string) string {
	switch period {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return period
	}
	return PeriodWeek
}

func buildOverview(goals []*domain.Goal, todos []*domain.Todo, notes []*domain.Note,
	activities []*domain.Activity, entries []*domain.ProgressEntry, now time.Time) domain.OverviewStats {

	completedGoals := 0
	for _, g := range goals {
		if g.IsCompleted {
			completedGoals++
		}
	}

	completedTodos := 0
	overdue := 0
	for _, t := range todos {
		if t.IsCompleted {
			completedTodos++
		}
		if t.IsOverdue(now) {
			overdue++
		}
	}

	return domain.OverviewStats{
		TotalGoals:         len(goals),
		CompletedGoals:     completedGoals,
		GoalCompletionRate: roundRate(completedGoals, len(goals)),
		TotalTodos:         len(todos),
		CompletedTodos:     completedTodos,
		TodoCompletionRate: roundRate(completedTodos, len(todos)),
		OverdueTodos:       overdue,
		TotalNotes:         len(notes),
		TotalActivities:    len(activities),
		TotalEntries:       len(entries),
	}
}

func buildTimeTracking(sessions []*domain.TimeSession, activities []*domain.Activity, now time.Time) domain.TimeTrackingStats {
	today := RangeForPeriod(PeriodDay, now)
	week := rollingDays(now, 7)
	month := DateRange{Start: now.AddDate(0, -1, 0), End: now}

	stats := domain.TimeTrackingStats{
		ActivityBreakdown: []domain.ActivityBreakdownItem{},
	}

	totalSeconds := 0
	for _, sess := range sessions {
		d := sess.DurationSeconds()
		totalSeconds += d
		if today.Contains(sess.StartTime) {
			stats.TodaySeconds += d
		}
		if week.Contains(sess.StartTime) {
			stats.WeekSeconds += d
		}
		if month.Contains(sess.StartTime) {
			stats.MonthSeconds += d
		}
	}

	// Average over all completed sessions, deliberately not windowed.
	if len(sessions) > 0 {
		stats.AverageSessionDuration = int(math.Round(float64(totalSeconds) / float64(len(sessions))))
	}

	stats.MostProductiveTime = mostProductiveHour(sessions)
	stats.ActivityBreakdown = activityBreakdown(sessions, activities)

	return stats
}

// mostProductiveHour buckets completed sessions by start hour and reports
// the hour with the largest summed duration. Ties resolve to the lowest
// hour. No sessions, or sessions whose durations are all zero, yield an
// empty string; MostProductiveTime is omitted from the JSON output in
// that case rather than reporting a meaningless hour.
func mostProductiveHour(sessions []*domain.TimeSession) string {
	var byHour [24]int
	for _, sess := range sessions {
		byHour[sess.StartTime.Hour()] += sess.DurationSeconds()
	}

	best, bestSum := 0, 0
	for h, sum := range byHour {
		if sum > bestSum {
			best, bestSum = h, sum
		}
	}
	if bestSum == 0 {
		return ""
	}
	return fmt.Sprintf("%d:00-%d:00", best, best+1)
}

func activityBreakdown(sessions []*domain.TimeSession, activities []*domain.Activity) []domain.ActivityBreakdownItem {
	titles := make(map[string]string, len(activities))
	for _, a := range activities {
		titles[a.ID] = a.Title
	}

	seconds := make(map[string]int)
	total := 0
	for _, sess := range sessions {
		d := sess.DurationSeconds()
		seconds[sess.ActivityID] += d
		total += d
	}

	items := make([]domain.ActivityBreakdownItem, 0, len(seconds))
	for id, sum := range seconds {
		title, ok := titles[id]
		if !ok {
			title = "Unknown"
		}
		items = append(items, domain.ActivityBreakdownItem{
			ActivityID:    id,
			ActivityTitle: title,
			TotalTime:     sum,
			Percentage:    roundRate(sum, total),
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].TotalTime != items[j].TotalTime {
			return items[i].TotalTime > items[j].TotalTime
		}
		return items[i].ActivityTitle < items[j].ActivityTitle
	})

	if len(items) > 10 {
		items = items[:10]
	}
	return items
}

// countableSessions keeps only stopped sessions that recorded a duration.
func countableSessions(sessions []*domain.TimeSession) []*domain.TimeSession {
	out := make([]*domain.TimeSession, 0, len(sessions))
	for _, s := range sessions {
		if s.IsCountable() {
			out = append(out, s)
		}
	}
	return out
}

func sortByEntryDate(entries []*domain.ProgressEntry) []*domain.ProgressEntry {
	sorted := make([]*domain.ProgressEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EntryDate.Before(sorted[j].EntryDate)
	})
	return sorted
}

func goalTime(g *domain.Goal) time.Time           { return g.CreatedAt }
func todoTime(t *domain.Todo) time.Time           { return t.CreatedAt }
func noteTime(n *domain.Note) time.Time           { return n.CreatedAt }
func entryTime(e *domain.ProgressEntry) time.Time { return e.EntryDate }

// roundRate is the division-by-zero-guarded percentage used everywhere a
// rate is reported.
func roundRate(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
