package analytics

import (
	"sort"
	"time"

	"github.com/lucapasini/tracely/internal/core/domain"
)

func buildEngagement(sessions []*domain.TimeSession, entries []*domain.ProgressEntry, todos []*domain.Todo, now time.Time) domain.EngagementStats {
	hourly := make([]domain.HourlyActivity, 24)
	for h := range hourly {
		hourly[h].Hour = h
	}
	weekly := make([]domain.WeekdayActivity, 7)
	for d := range weekly {
		weekly[d].Weekday = d
	}

	for _, sess := range sessions {
		h := sess.StartTime.Hour()
		hourly[h].Sessions++
		hourly[h].TotalMinutes += sess.DurationSeconds() / 60

		wd := int(sess.StartTime.Weekday())
		weekly[wd].TotalSessions++
		weekly[wd].TotalTime += sess.DurationSeconds()
	}

	progressDates := make([]time.Time, 0, len(entries))
	for _, e := range entries {
		progressDates = append(progressDates, e.EntryDate)
	}

	// Completion day is approximated by creation day, same as the weekly
	// completion trend.
	todoDates := make([]time.Time, 0, len(todos))
	for _, t := range todos {
		if t.IsCompleted {
			todoDates = append(todoDates, t.CreatedAt)
		}
	}

	progressCurrent, progressLongest := CalculateStreaks(progressDates, now)
	todoCurrent, todoLongest := CalculateStreaks(todoDates, now)

	return domain.EngagementStats{
		DailyActiveHours:      hourly,
		WeeklyPattern:         weekly,
		CurrentProgressStreak: progressCurrent,
		LongestProgressStreak: progressLongest,
		CurrentTodoStreak:     todoCurrent,
		LongestTodoStreak:     todoLongest,
	}
}

// CalculateStreaks reduces timestamps to unique calendar days and reports
// the run of consecutive days ending at now (zero when today is missing)
// and the longest run anywhere in the history.
func CalculateStreaks(dates []time.Time, now time.Time) (current, longest int) {
	if len(dates) == 0 {
		return 0, 0
	}

	seen := make(map[string]bool, len(dates))
	var days []time.Time
	for _, d := range dates {
		key := dayKey(d)
		if !seen[key] {
			seen[key] = true
			day, _ := time.Parse("2006-01-02", key)
			days = append(days, day)
		}
	}

	day := startOfDay(now)
	for seen[dayKey(day)] {
		current++
		day = day.AddDate(0, 0, -1)
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})

	run := 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]).Hours() == 24 {
			run++
		} else {
			if run > longest {
				longest = run
			}
			run = 1
		}
	}
	if run > longest {
		longest = run
	}

	return current, longest
}
