package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/lucapasini/tracely/internal/core/domain"
)

func buildProductivity(goals []*domain.Goal, todos []*domain.Todo, entries []*domain.ProgressEntry, now time.Time) domain.ProductivityStats {
	return domain.ProductivityStats{
		WeeklyCompletionTrend: weeklyCompletionTrend(todos, now),
		GoalProgress:          goalProgress(goals, now),
		ProgressEntryTrend:    progressEntryTrend(entries, now),
	}
}

// weeklyCompletionTrend reports, for each of the last 7 calendar days
// (oldest first), how many todos were created that day and how many of
// those are currently done. Creation day stands in for completion day:
// the todo model does not record when a todo was completed.
func weeklyCompletionTrend(todos []*domain.Todo, now time.Time) []domain.DailyCompletion {
	type counts struct{ created, completed int }
	byDay := make(map[string]counts)
	for _, t := range todos {
		key := dayKey(t.CreatedAt)
		c := byDay[key]
		c.created++
		if t.IsCompleted {
			c.completed++
		}
		byDay[key] = c
	}

	trend := make([]domain.DailyCompletion, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		key := dayKey(day)
		c := byDay[key]
		trend = append(trend, domain.DailyCompletion{
			Date:           key,
			Created:        c.created,
			Completed:      c.completed,
			CompletionRate: roundRate(c.completed, c.created),
		})
	}
	return trend
}

// goalProgress reports elapsed-time progress for every incomplete goal
// with a target date: the percentage of the creation-to-target span that
// has already passed, capped at 100.
func goalProgress(goals []*domain.Goal, now time.Time) []domain.GoalProgressItem {
	items := make([]domain.GoalProgressItem, 0)
	for _, g := range goals {
		if g.IsCompleted || g.TargetDate == nil {
			continue
		}

		daysLeft := int(math.Ceil(g.TargetDate.Sub(now).Hours() / 24))
		if daysLeft < 0 {
			daysLeft = 0
		}

		totalDays := g.TargetDate.Sub(g.CreatedAt).Hours() / 24
		elapsedDays := now.Sub(g.CreatedAt).Hours() / 24

		pct := 100
		if totalDays > 0 {
			pct = int(math.Round(elapsedDays / totalDays * 100))
			if pct > 100 {
				pct = 100
			}
			if pct < 0 {
				pct = 0
			}
		}

		items = append(items, domain.GoalProgressItem{
			GoalID:             g.ID,
			Title:              g.Title,
			DaysUntilTarget:    daysLeft,
			ProgressPercentage: pct,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DaysUntilTarget < items[j].DaysUntilTarget
	})
	return items
}

// progressEntryTrend compares journal volume of the last 7 days against
// the 7 days before that. The recent window is the same inclusive
// [now-7d, now] range the other rolling windows use; the prior window
// ends just before it, so an entry sitting exactly on the boundary
// counts once, in the recent week.
func progressEntryTrend(entries []*domain.ProgressEntry, now time.Time) domain.EntryTrend {
	recent := rollingDays(now, 7)
	prior := DateRange{Start: now.AddDate(0, 0, -14), End: recent.Start.Add(-time.Millisecond)}

	thisWeek, lastWeek := 0, 0
	for _, e := range entries {
		switch {
		case recent.Contains(e.EntryDate):
			thisWeek++
		case prior.Contains(e.EntryDate):
			lastWeek++
		}
	}

	change := 0
	switch {
	case lastWeek > 0:
		change = int(math.Round(float64(thisWeek-lastWeek) / float64(lastWeek) * 100))
	case thisWeek > 0:
		change = 100
	}

	trend := "stable"
	if change > 10 {
		trend = "up"
	} else if change < -10 {
		trend = "down"
	}

	return domain.EntryTrend{
		ThisWeek:         thisWeek,
		LastWeek:         lastWeek,
		ChangePercentage: change,
		Trend:            trend,
	}
}
