package analytics

import (
	"github.com/lucapasini/tracely/internal/core/domain"
)

const (
	trendMargin      = 0.3
	sleepTrendMargin = 0.5
	dailyPatternDays = 14
)

// buildWellbeing expects entries already filtered to the active period
// and sorted by entry date ascending.
func buildWellbeing(entries []*domain.ProgressEntry) domain.WellbeingStats {
	moodScores := dimensionScores(entries, func(e *domain.ProgressEntry) domain.WellbeingLevel { return e.Mood })
	prodScores := dimensionScores(entries, func(e *domain.ProgressEntry) domain.WellbeingLevel { return e.ProductivitySatisfaction })
	healthScores := dimensionScores(entries, func(e *domain.ProgressEntry) domain.WellbeingLevel { return e.HealthFeeling })

	var sleepSeries []float64
	for _, e := range entries {
		if e.SleepHours > 0 {
			sleepSeries = append(sleepSeries, e.SleepHours)
		}
	}

	return domain.WellbeingStats{
		AverageMood:              round1(mean(moodScores)),
		AverageProductivity:      round1(mean(prodScores)),
		AverageHealth:            round1(mean(healthScores)),
		AverageSleepHours:        round1(mean(sleepSeries)),
		MoodDistribution:         distribution(entries, func(e *domain.ProgressEntry) domain.WellbeingLevel { return e.Mood }),
		ProductivityDistribution: distribution(entries, func(e *domain.ProgressEntry) domain.WellbeingLevel { return e.ProductivitySatisfaction }),
		HealthDistribution:       distribution(entries, func(e *domain.ProgressEntry) domain.WellbeingLevel { return e.HealthFeeling }),
		MoodTrend:                classifyTrend(moodScores, trendMargin),
		ProductivityTrend:        classifyTrend(prodScores, trendMargin),
		HealthTrend:              classifyTrend(healthScores, trendMargin),
		SleepTrend:               classifyTrend(sleepSeries, sleepTrendMargin),
		DailyPattern:             dailyWellbeingPattern(entries),
	}
}

// dimensionScores collects the 1-5 scores of entries that filled in the
// dimension, preserving date order.
func dimensionScores(entries []*domain.ProgressEntry, level func(*domain.ProgressEntry) domain.WellbeingLevel) []float64 {
	var scores []float64
	for _, e := range entries {
		if l := level(e); l.IsSet() {
			scores = append(scores, float64(l.Score()))
		}
	}
	return scores
}

func distribution(entries []*domain.ProgressEntry, level func(*domain.ProgressEntry) domain.WellbeingLevel) []domain.LevelCount {
	counts := make(map[domain.WellbeingLevel]int)
	total := 0
	for _, e := range entries {
		if l := level(e); l.IsSet() {
			counts[l]++
			total++
		}
	}

	rows := []domain.LevelCount{}
	for _, l := range domain.WellbeingLevels {
		if counts[l] == 0 {
			continue
		}
		rows = append(rows, domain.LevelCount{
			Value:      l,
			Count:      counts[l],
			Percentage: roundRate(counts[l], total),
		})
	}
	return rows
}

// classifyTrend splits the date-ordered series at its midpoint and
// compares half means: improving when the recent half exceeds the earlier
// half by more than the margin, declining for the opposite, stable
// otherwise (including series too short to split).
func classifyTrend(series []float64, margin float64) string {
	if len(series) < 2 {
		return "stable"
	}

	mid := len(series) / 2
	earlier := mean(series[:mid])
	recent := mean(series[mid:])

	switch {
	case recent-earlier > margin:
		return "improving"
	case earlier-recent > margin:
		return "declining"
	}
	return "stable"
}

// dailyWellbeingPattern maps the last 14 entries that carry any wellbeing
// data into chart-ready points.
func dailyWellbeingPattern(entries []*domain.ProgressEntry) []domain.DailyWellbeingPoint {
	withData := make([]*domain.ProgressEntry, 0, len(entries))
	for _, e := range entries {
		if e.HasWellbeingData() {
			withData = append(withData, e)
		}
	}

	if len(withData) > dailyPatternDays {
		withData = withData[len(withData)-dailyPatternDays:]
	}

	points := make([]domain.DailyWellbeingPoint, 0, len(withData))
	for _, e := range withData {
		p := domain.DailyWellbeingPoint{
			Date:         dayKey(e.EntryDate),
			Mood:         e.Mood,
			Productivity: e.ProductivitySatisfaction,
			Health:       e.HealthFeeling,
			SleepHours:   e.SleepHours,
		}
		if e.Mood.IsSet() {
			p.MoodScore = e.Mood.Score()
		}
		if e.ProductivitySatisfaction.IsSet() {
			p.ProductivityScore = e.ProductivitySatisfaction.Score()
		}
		if e.HealthFeeling.IsSet() {
			p.HealthScore = e.HealthFeeling.Score()
		}
		points = append(points, p)
	}
	return points
}
