package analytics

import (
	"math"

	"github.com/lucapasini/tracely/internal/core/domain"
)

// Correlation computes the Pearson correlation coefficient between two
// equal-length series. It returns 0 for mismatched lengths, empty input,
// or zero variance in either series.
func Correlation(x, y []float64) float64 {
	n := len(x)
	if n == 0 || n != len(y) {
		return 0
	}

	var sumX, sumY, sumXY, sumX2, sumY2 float64
	for i := 0; i < n; i++ {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumX2 += x[i] * x[i]
		sumY2 += y[i] * y[i]
	}

	fn := float64(n)
	denom := math.Sqrt((fn*sumX2 - sumX*sumX) * (fn*sumY2 - sumY*sumY))
	if denom == 0 {
		return 0
	}
	return (fn*sumXY - sumX*sumY) / denom
}

// wellbeingSeries is the correlation population: paired score series from
// entries where all four dimensions are present and sleep is positive,
// in date order.
type wellbeingSeries struct {
	mood   []float64
	prod   []float64
	health []float64
	sleep  []float64
}

func (w wellbeingSeries) size() int {
	return len(w.mood)
}

func buildWellbeingSeries(entries []*domain.ProgressEntry) wellbeingSeries {
	var w wellbeingSeries
	for _, e := range entries {
		if !e.HasFullWellbeingData() {
			continue
		}
		w.mood = append(w.mood, float64(e.Mood.Score()))
		w.prod = append(w.prod, float64(e.ProductivitySatisfaction.Score()))
		w.health = append(w.health, float64(e.HealthFeeling.Score()))
		w.sleep = append(w.sleep, e.SleepHours)
	}
	return w
}
