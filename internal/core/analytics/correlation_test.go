package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lucapasini/tracely/internal/core/domain"
)

func TestCorrelation(t *testing.T) {
	t.Parallel()

	t.Run("Perfect positive correlation", func(t *testing.T) {
		t.Parallel()
		x := []float64{1, 2, 3, 4, 5}
		assert.InDelta(t, 1.0, Correlation(x, x), 1e-9)
	})

	t.Run("Perfect negative correlation", func(t *testing.T) {
		t.Parallel()
		x := []float64{1, 2, 3, 4, 5}
		y := []float64{5, 4, 3, 2, 1}
		assert.InDelta(t, -1.0, Correlation(x, y), 1e-9)
	})

	t.Run("Scaled series correlate perfectly", func(t *testing.T) {
		t.Parallel()
		x := []float64{1, 2, 3}
		y := []float64{10, 20, 30}
		assert.InDelta(t, 1.0, Correlation(x, y), 1e-9)
	})

	t.Run("Edge Case: constant series has no correlation", func(t *testing.T) {
		t.Parallel()
		x := []float64{3, 3, 3, 3}
		y := []float64{1, 2, 3, 4}
		assert.Zero(t, Correlation(x, y), "zero variance must not divide by zero")
	})

	t.Run("Edge Case: mismatched lengths", func(t *testing.T) {
		t.Parallel()
		assert.Zero(t, Correlation([]float64{1, 2}, []float64{1, 2, 3}))
	})

	t.Run("Edge Case: empty input", func(t *testing.T) {
		t.Parallel()
		assert.Zero(t, Correlation(nil, nil))
	})
}

func TestBuildWellbeingSeries(t *testing.T) {
	t.Parallel()

	entries := []*domain.ProgressEntry{
		testEntry(dayOffset(-3), domain.LevelHigh, domain.LevelHigh, domain.LevelNeutral, 7.5),
		testEntry(dayOffset(-2), domain.LevelLow, domain.LevelLow, domain.LevelLow, 6),
		testEntry(dayOffset(-1), domain.LevelHigh, "", domain.LevelNeutral, 8), // incomplete tuple
		testEntry(dayOffset(0), domain.LevelHigh, domain.LevelHigh, domain.LevelHigh, 0), // no sleep
	}

	w := buildWellbeingSeries(entries)

	assert.Equal(t, 2, w.size(), "only complete tuples with sleep join the population")
	assert.Equal(t, []float64{4, 2}, w.mood)
	assert.Equal(t, []float64{7.5, 6}, w.sleep)
}
