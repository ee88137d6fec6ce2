package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucapasini/tracely/internal/core/domain"
)

func TestWeeklyCompletionTrend(t *testing.T) {
	t.Parallel()

	var todos []*domain.Todo
	for i := 0; i < 10; i++ {
		todos = append(todos, testTodo(dayOffset(-1), i < 5))
	}
	todos = append(todos, testTodo(dayOffset(-6), true))
	todos = append(todos, testTodo(dayOffset(-20), true)) // outside the 7 days

	trend := weeklyCompletionTrend(todos, testNow)

	require.Len(t, trend, 7)
	assert.Equal(t, dayKey(dayOffset(-6)), trend[0].Date, "oldest day first")
	assert.Equal(t, dayKey(testNow), trend[6].Date)

	assert.Equal(t, 1, trend[0].Created)
	assert.Equal(t, 100, trend[0].CompletionRate)

	yesterday := trend[5]
	assert.Equal(t, 10, yesterday.Created)
	assert.Equal(t, 5, yesterday.Completed)
	assert.Equal(t, 50, yesterday.CompletionRate)

	assert.Equal(t, 0, trend[6].Created)
	assert.Equal(t, 0, trend[6].CompletionRate, "empty day reports 0, not NaN")
}

func TestGoalProgress(t *testing.T) {
	t.Parallel()

	target := dayOffset(10)
	pastTarget := dayOffset(-3)
	goals := []*domain.Goal{
		{ID: "g-mid", Title: "halfway there", CreatedAt: dayOffset(-10), TargetDate: &target},
		{ID: "g-late", Title: "already overdue", CreatedAt: dayOffset(-30), TargetDate: &pastTarget},
		{ID: "g-done", Title: "completed", CreatedAt: dayOffset(-10), TargetDate: &target, IsCompleted: true},
		{ID: "g-open", Title: "no deadline", CreatedAt: dayOffset(-10)},
	}

	items := goalProgress(goals, testNow)

	require.Len(t, items, 2, "completed and target-less goals are excluded")

	// Sorted by days until target, ascending.
	assert.Equal(t, "g-late", items[0].GoalID)
	assert.Equal(t, 0, items[0].DaysUntilTarget, "past targets floor at 0")
	assert.Equal(t, 100, items[0].ProgressPercentage, "elapsed share caps at 100")

	assert.Equal(t, "g-mid", items[1].GoalID)
	assert.Equal(t, 10, items[1].DaysUntilTarget)
	assert.Equal(t, 50, items[1].ProgressPercentage)
}

func TestGoalProgress_TargetBeforeCreation(t *testing.T) {
	t.Parallel()

	target := dayOffset(-20)
	goals := []*domain.Goal{
		{ID: "g-weird", Title: "inverted dates", CreatedAt: dayOffset(-10), TargetDate: &target},
	}

	items := goalProgress(goals, testNow)

	require.Len(t, items, 1)
	assert.Equal(t, 100, items[0].ProgressPercentage, "non-positive span means the window is over")
}

func TestProgressEntryTrend(t *testing.T) {
	t.Parallel()

	entry := func(offset int) *domain.ProgressEntry {
		return testEntry(dayOffset(offset), "", "", "", 0)
	}

	t.Run("More entries this week trends up", func(t *testing.T) {
		t.Parallel()
		entries := []*domain.ProgressEntry{
			entry(-1), entry(-2), entry(-3),
			entry(-8), entry(-9),
		}

		trend := progressEntryTrend(entries, testNow)

		assert.Equal(t, 3, trend.ThisWeek)
		assert.Equal(t, 2, trend.LastWeek)
		assert.Equal(t, 50, trend.ChangePercentage)
		assert.Equal(t, "up", trend.Trend)
	})

	t.Run("Drop beyond 10 percent trends down", func(t *testing.T) {
		t.Parallel()
		entries := []*domain.ProgressEntry{
			entry(-1),
			entry(-8), entry(-9), entry(-10),
		}

		trend := progressEntryTrend(entries, testNow)

		assert.Equal(t, -67, trend.ChangePercentage)
		assert.Equal(t, "down", trend.Trend)
	})

	t.Run("Edge Case: window boundaries are inclusive", func(t *testing.T) {
		t.Parallel()
		entries := []*domain.ProgressEntry{
			entry(-7),  // exactly seven days old
			entry(-14), // exactly fourteen days old
		}

		trend := progressEntryTrend(entries, testNow)

		assert.Equal(t, 1, trend.ThisWeek, "an entry exactly 7 days old belongs to the recent week")
		assert.Equal(t, 1, trend.LastWeek, "an entry exactly 14 days old belongs to the prior week")
	})

	t.Run("Edge Case: activity from nothing is a 100 percent jump", func(t *testing.T) {
		t.Parallel()
		trend := progressEntryTrend([]*domain.ProgressEntry{entry(-1)}, testNow)

		assert.Equal(t, 1, trend.ThisWeek)
		assert.Equal(t, 0, trend.LastWeek)
		assert.Equal(t, 100, trend.ChangePercentage)
		assert.Equal(t, "up", trend.Trend)
	})

	t.Run("Edge Case: no entries at all is stable", func(t *testing.T) {
		t.Parallel()
		trend := progressEntryTrend(nil, testNow)

		assert.Equal(t, 0, trend.ChangePercentage)
		assert.Equal(t, "stable", trend.Trend)
	})

	t.Run("Within margin is stable", func(t *testing.T) {
		t.Parallel()
		entries := []*domain.ProgressEntry{
			entry(-1), entry(-2), entry(-3), entry(-4), entry(-5),
			entry(-8), entry(-9), entry(-10), entry(-11), entry(-12),
		}

		trend := progressEntryTrend(entries, testNow)
		assert.Equal(t, "stable", trend.Trend)
	})
}
