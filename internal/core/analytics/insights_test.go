package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucapasini/tracely/internal/core/domain"
)

func recommendationTitles(p *domain.ProductivityInsights) []string {
	titles := make([]string, 0, len(p.Recommendations))
	for _, r := range p.Recommendations {
		titles = append(titles, r.Title)
	}
	return titles
}

func achievementTitles(p *domain.ProductivityInsights) []string {
	titles := make([]string, 0, len(p.Achievements))
	for _, a := range p.Achievements {
		titles = append(titles, a.Title)
	}
	return titles
}

func patternTitles(p *domain.ProductivityInsights) []string {
	titles := make([]string, 0, len(p.Patterns))
	for _, pat := range p.Patterns {
		titles = append(titles, pat.Title)
	}
	return titles
}

func TestGenerateProductivityInsights_EmptySnapshot(t *testing.T) {
	t.Parallel()

	insights := GenerateProductivityInsights(Snapshot{Now: testNow})
	require.NotNil(t, insights)

	// No data still produces the bootstrap nudges, and never nil slices.
	assert.Equal(t, []string{"Start Time Tracking", "Log Daily Progress"}, recommendationTitles(insights))
	assert.NotNil(t, insights.Achievements)
	assert.Empty(t, insights.Achievements)
	assert.NotNil(t, insights.Patterns)
	assert.Empty(t, insights.Patterns)
}

func TestGenerateProductivityInsights_TaskMaster(t *testing.T) {
	t.Parallel()

	var todos []*domain.Todo
	for i := 0; i < 10; i++ {
		todos = append(todos, testTodo(dayOffset(-1), i < 9))
	}

	insights := GenerateProductivityInsights(Snapshot{Todos: todos, Now: testNow})

	require.Contains(t, achievementTitles(insights), "Task Master")
	assert.Contains(t, insights.Achievements[0].Description, "90%")
}

func TestGenerateProductivityInsights_OverdueTasks(t *testing.T) {
	t.Parallel()

	due := dayOffset(-2)
	var todos []*domain.Todo
	for i := 0; i < 6; i++ {
		todo := testTodo(dayOffset(-3), false)
		todo.DueDate = &due
		todos = append(todos, todo)
	}

	insights := GenerateProductivityInsights(Snapshot{Todos: todos, Now: testNow})

	titles := recommendationTitles(insights)
	assert.Contains(t, titles, "Address Overdue Tasks")
	assert.NotContains(t, titles, "Focus on Smaller Goals", "goal rule must not fire without goals")
}

func TestGenerateProductivityInsights_ConsistentProgress(t *testing.T) {
	t.Parallel()

	var entries []*domain.ProgressEntry
	for i := 1; i <= 5; i++ {
		entries = append(entries, testEntry(dayOffset(-i), domain.LevelNeutral, "", "", 0))
	}

	insights := GenerateProductivityInsights(Snapshot{Entries: entries, Now: testNow})

	assert.Contains(t, achievementTitles(insights), "Consistent Progress")
	assert.NotContains(t, recommendationTitles(insights), "Log Daily Progress")
}

func TestGenerateProductivityInsights_SleepRecommendation(t *testing.T) {
	t.Parallel()

	entries := []*domain.ProgressEntry{
		testEntry(dayOffset(-3), domain.LevelNeutral, domain.LevelNeutral, domain.LevelNeutral, 6),
		testEntry(dayOffset(-2), domain.LevelNeutral, domain.LevelNeutral, domain.LevelNeutral, 6),
		testEntry(dayOffset(-1), domain.LevelNeutral, domain.LevelNeutral, domain.LevelNeutral, 6),
	}

	insights := GenerateProductivityInsights(Snapshot{Entries: entries, Now: testNow})

	titles := recommendationTitles(insights)
	assert.Contains(t, titles, "Improve Sleep Duration")
	assert.Empty(t, patternTitles(insights), "constant series produce no correlation patterns")
}

func TestGenerateProductivityInsights_CorrelationPatterns(t *testing.T) {
	t.Parallel()

	// Five full tuples where everything rises together. Every correlation
	// rule and the paired-series re-check all trip; the mood-productivity
	// pattern must still appear only once.
	levels := []domain.WellbeingLevel{
		domain.LevelVeryLow, domain.LevelLow, domain.LevelNeutral, domain.LevelHigh, domain.LevelVeryHigh,
	}
	var entries []*domain.ProgressEntry
	for i, l := range levels {
		entries = append(entries, testEntry(dayOffset(i-4), l, l, l, 6+float64(i)))
	}

	insights := GenerateProductivityInsights(Snapshot{Entries: entries, Now: testNow})

	patterns := patternTitles(insights)
	require.NotEmpty(t, patterns)
	assert.LessOrEqual(t, len(patterns), 5)

	occurrences := 0
	for _, title := range patterns {
		if title == "Strong Mood-Productivity Link" {
			occurrences++
		}
	}
	assert.Equal(t, 1, occurrences, "duplicate-safe across rule sets")

	assert.Contains(t, patterns, "Sleep Affects Mood")
	assert.Contains(t, achievementTitles(insights), "Mood Improvement", "mood climbed by more than one step this week")
}

func TestGenerateProductivityInsights_GoalAtRisk(t *testing.T) {
	t.Parallel()

	target := dayOffset(5)
	goals := []*domain.Goal{
		{ID: "g1", Title: "Thesis draft", CreatedAt: dayOffset(-30), TargetDate: &target},
	}
	todos := []*domain.Todo{
		testTodo(dayOffset(-3), false),
		testTodo(dayOffset(-2), false),
	}
	todos[0].Title = "thesis outline"
	todos[1].Title = "thesis chapter 1"

	insights := GenerateProductivityInsights(Snapshot{Goals: goals, Todos: todos, Now: testNow})

	assert.Contains(t, recommendationTitles(insights), "Goal At Risk: Thesis draft")
}

func TestGenerateProductivityInsights_SessionLength(t *testing.T) {
	t.Parallel()

	t.Run("Short sessions", func(t *testing.T) {
		t.Parallel()
		sessions := []*domain.TimeSession{
			stoppedSession("a", dayOffset(-1), 300),
			stoppedSession("a", dayOffset(-2), 600),
		}

		insights := GenerateProductivityInsights(Snapshot{Sessions: sessions, Now: testNow})
		assert.Contains(t, patternTitles(insights), "Short Focus Sessions")
	})

	t.Run("Extended sessions", func(t *testing.T) {
		t.Parallel()
		sessions := []*domain.TimeSession{
			stoppedSession("a", dayOffset(-1), 8000),
		}

		insights := GenerateProductivityInsights(Snapshot{Sessions: sessions, Now: testNow})
		assert.Contains(t, patternTitles(insights), "Extended Focus Sessions")
	})
}

func TestGenerateProductivityInsights_Caps(t *testing.T) {
	t.Parallel()

	// A neglected tracker: one stale goal, a dozen open todos (half of
	// them overdue), no sessions, no journal. Enough rules fire to
	// overflow the recommendation cap.
	goals := []*domain.Goal{
		{ID: "g1", Title: "Read more books", CreatedAt: dayOffset(-60)},
	}
	due := dayOffset(-2)
	var todos []*domain.Todo
	for i := 0; i < 12; i++ {
		todo := testTodo(dayOffset(-5), false)
		if i < 6 {
			todo.DueDate = &due
		}
		todos = append(todos, todo)
	}
	activities := []*domain.Activity{
		{ID: "a1", Title: "Work calls"},
	}

	insights := GenerateProductivityInsights(Snapshot{
		Goals:      goals,
		Todos:      todos,
		Activities: activities,
		Now:        testNow,
	})

	require.Len(t, insights.Recommendations, 5, "recommendations cap at 5, first come first kept")
	titles := recommendationTitles(insights)
	assert.Equal(t, "Focus on Smaller Goals", titles[0])
	assert.Contains(t, titles, "Overwhelm Prevention")
	assert.NotContains(t, titles, "Align Activities with Goals", "rules past the cap are dropped")
}
