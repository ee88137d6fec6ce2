package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucapasini/tracely/internal/core/domain"
	"github.com/lucapasini/tracely/internal/core/services"
)

type mockNoteRepo struct {
	store         map[string]*domain.Note
	simulateError error
}

func newMockNoteRepo() *mockNoteRepo {
	return &mockNoteRepo{
		store: make(map[string]*domain.Note),
	}
}

func (m *mockNoteRepo) Create(ctx context.Context, note *domain.Note) error {
	if m.simulateError != nil {
		return m.simulateError
	}
	if note.ID == "" {
		note.ID = uuid.NewString()
	}
	clone := *note
	m.store[note.ID] = &clone
	return nil
}

func (m *mockNoteRepo) GetByID(ctx context.Context, id string) (*domain.Note, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	n, ok := m.store[id]
	if !ok {
		return nil, domain.ErrNoteNotFound
	}
	clone := *n
	return &clone, nil
}

func (m *mockNoteRepo) ListByUserID(ctx context.Context, userID string) ([]*domain.Note, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	var list []*domain.Note
	for _, n := range m.store {
		if n.UserID == userID {
			clone := *n
			list = append(list, &clone)
		}
	}
	return list, nil
}

func (m *mockNoteRepo) Update(ctx context.Context, note *domain.Note) error {
	if m.simulateError != nil {
		return m.simulateError
	}
	if _, ok := m.store[note.ID]; !ok {
		return domain.ErrNoteNotFound
	}
	clone := *note
	m.store[note.ID] = &clone
	return nil
}

func (m *mockNoteRepo) Delete(ctx context.Context, id string) error {
	if m.simulateError != nil {
		return m.simulateError
	}
	if _, ok := m.store[id]; !ok {
		return domain.ErrNoteNotFound
	}
	delete(m.store, id)
	return nil
}

type statsFixture struct {
	goals      *mockGoalRepo
	todos      *mockTodoRepo
	activities *mockActivityRepo
	sessions   *mockSessionRepo
	entries    *mockEntryRepo
	notes      *mockNoteRepo
	svc        *services.StatsService
}

func newStatsFixture() *statsFixture {
	f := &statsFixture{
		goals:      newMockGoalRepo(),
		todos:      newMockTodoRepo(),
		activities: newMockActivityRepo(),
		sessions:   newMockSessionRepo(),
		entries:    newMockEntryRepo(),
		notes:      newMockNoteRepo(),
	}
	f.svc = services.NewStatsService(f.goals, f.todos, f.activities, f.sessions, f.entries, f.notes)
	return f
}

func TestStatsService_GetComprehensiveStats(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	userID := "user-stats"

	t.Run("Success: Aggregates across every repository", func(t *testing.T) {
		f := newStatsFixture()

		goal, _ := domain.NewGoal(userID, "Ship the project", "", nil, 10)
		goal.CreatedAt = now.AddDate(0, 0, -1)
		require.NoError(t, f.goals.Create(ctx, goal))

		done, _ := domain.NewTodo(userID, "Done task", "", nil)
		done.CreatedAt = now.AddDate(0, 0, -1)
		require.NoError(t, done.Complete())
		open, _ := domain.NewTodo(userID, "Open task", "", nil)
		open.CreatedAt = now.AddDate(0, 0, -1)
		require.NoError(t, f.todos.Create(ctx, done))
		require.NoError(t, f.todos.Create(ctx, open))

		note, _ := domain.NewNote(userID, "Scratch", "ideas")
		note.CreatedAt = now.AddDate(0, 0, -1)
		require.NoError(t, f.notes.Create(ctx, note))

		stats, err := f.svc.GetComprehensiveStats(ctx, services.StatsInput{
			UserID: userID,
			Period: "week",
			Now:    now,
		})

		require.NoError(t, err)
		assert.Equal(t, "week", stats.Period)
		assert.Equal(t, 1, stats.Overview.TotalGoals)
		assert.Equal(t, 2, stats.Overview.TotalTodos)
		assert.Equal(t, 1, stats.Overview.CompletedTodos)
		assert.Equal(t, 50, stats.Overview.TodoCompletionRate)
		assert.Equal(t, 1, stats.Overview.TotalNotes)
		assert.Nil(t, stats.Insights, "insights are opt-in")
	})

	t.Run("Success: Insights attach when requested", func(t *testing.T) {
		f := newStatsFixture()

		stats, err := f.svc.GetComprehensiveStats(ctx, services.StatsInput{
			UserID:          userID,
			Period:          "week",
			Now:             now,
			IncludeInsights: true,
		})

		require.NoError(t, err)
		require.NotNil(t, stats.Insights)
		assert.NotEmpty(t, stats.Insights.Recommendations)
	})

	t.Run("Success: Data stays scoped to the user", func(t *testing.T) {
		f := newStatsFixture()

		other, _ := domain.NewGoal("someone-else", "Not yours", "", nil, 1)
		require.NoError(t, f.goals.Create(ctx, other))

		stats, err := f.svc.GetComprehensiveStats(ctx, services.StatsInput{
			UserID: userID,
			Period: "week",
			Now:    now,
		})

		require.NoError(t, err)
		assert.Equal(t, 0, stats.Overview.TotalGoals)
	})

	t.Run("Fail: Repository error propagates", func(t *testing.T) {
		f := newStatsFixture()
		dbErr := errors.New("db connection lost")
		f.sessions.simulateError = dbErr

		stats, err := f.svc.GetComprehensiveStats(ctx, services.StatsInput{
			UserID: userID,
			Period: "week",
			Now:    now,
		})

		assert.ErrorIs(t, err, dbErr)
		assert.Nil(t, stats)
	})
}

func TestStatsService_GetProductivityInsights(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Success: Empty account still gets bootstrap nudges", func(t *testing.T) {
		f := newStatsFixture()

		insights, err := f.svc.GetProductivityInsights(ctx, "user-new", now)

		require.NoError(t, err)
		require.NotNil(t, insights)
		assert.NotEmpty(t, insights.Recommendations)
		assert.Empty(t, insights.Achievements)
	})

	t.Run("Fail: Repository error propagates", func(t *testing.T) {
		f := newStatsFixture()
		dbErr := errors.New("query timeout")
		f.entries.simulateError = dbErr

		insights, err := f.svc.GetProductivityInsights(ctx, "user-new", now)

		assert.ErrorIs(t, err, dbErr)
		assert.Nil(t, insights)
	})
}
