package services

import (
	"context"
	"time"

	"github.com/lucapasini/tracely/internal/core/analytics"
	"github.com/lucapasini/tracely/internal/core/domain"
)

// StatsService loads a user's full record set and hands it to the pure
// analytics functions. All the math lives in the analytics package; this
// service only does the repository fan-in.
type StatsService struct {
	goalRepo     domain.GoalRepository
	todoRepo     domain.TodoRepository
	activityRepo domain.ActivityRepository
	sessionRepo  domain.TimeSessionRepository
	entryRepo    domain.ProgressEntryRepository
	noteRepo     domain.NoteRepository
}

func NewStatsService(
	goalRepo domain.GoalRepository,
	todoRepo domain.TodoRepository,
	activityRepo domain.ActivityRepository,
	sessionRepo domain.TimeSessionRepository,
	entryRepo domain.ProgressEntryRepository,
	noteRepo domain.NoteRepository,
) *StatsService {
	return &StatsService{
		goalRepo:     goalRepo,
		todoRepo:     todoRepo,
		activityRepo: activityRepo,
		sessionRepo:  sessionRepo,
		entryRepo:    entryRepo,
		noteRepo:     noteRepo,
	}
}

type StatsInput struct {
	UserID          string
	Period          string
	Now             time.Time
	IncludeInsights bool
}

func (s *StatsService) loadSnapshot(ctx context.Context, userID string, period string, now time.Time) (analytics.Snapshot, error) {
	goals, err := s.goalRepo.ListByUserID(ctx, userID)
	if err != nil {
		return analytics.Snapshot{}, err
	}
	todos, err := s.todoRepo.ListByUserID(ctx, userID)
	if err != nil {
		return analytics.Snapshot{}, err
	}
	activities, err := s.activityRepo.ListByUserID(ctx, userID)
	if err != nil {
		return analytics.Snapshot{}, err
	}
	sessions, err := s.sessionRepo.ListByUserID(ctx, userID)
	if err != nil {
		return analytics.Snapshot{}, err
	}
	entries, err := s.entryRepo.ListByUserID(ctx, userID)
	if err != nil {
		return analytics.Snapshot{}, err
	}
	notes, err := s.noteRepo.ListByUserID(ctx, userID)
	if err != nil {
		return analytics.Snapshot{}, err
	}

	return analytics.Snapshot{
		Goals:      goals,
		Todos:      todos,
		Activities: activities,
		Sessions:   sessions,
		Entries:    entries,
		Notes:      notes,
		Period:     period,
		Now:        now,
	}, nil
}

func (s *StatsService) GetComprehensiveStats(ctx context.Context, input StatsInput) (*domain.ComprehensiveStats, error) {
	snapshot, err := s.loadSnapshot(ctx, input.UserID, input.Period, input.Now)
	if err != nil {
		return nil, err
	}

	stats := analytics.CalculateComprehensiveStats(snapshot)
	if input.IncludeInsights {
		stats.Insights = analytics.GenerateProductivityInsights(snapshot)
	}

	return stats, nil
}

func (s *StatsService) GetProductivityInsights(ctx context.Context, userID string, now time.Time) (*domain.ProductivityInsights, error) {
	snapshot, err := s.loadSnapshot(ctx, userID, "", now)
	if err != nil {
		return nil, err
	}

	return analytics.GenerateProductivityInsights(snapshot), nil
}
