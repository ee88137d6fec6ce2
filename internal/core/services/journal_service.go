package services

import (
	"context"
	"errors"
	"time"

	"github.com/lucapasini/tracely/internal/core/domain"
)

// JournalService owns the daily progress entries. Saving twice on the
// same calendar day updates the existing entry instead of failing.
type JournalService struct {
	repo   domain.ProgressEntryRepository
	worker StreakEnqueuer
}

func NewJournalService(repo domain.ProgressEntryRepository, worker StreakEnqueuer) *JournalService {
	return &JournalService{
		repo:   repo,
		worker: worker,
	}
}

type SaveEntryInput struct {
	UserID                   string
	EntryDate                time.Time
	Activities               []domain.ActivityLog
	JournalEntry             string
	SleepHours               float64
	Mood                     string
	HealthFeeling            string
	ProductivitySatisfaction string
}

// Save upserts the entry for the input's calendar day. Wellbeing tokens
// are parsed here, at the boundary: unknown tokens degrade to neutral.
func (s *JournalService) Save(ctx context.Context, input SaveEntryInput) (*domain.ProgressEntry, error) {
	entry, err := domain.NewProgressEntry(input.UserID, input.EntryDate)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByDate(ctx, input.UserID, entry.EntryDate)
	if err != nil && !errors.Is(err, domain.ErrEntryNotFound) {
		return nil, err
	}
	if existing != nil {
		entry = existing
		entry.UpdatedAt = time.Now().UTC()
	}

	entry.Activities = input.Activities
	entry.JournalEntry = input.JournalEntry
	entry.SleepHours = input.SleepHours
	entry.Mood = domain.ParseWellbeingLevel(input.Mood)
	entry.HealthFeeling = domain.ParseWellbeingLevel(input.HealthFeeling)
	entry.ProductivitySatisfaction = domain.ParseWellbeingLevel(input.ProductivitySatisfaction)

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if existing != nil {
		err = s.repo.Update(ctx, entry)
	} else {
		err = s.repo.Create(ctx, entry)
	}
	if err != nil {
		return nil, err
	}

	s.worker.Enqueue(entry.UserID)

	return entry, nil
}

func (s *JournalService) GetByID(ctx context.Context, id, userID string) (*domain.ProgressEntry, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry.UserID != userID {
		return nil, domain.ErrUnauthorized
	}
	return entry, nil
}

func (s *JournalService) GetByDate(ctx context.Context, userID string, day time.Time) (*domain.ProgressEntry, error) {
	return s.repo.GetByDate(ctx, userID, day.UTC().Truncate(24*time.Hour))
}

func (s *JournalService) ListByUserID(ctx context.Context, userID string) ([]*domain.ProgressEntry, error) {
	return s.repo.ListByUserID(ctx, userID)
}

func (s *JournalService) Delete(ctx context.Context, id, userID string) error {
	if _, err := s.GetByID(ctx, id, userID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.worker.Enqueue(userID)

	return nil
}
