package workers

import (
	"context"
	"log"
	"time"

	"github.com/lucapasini/tracely/internal/core/analytics"
	"github.com/lucapasini/tracely/internal/core/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	UpdateStreaks(ctx context.Context, userID string, progressCurrent, progressLongest, todoCurrent, todoLongest int) error
}

type EntryRepository interface {
	ListByUserID(ctx context.Context, userID string) ([]*domain.ProgressEntry, error)
}

type TodoRepository interface {
	ListByUserID(ctx context.Context, userID string) ([]*domain.Todo, error)
}

type StreakJob struct {
	UserID string
}

// StreakWorker recomputes a user's progress and todo streaks in the
// background after journal or todo writes, so reads never pay for the
// recalculation.
type StreakWorker struct {
	userRepo  UserRepository
	entryRepo EntryRepository
	todoRepo  TodoRepository
	jobs      chan StreakJob
}

func NewStreakWorker(userRepo UserRepository, entryRepo EntryRepository, todoRepo TodoRepository) *StreakWorker {
	return &StreakWorker{
		userRepo:  userRepo,
		entryRepo: entryRepo,
		todoRepo:  todoRepo,
		jobs:      make(chan StreakJob, 100),
	}
}

func (w *StreakWorker) Start(ctx context.Context) {
	go func() {
		log.Println("Streak Worker started in background...")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				log.Println("Streak Worker shutting down...")
				return
			}
		}
	}()
}

func (w *StreakWorker) Enqueue(userID string) {
	select {
	case w.jobs <- StreakJob{UserID: userID}:
	default:
		log.Printf("Streak Worker queue full! Dropping job for user %s", userID)
	}
}

func (w *StreakWorker) processJob(ctx context.Context, job StreakJob) {
	user, err := w.userRepo.GetByID(ctx, job.UserID)
	if err != nil {
		log.Printf("Worker Error fetching user %s: %v", job.UserID, err)
		return
	}

	entries, err := w.entryRepo.ListByUserID(ctx, job.UserID)
	if err != nil {
		log.Printf("Worker Error fetching entries for %s: %v", job.UserID, err)
		return
	}

	todos, err := w.todoRepo.ListByUserID(ctx, job.UserID)
	if err != nil {
		log.Printf("Worker Error fetching todos for %s: %v", job.UserID, err)
		return
	}

	now := time.Now().UTC()

	progressDates := make([]time.Time, 0, len(entries))
	for _, e := range entries {
		progressDates = append(progressDates, e.EntryDate)
	}
	progressCurrent, progressLongest := analytics.CalculateStreaks(progressDates, now)

	todoDates := make([]time.Time, 0, len(todos))
	for _, t := range todos {
		if t.IsCompleted {
			todoDates = append(todoDates, t.CreatedAt)
		}
	}
	todoCurrent, todoLongest := analytics.CalculateStreaks(todoDates, now)

	changed := user.CurrentProgressStreak != progressCurrent ||
		user.LongestProgressStreak != progressLongest ||
		user.CurrentTodoStreak != todoCurrent ||
		user.LongestTodoStreak != todoLongest

	if !changed {
		return
	}

	err = w.userRepo.UpdateStreaks(ctx, job.UserID, progressCurrent, progressLongest, todoCurrent, todoLongest)
	if err != nil {
		log.Printf("Worker Failed to update streaks for %s: %v", job.UserID, err)
		return
	}
	log.Printf("Streaks updated for %s: Progress=%d/%d Todo=%d/%d",
		job.UserID, progressCurrent, progressLongest, todoCurrent, todoLongest)
}
