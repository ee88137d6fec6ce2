package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucapasini/tracely/internal/core/domain"
)

type stubUserRepo struct {
	mu      sync.Mutex
	user    *domain.User
	getErr  error
	updates [][4]int
}

func (s *stubUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	clone := *s.user
	return &clone, nil
}

func (s *stubUserRepo) UpdateStreaks(ctx context.Context, userID string, progressCurrent, progressLongest, todoCurrent, todoLongest int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updates = append(s.updates, [4]int{progressCurrent, progressLongest, todoCurrent, todoLongest})
	return nil
}

func (s *stubUserRepo) recorded() [][4]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][4]int, len(s.updates))
	copy(out, s.updates)
	return out
}

type stubEntryRepo struct {
	entries []*domain.ProgressEntry
	err     error
}

func (s *stubEntryRepo) ListByUserID(ctx context.Context, userID string) ([]*domain.ProgressEntry, error) {
	return s.entries, s.err
}

type stubTodoRepo struct {
	todos []*domain.Todo
	err   error
}

func (s *stubTodoRepo) ListByUserID(ctx context.Context, userID string) ([]*domain.Todo, error) {
	return s.todos, s.err
}

func TestStreakWorker_ProcessJob(t *testing.T) {
	today := time.Now().UTC()
	daysAgo := func(n int) time.Time {
		return today.AddDate(0, 0, -n)
	}

	t.Run("Computes and persists both streak pairs", func(t *testing.T) {
		userRepo := &stubUserRepo{user: &domain.User{ID: "user-1"}}
		entryRepo := &stubEntryRepo{entries: []*domain.ProgressEntry{
			{EntryDate: today},
			{EntryDate: daysAgo(1)},
		}}
		todoRepo := &stubTodoRepo{todos: []*domain.Todo{
			{CreatedAt: today, IsCompleted: true},
			{CreatedAt: daysAgo(1), IsCompleted: false},
		}}

		w := NewStreakWorker(userRepo, entryRepo, todoRepo)
		w.processJob(context.Background(), StreakJob{UserID: "user-1"})

		require.Len(t, userRepo.recorded(), 1)
		assert.Equal(t, [4]int{2, 2, 1, 1}, userRepo.recorded()[0],
			"two journal days in a row, one todo day (the open todo must not count)")
	})

	t.Run("Skips the write when nothing changed", func(t *testing.T) {
		userRepo := &stubUserRepo{user: &domain.User{
			ID:                    "user-1",
			CurrentProgressStreak: 1,
			LongestProgressStreak: 1,
		}}
		entryRepo := &stubEntryRepo{entries: []*domain.ProgressEntry{
			{EntryDate: today},
		}}
		todoRepo := &stubTodoRepo{}

		w := NewStreakWorker(userRepo, entryRepo, todoRepo)
		w.processJob(context.Background(), StreakJob{UserID: "user-1"})

		assert.Empty(t, userRepo.recorded())
	})

	t.Run("Bails out on fetch errors", func(t *testing.T) {
		userRepo := &stubUserRepo{user: &domain.User{ID: "user-1"}}
		entryRepo := &stubEntryRepo{err: errors.New("db connection lost")}
		todoRepo := &stubTodoRepo{}

		w := NewStreakWorker(userRepo, entryRepo, todoRepo)
		w.processJob(context.Background(), StreakJob{UserID: "user-1"})

		assert.Empty(t, userRepo.recorded())
	})
}

func TestStreakWorker_Enqueue(t *testing.T) {
	t.Run("Drops jobs instead of blocking when the queue is full", func(t *testing.T) {
		w := NewStreakWorker(&stubUserRepo{}, &stubEntryRepo{}, &stubTodoRepo{})

		// The worker is not started, so nothing drains the channel.
		for i := 0; i < cap(w.jobs); i++ {
			w.Enqueue("user-1")
		}

		done := make(chan struct{})
		go func() {
			w.Enqueue("user-overflow")
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Enqueue blocked on a full queue")
		}

		assert.Len(t, w.jobs, cap(w.jobs))
	})
}

func TestStreakWorker_Lifecycle(t *testing.T) {
	t.Run("Processes queued jobs and stops on context cancel", func(t *testing.T) {
		userRepo := &stubUserRepo{user: &domain.User{ID: "user-1"}}
		entryRepo := &stubEntryRepo{entries: []*domain.ProgressEntry{
			{EntryDate: time.Now().UTC()},
		}}
		todoRepo := &stubTodoRepo{}

		w := NewStreakWorker(userRepo, entryRepo, todoRepo)

		ctx, cancel := context.WithCancel(context.Background())
		w.Start(ctx)
		w.Enqueue("user-1")

		assert.Eventually(t, func() bool {
			return len(userRepo.recorded()) == 1
		}, time.Second, 10*time.Millisecond)

		cancel()
	})
}
