package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrUnauthorized     = errors.New("resource does not belong to the user")
	ErrGoalNotFound     = errors.New("goal not found")
	ErrTodoNotFound     = errors.New("todo not found")
	ErrActivityNotFound = errors.New("activity not found")
	ErrSessionNotFound  = errors.New("time session not found")
	ErrEntryNotFound    = errors.New("progress entry not found")
	ErrEntryConflict    = errors.New("progress entry already exists for that day")
	ErrNoteNotFound     = errors.New("note not found")
)

type GoalRepository interface {
	Create(ctx context.Context, goal *Goal) error

	GetByID(ctx context.Context, id string) (*Goal, error)

	// ListByUserID retrieves every goal belonging to a user, newest first.
	ListByUserID(ctx context.Context, userID string) ([]*Goal, error)

	Update(ctx context.Context, goal *Goal) error

	Delete(ctx context.Context, id string) error
}

type TodoRepository interface {
	Create(ctx context.Context, todo *Todo) error

	GetByID(ctx context.Context, id string) (*Todo, error)

	ListByUserID(ctx context.Context, userID string) ([]*Todo, error)

	Update(ctx context.Context, todo *Todo) error

	Delete(ctx context.Context, id string) error
}

type ActivityRepository interface {
	Create(ctx context.Context, activity *Activity) error

	GetByID(ctx context.Context, id string) (*Activity, error)

	ListByUserID(ctx context.Context, userID string) ([]*Activity, error)

	Update(ctx context.Context, activity *Activity) error

	Delete(ctx context.Context, id string) error
}

type TimeSessionRepository interface {
	Create(ctx context.Context, session *TimeSession) error

	GetByID(ctx context.Context, id string) (*TimeSession, error)

	ListByUserID(ctx context.Context, userID string) ([]*TimeSession, error)

	// GetActiveByUserID returns the user's currently running session,
	// ErrSessionNotFound when none is running.
	GetActiveByUserID(ctx context.Context, userID string) (*TimeSession, error)

	Update(ctx context.Context, session *TimeSession) error

	Delete(ctx context.Context, id string) error
}

type ProgressEntryRepository interface {
	// Create persists a new journal entry. Implementations must reject a
	// second entry for the same user and calendar day with ErrEntryConflict.
	Create(ctx context.Context, entry *ProgressEntry) error

	GetByID(ctx context.Context, id string) (*ProgressEntry, error)

	// GetByDate retrieves the single entry for a calendar day, if any.
	GetByDate(ctx context.Context, userID string, day time.Time) (*ProgressEntry, error)

	ListByUserID(ctx context.Context, userID string) ([]*ProgressEntry, error)

	Update(ctx context.Context, entry *ProgressEntry) error

	Delete(ctx context.Context, id string) error
}

type NoteRepository interface {
	Create(ctx context.Context, note *Note) error

	GetByID(ctx context.Context, id string) (*Note, error)

	ListByUserID(ctx context.Context, userID string) ([]*Note, error)

	Update(ctx context.Context, note *Note) error

	Delete(ctx context.Context, id string) error
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error

	GetByID(ctx context.Context, id string) (*User, error)

	GetByEmail(ctx context.Context, email string) (*User, error)

	// UpdateStreaks persists the denormalized streak counters computed by
	// the streak worker.
	UpdateStreaks(ctx context.Context, userID string, progressCurrent, progressLongest, todoCurrent, todoLongest int) error
}
