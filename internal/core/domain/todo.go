package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTodoTitleEmpty     = errors.New("todo title cannot be empty")
	ErrTodoTitleTooLong   = errors.New("todo title is too long (max 100 chars)")
	ErrTodoInvalidUserID  = errors.New("invalid user id")
	ErrInvalidPriority    = errors.New("invalid priority (must be low, medium, or high)")
	ErrTodoAlreadyDone    = errors.New("todo is already completed")
	ErrTodoNotCompleted   = errors.New("todo is not completed")
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type Todo struct {
	ID          string     `json:"id" db:"id"`
	UserID      string     `json:"user_id" db:"user_id"`
	Title       string     `json:"title" db:"title"`
	DueDate     *time.Time `json:"due_date,omitempty" db:"due_date"`
	Priority    string     `json:"priority" db:"priority"`
	IsCompleted bool       `json:"is_completed" db:"is_completed"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

func validatePriority(priority string) error {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return nil
	}
	return ErrInvalidPriority
}

func NewTodo(userID, title, priority string, dueDate *time.Time) (*Todo, error) {
	if userID == "" {
		return nil, ErrTodoInvalidUserID
	}

	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return nil, ErrTodoTitleEmpty
	}
	if len(trimmed) > MaxTitleLen {
		return nil, ErrTodoTitleTooLong
	}

	if priority == "" {
		priority = PriorityMedium
	}
	if err := validatePriority(priority); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	return &Todo{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     trimmed,
		DueDate:   dueDate,
		Priority:  priority,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (t *Todo) Update(title, priority string, dueDate *time.Time) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return ErrTodoTitleEmpty
	}
	if len(trimmed) > MaxTitleLen {
		return ErrTodoTitleTooLong
	}
	if err := validatePriority(priority); err != nil {
		return err
	}

	t.Title = trimmed
	t.Priority = priority
	t.DueDate = dueDate
	t.UpdatedAt = time.Now().UTC()

	return nil
}

func (t *Todo) Complete() error {
	if t.IsCompleted {
		return ErrTodoAlreadyDone
	}
	t.IsCompleted = true
	t.UpdatedAt = time.Now().UTC()
	return nil
}

func (t *Todo) Reopen() error {
	if !t.IsCompleted {
		return ErrTodoNotCompleted
	}
	t.IsCompleted = false
	t.UpdatedAt = time.Now().UTC()
	return nil
}

// IsOverdue reports whether an incomplete todo has passed its due date.
func (t *Todo) IsOverdue(now time.Time) bool {
	return !t.IsCompleted && t.DueDate != nil && t.DueDate.Before(now)
}
