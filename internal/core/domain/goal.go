package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrGoalTitleEmpty    = errors.New("goal title cannot be empty")
	ErrGoalTitleTooLong  = errors.New("goal title is too long (max 100 chars)")
	ErrGoalDescTooLong   = errors.New("goal description is too long (max 500 chars)")
	ErrGoalInvalidUserID = errors.New("invalid user id")
	ErrGoalInvalidMax    = errors.New("max progress cannot be negative")
	ErrGoalCompleted     = errors.New("cannot update a completed goal")
)

const (
	MaxTitleLen = 100
	MaxDescLen  = 500
)

type Goal struct {
	ID          string     `json:"id" db:"id"`
	UserID      string     `json:"user_id" db:"user_id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description,omitempty" db:"description"`
	TargetDate  *time.Time `json:"target_date,omitempty" db:"target_date"`
	Progress    int        `json:"progress" db:"progress"`
	MaxProgress int        `json:"max_progress" db:"max_progress"`
	IsCompleted bool       `json:"is_completed" db:"is_completed"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

func validateGoalFields(title, desc string, maxProgress int) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", ErrGoalTitleEmpty
	}
	if len(trimmed) > MaxTitleLen {
		return "", ErrGoalTitleTooLong
	}
	if len(strings.TrimSpace(desc)) > MaxDescLen {
		return "", ErrGoalDescTooLong
	}
	if maxProgress < 0 {
		return "", ErrGoalInvalidMax
	}
	return trimmed, nil
}

func NewGoal(userID, title, description string, targetDate *time.Time, maxProgress int) (*Goal, error) {
	if userID == "" {
		return nil, ErrGoalInvalidUserID
	}

	cleanDesc := strings.TrimSpace(description)
	cleanTitle, err := validateGoalFields(title, cleanDesc, maxProgress)
	if err != nil {
		return nil, err
	}

	if maxProgress == 0 {
		maxProgress = 1
	}

	now := time.Now().UTC()

	return &Goal{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       cleanTitle,
		Description: cleanDesc,
		TargetDate:  targetDate,
		Progress:    0,
		MaxProgress: maxProgress,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (g *Goal) Update(title, description string, targetDate *time.Time, maxProgress int) error {
	if g.IsCompleted {
		return ErrGoalCompleted
	}

	cleanDesc := strings.TrimSpace(description)
	cleanTitle, err := validateGoalFields(title, cleanDesc, maxProgress)
	if err != nil {
		return err
	}

	if maxProgress == 0 {
		maxProgress = 1
	}

	g.Title = cleanTitle
	g.Description = cleanDesc
	g.TargetDate = targetDate
	g.MaxProgress = maxProgress
	if g.Progress > g.MaxProgress {
		g.Progress = g.MaxProgress
	}
	g.UpdatedAt = time.Now().UTC()

	return nil
}

// SetProgress clamps the value to [0, MaxProgress] and marks the goal
// completed once the target is reached.
func (g *Goal) SetProgress(value int) error {
	if g.IsCompleted {
		return ErrGoalCompleted
	}

	if value < 0 {
		value = 0
	}
	if value > g.MaxProgress {
		value = g.MaxProgress
	}

	g.Progress = value
	if g.MaxProgress > 0 && g.Progress >= g.MaxProgress {
		g.IsCompleted = true
	}
	g.UpdatedAt = time.Now().UTC()

	return nil
}

func (g *Goal) Complete() {
	if g.IsCompleted {
		return
	}
	g.IsCompleted = true
	g.Progress = g.MaxProgress
	g.UpdatedAt = time.Now().UTC()
}
