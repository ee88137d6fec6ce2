package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrActivityTitleEmpty    = errors.New("activity title cannot be empty")
	ErrActivityTitleTooLong  = errors.New("activity title is too long (max 100 chars)")
	ErrActivityInvalidUserID = errors.New("invalid user id")
)

// Activity is a label that groups time sessions ("Deep Work", "Reading", ...).
type Activity struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"user_id" db:"user_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

func NewActivity(userID, title, description string) (*Activity, error) {
	if userID == "" {
		return nil, ErrActivityInvalidUserID
	}

	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return nil, ErrActivityTitleEmpty
	}
	if len(trimmed) > MaxTitleLen {
		return nil, ErrActivityTitleTooLong
	}

	now := time.Now().UTC()

	return &Activity{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       trimmed,
		Description: strings.TrimSpace(description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (a *Activity) Rename(title, description string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return ErrActivityTitleEmpty
	}
	if len(trimmed) > MaxTitleLen {
		return ErrActivityTitleTooLong
	}

	a.Title = trimmed
	a.Description = strings.TrimSpace(description)
	a.UpdatedAt = time.Now().UTC()
	return nil
}
