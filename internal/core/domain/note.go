package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoteTitleEmpty    = errors.New("note title cannot be empty")
	ErrNoteInvalidUserID = errors.New("invalid user id")
)

// Note is free-form text. Analytics only ever counts notes.
type Note struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content,omitempty" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

func NewNote(userID, title, content string) (*Note, error) {
	if userID == "" {
		return nil, ErrNoteInvalidUserID
	}

	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return nil, ErrNoteTitleEmpty
	}

	now := time.Now().UTC()

	return &Note{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     trimmed,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (n *Note) Update(title, content string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return ErrNoteTitleEmpty
	}

	n.Title = trimmed
	n.Content = content
	n.UpdatedAt = time.Now().UTC()
	return nil
}
