package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/lucapasini/tracely/internal/core/domain"
)

type PostgresNoteRepository struct {
	db *sqlx.DB
}

func NewPostgresNoteRepository(db *sqlx.DB) *PostgresNoteRepository {
	return &PostgresNoteRepository{db: db}
}

func (r *PostgresNoteRepository) Create(ctx context.Context, note *domain.Note) error {
	if note.ID == "" {
		note.ID = uuid.NewString()
	}

	query := `
		INSERT INTO notes (
			id, user_id, title, content, created_at, updated_at
		) VALUES (
			:id, :user_id, :title, :content, :created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, note)
	return err
}

func (r *PostgresNoteRepository) GetByID(ctx context.Context, id string) (*domain.Note, error) {
	var note domain.Note
	query := `SELECT * FROM notes WHERE id = $1`

	err := r.db.GetContext(ctx, &note, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, err
	}
	return &note, nil
}

func (r *PostgresNoteRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Note, error) {
	notes := []*domain.Note{}

	query := `
		SELECT * FROM notes
		WHERE user_id = $1
		ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &notes, query, userID)
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *PostgresNoteRepository) Update(ctx context.Context, note *domain.Note) error {
	note.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE notes
		SET title = :title,
		    content = :content,
		    updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, note)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNoteNotFound
	}

	return nil
}

func (r *PostgresNoteRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNoteNotFound
	}

	return nil
}
