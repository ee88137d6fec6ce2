package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/lucapasini/tracely/internal/core/domain"
)

type PostgresTimeSessionRepository struct {
	db *sqlx.DB
}

func NewPostgresTimeSessionRepository(db *sqlx.DB) *PostgresTimeSessionRepository {
	return &PostgresTimeSessionRepository{db: db}
}

func (r *PostgresTimeSessionRepository) Create(ctx context.Context, session *domain.TimeSession) error {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}

	query := `
		INSERT INTO time_sessions (
			id, user_id, activity_id, start_time, end_time,
			duration, is_active, created_at, updated_at
		) VALUES (
			:id, :user_id, :activity_id, :start_time, :end_time,
			:duration, :is_active, :created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, session)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23503" {
				return errors.New("referenced activity or user does not exist")
			}
		}
		return err
	}
	return nil
}

func (r *PostgresTimeSessionRepository) GetByID(ctx context.Context, id string) (*domain.TimeSession, error) {
	var session domain.TimeSession
	query := `SELECT * FROM time_sessions WHERE id = $1`

	err := r.db.GetContext(ctx, &session, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *PostgresTimeSessionRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.TimeSession, error) {
	sessions := []*domain.TimeSession{}

	query := `
		SELECT * FROM time_sessions
		WHERE user_id = $1
		ORDER BY start_time DESC`

	err := r.db.SelectContext(ctx, &sessions, query, userID)
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *PostgresTimeSessionRepository) GetActiveByUserID(ctx context.Context, userID string) (*domain.TimeSession, error) {
	var session domain.TimeSession

	query := `
		SELECT * FROM time_sessions
		WHERE user_id = $1 AND is_active = TRUE
		ORDER BY start_time DESC
		LIMIT 1`

	err := r.db.GetContext(ctx, &session, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *PostgresTimeSessionRepository) Update(ctx context.Context, session *domain.TimeSession) error {
	session.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE time_sessions
		SET end_time = :end_time,
		    duration = :duration,
		    is_active = :is_active,
		    updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, session)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrSessionNotFound
	}

	return nil
}

func (r *PostgresTimeSessionRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM time_sessions WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrSessionNotFound
	}

	return nil
}
