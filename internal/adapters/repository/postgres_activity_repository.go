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

type PostgresActivityRepository struct {
	db *sqlx.DB
}

func NewPostgresActivityRepository(db *sqlx.DB) *PostgresActivityRepository {
	return &PostgresActivityRepository{db: db}
}

func (r *PostgresActivityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	if activity.ID == "" {
		activity.ID = uuid.NewString()
	}

	query := `
		INSERT INTO activities (
			id, user_id, title, description, created_at, updated_at
		) VALUES (
			:id, :user_id, :title, :description, :created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, activity)
	return err
}

func (r *PostgresActivityRepository) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	var activity domain.Activity
	query := `SELECT * FROM activities WHERE id = $1`

	err := r.db.GetContext(ctx, &activity, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrActivityNotFound
		}
		return nil, err
	}
	return &activity, nil
}

func (r *PostgresActivityRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Activity, error) {
	activities := []*domain.Activity{}

	query := `
		SELECT * FROM activities
		WHERE user_id = $1
		ORDER BY title ASC`

	err := r.db.SelectContext(ctx, &activities, query, userID)
	if err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *PostgresActivityRepository) Update(ctx context.Context, activity *domain.Activity) error {
	activity.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE activities
		SET title = :title,
		    description = :description,
		    updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, activity)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrActivityNotFound
	}

	return nil
}

func (r *PostgresActivityRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM activities WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrActivityNotFound
	}

	return nil
}
