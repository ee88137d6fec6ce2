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

type PostgresTodoRepository struct {
	db *sqlx.DB
}

func NewPostgresTodoRepository(db *sqlx.DB) *PostgresTodoRepository {
	return &PostgresTodoRepository{db: db}
}

func (r *PostgresTodoRepository) Create(ctx context.Context, todo *domain.Todo) error {
	if todo.ID == "" {
		todo.ID = uuid.NewString()
	}

	query := `
		INSERT INTO todos (
			id, user_id, title, due_date, priority,
			is_completed, created_at, updated_at
		) VALUES (
			:id, :user_id, :title, :due_date, :priority,
			:is_completed, :created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, todo)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23503" {
				return errors.New("referenced user does not exist")
			}
		}
		return err
	}
	return nil
}

func (r *PostgresTodoRepository) GetByID(ctx context.Context, id string) (*domain.Todo, error) {
	var todo domain.Todo
	query := `SELECT * FROM todos WHERE id = $1`

	err := r.db.GetContext(ctx, &todo, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTodoNotFound
		}
		return nil, err
	}
	return &todo, nil
}

func (r *PostgresTodoRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Todo, error) {
	todos := []*domain.Todo{}

	query := `
		SELECT * FROM todos
		WHERE user_id = $1
		ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &todos, query, userID)
	if err != nil {
		return nil, err
	}
	return todos, nil
}

func (r *PostgresTodoRepository) Update(ctx context.Context, todo *domain.Todo) error {
	todo.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE todos
		SET title = :title,
		    due_date = :due_date,
		    priority = :priority,
		    is_completed = :is_completed,
		    updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, todo)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrTodoNotFound
	}

	return nil
}

func (r *PostgresTodoRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrTodoNotFound
	}

	return nil
}
