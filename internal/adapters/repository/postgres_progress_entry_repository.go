package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/lucapasini/tracely/internal/core/domain"
)

// PostgresProgressEntryRepository stores journal entries. The activities
// column holds the per-day activity logs as JSON; a unique index on
// (user_id, entry_date) enforces the one-entry-per-day rule.
type PostgresProgressEntryRepository struct {
	db *sqlx.DB
}

func NewPostgresProgressEntryRepository(db *sqlx.DB) *PostgresProgressEntryRepository {
	return &PostgresProgressEntryRepository{db: db}
}

type scannable interface {
	Scan(dest ...interface{}) error
}

func (r *PostgresProgressEntryRepository) scanRow(row scannable) (*domain.ProgressEntry, error) {
	var e domain.ProgressEntry
	var activitiesJSON []byte

	err := row.Scan(
		&e.ID, &e.UserID, &e.EntryDate, &activitiesJSON,
		&e.JournalEntry, &e.SleepHours,
		&e.Mood, &e.HealthFeeling, &e.ProductivitySatisfaction,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(activitiesJSON) > 0 {
		if err := json.Unmarshal(activitiesJSON, &e.Activities); err != nil {
			return nil, fmt.Errorf("failed to unmarshal activities: %w", err)
		}
	}

	return &e, nil
}

const progressEntryColumns = `
	id, user_id, entry_date, activities,
	journal_entry, sleep_hours,
	mood, health_feeling, productivity_satisfaction,
	created_at, updated_at`

func (r *PostgresProgressEntryRepository) Create(ctx context.Context, entry *domain.ProgressEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	activitiesJSON, err := json.Marshal(entry.Activities)
	if err != nil {
		return fmt.Errorf("failed to marshal activities: %w", err)
	}

	query := `
		INSERT INTO progress_entries (` + progressEntryColumns + `
		) VALUES (
			$1, $2, $3, $4,
			$5, $6,
			$7, $8, $9,
			$10, $11
		)`

	_, err = r.db.ExecContext(ctx, query,
		entry.ID, entry.UserID, entry.EntryDate, activitiesJSON,
		entry.JournalEntry, entry.SleepHours,
		entry.Mood, entry.HealthFeeling, entry.ProductivitySatisfaction,
		entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23503" {
				return errors.New("referenced user does not exist")
			}
			if pqErr.Code == "23505" {
				return domain.ErrEntryConflict
			}
		}
		return err
	}
	return nil
}

func (r *PostgresProgressEntryRepository) GetByID(ctx context.Context, id string) (*domain.ProgressEntry, error) {
	query := `SELECT ` + progressEntryColumns + ` FROM progress_entries WHERE id = $1`

	entry, err := r.scanRow(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, err
	}
	return entry, nil
}

func (r *PostgresProgressEntryRepository) GetByDate(ctx context.Context, userID string, day time.Time) (*domain.ProgressEntry, error) {
	query := `
		SELECT ` + progressEntryColumns + `
		FROM progress_entries
		WHERE user_id = $1 AND entry_date = $2`

	entry, err := r.scanRow(r.db.QueryRowContext(ctx, query, userID, day))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, err
	}
	return entry, nil
}

func (r *PostgresProgressEntryRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.ProgressEntry, error) {
	query := `
		SELECT ` + progressEntryColumns + `
		FROM progress_entries
		WHERE user_id = $1
		ORDER BY entry_date ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []*domain.ProgressEntry{}

	for rows.Next() {
		entry, err := r.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("row scan error: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (r *PostgresProgressEntryRepository) Update(ctx context.Context, entry *domain.ProgressEntry) error {
	entry.UpdatedAt = time.Now().UTC()

	activitiesJSON, err := json.Marshal(entry.Activities)
	if err != nil {
		return fmt.Errorf("failed to marshal activities: %w", err)
	}

	query := `
		UPDATE progress_entries
		SET activities = $1,
		    journal_entry = $2,
		    sleep_hours = $3,
		    mood = $4,
		    health_feeling = $5,
		    productivity_satisfaction = $6,
		    updated_at = $7
		WHERE id = $8`

	result, err := r.db.ExecContext(ctx, query,
		activitiesJSON, entry.JournalEntry, entry.SleepHours,
		entry.Mood, entry.HealthFeeling, entry.ProductivitySatisfaction,
		entry.UpdatedAt, entry.ID,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrEntryNotFound
	}

	return nil
}

func (r *PostgresProgressEntryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM progress_entries WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrEntryNotFound
	}

	return nil
}
