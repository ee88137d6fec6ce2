package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEntryInvalidUserID = errors.New("invalid user id")
	ErrEntryInvalidDate   = errors.New("entry date is required")
	ErrEntryInvalidSleep  = errors.New("sleep hours cannot be negative")
)

// WellbeingLevel is a five-step scale shared by the mood, productivity
// satisfaction, and health dimensions. The empty string means the field
// was not filled in for that day.
type WellbeingLevel string

const (
	LevelVeryLow  WellbeingLevel = "very_low"
	LevelLow      WellbeingLevel = "low"
	LevelNeutral  WellbeingLevel = "neutral"
	LevelHigh     WellbeingLevel = "high"
	LevelVeryHigh WellbeingLevel = "very_high"
)

// WellbeingLevels lists the scale in ascending score order.
var WellbeingLevels = []WellbeingLevel{
	LevelVeryLow, LevelLow, LevelNeutral, LevelHigh, LevelVeryHigh,
}

// ParseWellbeingLevel normalizes a stored token into a level. Unknown
// non-empty tokens degrade to neutral instead of failing; an empty token
// stays empty (field absent).
func ParseWellbeingLevel(token string) WellbeingLevel {
	switch token {
	case "":
		return ""
	case string(LevelVeryLow), "1":
		return LevelVeryLow
	case string(LevelLow), "2":
		return LevelLow
	case string(LevelNeutral), "3":
		return LevelNeutral
	case string(LevelHigh), "4":
		return LevelHigh
	case string(LevelVeryHigh), "5":
		return LevelVeryHigh
	}
	return LevelNeutral
}

// Score maps a level to its 1-5 integer value. Anything unrecognized
// scores neutral; callers must check IsSet before treating the score as
// a real observation.
func (l WellbeingLevel) Score() int {
	switch l {
	case LevelVeryLow:
		return 1
	case LevelLow:
		return 2
	case LevelNeutral:
		return 3
	case LevelHigh:
		return 4
	case LevelVeryHigh:
		return 5
	}
	return 3
}

func (l WellbeingLevel) IsSet() bool {
	return l != ""
}

// ActivityLog is a free-form "spent N hours M minutes on X" line inside a
// journal entry, independent from tracked time sessions.
type ActivityLog struct {
	Activity string `json:"activity"`
	Hours    int    `json:"hours"`
	Minutes  int    `json:"minutes"`
}

// ProgressEntry is the daily journal record: at most one per user per
// calendar day, enforced by the storage layer.
type ProgressEntry struct {
	ID                       string         `json:"id" db:"id"`
	UserID                   string         `json:"user_id" db:"user_id"`
	EntryDate                time.Time      `json:"entry_date" db:"entry_date"`
	Activities               []ActivityLog  `json:"activities,omitempty"`
	JournalEntry             string         `json:"journal_entry,omitempty" db:"journal_entry"`
	SleepHours               float64        `json:"sleep_hours,omitempty" db:"sleep_hours"`
	Mood                     WellbeingLevel `json:"mood,omitempty" db:"mood"`
	HealthFeeling            WellbeingLevel `json:"health_feeling,omitempty" db:"health_feeling"`
	ProductivitySatisfaction WellbeingLevel `json:"productivity_satisfaction,omitempty" db:"productivity_satisfaction"`
	CreatedAt                time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt                time.Time      `json:"updated_at" db:"updated_at"`
}

func NewProgressEntry(userID string, entryDate time.Time) (*ProgressEntry, error) {
	if userID == "" {
		return nil, ErrEntryInvalidUserID
	}
	if entryDate.IsZero() {
		return nil, ErrEntryInvalidDate
	}

	now := time.Now().UTC()

	return &ProgressEntry{
		ID:        uuid.New().String(),
		UserID:    userID,
		EntryDate: entryDate.UTC().Truncate(24 * time.Hour),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (e *ProgressEntry) Validate() error {
	if e.UserID == "" {
		return ErrEntryInvalidUserID
	}
	if e.EntryDate.IsZero() {
		return ErrEntryInvalidDate
	}
	if e.SleepHours < 0 {
		return ErrEntryInvalidSleep
	}
	return nil
}

// HasWellbeingData reports whether at least one wellbeing dimension was
// filled in (sleep counts only when positive).
func (e *ProgressEntry) HasWellbeingData() bool {
	return e.Mood.IsSet() || e.ProductivitySatisfaction.IsSet() ||
		e.HealthFeeling.IsSet() || e.SleepHours > 0
}

// HasFullWellbeingData reports whether all four dimensions are present,
// which is what the cross-metric correlation rules require.
func (e *ProgressEntry) HasFullWellbeingData() bool {
	return e.Mood.IsSet() && e.ProductivitySatisfaction.IsSet() &&
		e.HealthFeeling.IsSet() && e.SleepHours > 0
}
