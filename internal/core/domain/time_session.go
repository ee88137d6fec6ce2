package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSessionInvalidUserID   = errors.New("invalid user id")
	ErrSessionNoActivity      = errors.New("session must reference an activity")
	ErrSessionAlreadyStopped  = errors.New("session is already stopped")
	ErrSessionStopBeforeStart = errors.New("session cannot stop before it started")
)

// TimeSession is one tracked stretch of time on an activity. Only stopped
// sessions carry a duration and count toward analytics.
type TimeSession struct {
	ID         string     `json:"id" db:"id"`
	UserID     string     `json:"user_id" db:"user_id"`
	ActivityID string     `json:"activity_id" db:"activity_id"`
	StartTime  time.Time  `json:"start_time" db:"start_time"`
	EndTime    *time.Time `json:"end_time,omitempty" db:"end_time"`
	Duration   *int       `json:"duration,omitempty" db:"duration"`
	IsActive   bool       `json:"is_active" db:"is_active"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
}

func NewTimeSession(userID, activityID string, startTime time.Time) (*TimeSession, error) {
	if userID == "" {
		return nil, ErrSessionInvalidUserID
	}
	if activityID == "" {
		return nil, ErrSessionNoActivity
	}

	now := time.Now().UTC()
	if startTime.IsZero() {
		startTime = now
	}

	return &TimeSession{
		ID:         uuid.New().String(),
		UserID:     userID,
		ActivityID: activityID,
		StartTime:  startTime.UTC(),
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Stop closes the session and records the duration in whole seconds.
func (s *TimeSession) Stop(endTime time.Time) error {
	if !s.IsActive {
		return ErrSessionAlreadyStopped
	}

	end := endTime.UTC()
	if end.IsZero() {
		end = time.Now().UTC()
	}
	if end.Before(s.StartTime) {
		return ErrSessionStopBeforeStart
	}

	seconds := int(end.Sub(s.StartTime).Seconds())

	s.EndTime = &end
	s.Duration = &seconds
	s.IsActive = false
	s.UpdatedAt = time.Now().UTC()

	return nil
}

// IsCountable reports whether the session contributes to time statistics.
func (s *TimeSession) IsCountable() bool {
	return !s.IsActive && s.Duration != nil
}

// DurationSeconds returns the recorded duration, 0 for active sessions.
func (s *TimeSession) DurationSeconds() int {
	if s.Duration == nil {
		return 0
	}
	return *s.Duration
}
