package services

import (
	"context"
	"errors"
	"time"

	"github.com/lucapasini/tracely/internal/core/domain"
)

var ErrSessionAlreadyRunning = errors.New("a session is already running")

// TrackerService owns activities and their time sessions. One running
// session per user at a time.
type TrackerService struct {
	activityRepo domain.ActivityRepository
	sessionRepo  domain.TimeSessionRepository
}

func NewTrackerService(activityRepo domain.ActivityRepository, sessionRepo domain.TimeSessionRepository) *TrackerService {
	return &TrackerService{
		activityRepo: activityRepo,
		sessionRepo:  sessionRepo,
	}
}

type CreateActivityInput struct {
	UserID      string
	Title       string
	Description string
}

func (s *TrackerService) CreateActivity(ctx context.Context, input CreateActivityInput) (*domain.Activity, error) {
	activity, err := domain.NewActivity(input.UserID, input.Title, input.Description)
	if err != nil {
		return nil, err
	}

	if err := s.activityRepo.Create(ctx, activity); err != nil {
		return nil, err
	}

	return activity, nil
}

func (s *TrackerService) GetActivity(ctx context.Context, id, userID string) (*domain.Activity, error) {
	activity, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if activity.UserID != userID {
		return nil, domain.ErrUnauthorized
	}
	return activity, nil
}

func (s *TrackerService) ListActivities(ctx context.Context, userID string) ([]*domain.Activity, error) {
	return s.activityRepo.ListByUserID(ctx, userID)
}

func (s *TrackerService) RenameActivity(ctx context.Context, id, userID, title, description string) (*domain.Activity, error) {
	activity, err := s.GetActivity(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if err := activity.Rename(title, description); err != nil {
		return nil, err
	}

	if err := s.activityRepo.Update(ctx, activity); err != nil {
		return nil, err
	}

	return activity, nil
}

func (s *TrackerService) DeleteActivity(ctx context.Context, id, userID string) error {
	if _, err := s.GetActivity(ctx, id, userID); err != nil {
		return err
	}
	return s.activityRepo.Delete(ctx, id)
}

// StartSession opens a session on an activity the user owns. Fails when
// another session is still running.
func (s *TrackerService) StartSession(ctx context.Context, userID, activityID string, startTime time.Time) (*domain.TimeSession, error) {
	if _, err := s.GetActivity(ctx, activityID, userID); err != nil {
		return nil, err
	}

	_, err := s.sessionRepo.GetActiveByUserID(ctx, userID)
	if err == nil {
		return nil, ErrSessionAlreadyRunning
	}
	if !errors.Is(err, domain.ErrSessionNotFound) {
		return nil, err
	}

	session, err := domain.NewTimeSession(userID, activityID, startTime)
	if err != nil {
		return nil, err
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *TrackerService) StopSession(ctx context.Context, id, userID string, endTime time.Time) (*domain.TimeSession, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, domain.ErrUnauthorized
	}

	if err := session.Stop(endTime); err != nil {
		return nil, err
	}

	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *TrackerService) ListSessions(ctx context.Context, userID string) ([]*domain.TimeSession, error) {
	return s.sessionRepo.ListByUserID(ctx, userID)
}

func (s *TrackerService) DeleteSession(ctx context.Context, id, userID string) error {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if session.UserID != userID {
		return domain.ErrUnauthorized
	}
	return s.sessionRepo.Delete(ctx, id)
}
