package services

import (
	"context"
	"time"

	"github.com/lucapasini/tracely/internal/core/domain"
)

// StreakEnqueuer is the slice of the streak worker the services need.
type StreakEnqueuer interface {
	Enqueue(userID string)
}

type TodoService struct {
	repo   domain.TodoRepository
	worker StreakEnqueuer
}

func NewTodoService(repo domain.TodoRepository, worker StreakEnqueuer) *TodoService {
	return &TodoService{
		repo:   repo,
		worker: worker,
	}
}

type CreateTodoInput struct {
	UserID   string
	Title    string
	Priority string
	DueDate  *time.Time
}

type UpdateTodoInput struct {
	ID       string
	UserID   string
	Title    string
	Priority string
	DueDate  *time.Time
}

func (s *TodoService) Create(ctx context.Context, input CreateTodoInput) (*domain.Todo, error) {
	todo, err := domain.NewTodo(input.UserID, input.Title, input.Priority, input.DueDate)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, todo); err != nil {
		return nil, err
	}

	return todo, nil
}

func (s *TodoService) GetByID(ctx context.Context, id, userID string) (*domain.Todo, error) {
	todo, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if todo.UserID != userID {
		return nil, domain.ErrUnauthorized
	}
	return todo, nil
}

func (s *TodoService) ListByUserID(ctx context.Context, userID string) ([]*domain.Todo, error) {
	return s.repo.ListByUserID(ctx, userID)
}

func (s *TodoService) Update(ctx context.Context, input UpdateTodoInput) (*domain.Todo, error) {
	todo, err := s.GetByID(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := todo.Update(input.Title, input.Priority, input.DueDate); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, todo); err != nil {
		return nil, err
	}

	return todo, nil
}

func (s *TodoService) Complete(ctx context.Context, id, userID string) (*domain.Todo, error) {
	todo, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if err := todo.Complete(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, todo); err != nil {
		return nil, err
	}

	s.worker.Enqueue(userID)

	return todo, nil
}

func (s *TodoService) Reopen(ctx context.Context, id, userID string) (*domain.Todo, error) {
	todo, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if err := todo.Reopen(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, todo); err != nil {
		return nil, err
	}

	s.worker.Enqueue(userID)

	return todo, nil
}

func (s *TodoService) Delete(ctx context.Context, id, userID string) error {
	todo, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if todo.IsCompleted {
		s.worker.Enqueue(userID)
	}

	return nil
}
