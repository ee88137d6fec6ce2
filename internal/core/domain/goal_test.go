package domain

import (
	"strings"
	"testing"
	"time"
)

func TestNewGoal(t *testing.T) {
	t.Parallel()

	t.Run("Should create goal with trimmed fields", func(t *testing.T) {
		t.Parallel()

		goal, err := NewGoal("user-1", "  Learn Go  ", "  deep dive  ", nil, 10)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if goal.Title != "Learn Go" {
			t.Errorf("Expected trimmed title, got %q", goal.Title)
		}
		if goal.Description != "deep dive" {
			t.Errorf("Expected trimmed description, got %q", goal.Description)
		}
		if goal.Progress != 0 {
			t.Errorf("Expected zero progress, got %d", goal.Progress)
		}
		if goal.MaxProgress != 10 {
			t.Errorf("Expected max progress 10, got %d", goal.MaxProgress)
		}
		if goal.ID == "" {
			t.Error("Expected a generated ID")
		}
	})

	t.Run("Should default max progress to 1", func(t *testing.T) {
		t.Parallel()

		goal, err := NewGoal("user-1", "Run a marathon", "", nil, 0)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if goal.MaxProgress != 1 {
			t.Errorf("Expected default max progress 1, got %d", goal.MaxProgress)
		}
	})

	t.Run("Should reject empty title", func(t *testing.T) {
		t.Parallel()

		if _, err := NewGoal("user-1", "   ", "", nil, 1); err != ErrGoalTitleEmpty {
			t.Errorf("Expected ErrGoalTitleEmpty, got %v", err)
		}
	})

	t.Run("Should reject overlong title", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("x", MaxTitleLen+1)
		if _, err := NewGoal("user-1", long, "", nil, 1); err != ErrGoalTitleTooLong {
			t.Errorf("Expected ErrGoalTitleTooLong, got %v", err)
		}
	})

	t.Run("Should reject missing user", func(t *testing.T) {
		t.Parallel()

		if _, err := NewGoal("", "Valid", "", nil, 1); err != ErrGoalInvalidUserID {
			t.Errorf("Expected ErrGoalInvalidUserID, got %v", err)
		}
	})
}

func TestGoalSetProgress(t *testing.T) {
	t.Parallel()

	t.Run("Should clamp to bounds", func(t *testing.T) {
		t.Parallel()

		goal, _ := NewGoal("user-1", "Read books", "", nil, 10)

		if err := goal.SetProgress(-5); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if goal.Progress != 0 {
			t.Errorf("Expected clamp to 0, got %d", goal.Progress)
		}

		if err := goal.SetProgress(4); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if goal.Progress != 4 || goal.IsCompleted {
			t.Errorf("Expected progress 4 and not completed, got %d / %v", goal.Progress, goal.IsCompleted)
		}
	})

	t.Run("Should complete at max", func(t *testing.T) {
		t.Parallel()

		goal, _ := NewGoal("user-1", "Read books", "", nil, 10)

		if err := goal.SetProgress(15); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if goal.Progress != 10 {
			t.Errorf("Expected clamp to max, got %d", goal.Progress)
		}
		if !goal.IsCompleted {
			t.Error("Expected goal to complete at max progress")
		}
	})

	t.Run("Should refuse updates after completion", func(t *testing.T) {
		t.Parallel()

		goal, _ := NewGoal("user-1", "Read books", "", nil, 1)
		goal.Complete()

		if err := goal.SetProgress(0); err != ErrGoalCompleted {
			t.Errorf("Expected ErrGoalCompleted, got %v", err)
		}
		if err := goal.Update("New title", "", nil, 5); err != ErrGoalCompleted {
			t.Errorf("Expected ErrGoalCompleted, got %v", err)
		}
	})
}

func TestGoalComplete(t *testing.T) {
	t.Parallel()

	goal, _ := NewGoal("user-1", "Ship it", "", nil, 8)
	goal.Complete()

	if !goal.IsCompleted {
		t.Error("Expected completed")
	}
	if goal.Progress != goal.MaxProgress {
		t.Errorf("Expected progress snapped to max, got %d", goal.Progress)
	}

	// Idempotent.
	before := goal.UpdatedAt
	time.Sleep(1 * time.Millisecond)
	goal.Complete()
	if !goal.UpdatedAt.Equal(before) {
		t.Error("Expected second Complete to be a no-op")
	}
}
