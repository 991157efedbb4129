package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"fittrack/internal/domain"
)

// GoalInput is the caller-supplied portion of a new goal.
type GoalInput struct {
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Category     domain.GoalCategory `json:"category"`
	TargetValue  float64             `json:"targetValue"`
	CurrentValue float64             `json:"currentValue"`
}

// AddGoal creates a goal. A starting value at or past the target counts as
// completed immediately.
func (s *Store) AddGoal(ctx context.Context, in GoalInput) (domain.Goal, error) {
	if strings.TrimSpace(in.Title) == "" {
		return domain.Goal{}, errors.New("goal title is required")
	}
	if in.TargetValue <= 0 {
		return domain.Goal{}, errors.New("target value must be > 0")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	goal := domain.Goal{
		ID:           uuid.NewString(),
		Title:        in.Title,
		Description:  in.Description,
		Category:     in.Category.Normalize(),
		TargetValue:  in.TargetValue,
		CurrentValue: in.CurrentValue,
		Completed:    in.CurrentValue >= in.TargetValue,
		CreatedAt:    time.Now(),
	}

	next := append(append([]domain.Goal(nil), s.goals...), goal)
	if err := s.cols.SaveGoals(ctx, next); err != nil {
		return domain.Goal{}, err
	}
	s.goals = next
	s.notifyLocked()
	return goal, nil
}

// UpdateGoalProgress sets the goal's current value and recomputes completion
// as value >= target. A value that drops below the target un-completes the
// goal, overriding any prior manual completion.
func (s *Store) UpdateGoalProgress(ctx context.Context, id string, value float64) (domain.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := append([]domain.Goal(nil), s.goals...)
	idx := -1
	for i := range next {
		if next[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.Goal{}, ErrGoalNotFound
	}

	goal := next[idx]
	goal.CurrentValue = value
	goal.Completed = value >= goal.TargetValue
	next[idx] = goal

	if err := s.cols.SaveGoals(ctx, next); err != nil {
		return domain.Goal{}, err
	}
	s.goals = next
	s.notifyLocked()
	return goal, nil
}

// CompleteGoal force-marks the goal completed regardless of its current value.
func (s *Store) CompleteGoal(ctx context.Context, id string) (domain.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := append([]domain.Goal(nil), s.goals...)
	idx := -1
	for i := range next {
		if next[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.Goal{}, ErrGoalNotFound
	}

	goal := next[idx]
	goal.Completed = true
	next[idx] = goal

	if err := s.cols.SaveGoals(ctx, next); err != nil {
		return domain.Goal{}, err
	}
	s.goals = next
	s.notifyLocked()
	return goal, nil
}
