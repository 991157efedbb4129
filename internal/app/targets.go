package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"fittrack/internal/domain"
)

// UpdateDailyTarget merges the supplied fields into the record for date,
// starting from the canonical default when no record exists yet.
func (s *Store) UpdateDailyTarget(ctx context.Context, date string, update domain.DailyTargetUpdate) (domain.DailyTarget, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return domain.DailyTarget{}, errors.New("date must be YYYY-MM-DD")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateTargetLocked(ctx, date, func(target *domain.DailyTarget) error {
		if update.Water != nil {
			target.Water = *update.Water
		}
		if update.Calories != nil {
			target.Calories = *update.Calories
		}
		if update.Tasks != nil {
			target.Tasks = *update.Tasks
		}
		return nil
	})
}

// SetTodayWater sets today's water intake to an absolute value in liters.
func (s *Store) SetTodayWater(ctx context.Context, liters float64) (domain.DailyTarget, error) {
	if liters < 0 {
		return domain.DailyTarget{}, errors.New("water value must be >= 0")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateTargetLocked(ctx, domain.LocalDay(time.Now()), func(target *domain.DailyTarget) error {
		target.Water.Current = liters
		return nil
	})
}

// AddTodayWater adjusts today's water intake by delta liters, clamped at zero.
func (s *Store) AddTodayWater(ctx context.Context, delta float64) (domain.DailyTarget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateTargetLocked(ctx, domain.LocalDay(time.Now()), func(target *domain.DailyTarget) error {
		target.Water.Current += delta
		if target.Water.Current < 0 {
			target.Water.Current = 0
		}
		return nil
	})
}

// SetTodayCalories sets today's calorie intake to an absolute value.
func (s *Store) SetTodayCalories(ctx context.Context, calories int) (domain.DailyTarget, error) {
	if calories < 0 {
		return domain.DailyTarget{}, errors.New("calorie value must be >= 0")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateTargetLocked(ctx, domain.LocalDay(time.Now()), func(target *domain.DailyTarget) error {
		target.Calories.Current = calories
		return nil
	})
}

// AddTask appends a task to today's record.
func (s *Store) AddTask(ctx context.Context, title string) (domain.Task, error) {
	if strings.TrimSpace(title) == "" {
		return domain.Task{}, errors.New("task title is required")
	}

	task := domain.Task{
		ID:        uuid.NewString(),
		Title:     title,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.updateTargetLocked(ctx, domain.LocalDay(time.Now()), func(target *domain.DailyTarget) error {
		target.Tasks = append(append(domain.TaskList(nil), target.Tasks...), task)
		return nil
	})
	if err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// ToggleTask flips the completion state of a task on today's record.
func (s *Store) ToggleTask(ctx context.Context, taskID string) (domain.DailyTarget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateTargetLocked(ctx, domain.LocalDay(time.Now()), func(target *domain.DailyTarget) error {
		tasks := append(domain.TaskList(nil), target.Tasks...)
		for i := range tasks {
			if tasks[i].ID == taskID {
				tasks[i].Completed = !tasks[i].Completed
				target.Tasks = tasks
				return nil
			}
		}
		return ErrTaskNotFound
	})
}

// DeleteTask removes a task from today's record.
func (s *Store) DeleteTask(ctx context.Context, taskID string) (domain.DailyTarget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateTargetLocked(ctx, domain.LocalDay(time.Now()), func(target *domain.DailyTarget) error {
		tasks := make(domain.TaskList, 0, len(target.Tasks))
		for _, task := range target.Tasks {
			if task.ID != taskID {
				tasks = append(tasks, task)
			}
		}
		if len(tasks) == len(target.Tasks) {
			return ErrTaskNotFound
		}
		target.Tasks = tasks
		return nil
	})
}

// updateTargetLocked applies mutate to a copy of the record for date (or the
// canonical default), persists the full map, and commits on success. The
// caller must hold s.mu.
func (s *Store) updateTargetLocked(ctx context.Context, date string, mutate func(*domain.DailyTarget) error) (domain.DailyTarget, error) {
	target, ok := s.dailyTargets[date]
	if !ok {
		target = domain.NewDailyTarget(date)
	}
	if err := mutate(&target); err != nil {
		return domain.DailyTarget{}, err
	}

	next := make(map[string]domain.DailyTarget, len(s.dailyTargets)+1)
	for k, v := range s.dailyTargets {
		next[k] = v
	}
	next[date] = target

	if err := s.cols.SaveDailyTargets(ctx, next); err != nil {
		return domain.DailyTarget{}, err
	}
	s.dailyTargets = next
	s.notifyLocked()
	return target, nil
}
