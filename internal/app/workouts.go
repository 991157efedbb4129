package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"fittrack/internal/domain"
)

// WorkoutInput is the caller-supplied portion of a new workout.
type WorkoutInput struct {
	Name      string                 `json:"name"`
	Duration  int                    `json:"duration"`
	Exercises []domain.ExerciseInput `json:"exercises"`
}

// AddWorkout creates a workout from the input, stamping ids for the workout
// and each exercise.
func (s *Store) AddWorkout(ctx context.Context, in WorkoutInput) (domain.Workout, error) {
	if strings.TrimSpace(in.Name) == "" {
		return domain.Workout{}, errors.New("workout name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	workout := domain.Workout{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Duration:  in.Duration,
		Exercises: make([]domain.Exercise, 0, len(in.Exercises)),
	}
	for _, ex := range in.Exercises {
		workout.Exercises = append(workout.Exercises, newExercise(ex))
	}

	next := append(append([]domain.Workout(nil), s.workouts...), workout)
	if err := s.cols.SaveWorkouts(ctx, next); err != nil {
		return domain.Workout{}, err
	}
	s.workouts = next
	s.notifyLocked()
	return workout, nil
}

// StartSession creates a new active workout with no exercises and returns its
// id, so the caller can navigate straight to it. An empty name defaults to
// "Workout <local date>".
func (s *Store) StartSession(ctx context.Context, name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		name = "Workout " + domain.LocalDay(time.Now())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	workout := domain.Workout{
		ID:        uuid.NewString(),
		Name:      name,
		Exercises: []domain.Exercise{},
		Duration:  0,
	}

	next := append(append([]domain.Workout(nil), s.workouts...), workout)
	if err := s.cols.SaveWorkouts(ctx, next); err != nil {
		return "", err
	}
	s.workouts = next
	s.notifyLocked()
	return workout.ID, nil
}

// AddExercise appends an exercise to the workout. Sets, reps, and weight
// default to zero; the category defaults to Other.
func (s *Store) AddExercise(ctx context.Context, workoutID string, in domain.ExerciseInput) (domain.Workout, error) {
	if strings.TrimSpace(in.Name) == "" {
		return domain.Workout{}, errors.New("exercise name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := append([]domain.Workout(nil), s.workouts...)
	idx := workoutIndex(next, workoutID)
	if idx == -1 {
		return domain.Workout{}, ErrWorkoutNotFound
	}

	workout := next[idx]
	workout.Exercises = append(append([]domain.Exercise(nil), workout.Exercises...), newExercise(in))
	next[idx] = workout

	if err := s.cols.SaveWorkouts(ctx, next); err != nil {
		return domain.Workout{}, err
	}
	s.workouts = next
	s.notifyLocked()
	return workout, nil
}

// UpdateWorkout merges the supplied fields into the workout.
func (s *Store) UpdateWorkout(ctx context.Context, id string, update domain.WorkoutUpdate) (domain.Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := append([]domain.Workout(nil), s.workouts...)
	idx := workoutIndex(next, id)
	if idx == -1 {
		return domain.Workout{}, ErrWorkoutNotFound
	}

	workout := next[idx]
	if update.Name != nil {
		workout.Name = *update.Name
	}
	if update.Duration != nil {
		workout.Duration = *update.Duration
	}
	next[idx] = workout

	if err := s.cols.SaveWorkouts(ctx, next); err != nil {
		return domain.Workout{}, err
	}
	s.workouts = next
	s.notifyLocked()
	return workout, nil
}

// CompleteWorkout stamps the workout's completion time.
func (s *Store) CompleteWorkout(ctx context.Context, id string) (domain.Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := append([]domain.Workout(nil), s.workouts...)
	idx := workoutIndex(next, id)
	if idx == -1 {
		return domain.Workout{}, ErrWorkoutNotFound
	}

	now := time.Now()
	workout := next[idx]
	workout.CompletedAt = &now
	next[idx] = workout

	if err := s.cols.SaveWorkouts(ctx, next); err != nil {
		return domain.Workout{}, err
	}
	s.workouts = next
	s.notifyLocked()
	return workout, nil
}

func workoutIndex(workouts []domain.Workout, id string) int {
	for i := range workouts {
		if workouts[i].ID == id {
			return i
		}
	}
	return -1
}

func newExercise(in domain.ExerciseInput) domain.Exercise {
	return domain.Exercise{
		ID:       uuid.NewString(),
		Name:     in.Name,
		Category: domain.CategoryOther,
		Sets:     in.Sets,
		Reps:     in.Reps,
		Weight:   in.Weight,
	}
}
