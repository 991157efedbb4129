package app

import (
	"context"
	"errors"
	"fmt"

	"fittrack/internal/domain"
)

// ErrWorkoutNotCompleted indicates an export attempt on a still-active workout.
var ErrWorkoutNotCompleted = errors.New("workout is not completed")

// RecordStore is the port to the external workout record service.
type RecordStore interface {
	CreateWorkout(ctx context.Context, date, note string) (int64, error)
	AddExercise(ctx context.Context, workoutID int64, ex domain.ExerciseInput) (int64, error)
}

// ExportService pushes completed local workouts to the external record store.
type ExportService struct {
	store   *Store
	records RecordStore
}

// NewExportService creates an ExportService over the store and record client.
func NewExportService(store *Store, records RecordStore) *ExportService {
	return &ExportService{store: store, records: records}
}

// ExportWorkout pushes the completed workout and its exercises to the record
// store and returns the remote workout id. Active workouts cannot be exported.
func (s *ExportService) ExportWorkout(ctx context.Context, id string) (int64, error) {
	workout, ok := s.store.Workout(id)
	if !ok {
		return 0, ErrWorkoutNotFound
	}
	if !workout.Completed() {
		return 0, ErrWorkoutNotCompleted
	}

	remoteID, err := s.records.CreateWorkout(ctx, domain.LocalDay(*workout.CompletedAt), workout.Name)
	if err != nil {
		return 0, fmt.Errorf("create remote workout: %w", err)
	}
	for _, ex := range workout.Exercises {
		in := domain.ExerciseInput{Name: ex.Name, Sets: ex.Sets, Reps: ex.Reps, Weight: ex.Weight}
		if _, err := s.records.AddExercise(ctx, remoteID, in); err != nil {
			return 0, fmt.Errorf("export exercise %q: %w", ex.Name, err)
		}
	}
	return remoteID, nil
}
