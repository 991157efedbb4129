package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"fittrack/internal/domain"
)

// Collections wraps a BlobStore with typed accessors for the four persisted
// collections. Absent keys load as empty collections; every other failure is
// returned to the caller.
type Collections struct {
	blobs BlobStore
}

// NewCollections creates Collections over the given blob store.
func NewCollections(blobs BlobStore) *Collections {
	return &Collections{blobs: blobs}
}

// Notes loads the notes collection.
func (c *Collections) Notes(ctx context.Context) ([]domain.Note, error) {
	notes := []domain.Note{}
	if err := c.load(ctx, KeyNotes, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// SaveNotes persists the full notes collection.
func (c *Collections) SaveNotes(ctx context.Context, notes []domain.Note) error {
	return c.save(ctx, KeyNotes, notes)
}

// Workouts loads the workouts collection.
func (c *Collections) Workouts(ctx context.Context) ([]domain.Workout, error) {
	workouts := []domain.Workout{}
	if err := c.load(ctx, KeyWorkouts, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

// SaveWorkouts persists the full workouts collection.
func (c *Collections) SaveWorkouts(ctx context.Context, workouts []domain.Workout) error {
	return c.save(ctx, KeyWorkouts, workouts)
}

// Goals loads the goals collection.
func (c *Collections) Goals(ctx context.Context) ([]domain.Goal, error) {
	goals := []domain.Goal{}
	if err := c.load(ctx, KeyGoals, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

// SaveGoals persists the full goals collection.
func (c *Collections) SaveGoals(ctx context.Context, goals []domain.Goal) error {
	return c.save(ctx, KeyGoals, goals)
}

// DailyTargets loads the daily-target records keyed by local date.
func (c *Collections) DailyTargets(ctx context.Context) (map[string]domain.DailyTarget, error) {
	targets := map[string]domain.DailyTarget{}
	if err := c.load(ctx, KeyDailyTargets, &targets); err != nil {
		return nil, err
	}
	return targets, nil
}

// SaveDailyTargets persists the full daily-target map.
func (c *Collections) SaveDailyTargets(ctx context.Context, targets map[string]domain.DailyTarget) error {
	return c.save(ctx, KeyDailyTargets, targets)
}

func (c *Collections) load(ctx context.Context, key string, dst any) error {
	data, err := c.blobs.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (c *Collections) save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := c.blobs.Set(ctx, key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
