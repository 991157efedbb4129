package storage_test

import (
	"context"
	"reflect"
	"testing"
	"time"

	"fittrack/internal/adapter/memory"
	"fittrack/internal/domain"
	"fittrack/internal/storage"
)

func TestEmptyCollections(t *testing.T) {
	cols := storage.NewCollections(memory.New())
	ctx := context.Background()

	notes, err := cols.Notes(ctx)
	if err != nil || len(notes) != 0 {
		t.Fatalf("Notes on empty store = %v, %v", notes, err)
	}
	workouts, err := cols.Workouts(ctx)
	if err != nil || len(workouts) != 0 {
		t.Fatalf("Workouts on empty store = %v, %v", workouts, err)
	}
	goals, err := cols.Goals(ctx)
	if err != nil || len(goals) != 0 {
		t.Fatalf("Goals on empty store = %v, %v", goals, err)
	}
	targets, err := cols.DailyTargets(ctx)
	if err != nil || len(targets) != 0 {
		t.Fatalf("DailyTargets on empty store = %v, %v", targets, err)
	}
}

func TestNotesRoundTrip(t *testing.T) {
	cols := storage.NewCollections(memory.New())
	ctx := context.Background()

	created := time.Date(2026, 2, 8, 10, 0, 0, 0, time.UTC)
	in := []domain.Note{
		{ID: "n1", Title: "Meal prep", Content: "rice, chicken", Category: domain.CategoryMealPlans, CreatedAt: created, UpdatedAt: created},
		{ID: "n2", Title: "PR ideas", Category: domain.CategoryFitness, CreatedAt: created, UpdatedAt: created},
	}
	if err := cols.SaveNotes(ctx, in); err != nil {
		t.Fatalf("SaveNotes: %v", err)
	}
	out, err := cols.Notes(ctx)
	if err != nil {
		t.Fatalf("Notes: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round-trip mismatch:\n in: %+v\nout: %+v", in, out)
	}
}

func TestWorkoutsRoundTrip(t *testing.T) {
	cols := storage.NewCollections(memory.New())
	ctx := context.Background()

	done := time.Date(2026, 2, 7, 18, 30, 0, 0, time.UTC)
	in := []domain.Workout{
		{
			ID:   "w1",
			Name: "Leg Day",
			Exercises: []domain.Exercise{
				{ID: "e1", Name: "Squat", Category: domain.CategoryOther, Sets: 3, Reps: 10, Weight: 80},
			},
			Duration:    45,
			CompletedAt: &done,
		},
		{ID: "w2", Name: "Push Day", Exercises: []domain.Exercise{}},
	}
	if err := cols.SaveWorkouts(ctx, in); err != nil {
		t.Fatalf("SaveWorkouts: %v", err)
	}
	out, err := cols.Workouts(ctx)
	if err != nil {
		t.Fatalf("Workouts: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round-trip mismatch:\n in: %+v\nout: %+v", in, out)
	}
}

func TestDailyTargetsRoundTrip(t *testing.T) {
	cols := storage.NewCollections(memory.New())
	ctx := context.Background()

	created := time.Date(2026, 2, 8, 8, 0, 0, 0, time.UTC)
	in := map[string]domain.DailyTarget{
		"2026-02-08": {
			Date:     "2026-02-08",
			Water:    domain.WaterProgress{Current: 0.75, Target: 2.0},
			Calories: domain.CalorieProgress{Current: 1200, Target: 2500},
			Tasks: domain.TaskList{
				{ID: "t1", Title: "Stretch", Completed: true, CreatedAt: created},
			},
		},
	}
	if err := cols.SaveDailyTargets(ctx, in); err != nil {
		t.Fatalf("SaveDailyTargets: %v", err)
	}
	out, err := cols.DailyTargets(ctx)
	if err != nil {
		t.Fatalf("DailyTargets: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round-trip mismatch:\n in: %+v\nout: %+v", in, out)
	}
}

// A blob written by the counter-model revision must still load.
func TestDailyTargetsLegacyCounterBlob(t *testing.T) {
	db := memory.New()
	cols := storage.NewCollections(db)
	ctx := context.Background()

	legacy := []byte(`{"2026-02-08":{"date":"2026-02-08","water":{"current":1,"target":2},"calories":{"current":800,"target":2500},"tasks":{"completed":1,"total":3}}}`)
	if err := db.Set(ctx, storage.KeyDailyTargets, legacy); err != nil {
		t.Fatalf("seed legacy blob: %v", err)
	}

	targets, err := cols.DailyTargets(ctx)
	if err != nil {
		t.Fatalf("DailyTargets: %v", err)
	}
	completed, total := targets["2026-02-08"].Tasks.Summary()
	if completed != 1 || total != 3 {
		t.Fatalf("migrated summary = (%d, %d), want (1, 3)", completed, total)
	}
}

func TestCorruptBlobSurfacesError(t *testing.T) {
	db := memory.New()
	cols := storage.NewCollections(db)
	ctx := context.Background()

	if err := db.Set(ctx, storage.KeyGoals, []byte("{not json")); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := cols.Goals(ctx); err == nil {
		t.Fatal("expected decode error for corrupt blob")
	}
}
