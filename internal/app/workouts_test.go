package app_test

import (
	"context"
	"strings"
	"testing"

	"fittrack/internal/app"
	"fittrack/internal/domain"
)

func TestAddWorkout(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	workout, err := store.AddWorkout(ctx, app.WorkoutInput{
		Name:     "push day",
		Duration: 45,
		Exercises: []domain.ExerciseInput{
			{Name: "Bench Press", Sets: 4, Reps: 8, Weight: 60},
			{Name: "Dips"},
		},
	})
	if err != nil {
		t.Fatalf("add workout: %v", err)
	}
	if workout.ID == "" {
		t.Fatal("expected a generated id")
	}
	if workout.Completed() {
		t.Fatal("a new workout must start active")
	}
	if len(workout.Exercises) != 2 {
		t.Fatalf("expected 2 exercises, got %d", len(workout.Exercises))
	}
	dips := workout.Exercises[1]
	if dips.ID == "" {
		t.Fatal("exercises must get their own ids")
	}
	if dips.Sets != 0 || dips.Reps != 0 || dips.Weight != 0 {
		t.Fatalf("omitted numbers must stay zero, got %+v", dips)
	}
	if dips.Category != domain.CategoryOther {
		t.Fatalf("expected default category Other, got %q", dips.Category)
	}
}

func TestAddWorkoutRequiresName(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	if _, err := store.AddWorkout(ctx, app.WorkoutInput{Name: "  "}); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestStartSessionDefaultName(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	id, err := store.StartSession(ctx, "")
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	workout, ok := store.Workout(id)
	if !ok {
		t.Fatal("started workout not found")
	}
	if !strings.HasPrefix(workout.Name, "Workout ") {
		t.Fatalf("expected date-stamped default name, got %q", workout.Name)
	}
	if len(workout.Exercises) != 0 {
		t.Fatalf("expected no exercises, got %d", len(workout.Exercises))
	}
}

func TestSessionFlow(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	id, err := store.StartSession(ctx, "leg day")
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	workout, err := store.AddExercise(ctx, id, domain.ExerciseInput{Name: "Squat", Sets: 3, Reps: 10})
	if err != nil {
		t.Fatalf("add exercise: %v", err)
	}
	if len(workout.Exercises) != 1 || workout.Exercises[0].Name != "Squat" {
		t.Fatalf("expected Squat recorded, got %+v", workout.Exercises)
	}

	done, err := store.CompleteWorkout(ctx, id)
	if err != nil {
		t.Fatalf("complete workout: %v", err)
	}
	if !done.Completed() {
		t.Fatal("expected workout marked complete")
	}
}

func TestAddExerciseValidation(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	id, err := store.StartSession(ctx, "arms")
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	if _, err := store.AddExercise(ctx, id, domain.ExerciseInput{Name: " "}); err == nil {
		t.Fatal("expected validation error for blank exercise name")
	}
	if _, err := store.AddExercise(ctx, "missing", domain.ExerciseInput{Name: "Curl"}); err != app.ErrWorkoutNotFound {
		t.Fatalf("expected ErrWorkoutNotFound, got %v", err)
	}
}

func TestUpdateWorkout(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	id, err := store.StartSession(ctx, "before")
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	name := "after"
	duration := 30
	workout, err := store.UpdateWorkout(ctx, id, domain.WorkoutUpdate{Name: &name, Duration: &duration})
	if err != nil {
		t.Fatalf("update workout: %v", err)
	}
	if workout.Name != "after" || workout.Duration != 30 {
		t.Fatalf("expected merged update, got %+v", workout)
	}

	if _, err := store.UpdateWorkout(ctx, "missing", domain.WorkoutUpdate{}); err != app.ErrWorkoutNotFound {
		t.Fatalf("expected ErrWorkoutNotFound, got %v", err)
	}
}

func TestCompleteWorkoutPersistFailure(t *testing.T) {
	ctx := context.Background()
	store, db := newTestStore(t)

	id, err := store.StartSession(ctx, "doomed")
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	db.FailWrites = true
	if _, err := store.CompleteWorkout(ctx, id); err == nil {
		t.Fatal("expected persistence error")
	}

	workout, _ := store.Workout(id)
	if workout.Completed() {
		t.Fatal("failed write must not mark the workout complete")
	}
}
