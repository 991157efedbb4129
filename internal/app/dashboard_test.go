package app_test

import (
	"context"
	"testing"
	"time"

	"fittrack/internal/app"
	"fittrack/internal/domain"
)

func TestDashboardSummaryEmpty(t *testing.T) {
	store, _ := newTestStore(t)
	svc := app.NewDashboardService(store)

	now := time.Date(2026, 3, 4, 9, 30, 0, 0, time.Local)
	sum := svc.Summary(now)

	if sum.Greeting != "Good morning" {
		t.Fatalf("expected morning greeting at 09:30, got %q", sum.Greeting)
	}
	if sum.DayName != "Wednesday" {
		t.Fatalf("expected Wednesday, got %q", sum.DayName)
	}
	if sum.Tasks.Total != 0 || sum.Tasks.Completed != 0 {
		t.Fatalf("expected empty task summary, got %+v", sum.Tasks)
	}
	if sum.WorkoutProgress != 0 {
		t.Fatalf("expected 0%% workout progress with no workouts, got %v", sum.WorkoutProgress)
	}
	if sum.ActiveWorkout != nil {
		t.Fatal("expected no active workout")
	}
	// Every known category appears, even at zero.
	if len(sum.NoteCategoryCounts) != len(domain.NoteCategories) {
		t.Fatalf("expected %d category buckets, got %d", len(domain.NoteCategories), len(sum.NoteCategoryCounts))
	}
}

func TestDashboardSummaryAggregates(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	svc := app.NewDashboardService(store)

	for _, title := range []string{"one", "two", "three", "four"} {
		if _, err := store.AddNote(ctx, title, "", domain.CategoryFitness); err != nil {
			t.Fatalf("add note: %v", err)
		}
	}

	activeID, err := store.StartSession(ctx, "in progress")
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	doneID, err := store.StartSession(ctx, "finished")
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	if _, err := store.CompleteWorkout(ctx, doneID); err != nil {
		t.Fatalf("complete workout: %v", err)
	}

	task, err := store.AddTask(ctx, "stretch")
	if err != nil {
		t.Fatalf("add task: %v", err)
	}
	if _, err := store.ToggleTask(ctx, task.ID); err != nil {
		t.Fatalf("toggle task: %v", err)
	}
	if _, err := store.AddTask(ctx, "walk"); err != nil {
		t.Fatalf("add task: %v", err)
	}

	sum := svc.Summary(time.Now())

	if len(sum.QuickNotes) != 3 {
		t.Fatalf("expected quick notes capped at 3, got %d", len(sum.QuickNotes))
	}
	if sum.NoteCategoryCounts[domain.CategoryFitness] != 4 {
		t.Fatalf("expected 4 fitness notes, got %d", sum.NoteCategoryCounts[domain.CategoryFitness])
	}
	if sum.NotesThisWeek != 4 {
		t.Fatalf("expected 4 notes this week, got %d", sum.NotesThisWeek)
	}
	if sum.ActiveWorkout == nil || sum.ActiveWorkout.ID != activeID {
		t.Fatalf("expected active workout %s, got %+v", activeID, sum.ActiveWorkout)
	}
	if sum.WorkoutsCompleted != 1 {
		t.Fatalf("expected 1 completed workout, got %d", sum.WorkoutsCompleted)
	}
	if sum.WorkoutProgress != 50 {
		t.Fatalf("expected 50%% workout progress, got %v", sum.WorkoutProgress)
	}
	if sum.WorkoutsThisWeek != 1 {
		t.Fatalf("expected 1 workout this week, got %d", sum.WorkoutsThisWeek)
	}
	if sum.Tasks.Total != 2 || sum.Tasks.Completed != 1 {
		t.Fatalf("expected 1/2 tasks, got %+v", sum.Tasks)
	}
}

func TestDashboardUsesGivenInstant(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	svc := app.NewDashboardService(store)

	// A record stored for a past date must drive the summary computed for
	// that same instant, not today's record.
	water := domain.WaterProgress{Current: 1.0, Target: 2.0}
	if _, err := store.UpdateDailyTarget(ctx, "2026-05-05", domain.DailyTargetUpdate{Water: &water}); err != nil {
		t.Fatalf("update target: %v", err)
	}

	then := time.Date(2026, 5, 5, 10, 0, 0, 0, time.Local)
	sum := svc.Summary(then)
	if sum.Today.Date != "2026-05-05" {
		t.Fatalf("expected record for 2026-05-05, got %q", sum.Today.Date)
	}
	if sum.WaterPercent != 50 {
		t.Fatalf("expected 50%% water from that day's record, got %v", sum.WaterPercent)
	}
}

func TestDashboardPercentages(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	svc := app.NewDashboardService(store)

	if _, err := store.SetTodayWater(ctx, 1.0); err != nil {
		t.Fatalf("set water: %v", err)
	}
	if _, err := store.SetTodayCalories(ctx, 1250); err != nil {
		t.Fatalf("set calories: %v", err)
	}

	sum := svc.Summary(time.Now())
	if sum.WaterPercent != 50 {
		t.Fatalf("expected 50%% water, got %v", sum.WaterPercent)
	}
	if sum.CaloriePercent != 50 {
		t.Fatalf("expected 50%% calories, got %v", sum.CaloriePercent)
	}
}
