package app_test

import (
	"context"
	"testing"
	"time"

	"fittrack/internal/adapter/memory"
	"fittrack/internal/app"
	"fittrack/internal/domain"
	"fittrack/internal/storage"
)

func newTestStore(t *testing.T) (*app.Store, *memory.DB) {
	t.Helper()

	db := memory.New()
	store := app.NewStore(storage.NewCollections(db))
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return store, db
}

func TestLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := memory.New()
	cols := storage.NewCollections(db)

	first := app.NewStore(cols)
	if err := first.Load(ctx); err != nil {
		t.Fatalf("load empty: %v", err)
	}
	note, err := first.AddNote(ctx, "remember", "leg day", domain.CategoryFitness)
	if err != nil {
		t.Fatalf("add note: %v", err)
	}

	// A second store over the same blobs sees the committed state.
	second := app.NewStore(cols)
	if err := second.Load(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}
	notes := second.Notes()
	if len(notes) != 1 || notes[0].ID != note.ID {
		t.Fatalf("expected reloaded note %s, got %v", note.ID, notes)
	}
}

func TestSubscribeNotifiesOnCommit(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	ch, cancel := store.Subscribe()
	defer cancel()

	if _, err := store.AddNote(ctx, "hydrate", "", domain.CategoryOther); err != nil {
		t.Fatalf("add note: %v", err)
	}

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("expected a notification after a committed mutation")
	}
}

func TestSubscribeNotNotifiedOnFailedWrite(t *testing.T) {
	ctx := context.Background()
	store, db := newTestStore(t)

	ch, cancel := store.Subscribe()
	defer cancel()

	db.FailWrites = true
	if _, err := store.AddNote(ctx, "doomed", "", domain.CategoryOther); err == nil {
		t.Fatal("expected persistence error")
	}

	select {
	case <-ch:
		t.Fatal("failed mutation must not notify subscribers")
	default:
	}
}

func TestSnapshotsAreCopies(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	if _, err := store.AddNote(ctx, "original", "", domain.CategoryIdeas); err != nil {
		t.Fatalf("add note: %v", err)
	}

	snapshot := store.Notes()
	snapshot[0].Title = "mutated"

	if got := store.Notes()[0].Title; got != "original" {
		t.Fatalf("snapshot mutation leaked into store: %q", got)
	}
}

func TestTodayTargetDefaults(t *testing.T) {
	store, _ := newTestStore(t)

	target := store.TodayTarget()
	if target.Date != domain.LocalDay(time.Now()) {
		t.Fatalf("expected today's date, got %q", target.Date)
	}
	if target.Water.Target != domain.DefaultWaterTargetLiters {
		t.Fatalf("expected default water target, got %v", target.Water.Target)
	}
	if target.Calories.Target != domain.DefaultCalorieTarget {
		t.Fatalf("expected default calorie target, got %v", target.Calories.Target)
	}
	if len(target.Tasks) != 0 {
		t.Fatalf("expected no tasks, got %d", len(target.Tasks))
	}
}
