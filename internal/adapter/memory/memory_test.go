package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"fittrack/internal/storage"
)

func TestBlobStore(t *testing.T) {
	db := New()
	ctx := context.Background()

	// Missing key
	if _, err := db.Get(ctx, storage.KeyNotes); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// Set then get
	if err := db.Set(ctx, storage.KeyNotes, []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, err := db.Get(ctx, storage.KeyNotes)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(data) != `[{"id":"1"}]` {
		t.Errorf("unexpected blob: %s", data)
	}

	// Stored blob is isolated from the caller's slice
	data[0] = 'X'
	again, _ := db.Get(ctx, storage.KeyNotes)
	if string(again) != `[{"id":"1"}]` {
		t.Error("Get must return a copy of the stored blob")
	}

	// Remove
	if err := db.Remove(ctx, storage.KeyNotes); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := db.Get(ctx, storage.KeyNotes); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after Remove, got %v", err)
	}

	// Removing an absent key is fine
	if err := db.Remove(ctx, "nope"); err != nil {
		t.Fatalf("Remove absent key: %v", err)
	}
}

func TestBlobStoreFailWrites(t *testing.T) {
	db := New()
	db.FailWrites = true

	if err := db.Set(context.Background(), storage.KeyGoals, []byte("[]")); err == nil {
		t.Fatal("expected Set to fail with FailWrites enabled")
	}
}

func TestUserRepository(t *testing.T) {
	db := New()
	ctx := context.Background()

	u, err := db.Create(ctx, "alex", "hash")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.ID == 0 {
		t.Error("expected non-zero ID")
	}

	if _, err := db.Create(ctx, "alex", "hash2"); err == nil {
		t.Error("expected duplicate username to fail")
	}

	got, err := db.GetByUsername(ctx, "alex")
	if err != nil || got == nil || got.ID != u.ID {
		t.Fatalf("GetByUsername = %+v, %v", got, err)
	}
	byID, err := db.GetByID(ctx, u.ID)
	if err != nil || byID == nil || byID.Username != "alex" {
		t.Fatalf("GetByID = %+v, %v", byID, err)
	}
	if n, _ := db.Count(ctx); n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
}

func TestSessionRepository(t *testing.T) {
	db := New()
	repo := db.NewSessionRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, 1, "tok", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("Create: %v", err)
	}
	s, err := repo.GetByToken(ctx, "tok")
	if err != nil || s == nil || s.UserID != 1 {
		t.Fatalf("GetByToken = %+v, %v", s, err)
	}

	// Expired sessions vanish on read
	if err := repo.Create(ctx, 2, "old", time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("Create expired: %v", err)
	}
	if s, _ := repo.GetByToken(ctx, "old"); s != nil {
		t.Error("expected expired session to be dropped")
	}

	if err := repo.Delete(ctx, "tok"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if s, _ := repo.GetByToken(ctx, "tok"); s != nil {
		t.Error("expected session to be gone after Delete")
	}
}
