// Package storage defines the persistence ports: a key-value blob store and
// typed helpers for the four persisted collections.
package storage

import (
	"context"
	"errors"
)

// Keys under which the collections are persisted.
const (
	KeyNotes        = "notes"
	KeyWorkouts     = "workouts"
	KeyGoals        = "goals"
	KeyDailyTargets = "daily_targets"
)

// ErrNotFound reports an absent key. It is distinct from I/O failure so
// callers can treat "nothing stored yet" and "storage is broken" differently.
var ErrNotFound = errors.New("storage: key not found")

// BlobStore is the port for durable key-value persistence of JSON blobs.
type BlobStore interface {
	// Get returns the stored blob for key, or ErrNotFound if absent.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set writes the blob for key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Remove deletes the entry for key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
