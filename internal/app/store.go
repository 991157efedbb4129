// Package app holds the application services and business logic.
package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"fittrack/internal/domain"
	"fittrack/internal/storage"
)

var (
	// ErrNoteNotFound indicates that no note exists with the given id.
	ErrNoteNotFound = errors.New("note not found")
	// ErrWorkoutNotFound indicates that no workout exists with the given id.
	ErrWorkoutNotFound = errors.New("workout not found")
	// ErrGoalNotFound indicates that no goal exists with the given id.
	ErrGoalNotFound = errors.New("goal not found")
	// ErrTaskNotFound indicates that today's record has no task with the given id.
	ErrTaskNotFound = errors.New("task not found")
)

// Store is the single owner of the in-memory application state. One mutex
// guards every read-modify-write cycle, so overlapping mutations on the same
// collection cannot lose updates. Every mutation persists the next collection
// value first and only replaces the in-memory state once the write succeeded,
// keeping memory and storage from silently diverging.
type Store struct {
	cols *storage.Collections

	mu           sync.Mutex
	notes        []domain.Note
	workouts     []domain.Workout
	goals        []domain.Goal
	dailyTargets map[string]domain.DailyTarget

	subs    map[int]chan struct{}
	nextSub int
}

// NewStore creates an empty Store over the given collections.
func NewStore(cols *storage.Collections) *Store {
	return &Store{
		cols:         cols,
		dailyTargets: make(map[string]domain.DailyTarget),
		subs:         make(map[int]chan struct{}),
	}
}

// Load fetches all four collections concurrently and replaces the in-memory
// state. A failure on any collection aborts the whole load and leaves the
// prior state in place.
func (s *Store) Load(ctx context.Context) error {
	var (
		notes    []domain.Note
		workouts []domain.Workout
		goals    []domain.Goal
		targets  map[string]domain.DailyTarget
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		notes, err = s.cols.Notes(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		workouts, err = s.cols.Workouts(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		goals, err = s.cols.Goals(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		targets, err = s.cols.DailyTargets(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = notes
	s.workouts = workouts
	s.goals = goals
	s.dailyTargets = targets
	s.notifyLocked()
	return nil
}

// Subscribe returns a channel signalled after every committed mutation, and a
// cancel function that releases the subscription. Notifications are coalesced;
// subscribers re-read the snapshots they care about.
func (s *Store) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
	return ch, cancel
}

func (s *Store) notifyLocked() {
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Notes returns a snapshot of the notes collection.
func (s *Store) Notes() []domain.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Note(nil), s.notes...)
}

// Workouts returns a snapshot of the workouts collection.
func (s *Store) Workouts() []domain.Workout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Workout(nil), s.workouts...)
}

// Workout returns the workout with the given id.
func (s *Store) Workout(id string) (domain.Workout, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range s.workouts {
		if w.ID == id {
			return w, true
		}
	}
	return domain.Workout{}, false
}

// Goals returns a snapshot of the goals collection.
func (s *Store) Goals() []domain.Goal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Goal(nil), s.goals...)
}

// DailyTargets returns a snapshot of the daily-target records keyed by date.
func (s *Store) DailyTargets() map[string]domain.DailyTarget {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]domain.DailyTarget, len(s.dailyTargets))
	for k, v := range s.dailyTargets {
		out[k] = v
	}
	return out
}

// Target returns the record for the given date, or the canonical default when
// none has been stored yet.
func (s *Store) Target(date string) domain.DailyTarget {
	s.mu.Lock()
	defer s.mu.Unlock()
	if target, ok := s.dailyTargets[date]; ok {
		return target
	}
	return domain.NewDailyTarget(date)
}

// TodayTarget returns today's record, or the canonical default when none has
// been stored yet.
func (s *Store) TodayTarget() domain.DailyTarget {
	return s.Target(domain.LocalDay(time.Now()))
}
