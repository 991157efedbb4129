package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"fittrack/internal/domain"
)

// AddNote creates a note with a fresh id and matching created/updated stamps,
// persists the grown collection, and returns the new note.
func (s *Store) AddNote(ctx context.Context, title, content string, category domain.NoteCategory) (domain.Note, error) {
	if res := domain.ValidateNoteTitle(title); !res.Valid {
		return domain.Note{}, errors.New(res.Error)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	note := domain.Note{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		Category:  category.Normalize(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	next := append(append([]domain.Note(nil), s.notes...), note)
	if err := s.cols.SaveNotes(ctx, next); err != nil {
		return domain.Note{}, err
	}
	s.notes = next
	s.notifyLocked()
	return note, nil
}

// UpdateNote merges the supplied fields into the note and refreshes its
// UpdatedAt stamp. Fields left nil are untouched.
func (s *Store) UpdateNote(ctx context.Context, id string, update domain.NoteUpdate) (domain.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := append([]domain.Note(nil), s.notes...)
	idx := -1
	for i := range next {
		if next[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.Note{}, ErrNoteNotFound
	}

	note := next[idx]
	if update.Title != nil {
		if strings.TrimSpace(*update.Title) == "" {
			return domain.Note{}, errors.New("note title is required")
		}
		note.Title = *update.Title
	}
	if update.Content != nil {
		note.Content = *update.Content
	}
	if update.Category != nil {
		note.Category = update.Category.Normalize()
	}
	note.UpdatedAt = time.Now()
	next[idx] = note

	if err := s.cols.SaveNotes(ctx, next); err != nil {
		return domain.Note{}, err
	}
	s.notes = next
	s.notifyLocked()
	return note, nil
}

// DeleteNote removes the note with the given id.
func (s *Store) DeleteNote(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.Note, 0, len(s.notes))
	for _, note := range s.notes {
		if note.ID != id {
			next = append(next, note)
		}
	}
	if len(next) == len(s.notes) {
		return ErrNoteNotFound
	}

	if err := s.cols.SaveNotes(ctx, next); err != nil {
		return err
	}
	s.notes = next
	s.notifyLocked()
	return nil
}
