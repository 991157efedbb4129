// Package domain contains the core business entities and interfaces.
package domain

import "time"

// NoteCategory is the closed set of note labels. Stored values outside the
// set are normalised to CategoryOther when read.
type NoteCategory string

// Known note categories.
const (
	CategoryFitness   NoteCategory = "Fitness"
	CategoryMealPlans NoteCategory = "Meal Plans"
	CategoryIdeas     NoteCategory = "Ideas"
	CategoryShopping  NoteCategory = "Shopping"
	CategoryResearch  NoteCategory = "Research"
	CategoryOther     NoteCategory = "Other"
)

// NoteCategories lists every known note category in display order.
var NoteCategories = []NoteCategory{
	CategoryFitness,
	CategoryMealPlans,
	CategoryIdeas,
	CategoryShopping,
	CategoryResearch,
	CategoryOther,
}

// Normalize maps unrecognised categories to CategoryOther.
func (c NoteCategory) Normalize() NoteCategory {
	for _, known := range NoteCategories {
		if c == known {
			return c
		}
	}
	return CategoryOther
}

// Note is a free-form user note.
type Note struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Content   string       `json:"content,omitempty"`
	Category  NoteCategory `json:"category"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// NoteUpdate carries the optional fields of a partial note update. Nil fields
// are left untouched.
type NoteUpdate struct {
	Title    *string       `json:"title,omitempty"`
	Content  *string       `json:"content,omitempty"`
	Category *NoteCategory `json:"category,omitempty"`
}
