package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// WordStore defines persistence operations for vocabulary words.
type WordStore interface {
	List(ctx context.Context, filter ListFilter) ([]Word, error)
	GetByID(ctx context.Context, id uuid.UUID) (Word, error)
	Create(ctx context.Context, word Word) (Word, error)
	Update(ctx context.Context, id uuid.UUID, patch WordPatch) (Word, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Word represents a stored vocabulary entry.
type Word struct {
	ID          uuid.UUID
	Original    string
	Translation string
	Category    Category
	Color       Color
	ImageURL    *string
	Notes       *string
	CreatedAt   time.Time
}

// ListFilter restricts a word listing. SearchText matches case-insensitively
// as a substring of either the original text or the translation; Category
// restricts to an exact match. Both compose with AND. Zero values mean
// "no restriction".
type ListFilter struct {
	SearchText string
	Category   Category
}

// CreateWordParams contains parameters to create a word.
type CreateWordParams struct {
	Original    string
	Translation string
	Category    Category
	ImageURL    *string
	Notes       *string
}

// WordPatch is a partial update of a word's mutable fields. Nil fields are
// left untouched; a pointer to a zero value clears the field. Original,
// translation and creation time are immutable after creation and
// deliberately have no place here.
type WordPatch struct {
	Category *Category
	Color    *Color
	ImageURL *string
	Notes    *string
}
