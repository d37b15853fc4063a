package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/horadelbocadillo/yotetraduzco-clean/internal/logger"
	"github.com/horadelbocadillo/yotetraduzco-clean/internal/model"
)

// Word provides typed access to the persisted word collection.
type Word struct {
	store  model.WordStore
	logger *logger.Logger
}

// NewWord creates a word service over the given store.
func NewWord(store model.WordStore, logger *logger.Logger) *Word {
	return &Word{
		store:  store,
		logger: logger,
	}
}

// List returns the filtered, newest-first snapshot of the collection.
// Zero matches yield an empty slice.
func (s *Word) List(ctx context.Context, filter model.ListFilter) ([]model.Word, error) {
	filter.SearchText = strings.TrimSpace(filter.SearchText)

	words, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list words: %w", err)
	}
	if words == nil {
		words = []model.Word{}
	}

	return words, nil
}

// Get returns one word by id.
func (s *Word) Get(ctx context.Context, id uuid.UUID) (model.Word, error) {
	word, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Word{}, model.ErrNotFound
		}
		return model.Word{}, fmt.Errorf("failed to get word: %w", err)
	}
	return word, nil
}

// Create persists a new word. The original and translation must be
// non-empty after trimming; the color is derived from the category, never
// taken from the caller.
func (s *Word) Create(ctx context.Context, params model.CreateWordParams) (model.Word, error) {
	original := strings.TrimSpace(params.Original)
	if original == "" {
		return model.Word{}, model.ErrEmptyWord
	}
	translation := strings.TrimSpace(params.Translation)
	if translation == "" {
		return model.Word{}, model.ErrEmptyTranslation
	}

	category := model.ParseCategory(string(params.Category))

	word := model.Word{
		ID:          uuid.New(),
		Original:    original,
		Translation: translation,
		Category:    category,
		Color:       model.ColorFor(category),
		ImageURL:    params.ImageURL,
		Notes:       params.Notes,
	}

	saved, err := s.store.Create(ctx, word)
	if err != nil {
		return model.Word{}, fmt.Errorf("failed to create word: %w", err)
	}

	return saved, nil
}

// Update patches a word's category, notes or image URL. Whenever the patch
// carries a category the color is re-derived from it, so stored color can
// never drift from category through this path.
func (s *Word) Update(ctx context.Context, id uuid.UUID, patch model.WordPatch) (model.Word, error) {
	if patch.Category != nil {
		category := model.ParseCategory(string(*patch.Category))
		color := model.ColorFor(category)
		patch.Category = &category
		patch.Color = &color
	}

	word, err := s.store.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Word{}, model.ErrNotFound
		}
		return model.Word{}, fmt.Errorf("failed to update word: %w", err)
	}

	return word, nil
}

// Delete removes a word. Deleting an id that is already gone is not an
// error: the caller refreshes afterwards either way.
func (s *Word) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.store.Delete(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		s.logger.Debug("delete of absent word coalesced", "id", id)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to delete word: %w", err)
	}
	return nil
}
