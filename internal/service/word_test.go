package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/horadelbocadillo/yotetraduzco-clean/internal/model"
	"github.com/horadelbocadillo/yotetraduzco-clean/internal/testutil"
)

// MockWordStore mocks the WordStore interface
type MockWordStore struct {
	mock.Mock
}

func (m *MockWordStore) List(ctx context.Context, filter model.ListFilter) ([]model.Word, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Word), args.Error(1)
}

func (m *MockWordStore) GetByID(ctx context.Context, id uuid.UUID) (model.Word, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Word), args.Error(1)
}

func (m *MockWordStore) Create(ctx context.Context, word model.Word) (model.Word, error) {
	args := m.Called(ctx, word)
	return args.Get(0).(model.Word), args.Error(1)
}

func (m *MockWordStore) Update(ctx context.Context, id uuid.UUID, patch model.WordPatch) (model.Word, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(model.Word), args.Error(1)
}

func (m *MockWordStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestWordService_Create(t *testing.T) {
	tests := []struct {
		name      string
		params    model.CreateWordParams
		mockSetup func(*MockWordStore)
		wantErr   error
		check     func(*testing.T, model.Word)
	}{
		{
			name: "derives color from category",
			params: model.CreateWordParams{
				Original:    "cat",
				Translation: "gato",
				Category:    model.CategorySustantivo,
			},
			mockSetup: func(store *MockWordStore) {
				store.On("Create", mock.Anything, mock.MatchedBy(func(w model.Word) bool {
					return w.Category == model.CategorySustantivo && w.Color == model.ColorBlue && w.ID != uuid.Nil
				})).Return(model.Word{
					ID:          uuid.New(),
					Original:    "cat",
					Translation: "gato",
					Category:    model.CategorySustantivo,
					Color:       model.ColorBlue,
				}, nil)
			},
			check: func(t *testing.T, w model.Word) {
				assert.Equal(t, model.ColorBlue, w.Color)
			},
		},
		{
			name: "trims original and translation",
			params: model.CreateWordParams{
				Original:    "  dog  ",
				Translation: " perro ",
			},
			mockSetup: func(store *MockWordStore) {
				store.On("Create", mock.Anything, mock.MatchedBy(func(w model.Word) bool {
					return w.Original == "dog" && w.Translation == "perro" && w.Color == model.ColorNone
				})).Return(model.Word{Original: "dog", Translation: "perro"}, nil)
			},
		},
		{
			name: "unknown category collapses to uncategorized",
			params: model.CreateWordParams{
				Original:    "cat",
				Translation: "gato",
				Category:    model.Category("pronombre"),
			},
			mockSetup: func(store *MockWordStore) {
				store.On("Create", mock.Anything, mock.MatchedBy(func(w model.Word) bool {
					return w.Category == model.CategoryNone && w.Color == model.ColorNone
				})).Return(model.Word{Original: "cat", Translation: "gato"}, nil)
			},
		},
		{
			name:      "empty original rejected before store",
			params:    model.CreateWordParams{Original: "   ", Translation: "gato"},
			mockSetup: func(store *MockWordStore) {},
			wantErr:   model.ErrEmptyWord,
		},
		{
			name:      "empty translation rejected before store",
			params:    model.CreateWordParams{Original: "cat", Translation: ""},
			mockSetup: func(store *MockWordStore) {},
			wantErr:   model.ErrEmptyTranslation,
		},
		{
			name:   "store failure surfaces",
			params: model.CreateWordParams{Original: "cat", Translation: "gato"},
			mockSetup: func(store *MockWordStore) {
				store.On("Create", mock.Anything, mock.Anything).
					Return(model.Word{}, errors.New("database error"))
			},
			wantErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &MockWordStore{}
			tt.mockSetup(store)

			svc := NewWord(store, testutil.MakeNoopLogger())

			word, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
			} else {
				require.NoError(t, err)
				if tt.check != nil {
					tt.check(t, word)
				}
			}

			store.AssertExpectations(t)
		})
	}
}

func TestWordService_Update_RederivesColor(t *testing.T) {
	store := &MockWordStore{}
	id := uuid.New()
	category := model.CategoryVerbo

	store.On("Update", mock.Anything, id, mock.MatchedBy(func(p model.WordPatch) bool {
		return p.Category != nil && *p.Category == model.CategoryVerbo &&
			p.Color != nil && *p.Color == model.ColorPurple
	})).Return(model.Word{
		ID:       id,
		Category: model.CategoryVerbo,
		Color:    model.ColorPurple,
	}, nil)

	svc := NewWord(store, testutil.MakeNoopLogger())

	word, err := svc.Update(context.Background(), id, model.WordPatch{Category: &category})
	require.NoError(t, err)
	assert.Equal(t, model.ColorPurple, word.Color)

	store.AssertExpectations(t)
}

func TestWordService_Update_ClearingCategoryClearsColor(t *testing.T) {
	store := &MockWordStore{}
	id := uuid.New()
	category := model.CategoryNone

	store.On("Update", mock.Anything, id, mock.MatchedBy(func(p model.WordPatch) bool {
		return p.Category != nil && *p.Category == model.CategoryNone &&
			p.Color != nil && *p.Color == model.ColorNone
	})).Return(model.Word{ID: id}, nil)

	svc := NewWord(store, testutil.MakeNoopLogger())

	_, err := svc.Update(context.Background(), id, model.WordPatch{Category: &category})
	require.NoError(t, err)

	store.AssertExpectations(t)
}

func TestWordService_Update_WithoutCategoryLeavesColorAlone(t *testing.T) {
	store := &MockWordStore{}
	id := uuid.New()
	notes := "apuntes"

	store.On("Update", mock.Anything, id, mock.MatchedBy(func(p model.WordPatch) bool {
		return p.Category == nil && p.Color == nil && p.Notes != nil
	})).Return(model.Word{ID: id, Notes: &notes}, nil)

	svc := NewWord(store, testutil.MakeNoopLogger())

	_, err := svc.Update(context.Background(), id, model.WordPatch{Notes: &notes})
	require.NoError(t, err)

	store.AssertExpectations(t)
}

func TestWordService_Delete_Idempotent(t *testing.T) {
	store := &MockWordStore{}
	id := uuid.New()

	store.On("Delete", mock.Anything, id).Return(model.ErrNotFound)

	svc := NewWord(store, testutil.MakeNoopLogger())

	assert.NoError(t, svc.Delete(context.Background(), id), "absent id must not be fatal")
	store.AssertExpectations(t)
}

func TestWordService_Delete_OtherErrorsSurface(t *testing.T) {
	store := &MockWordStore{}
	id := uuid.New()

	store.On("Delete", mock.Anything, id).Return(errors.New("connection reset"))

	svc := NewWord(store, testutil.MakeNoopLogger())

	assert.Error(t, svc.Delete(context.Background(), id))
}

func TestWordService_List_TrimsSearchAndNeverReturnsNil(t *testing.T) {
	store := &MockWordStore{}

	store.On("List", mock.Anything, model.ListFilter{SearchText: "cat"}).
		Return([]model.Word(nil), nil)

	svc := NewWord(store, testutil.MakeNoopLogger())

	words, err := svc.List(context.Background(), model.ListFilter{SearchText: "  cat  "})
	require.NoError(t, err)
	assert.NotNil(t, words)
	assert.Empty(t, words)

	store.AssertExpectations(t)
}
