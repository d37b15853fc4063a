package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/horadelbocadillo/yotetraduzco-clean/internal/testutil"
	"github.com/horadelbocadillo/yotetraduzco-clean/internal/upstream/datamuse"
)

// MockSuggestionSource mocks the suggestionSource interface
type MockSuggestionSource struct {
	mock.Mock
}

func (m *MockSuggestionSource) Lookup(ctx context.Context, word string) ([]datamuse.Suggestion, error) {
	args := m.Called(ctx, word)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]datamuse.Suggestion), args.Error(1)
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		candidates []datamuse.Suggestion
		want       []string
	}{
		{
			name:  "filters low-relevance candidates",
			input: "helo",
			candidates: []datamuse.Suggestion{
				{Word: "hello", Score: 3000},
				{Word: "halo", Score: 900},
				{Word: "help", Score: 100},
				{Word: "helot", Score: 40},
			},
			want: []string{"hello", "halo"},
		},
		{
			name:  "caps at five suggestions",
			input: "wor",
			candidates: []datamuse.Suggestion{
				{Word: "word", Score: 900},
				{Word: "work", Score: 800},
				{Word: "world", Score: 700},
				{Word: "worm", Score: 600},
				{Word: "worn", Score: 500},
				{Word: "worse", Score: 400},
				{Word: "worth", Score: 300},
			},
			want: []string{"word", "work", "world", "worm", "worn"},
		},
		{
			name:       "no candidates",
			input:      "xqzv",
			candidates: []datamuse.Suggestion{},
			want:       []string{},
		},
		{
			name:  "trims input before lookup",
			input: "  cat  ",
			candidates: []datamuse.Suggestion{
				{Word: "cat", Score: 500},
			},
			want: []string{"cat"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := &MockSuggestionSource{}
			source.On("Lookup", mock.Anything, mock.Anything).Return(tt.candidates, nil)

			svc := NewSuggest(source, testutil.MakeNoopLogger())

			got, err := svc.Suggest(context.Background(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSuggest_ShortInputSkipsLookup(t *testing.T) {
	source := &MockSuggestionSource{}
	svc := NewSuggest(source, testutil.MakeNoopLogger())

	for _, input := range []string{"", " ", "a", " a "} {
		got, err := svc.Suggest(context.Background(), input)
		require.NoError(t, err)
		assert.Empty(t, got)
	}

	source.AssertNotCalled(t, "Lookup", mock.Anything, mock.Anything)
}

func TestSuggest_LookupFailure(t *testing.T) {
	source := &MockSuggestionSource{}
	source.On("Lookup", mock.Anything, "helo").
		Return(nil, errors.New("datamuse api error: 500"))

	svc := NewSuggest(source, testutil.MakeNoopLogger())

	_, err := svc.Suggest(context.Background(), "helo")
	assert.Error(t, err)
}
