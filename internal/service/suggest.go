package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/horadelbocadillo/yotetraduzco-clean/internal/logger"
	"github.com/horadelbocadillo/yotetraduzco-clean/internal/model"
	"github.com/horadelbocadillo/yotetraduzco-clean/internal/upstream/datamuse"
)

const (
	// suggestMinInputLen is the shortest input worth a lookup.
	suggestMinInputLen = 2
	// suggestScoreThreshold drops low-relevance candidates.
	suggestScoreThreshold = 100
	// suggestMax caps the suggestions returned to the caller.
	suggestMax = 5
)

// suggestionSource yields scored spelling candidates.
type suggestionSource interface {
	Lookup(ctx context.Context, word string) ([]datamuse.Suggestion, error)
}

var _ model.Suggester = (*Suggest)(nil)

// Suggest turns raw scored candidates into at most five relevant spelling
// suggestions.
type Suggest struct {
	source suggestionSource
	logger *logger.Logger
}

// NewSuggest creates a suggestion service over the given source.
func NewSuggest(source suggestionSource, logger *logger.Logger) *Suggest {
	return &Suggest{
		source: source,
		logger: logger,
	}
}

// Suggest returns spelling suggestions for word. Inputs shorter than two
// characters answer an empty list without calling upstream.
func (s *Suggest) Suggest(ctx context.Context, word string) ([]string, error) {
	trimmed := strings.TrimSpace(word)
	if utf8.RuneCountInString(trimmed) < suggestMinInputLen {
		return []string{}, nil
	}

	candidates, err := s.source.Lookup(ctx, trimmed)
	if err != nil {
		return nil, fmt.Errorf("failed to look up suggestions: %w", err)
	}

	suggestions := []string{}
	for _, candidate := range candidates {
		if candidate.Score <= suggestScoreThreshold {
			continue
		}
		suggestions = append(suggestions, candidate.Word)
		if len(suggestions) == suggestMax {
			break
		}
	}

	return suggestions, nil
}
