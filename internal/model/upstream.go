package model

import "context"

// Translation is the result of translating one word or phrase.
type Translation struct {
	Original    string
	Translation string
}

// Translator translates English text to Spanish.
type Translator interface {
	Translate(ctx context.Context, word string) (Translation, error)
}

// ImageSearcher finds an illustrative image URL for a query. A nil URL with
// a nil error is a valid "no result" outcome.
type ImageSearcher interface {
	FindImage(ctx context.Context, query string) (*string, error)
}

// Suggester returns spelling suggestions for a possibly misspelled word.
type Suggester interface {
	Suggest(ctx context.Context, word string) ([]string, error)
}
