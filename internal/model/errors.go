package model

import "errors"

var (
	// ErrNotFound is returned when a requested word does not exist.
	ErrNotFound = errors.New("not found")
	// ErrEmptyWord is returned when input text is empty after trimming.
	ErrEmptyWord = errors.New("word is required")
	// ErrEmptyTranslation is returned when a draft carries no translation.
	ErrEmptyTranslation = errors.New("translation is required")
	// ErrTranslationInFlight is returned when a translate is requested while
	// one is already running for the same entry session.
	ErrTranslationInFlight = errors.New("translation already in progress")
	// ErrNoDraft is returned when save or cancel is requested without a
	// previewed draft.
	ErrNoDraft = errors.New("no draft to act on")
)
