package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/horadelbocadillo/yotetraduzco-clean/internal/logger"
	"github.com/horadelbocadillo/yotetraduzco-clean/internal/model"
)

// EntryState names the phase of one word-entry session.
type EntryState string

const (
	// EntryIdle means nothing has been fetched yet.
	EntryIdle EntryState = "idle"
	// EntryTranslating means a translate call is in flight.
	EntryTranslating EntryState = "translating"
	// EntryPreviewing means a draft is staged and editable.
	EntryPreviewing EntryState = "previewing"
	// EntryCommitting means a save call is in flight.
	EntryCommitting EntryState = "committing"
)

// Draft is an in-memory, not-yet-persisted word staged by the workflow.
type Draft struct {
	Original    string
	Translation string
	ImageURL    *string
	Category    model.Category
	Notes       string
}

// wordCreator is the slice of the word service the workflow needs.
type wordCreator interface {
	Create(ctx context.Context, params model.CreateWordParams) (model.Word, error)
}

// Entry stages a new word through translate, illustrate, annotate and
// commit. The persisted collection is only touched by an explicit save;
// cancel discards the whole draft.
type Entry struct {
	translator model.Translator
	images     model.ImageSearcher
	words      wordCreator
	logger     *logger.Logger
	onAdded    func(original string)

	mu      sync.Mutex
	state   EntryState
	draft   *Draft
	lastErr string
}

// NewEntry creates an entry workflow. onAdded, when non-nil, is invoked
// with the saved original text after every successful commit.
func NewEntry(
	translator model.Translator,
	images model.ImageSearcher,
	words wordCreator,
	logger *logger.Logger,
	onAdded func(original string),
) *Entry {
	return &Entry{
		translator: translator,
		images:     images,
		words:      words,
		logger:     logger,
		onAdded:    onAdded,
		state:      EntryIdle,
	}
}

// State returns the current session phase.
func (e *Entry) State() EntryState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Loading reports whether a translate or save call is in flight. The UI
// uses it to disable inputs instead of blocking.
func (e *Entry) Loading() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state == EntryTranslating || e.state == EntryCommitting
}

// Draft returns a copy of the staged draft, if any.
func (e *Entry) Draft() (Draft, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.draft == nil {
		return Draft{}, false
	}
	return *e.draft, true
}

// LastError returns the message of the most recent failure, empty once a
// later operation succeeds.
func (e *Entry) LastError() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastErr
}

// Translate fetches the translation for input and, when includeImage is
// set, an illustrative image, then stages the result as a draft. Empty
// input is rejected before any network call. A duplicate submit while a
// translate is already running is ignored. Image lookup is best-effort:
// its failure degrades the draft to no image, never aborts the session.
func (e *Entry) Translate(ctx context.Context, input string, includeImage bool) (Draft, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Draft{}, model.ErrEmptyWord
	}

	e.mu.Lock()
	if e.state == EntryTranslating {
		e.mu.Unlock()
		return Draft{}, model.ErrTranslationInFlight
	}
	e.state = EntryTranslating
	e.draft = nil
	e.mu.Unlock()

	translation, err := e.translator.Translate(ctx, trimmed)
	if err != nil {
		e.mu.Lock()
		e.state = EntryIdle
		e.lastErr = err.Error()
		e.mu.Unlock()
		return Draft{}, fmt.Errorf("failed to translate: %w", err)
	}

	var imageURL *string
	if includeImage {
		imageURL, err = e.images.FindImage(ctx, translation.Original)
		if err != nil {
			e.logger.Warn("image lookup failed, continuing without image",
				"query", translation.Original,
				"error", err.Error())
			imageURL = nil
		}
	}

	draft := Draft{
		Original:    translation.Original,
		Translation: translation.Translation,
		ImageURL:    imageURL,
	}

	e.mu.Lock()
	e.draft = &draft
	e.state = EntryPreviewing
	e.lastErr = ""
	e.mu.Unlock()

	return draft, nil
}

// SetCategory annotates the staged draft.
func (e *Entry) SetCategory(category model.Category) error {
	return e.editDraft(func(d *Draft) {
		d.Category = model.ParseCategory(string(category))
	})
}

// SetNotes annotates the staged draft.
func (e *Entry) SetNotes(notes string) error {
	return e.editDraft(func(d *Draft) {
		d.Notes = notes
	})
}

// SetImage replaces or clears the staged draft's image. It is a pure URL
// swap, never a translation re-run.
func (e *Entry) SetImage(imageURL *string) error {
	return e.editDraft(func(d *Draft) {
		d.ImageURL = imageURL
	})
}

func (e *Entry) editDraft(edit func(*Draft)) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != EntryPreviewing || e.draft == nil {
		return model.ErrNoDraft
	}
	edit(e.draft)
	return nil
}

// Save commits the staged draft to the store. On success the session
// returns to idle with all draft state cleared and the added notification
// fires. On failure the draft and the error message are kept so the user
// can retry without re-translating.
func (e *Entry) Save(ctx context.Context) (model.Word, error) {
	e.mu.Lock()
	if e.state != EntryPreviewing || e.draft == nil {
		e.mu.Unlock()
		return model.Word{}, model.ErrNoDraft
	}
	draft := *e.draft
	e.state = EntryCommitting
	e.mu.Unlock()

	params := model.CreateWordParams{
		Original:    draft.Original,
		Translation: draft.Translation,
		Category:    draft.Category,
		ImageURL:    draft.ImageURL,
	}
	if draft.Notes != "" {
		notes := draft.Notes
		params.Notes = &notes
	}

	word, err := e.words.Create(ctx, params)
	if err != nil {
		e.mu.Lock()
		e.state = EntryPreviewing
		e.lastErr = err.Error()
		e.mu.Unlock()
		return model.Word{}, fmt.Errorf("failed to save word: %w", err)
	}

	e.mu.Lock()
	e.draft = nil
	e.state = EntryIdle
	e.lastErr = ""
	e.mu.Unlock()

	if e.onAdded != nil {
		e.onAdded(word.Original)
	}

	return word, nil
}

// Cancel discards the staged draft without touching the store.
func (e *Entry) Cancel() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != EntryPreviewing || e.draft == nil {
		return model.ErrNoDraft
	}
	e.draft = nil
	e.state = EntryIdle
	e.lastErr = ""
	return nil
}
