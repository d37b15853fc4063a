package service

import (
	"context"
	"sync"
	"time"

	"github.com/horadelbocadillo/yotetraduzco-clean/internal/logger"
	"github.com/horadelbocadillo/yotetraduzco-clean/internal/model"
)

// DefaultSearchDebounce is the quiet period a search input must hold before
// a re-list fires.
const DefaultSearchDebounce = 300 * time.Millisecond

// DefaultPageSize is the page length used when pagination is enabled
// without an explicit size.
const DefaultPageSize = 10

// CollectionState distinguishes the three mutually exclusive empty
// conditions of the view plus the populated one.
type CollectionState string

const (
	// CollectionLoading means a fetch is in flight and nothing newer is
	// available to show.
	CollectionLoading CollectionState = "loading"
	// CollectionEmpty means zero words exist and no filter is active.
	CollectionEmpty CollectionState = "empty"
	// CollectionNoMatches means an active filter yielded zero rows.
	CollectionNoMatches CollectionState = "no-matches"
	// CollectionReady means the snapshot has rows to show.
	CollectionReady CollectionState = "ready"
)

// wordLister is the slice of the word service the view needs.
type wordLister interface {
	List(ctx context.Context, filter model.ListFilter) ([]model.Word, error)
}

// Collection owns the view state over the persisted word set: search text,
// category filter, the fetched snapshot and an optional client-side pager.
// Search edits are debounced; category changes and external refresh signals
// re-list immediately. Every fetch is stamped at initiation and only the
// most recently initiated fetch may update the snapshot, so a slow stale
// response can never overwrite a newer one.
type Collection struct {
	words    wordLister
	logger   *logger.Logger
	debounce time.Duration
	pageSize int
	onChange func()

	mu         sync.Mutex
	searchText string
	category   model.Category
	page       int
	snapshot   []model.Word
	loaded     bool
	loading    bool
	fetchSeq   uint64
	timer      *time.Timer
	closed     bool
}

// NewCollection creates a collection view model. pageSize <= 0 disables
// pagination; debounce <= 0 falls back to DefaultSearchDebounce. onChange,
// when non-nil, is invoked after every snapshot change.
func NewCollection(words wordLister, logger *logger.Logger, pageSize int, debounce time.Duration, onChange func()) *Collection {
	if debounce <= 0 {
		debounce = DefaultSearchDebounce
	}
	return &Collection{
		words:    words,
		logger:   logger,
		debounce: debounce,
		pageSize: pageSize,
		onChange: onChange,
		page:     1,
	}
}

// SetSearchText records a search edit and restarts the debounce timer. The
// re-list fires only once the input has been stable for the quiet period,
// so rapid edits collapse into a single fetch of the final text.
func (c *Collection) SetSearchText(ctx context.Context, text string) {
	c.mu.Lock()
	c.searchText = text
	c.page = 1
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.debounce, func() {
		c.mu.Lock()
		closed := c.closed
		c.mu.Unlock()
		if closed {
			return
		}
		c.fetch(ctx)
	})
	c.mu.Unlock()
}

// SetCategory switches the category filter and re-lists immediately.
func (c *Collection) SetCategory(ctx context.Context, category model.Category) {
	c.mu.Lock()
	c.category = category
	c.page = 1
	c.mu.Unlock()
	c.fetch(ctx)
}

// Refresh re-lists with the current filters. It is the entry point for
// external "collection changed" signals (word added, updated or deleted).
func (c *Collection) Refresh(ctx context.Context) {
	c.fetch(ctx)
}

// fetch runs one list call and adopts its result only if no newer fetch
// was initiated meanwhile. A failed call keeps the last known-good
// snapshot.
func (c *Collection) fetch(ctx context.Context) {
	c.mu.Lock()
	c.fetchSeq++
	seq := c.fetchSeq
	c.loading = true
	filter := model.ListFilter{
		SearchText: c.searchText,
		Category:   c.category,
	}
	c.mu.Unlock()

	words, err := c.words.List(ctx, filter)

	c.mu.Lock()
	if seq != c.fetchSeq {
		// Superseded by a later fetch; discard.
		c.mu.Unlock()
		return
	}
	if err != nil {
		c.logger.Error("list fetch failed", "error", err.Error())
		c.loading = false
		c.mu.Unlock()
		return
	}
	c.snapshot = words
	c.loaded = true
	c.loading = false
	if max := c.totalPagesLocked(); c.page > max {
		c.page = max
	}
	c.mu.Unlock()

	if c.onChange != nil {
		c.onChange()
	}
}

// State reports which of the mutually exclusive view conditions holds.
func (c *Collection) State() CollectionState {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loading || !c.loaded {
		return CollectionLoading
	}
	if len(c.snapshot) == 0 {
		if c.searchText != "" || c.category != model.CategoryNone {
			return CollectionNoMatches
		}
		return CollectionEmpty
	}
	return CollectionReady
}

// Words returns the visible slice of the snapshot: the current page when
// pagination is enabled, otherwise the whole filtered set.
func (c *Collection) Words() []model.Word {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pageSize <= 0 {
		return append([]model.Word(nil), c.snapshot...)
	}

	start := (c.page - 1) * c.pageSize
	if start >= len(c.snapshot) {
		return []model.Word{}
	}
	end := start + c.pageSize
	if end > len(c.snapshot) {
		end = len(c.snapshot)
	}
	return append([]model.Word(nil), c.snapshot[start:end]...)
}

// Len returns the size of the full filtered snapshot.
func (c *Collection) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.snapshot)
}

// Page returns the current 1-based page number.
func (c *Collection) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// TotalPages returns the page count; at least 1 so an empty set still has
// a page to stand on.
func (c *Collection) TotalPages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalPagesLocked()
}

func (c *Collection) totalPagesLocked() int {
	if c.pageSize <= 0 || len(c.snapshot) == 0 {
		return 1
	}
	return (len(c.snapshot) + c.pageSize - 1) / c.pageSize
}

// HasNext reports whether a later page exists.
func (c *Collection) HasNext() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page < c.totalPagesLocked()
}

// HasPrev reports whether an earlier page exists.
func (c *Collection) HasPrev() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page > 1
}

// NextPage advances one page; past the last page it is a no-op.
func (c *Collection) NextPage() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.page < c.totalPagesLocked() {
		c.page++
	}
}

// PrevPage goes back one page; before the first page it is a no-op.
func (c *Collection) PrevPage() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.page > 1 {
		c.page--
	}
}

// SearchText returns the current search input.
func (c *Collection) SearchText() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.searchText
}

// Category returns the current category filter.
func (c *Collection) Category() model.Category {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.category
}

// Close stops the pending debounce timer so no callback outlives the view.
func (c *Collection) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
