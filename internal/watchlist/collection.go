// Package watchlist holds the user's rated movies and mirrors every change
// to durable storage.
package watchlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"movieflix/internal/domain"
	"movieflix/internal/eventbus"
	"movieflix/internal/storage"
)

var (
	// ErrDuplicate is returned when adding an id that is already present
	ErrDuplicate = errors.New("watchlist: movie already in watchlist")
	// ErrInvalidRating is returned for user ratings outside 1..10
	ErrInvalidRating = errors.New("watchlist: rating must be between 1 and 10")
	// ErrEmptyID is returned for entries without an id
	ErrEmptyID = errors.New("watchlist: entry has no id")
	// ErrPersist wraps storage failures after a successful mutation
	ErrPersist = errors.New("watchlist: could not save")
)

const writeTimeout = 5 * time.Second

// Collection is the ordered, persisted list of watched movies.
// It is owned by the UI event loop and is not safe for concurrent use.
type Collection struct {
	store   storage.Store
	key     string
	bus     eventbus.EventBus
	log     *slog.Logger
	now     func() time.Time
	entries []domain.WatchedEntry
	loadErr error
}

// Option customises a Collection
type Option func(*Collection)

// WithClock overrides the clock used for AddedAt
func WithClock(now func() time.Time) Option {
	return func(c *Collection) { c.now = now }
}

// Open hydrates a collection from store. A missing snapshot starts an
// empty list that is written immediately. Unreadable or corrupt data
// also starts empty: the failure is logged, published and kept in
// LoadErr, but Open still succeeds.
func Open(ctx context.Context, store storage.Store, key string, bus eventbus.EventBus, log *slog.Logger, opts ...Option) *Collection {
	c := &Collection{
		store:   store,
		key:     key,
		bus:     bus,
		log:     log.With("component", "watchlist", "key", key),
		now:     time.Now,
		entries: []domain.WatchedEntry{},
	}
	for _, opt := range opts {
		opt(c)
	}

	raw, found, err := store.Read(ctx, key)
	switch {
	case err != nil:
		c.loadErr = fmt.Errorf("read watchlist: %w", err)
		c.fail("read", c.loadErr)
	case !found:
		c.log.Info("no stored watchlist, starting empty")
		if err := c.persist(ctx); err != nil {
			c.loadErr = err
		}
	default:
		entries, err := decode(raw)
		if err != nil {
			c.loadErr = fmt.Errorf("decode watchlist: %w", err)
			c.fail("decode", c.loadErr)
		} else {
			c.entries = entries
		}
	}

	c.log.Info("watchlist loaded", "count", len(c.entries), "error", c.loadErr)
	c.publish(eventbus.WatchlistLoadedEvent{Count: len(c.entries), Err: c.loadErr})
	return c
}

// LoadErr returns the error hydration recovered from, if any
func (c *Collection) LoadErr() error {
	return c.loadErr
}

// Add appends entry unless its id is already present.
// The in-memory list keeps the entry even if persisting fails; the write
// error is returned so the caller can surface it.
func (c *Collection) Add(ctx context.Context, entry domain.WatchedEntry) error {
	entry.ID = strings.TrimSpace(entry.ID)
	if entry.ID == "" {
		return ErrEmptyID
	}
	if entry.UserRating < domain.MinUserRating || entry.UserRating > domain.MaxUserRating {
		return fmt.Errorf("%w: got %d", ErrInvalidRating, entry.UserRating)
	}
	if c.Has(entry.ID) {
		return fmt.Errorf("%w: %s", ErrDuplicate, entry.ID)
	}
	if entry.AddedAt.IsZero() {
		entry.AddedAt = c.now().UTC()
	}

	c.entries = append(c.entries, entry)
	c.log.Info("entry added", "id", entry.ID, "title", entry.Title, "rating", entry.UserRating)
	c.publish(eventbus.EntryAddedEvent{Entry: entry})
	return c.persist(ctx)
}

// Remove drops the entry with id. It reports whether anything was removed;
// removing an unknown id is a no-op and does not touch storage.
func (c *Collection) Remove(ctx context.Context, id string) (bool, error) {
	idx := c.index(id)
	if idx < 0 {
		return false, nil
	}
	removed := c.entries[idx]

	next := make([]domain.WatchedEntry, 0, len(c.entries)-1)
	next = append(next, c.entries[:idx]...)
	next = append(next, c.entries[idx+1:]...)
	c.entries = next

	c.log.Info("entry removed", "id", removed.ID, "title", removed.Title)
	c.publish(eventbus.EntryRemovedEvent{ID: removed.ID, Title: removed.Title})
	return true, c.persist(ctx)
}

// Entries returns a copy of the entries in insertion order
func (c *Collection) Entries() []domain.WatchedEntry {
	out := make([]domain.WatchedEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Get returns the entry with id
func (c *Collection) Get(id string) (domain.WatchedEntry, bool) {
	if idx := c.index(id); idx >= 0 {
		return c.entries[idx], true
	}
	return domain.WatchedEntry{}, false
}

// Has reports whether id is in the list
func (c *Collection) Has(id string) bool {
	return c.index(id) >= 0
}

// Len returns the number of entries
func (c *Collection) Len() int {
	return len(c.entries)
}

// Stats summarises the current entries
func (c *Collection) Stats() Stats {
	return Summarize(c.entries)
}

func (c *Collection) index(id string) int {
	for i, e := range c.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// persist overwrites the stored snapshot with the full list
func (c *Collection) persist(ctx context.Context) error {
	data, err := json.Marshal(c.entries)
	if err != nil {
		err = fmt.Errorf("%w: encode: %w", ErrPersist, err)
		c.fail("write", err)
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	if err := c.store.Write(ctx, c.key, string(data)); err != nil {
		err = fmt.Errorf("%w: %w", ErrPersist, err)
		c.fail("write", err)
		return err
	}

	c.log.Debug("watchlist saved", "count", len(c.entries))
	c.publish(eventbus.WatchlistSavedEvent{Key: c.key, Count: len(c.entries)})
	return nil
}

func (c *Collection) fail(op string, err error) {
	c.log.Error("watchlist storage failure", "op", op, "error", err)
	c.publish(eventbus.StorageFailedEvent{Op: op, Key: c.key, Err: err})
}

func (c *Collection) publish(e eventbus.DomainEvent) {
	if c.bus != nil {
		c.bus.Publish(e)
	}
}

// decode parses a stored snapshot. Entries without an id are skipped and
// later duplicates of an id are dropped so the uniqueness invariant holds
// even for hand-edited data.
func decode(raw string) ([]domain.WatchedEntry, error) {
	if strings.TrimSpace(raw) == "" {
		return []domain.WatchedEntry{}, nil
	}
	var stored []domain.WatchedEntry
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(stored))
	entries := make([]domain.WatchedEntry, 0, len(stored))
	for _, e := range stored {
		if e.ID == "" || seen[e.ID] {
			continue
		}
		seen[e.ID] = true
		entries = append(entries, e)
	}
	return entries, nil
}
