package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventWatchlistLoaded EventType = "WatchlistLoaded"
	EventEntryAdded      EventType = "EntryAdded"
	EventEntryRemoved    EventType = "EntryRemoved"
	EventWatchlistSaved  EventType = "WatchlistSaved"
	EventStorageFailed   EventType = "StorageFailed"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// WatchlistLoadedEvent is emitted once the watchlist has been hydrated from storage
type WatchlistLoadedEvent struct {
	Count int
	Err   error // non-nil when hydration failed open to an empty list
}

func (e WatchlistLoadedEvent) Type() EventType { return EventWatchlistLoaded }

// EntryAddedEvent is emitted when a movie is added to the watchlist
type EntryAddedEvent struct {
	Entry WatchedEntry
}

func (e EntryAddedEvent) Type() EventType { return EventEntryAdded }

// EntryRemovedEvent is emitted when a movie is removed from the watchlist
type EntryRemovedEvent struct {
	ID    string
	Title string
}

func (e EntryRemovedEvent) Type() EventType { return EventEntryRemoved }

// WatchlistSavedEvent is emitted after a snapshot was written to storage
type WatchlistSavedEvent struct {
	Key   string
	Count int
}

func (e WatchlistSavedEvent) Type() EventType { return EventWatchlistSaved }

// StorageFailedEvent is emitted when reading or writing the snapshot failed
type StorageFailedEvent struct {
	Op  string // "read", "decode" or "write"
	Key string
	Err error
}

func (e StorageFailedEvent) Type() EventType { return EventStorageFailed }
