package handlers

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"movieflix/internal/eventbus"
	"movieflix/internal/ui/state"
)

// StatusTTL is how long a status message stays visible
const StatusTTL = 4 * time.Second

// ClearStatusMsg clears the status message with sequence Seq
type ClearStatusMsg struct {
	Seq int
}

// ClearStatusAfter returns a command clearing message seq after d
func ClearStatusAfter(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}

// EventHandler turns domain events into status messages
type EventHandler struct {
	state *state.AppState
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState) *EventHandler {
	return &EventHandler{state: appState}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.WatchlistLoadedEvent:
		if e.Err != nil {
			return h.status(fmt.Sprintf("Could not load your watched list, starting empty: %v", e.Err), true)
		}

	case eventbus.EntryAddedEvent:
		return h.status(fmt.Sprintf("Added %s (%d ⭐)", e.Entry.Title, e.Entry.UserRating), false)

	case eventbus.EntryRemovedEvent:
		return h.status(fmt.Sprintf("Removed %s", e.Title), false)

	case eventbus.StorageFailedEvent:
		return h.status(fmt.Sprintf("Could not %s watched list: %v", e.Op, e.Err), true)
	}

	return nil
}

func (h *EventHandler) status(msg string, isError bool) tea.Cmd {
	seq := h.state.SetStatus(msg, isError)
	return ClearStatusAfter(seq, StatusTTL)
}
