package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeConfirmRemove
)

// Pane identifies the list that receives navigation keys
type Pane int

const (
	PaneResults Pane = iota
	PaneWatched
)

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	FocusedPane() Pane
	// CurrentMovieID is the ID under the cursor of the focused pane
	CurrentMovieID() string
	SelectedID() string
	// CanRate reports whether a loaded, not yet watched detail is shown
	CanRate() bool
	PendingRating() int
	HasDetail() bool
	SearchQuery() string
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
