package state

import (
	"movieflix/internal/ui/input/types"
)

// AppState contains the UI state that no service owns
type AppState struct {
	Width  int
	Height int

	// Focus is the pane that receives navigation keys
	Focus types.Pane

	// Collapsed panes keep their box but hide the content
	ResultsCollapsed bool
	RightCollapsed   bool

	StatusMessage string // status bar message
	StatusIsError bool
	StatusSeq     int // bumped on every new message

	WindowTitle string
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Focus: types.PaneResults,
	}
}

// SetStatus shows a status message and returns its sequence number
func (s *AppState) SetStatus(msg string, isError bool) int {
	s.StatusSeq++
	s.StatusMessage = msg
	s.StatusIsError = isError
	return s.StatusSeq
}

// ClearStatus removes the message with sequence seq. A newer message
// stays in place.
func (s *AppState) ClearStatus(seq int) {
	if seq != s.StatusSeq {
		return
	}
	s.StatusMessage = ""
	s.StatusIsError = false
}

// ToggleFocus switches between the results and the watched pane
func (s *AppState) ToggleFocus() types.Pane {
	if s.Focus == types.PaneResults {
		s.Focus = types.PaneWatched
	} else {
		s.Focus = types.PaneResults
	}
	return s.Focus
}

// ToggleCollapsed hides or shows the focused pane and reports whether it
// is now hidden
func (s *AppState) ToggleCollapsed() bool {
	if s.Focus == types.PaneWatched {
		s.RightCollapsed = !s.RightCollapsed
		return s.RightCollapsed
	}
	s.ResultsCollapsed = !s.ResultsCollapsed
	return s.ResultsCollapsed
}
