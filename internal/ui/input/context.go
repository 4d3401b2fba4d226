package input

import (
	"movieflix/internal/domain"
	"movieflix/internal/ui/input/types"
	"movieflix/internal/ui/services/detail"
	"movieflix/internal/ui/services/navigation"
	"movieflix/internal/ui/services/search"
	"movieflix/internal/ui/services/selection"
	"movieflix/internal/ui/state"
)

// WatchedLookup reports whether a movie is already on the watched list
type WatchedLookup interface {
	Has(id string) bool
}

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State      *state.AppState
	Search     *search.Service
	Selection  *selection.Service
	Detail     *detail.Service
	Watchlist  WatchedLookup
	Watched    []domain.WatchedEntry // watched list in display order
	ResultsNav *navigation.Service
	WatchedNav *navigation.Service
}

// FocusedPane returns the pane receiving navigation keys
func (c *ModelContext) FocusedPane() types.Pane {
	return c.State.Focus
}

// CurrentMovieID returns the ID under the cursor of the focused pane
func (c *ModelContext) CurrentMovieID() string {
	if c.State.Focus == types.PaneWatched {
		i := c.WatchedNav.Cursor()
		if i < len(c.Watched) {
			return c.Watched[i].ID
		}
		return ""
	}

	results := c.Search.Results()
	i := c.ResultsNav.Cursor()
	if i < len(results) {
		return results[i].ID
	}
	return ""
}

// SelectedID returns the open movie, if any
func (c *ModelContext) SelectedID() string {
	id, _ := c.Selection.Selected()
	return id
}

// CanRate reports whether the open movie is loaded and not yet watched
func (c *ModelContext) CanRate() bool {
	d, ok := c.Detail.Detail()
	if !ok {
		return false
	}
	return !c.Watchlist.Has(d.ID)
}

// PendingRating returns the rating picked for the open movie
func (c *ModelContext) PendingRating() int {
	return c.Detail.UserRating()
}

// HasDetail reports whether a detail record is loaded
func (c *ModelContext) HasDetail() bool {
	_, ok := c.Detail.Detail()
	return ok
}

// SearchQuery returns the current query
func (c *ModelContext) SearchQuery() string {
	return c.Search.Query()
}
