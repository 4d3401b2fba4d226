package coordinator

import (
	"context"
	"log/slog"

	"movieflix/internal/domain"
	"movieflix/internal/ui/input/types"
	"movieflix/internal/ui/services/detail"
	"movieflix/internal/ui/services/navigation"
	"movieflix/internal/ui/services/search"
	"movieflix/internal/ui/services/selection"
	"movieflix/internal/ui/services/sorting"
)

// WatchedSource is the read side of the watched list
type WatchedSource interface {
	Entries() []domain.WatchedEntry
	Len() int
	Has(id string) bool
	Get(id string) (domain.WatchedEntry, bool)
}

// Coordinator manages all UI services and their interactions
type Coordinator struct {
	Search     *search.Service
	Selection  *selection.Service
	Detail     *detail.Service
	Sorting    *sorting.Service
	ResultsNav *navigation.Service
	WatchedNav *navigation.Service

	watched WatchedSource
}

// NewCoordinator creates a new coordinator with all services. Requests
// started by the services derive their context from ctx.
func NewCoordinator(ctx context.Context, minQueryLength int, watched WatchedSource, log *slog.Logger) *Coordinator {
	c := &Coordinator{
		Search:    search.NewService(ctx, minQueryLength, log),
		Selection: selection.NewService(),
		Detail:    detail.NewService(ctx, log),
		Sorting:   sorting.NewService(),
		watched:   watched,
	}

	c.ResultsNav = navigation.NewService(func() int { return len(c.Search.Results()) })
	c.WatchedNav = navigation.NewService(watched.Len)
	return c
}

// SetQuery records a new query and moves the results cursor back to the
// top. It returns a ticket when a lookup must run.
func (c *Coordinator) SetQuery(query string) (search.Ticket, bool) {
	if query != c.Search.Query() {
		c.ResultsNav.Reset()
	}
	return c.Search.SetQuery(query)
}

// ToggleMovie opens id, or closes it when it is already open. It returns
// a ticket when the detail record must be fetched.
func (c *Coordinator) ToggleMovie(id string) (detail.Ticket, bool) {
	if next := c.Selection.Toggle(id); next != "" {
		return c.Detail.Begin(next), true
	}
	c.Detail.Clear()
	return detail.Ticket{}, false
}

// CloseMovie closes the detail panel
func (c *Coordinator) CloseMovie() {
	c.Selection.Close()
	c.Detail.Clear()
}

// Watched returns the watched list in display order
func (c *Coordinator) Watched() []domain.WatchedEntry {
	return c.Sorting.Apply(c.watched.Entries())
}

// WatchedRating returns the stored rating of the open movie, 0 when it
// is not on the watched list
func (c *Coordinator) WatchedRating() int {
	id, ok := c.Selection.Selected()
	if !ok {
		return 0
	}
	if e, ok := c.watched.Get(id); ok {
		return e.UserRating
	}
	return 0
}

// Nav returns the navigation service of a pane
func (c *Coordinator) Nav(pane types.Pane) *navigation.Service {
	if pane == types.PaneWatched {
		return c.WatchedNav
	}
	return c.ResultsNav
}

// SetListHeights updates the visible rows of both lists
func (c *Coordinator) SetListHeights(results, watched int) {
	c.ResultsNav.SetViewportHeight(results)
	c.WatchedNav.SetViewportHeight(watched)
}

// Shutdown cancels every in-flight request
func (c *Coordinator) Shutdown() {
	c.Search.Cancel()
	c.Detail.Clear()
}
