package commands

import (
	"context"
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"movieflix/internal/domain"
	"movieflix/internal/omdb"
	"movieflix/internal/ui/services/detail"
	"movieflix/internal/ui/services/search"
	"movieflix/internal/watchlist"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	Ctx       context.Context
	API       omdb.MovieAPI
	Watchlist *watchlist.Collection
	Log       *slog.Logger
}

// SearchResultMsg carries the outcome of one search lookup
type SearchResultMsg struct {
	Generation uint64
	Query      string
	Movies     []domain.Movie
	Err        error
}

// DetailResultMsg carries the outcome of one detail request
type DetailResultMsg struct {
	Generation uint64
	ID         string
	Detail     domain.MovieDetail
	Err        error
}

// WatchlistOp names a watched list mutation
type WatchlistOp string

const (
	OpAdd    WatchlistOp = "add"
	OpRemove WatchlistOp = "remove"
)

// WatchlistResultMsg reports a mutation the collection rejected or
// could not persist
type WatchlistResultMsg struct {
	Op    WatchlistOp
	ID    string
	Title string
	Err   error
}

// SearchCommand runs the lookup described by a search ticket
type SearchCommand struct {
	ctx    *CommandContext
	ticket search.Ticket
}

// NewSearchCommand creates a new search command
func NewSearchCommand(ctx *CommandContext, ticket search.Ticket) *SearchCommand {
	return &SearchCommand{ctx: ctx, ticket: ticket}
}

// Execute returns the tea.Cmd performing the lookup off the event loop
func (c *SearchCommand) Execute() tea.Cmd {
	api, ticket := c.ctx.API, c.ticket
	return func() tea.Msg {
		movies, err := api.Search(ticket.Ctx, ticket.Query)
		return SearchResultMsg{
			Generation: ticket.Generation,
			Query:      ticket.Query,
			Movies:     movies,
			Err:        err,
		}
	}
}

// DetailCommand fetches the detail record described by a ticket
type DetailCommand struct {
	ctx    *CommandContext
	ticket detail.Ticket
}

// NewDetailCommand creates a new detail command
func NewDetailCommand(ctx *CommandContext, ticket detail.Ticket) *DetailCommand {
	return &DetailCommand{ctx: ctx, ticket: ticket}
}

// Execute returns the tea.Cmd performing the request off the event loop
func (c *DetailCommand) Execute() tea.Cmd {
	api, ticket := c.ctx.API, c.ticket
	return func() tea.Msg {
		d, err := api.Details(ticket.Ctx, ticket.ID)
		return DetailResultMsg{
			Generation: ticket.Generation,
			ID:         ticket.ID,
			Detail:     d,
			Err:        err,
		}
	}
}

// AddWatchedCommand adds a rated movie to the watched list
type AddWatchedCommand struct {
	ctx    *CommandContext
	detail domain.MovieDetail
	rating int
}

// NewAddWatchedCommand creates a new add command
func NewAddWatchedCommand(ctx *CommandContext, d domain.MovieDetail, rating int) *AddWatchedCommand {
	return &AddWatchedCommand{ctx: ctx, detail: d, rating: rating}
}

// Execute mutates the collection immediately. The returned command only
// reports failures.
func (c *AddWatchedCommand) Execute() tea.Cmd {
	entry := EntryFromDetail(c.detail, c.rating)
	err := c.ctx.Watchlist.Add(c.ctx.Ctx, entry)
	if err == nil || errors.Is(err, watchlist.ErrPersist) {
		// persisted or not, the write failure surfaces through the event bus
		return nil
	}

	c.ctx.Log.Info("add rejected", "id", entry.ID, "error", err)
	return report(WatchlistResultMsg{Op: OpAdd, ID: entry.ID, Title: entry.Title, Err: err})
}

// RemoveWatchedCommand removes an entry from the watched list
type RemoveWatchedCommand struct {
	ctx *CommandContext
	id  string
}

// NewRemoveWatchedCommand creates a new remove command
func NewRemoveWatchedCommand(ctx *CommandContext, id string) *RemoveWatchedCommand {
	return &RemoveWatchedCommand{ctx: ctx, id: id}
}

// Execute mutates the collection immediately
func (c *RemoveWatchedCommand) Execute() tea.Cmd {
	_, err := c.ctx.Watchlist.Remove(c.ctx.Ctx, c.id)
	if err == nil || errors.Is(err, watchlist.ErrPersist) {
		return nil
	}
	return report(WatchlistResultMsg{Op: OpRemove, ID: c.id, Err: err})
}

// EntryFromDetail builds the watched entry for a rated movie
func EntryFromDetail(d domain.MovieDetail, rating int) domain.WatchedEntry {
	imdb, _ := omdb.ParseRating(d.IMDbRating)
	return domain.WatchedEntry{
		ID:             d.ID,
		Title:          d.Title,
		Poster:         d.Poster,
		IMDbRating:     domain.Number(imdb),
		RuntimeMinutes: domain.Number(d.RuntimeMinutes),
		UserRating:     rating,
	}
}

func report(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
