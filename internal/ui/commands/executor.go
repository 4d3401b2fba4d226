package commands

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"movieflix/internal/domain"
	"movieflix/internal/omdb"
	"movieflix/internal/ui/services/detail"
	"movieflix/internal/ui/services/search"
	"movieflix/internal/watchlist"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(ctx context.Context, api omdb.MovieAPI, list *watchlist.Collection, log *slog.Logger) *Executor {
	return &Executor{
		ctx: &CommandContext{
			Ctx:       ctx,
			API:       api,
			Watchlist: list,
			Log:       log,
		},
	}
}

// ExecuteSearch creates and executes a search command
func (e *Executor) ExecuteSearch(ticket search.Ticket) tea.Cmd {
	return NewSearchCommand(e.ctx, ticket).Execute()
}

// ExecuteDetail creates and executes a detail command
func (e *Executor) ExecuteDetail(ticket detail.Ticket) tea.Cmd {
	return NewDetailCommand(e.ctx, ticket).Execute()
}

// ExecuteAdd creates and executes an add command
func (e *Executor) ExecuteAdd(d domain.MovieDetail, rating int) tea.Cmd {
	return NewAddWatchedCommand(e.ctx, d, rating).Execute()
}

// ExecuteRemove creates and executes a remove command
func (e *Executor) ExecuteRemove(id string) tea.Cmd {
	return NewRemoveWatchedCommand(e.ctx, id).Execute()
}
