package search

import (
	"context"

	"movieflix/internal/domain"
)

// State holds search state
type State struct {
	Query      string
	Results    []domain.Movie
	Loading    bool   // a lookup for Query is in flight
	Error      string // user-visible message of the last failed lookup
	Generation uint64 // bumped on every query change
}

// Ticket describes one lookup the caller must run.
// Ctx is canceled as soon as the query changes again.
type Ticket struct {
	Generation uint64
	Query      string
	Ctx        context.Context
}
