package detail

import (
	"context"

	"movieflix/internal/domain"
)

// State holds the detail panel state
type State struct {
	ID         string              // requested movie
	Detail     *domain.MovieDetail // nil until the request completes
	Loading    bool
	Error      string
	UserRating int // pending rating, 0 when unset
	Generation uint64
}

// Ticket describes one detail request the caller must run
type Ticket struct {
	Generation uint64
	ID         string
	Ctx        context.Context
}
