package search

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"movieflix/internal/domain"
	"movieflix/internal/omdb"
)

// DefaultMinQueryLength is the shortest query that triggers a lookup
const DefaultMinQueryLength = 3

// Service tracks the search query and the lookup issued for it.
// Every query change supersedes the previous lookup: its context is
// canceled and its generation no longer matches, so a late response
// is dropped by Resolve.
type Service struct {
	state  *State
	parent context.Context
	cancel context.CancelFunc
	minLen int
	log    *slog.Logger
}

// NewService creates a new search service. Lookups derive their
// context from parent.
func NewService(parent context.Context, minLen int, log *slog.Logger) *Service {
	if minLen <= 0 {
		minLen = DefaultMinQueryLength
	}
	return &Service{
		state:  &State{},
		parent: parent,
		minLen: minLen,
		log:    log.With("component", "search"),
	}
}

// SetQuery records a new query. It returns a ticket and true when a
// lookup should be started. Queries shorter than the minimum clear the
// results and the error immediately and need no lookup.
func (s *Service) SetQuery(query string) (Ticket, bool) {
	if query == s.state.Query {
		return Ticket{}, false
	}

	s.supersede()
	s.state.Query = query

	if utf8.RuneCountInString(strings.TrimSpace(query)) < s.minLen {
		s.state.Results = nil
		s.state.Error = ""
		s.state.Loading = false
		return Ticket{}, false
	}

	ctx, cancel := context.WithCancel(s.parent)
	s.cancel = cancel
	s.state.Loading = true

	s.log.Debug("lookup started", "query", query, "generation", s.state.Generation)
	return Ticket{
		Generation: s.state.Generation,
		Query:      query,
		Ctx:        ctx,
	}, true
}

// Resolve applies the outcome of the lookup with generation gen.
// It returns false when the outcome was ignored: the lookup was
// superseded or canceled. Cancellation never touches results or error.
func (s *Service) Resolve(gen uint64, movies []domain.Movie, err error) bool {
	if gen != s.state.Generation {
		s.log.Debug("stale lookup dropped", "generation", gen, "current", s.state.Generation)
		return false
	}
	if omdb.IsCanceled(err) {
		return false
	}

	s.release()
	s.state.Loading = false
	if err != nil {
		s.log.Info("lookup failed", "query", s.state.Query, "error", err)
		s.state.Results = nil
		s.state.Error = err.Error()
		return true
	}

	if movies == nil {
		movies = []domain.Movie{}
	}
	s.state.Results = movies
	s.state.Error = ""
	s.log.Debug("lookup finished", "query", s.state.Query, "results", len(movies))
	return true
}

// Cancel aborts the in-flight lookup, if any, keeping query and results
func (s *Service) Cancel() {
	s.supersede()
	s.state.Loading = false
}

// Query returns the current query
func (s *Service) Query() string {
	return s.state.Query
}

// Results returns the results of the last successful lookup
func (s *Service) Results() []domain.Movie {
	return s.state.Results
}

// Loading reports whether a lookup is in flight
func (s *Service) Loading() bool {
	return s.state.Loading
}

// Error returns the message of the last failed lookup
func (s *Service) Error() string {
	return s.state.Error
}

// MinQueryLength returns the lookup threshold
func (s *Service) MinQueryLength() int {
	return s.minLen
}

func (s *Service) supersede() {
	s.release()
	s.state.Generation++
}

func (s *Service) release() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
