package detail

import (
	"context"
	"log/slog"

	"movieflix/internal/domain"
	"movieflix/internal/omdb"
)

// Service tracks the detail record of the selected movie.
// Only the response for the most recent Begin is ever committed.
type Service struct {
	state  *State
	parent context.Context
	cancel context.CancelFunc
	log    *slog.Logger
}

// NewService creates a new detail service
func NewService(parent context.Context, log *slog.Logger) *Service {
	return &Service{
		state:  &State{},
		parent: parent,
		log:    log.With("component", "detail"),
	}
}

// Begin starts a request for id. The previous request is canceled and
// the previous record and pending rating are discarded.
func (s *Service) Begin(id string) Ticket {
	s.release()
	s.state.Generation++

	ctx, cancel := context.WithCancel(s.parent)
	s.cancel = cancel

	s.state.ID = id
	s.state.Detail = nil
	s.state.Error = ""
	s.state.UserRating = 0
	s.state.Loading = true

	return Ticket{Generation: s.state.Generation, ID: id, Ctx: ctx}
}

// Resolve commits the outcome of the request with generation gen for
// id. It returns false when the response belongs to an older request
// or was canceled.
func (s *Service) Resolve(gen uint64, id string, d domain.MovieDetail, err error) bool {
	if gen != s.state.Generation || id != s.state.ID || s.state.ID == "" {
		s.log.Debug("stale detail dropped", "id", id, "generation", gen)
		return false
	}
	if omdb.IsCanceled(err) {
		return false
	}

	s.release()
	s.state.Loading = false
	if err != nil {
		s.log.Info("detail failed", "id", id, "error", err)
		s.state.Error = err.Error()
		return true
	}
	if d.ID == "" {
		d.ID = id
	}
	s.state.Detail = &d
	s.state.Error = ""
	return true
}

// Clear cancels any request and forgets the record
func (s *Service) Clear() {
	s.release()
	s.state.Generation++
	s.state.ID = ""
	s.state.Detail = nil
	s.state.Error = ""
	s.state.UserRating = 0
	s.state.Loading = false
}

// SetUserRating stores the pending rating. Values outside 1..10 reset it.
func (s *Service) SetUserRating(r int) {
	if r < domain.MinUserRating || r > domain.MaxUserRating {
		r = 0
	}
	s.state.UserRating = r
}

// UserRating returns the pending rating
func (s *Service) UserRating() int {
	return s.state.UserRating
}

// ID returns the requested movie ID
func (s *Service) ID() string {
	return s.state.ID
}

// Detail returns the loaded record, if any
func (s *Service) Detail() (domain.MovieDetail, bool) {
	if s.state.Detail == nil {
		return domain.MovieDetail{}, false
	}
	return *s.state.Detail, true
}

// Loading reports whether a request is in flight
func (s *Service) Loading() bool {
	return s.state.Loading
}

// Error returns the message of the failed request
func (s *Service) Error() string {
	return s.state.Error
}

func (s *Service) release() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
