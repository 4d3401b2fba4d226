package sorting

import (
	"movieflix/internal/domain"
	"movieflix/internal/ui/logic"
)

// Service holds the watched list ordering
type Service struct {
	state *State
}

// NewService creates a new sorting service
func NewService() *Service {
	return &Service{
		state: &State{CurrentMode: logic.SortByAdded},
	}
}

// Mode returns the current sort mode
func (s *Service) Mode() logic.SortMode {
	return s.state.CurrentMode
}

// SetMode sets the sort mode
func (s *Service) SetMode(mode logic.SortMode) {
	s.state.CurrentMode = mode
}

// Cycle advances to the next mode and returns it
func (s *Service) Cycle() logic.SortMode {
	s.state.CurrentMode = s.state.CurrentMode.Next()
	return s.state.CurrentMode
}

// Apply returns entries ordered by the current mode
func (s *Service) Apply(entries []domain.WatchedEntry) []domain.WatchedEntry {
	return logic.SortEntries(entries, s.state.CurrentMode)
}
