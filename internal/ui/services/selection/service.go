package selection

// Service tracks which movie is open. At most one is selected.
type Service struct {
	state *State
}

// NewService creates a new selection service
func NewService() *Service {
	return &Service{state: &State{}}
}

// Toggle selects id, or clears the selection when id is already
// selected. It returns the new selection ("" when cleared).
func (s *Service) Toggle(id string) string {
	if id == "" || s.state.SelectedID == id {
		s.state.SelectedID = ""
	} else {
		s.state.SelectedID = id
	}
	return s.state.SelectedID
}

// Close clears the selection
func (s *Service) Close() {
	s.state.SelectedID = ""
}

// Selected returns the selected ID
func (s *Service) Selected() (string, bool) {
	return s.state.SelectedID, s.state.SelectedID != ""
}
