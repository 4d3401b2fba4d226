package navigation

// Service moves a cursor over a list whose length is read through
// countFn on every call, so the list may change between moves.
type Service struct {
	state   *State
	countFn func() int
}

// NewService creates a navigation service for a list
func NewService(countFn func() int) *Service {
	return &Service{
		state:   &State{ViewportHeight: 10},
		countFn: countFn,
	}
}

// Cursor returns current cursor position
func (s *Service) Cursor() int {
	s.clamp()
	return s.state.Cursor
}

// ViewportOffset returns the index of the first visible row
func (s *Service) ViewportOffset() int {
	s.clamp()
	return s.state.ViewportOffset
}

// ViewportHeight returns the number of visible rows
func (s *Service) ViewportHeight() int {
	return s.state.ViewportHeight
}

// SetViewportHeight updates the number of visible rows
func (s *Service) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	s.state.ViewportHeight = height
	s.ensureVisible()
}

// Navigate moves the cursor in a direction
func (s *Service) Navigate(direction Direction) {
	page := s.state.ViewportHeight - 1
	if page < 1 {
		page = 1
	}

	switch direction {
	case DirectionUp:
		s.state.Cursor--
	case DirectionDown:
		s.state.Cursor++
	case DirectionPageUp:
		s.state.Cursor -= page
	case DirectionPageDown:
		s.state.Cursor += page
	case DirectionHome:
		s.state.Cursor = 0
	case DirectionEnd:
		s.state.Cursor = s.maxIndex()
	}
	s.ensureVisible()
}

// MoveToIndex moves cursor to specific index
func (s *Service) MoveToIndex(index int) {
	s.state.Cursor = index
	s.ensureVisible()
}

// Reset moves back to the top of the list
func (s *Service) Reset() {
	s.state.Cursor = 0
	s.state.ViewportOffset = 0
}

func (s *Service) maxIndex() int {
	n := 0
	if s.countFn != nil {
		n = s.countFn()
	}
	if n == 0 {
		return 0
	}
	return n - 1
}

func (s *Service) clamp() {
	max := s.maxIndex()
	if s.state.Cursor > max {
		s.state.Cursor = max
	}
	if s.state.Cursor < 0 {
		s.state.Cursor = 0
	}
	if s.state.ViewportOffset > s.state.Cursor {
		s.state.ViewportOffset = s.state.Cursor
	}
}

func (s *Service) ensureVisible() {
	s.clamp()
	if s.state.Cursor < s.state.ViewportOffset {
		s.state.ViewportOffset = s.state.Cursor
	} else if s.state.Cursor >= s.state.ViewportOffset+s.state.ViewportHeight {
		s.state.ViewportOffset = s.state.Cursor - s.state.ViewportHeight + 1
	}
}
