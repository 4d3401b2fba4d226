package sorting

import "movieflix/internal/ui/logic"

// State holds sorting state
type State struct {
	CurrentMode logic.SortMode
}
