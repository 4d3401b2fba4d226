package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"movieflix/internal/ui/input/types"
)

// SearchMode edits the query. Every keystroke is a new query.
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search movies...", ti),
	}
}
