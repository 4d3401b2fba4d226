package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"movieflix/internal/ui/input/types"
)

// ConfirmMode asks before removing a watched entry
type ConfirmMode struct {
	movieID string
}

func NewConfirmMode() *ConfirmMode {
	return &ConfirmMode{}
}

func (m *ConfirmMode) Name() string {
	return "confirm-remove"
}

// Target returns the ID awaiting confirmation
func (m *ConfirmMode) Target() string {
	return m.movieID
}

func (m *ConfirmMode) Enter(ctx types.Context) []types.Action {
	m.movieID = ctx.CurrentMovieID()
	return nil
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	m.movieID = ""
	return nil
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "y", "Y":
		return []types.Action{
			types.RemoveWatchedAction{ID: m.movieID},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "esc", "n", "N", "q":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}

	// swallow everything else while the prompt is open
	return nil, true
}
