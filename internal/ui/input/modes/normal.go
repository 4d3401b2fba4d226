package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"movieflix/internal/ui/input/types"
)

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyTab, tea.KeyShiftTab:
		return []types.Action{types.SwitchPaneAction{}}, true

	case tea.KeyEnter:
		if id := ctx.CurrentMovieID(); id != "" {
			return []types.Action{types.ToggleSelectAction{ID: id}}, true
		}
		return nil, false

	case tea.KeyEsc, tea.KeyBackspace:
		if ctx.SelectedID() != "" {
			return []types.Action{types.CloseDetailAction{}}, true
		}
		return nil, true
	}

	key := msg.String()
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		if !ctx.CanRate() {
			return nil, true
		}
		rating := int(key[0] - '0')
		if rating == 0 {
			rating = 10
		}
		return []types.Action{types.RateAction{Rating: rating}}, true
	}

	switch key {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch, Data: ctx.SearchQuery()}}, true

	case "a":
		if ctx.CanRate() && ctx.PendingRating() > 0 {
			return []types.Action{types.AddWatchedAction{}}, true
		}
		return nil, true

	case "d", "x":
		// only entries of the watched list can be removed
		if ctx.FocusedPane() == types.PaneWatched && ctx.CurrentMovieID() != "" {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeConfirmRemove, Data: ctx.CurrentMovieID()}}, true
		}
		return nil, true

	case "s":
		return []types.Action{types.CycleSortAction{}}, true

	case "-":
		return []types.Action{types.ToggleCollapseAction{}}, true

	case "p":
		if ctx.HasDetail() {
			return []types.Action{types.OpenDetailAction{}}, true
		}
		return nil, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			// gg - go to top
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true

	case "G":
		m.lastKeyWasG = false
		return []types.Action{types.NavigateAction{Direction: "end"}}, true
	}

	m.lastKeyWasG = false
	return nil, false
}
