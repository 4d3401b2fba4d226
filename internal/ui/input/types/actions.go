package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

type SwitchPaneAction struct{}

func (a SwitchPaneAction) Type() string { return "switch_pane" }

// Selection actions
type ToggleSelectAction struct {
	ID string
}

func (a ToggleSelectAction) Type() string { return "toggle_select" }

type CloseDetailAction struct{}

func (a CloseDetailAction) Type() string { return "close_detail" }

// Watched list actions
type RateAction struct {
	Rating int
}

func (a RateAction) Type() string { return "rate" }

type AddWatchedAction struct{}

func (a AddWatchedAction) Type() string { return "add_watched" }

type RemoveWatchedAction struct {
	ID string
}

func (a RemoveWatchedAction) Type() string { return "remove_watched" }

type CycleSortAction struct{}

func (a CycleSortAction) Type() string { return "cycle_sort" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

type ToggleCollapseAction struct{}

func (a ToggleCollapseAction) Type() string { return "toggle_collapse" }

// Pager actions
type OpenDetailAction struct{}

func (a OpenDetailAction) Type() string { return "open_detail" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
