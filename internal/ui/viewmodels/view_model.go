package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"movieflix/internal/ui/coordinator"
	"movieflix/internal/ui/input/types"
	"movieflix/internal/ui/state"
	"movieflix/internal/ui/views"
	"movieflix/internal/watchlist"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state     *state.AppState
	services  *coordinator.Coordinator
	watchlist *watchlist.Collection
	help      help.Model
	keys      views.KeyMap

	mode          types.Mode
	textInput     textinput.Model
	confirmTarget string
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, services *coordinator.Coordinator, list *watchlist.Collection) *ViewModel {
	return &ViewModel{
		state:     appState,
		services:  services,
		watchlist: list,
		help:      help.New(),
		keys:      views.DefaultKeyMap(),
	}
}

// SetWidth sets the width the help footer may use
func (vm *ViewModel) SetWidth(width int) {
	vm.help.Width = width
}

// Keys returns the key labels
func (vm *ViewModel) Keys() views.KeyMap {
	return vm.keys
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode types.Mode) {
	vm.mode = mode
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.textInput = textInput
}

// SetConfirmTarget sets the ID awaiting removal confirmation
func (vm *ViewModel) SetConfirmTarget(id string) {
	vm.confirmTarget = id
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	svc := vm.services

	vs := views.ViewState{
		Width:  vm.state.Width,
		Height: vm.state.Height,

		Query:     svc.Search.Query(),
		Searching: vm.mode == types.ModeSearch,

		Results:        svc.Search.Results(),
		ResultsLoading: svc.Search.Loading(),
		ResultsError:   svc.Search.Error(),
		ResultsCursor:  svc.ResultsNav.Cursor(),
		ResultsOffset:  svc.ResultsNav.ViewportOffset(),
		MinQueryLength: svc.Search.MinQueryLength(),

		ResultsCollapsed: vm.state.ResultsCollapsed,
		RightCollapsed:   vm.state.RightCollapsed,

		WatchedFocused: vm.state.Focus == types.PaneWatched,
		DetailLoading:  svc.Detail.Loading(),
		DetailError:    svc.Detail.Error(),
		UserRating:     svc.Detail.UserRating(),
		WatchedRating:  svc.WatchedRating(),
		Watched:        svc.Watched(),
		WatchedCursor:  svc.WatchedNav.Cursor(),
		WatchedOffset:  svc.WatchedNav.ViewportOffset(),
		Stats:          vm.watchlist.Stats(),
		SortLabel:      svc.Sorting.Mode().String(),

		StatusMessage: vm.state.StatusMessage,
		StatusIsError: vm.state.StatusIsError,
		HelpModel:     vm.help,
		Keys:          vm.keys,
	}

	if vs.Searching {
		vs.SearchInput = vm.textInput.View()
	}
	if id, ok := svc.Selection.Selected(); ok {
		vs.SelectedID = id
	}
	if d, ok := svc.Detail.Detail(); ok {
		vs.Detail = &d
	}
	if vm.mode == types.ModeConfirmRemove && vm.confirmTarget != "" {
		vs.ConfirmTarget = vm.confirmTarget
		if e, ok := vm.watchlist.Get(vm.confirmTarget); ok {
			vs.ConfirmTarget = e.Title
		}
	}
	return vs
}
