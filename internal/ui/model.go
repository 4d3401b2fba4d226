package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"movieflix/internal/config"
	"movieflix/internal/domain"
	"movieflix/internal/logging"
	"movieflix/internal/omdb"
	"movieflix/internal/ui/commands"
	"movieflix/internal/ui/coordinator"
	"movieflix/internal/ui/handlers"
	"movieflix/internal/ui/input"
	inputtypes "movieflix/internal/ui/input/types"
	"movieflix/internal/ui/services/navigation"
	"movieflix/internal/ui/state"
	"movieflix/internal/ui/viewmodels"
	"movieflix/internal/ui/views"
	"movieflix/internal/watchlist"
)

// AppTitle is the terminal title while no movie is open
const AppTitle = "movieflix"

// Options configures a Model
type Options struct {
	Config       *config.Config
	API          omdb.MovieAPI
	Watchlist    *watchlist.Collection
	Logger       *slog.Logger
	InitialQuery string
}

// Model represents the UI state
type Model struct {
	config *config.Config
	log    *slog.Logger
	state  *state.AppState // centralized state

	ctx    context.Context
	cancel context.CancelFunc

	services     *coordinator.Coordinator
	watchlist    *watchlist.Collection
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	eventHandler *handlers.EventHandler
	viewModel    *viewmodels.ViewModel
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler

	initialQuery string
}

// NewModel creates a new UI model
func NewModel(opts Options) *Model {
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	ctx, cancel := context.WithCancel(context.Background())
	appState := state.NewAppState()
	services := coordinator.NewCoordinator(ctx, cfg.Search.MinQueryLength, opts.Watchlist, log)

	return &Model{
		config:       cfg,
		log:          log,
		state:        appState,
		ctx:          ctx,
		cancel:       cancel,
		services:     services,
		watchlist:    opts.Watchlist,
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(),
		eventHandler: handlers.NewEventHandler(appState),
		viewModel:    viewmodels.NewViewModel(appState, services, opts.Watchlist),
		cmdExecutor:  commands.NewExecutor(ctx, opts.API, opts.Watchlist, log),
		inputHandler: input.New(),
		initialQuery: opts.InitialQuery,
	}
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.setWindowTitle(AppTitle)}

	if err := m.watchlist.LoadErr(); err != nil {
		cmds = append(cmds, m.setStatus(fmt.Sprintf("Could not load your watched list, starting empty: %v", err), true))
	}

	if m.initialQuery != "" {
		m.inputHandler.SetText(m.initialQuery)
		cmds = append(cmds, m.setQuery(m.initialQuery))
	}
	return tea.Batch(cmds...)
}

// Close cancels every in-flight request
func (m *Model) Close() {
	m.services.Shutdown()
	m.cancel()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.viewModel.SetWidth(msg.Width)
		layout := views.ComputeLayout(msg.Width, msg.Height)
		m.services.SetListHeights(layout.ResultsRows(), layout.WatchedRows())
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext())

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.state.Width == 0 {
		return "Loading..."
	}

	m.viewModel.SetInputMode(m.inputHandler.CurrentMode())
	m.viewModel.UpdateTextInput(*m.inputHandler.TextInput())
	m.viewModel.SetConfirmTarget(m.inputHandler.ConfirmTarget())

	return m.renderer.Render(m.viewModel.BuildViewState())
}

func (m *Model) inputContext() *input.ModelContext {
	return &input.ModelContext{
		State:      m.state,
		Search:     m.services.Search,
		Selection:  m.services.Selection,
		Detail:     m.services.Detail,
		Watchlist:  m.watchlist,
		Watched:    m.services.Watched(),
		ResultsNav: m.services.ResultsNav,
		WatchedNav: m.services.WatchedNav,
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	m.log.Debug("processAction", "action", action.Type())

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.services.Nav(m.state.Focus).Navigate(navigation.Direction(a.Direction))

	case inputtypes.SwitchPaneAction:
		m.state.ToggleFocus()

	case inputtypes.ToggleCollapseAction:
		m.state.ToggleCollapsed()

	case inputtypes.ToggleSelectAction:
		if ticket, ok := m.services.ToggleMovie(a.ID); ok {
			return m.cmdExecutor.ExecuteDetail(ticket)
		}
		return m.setWindowTitle(AppTitle)

	case inputtypes.CloseDetailAction:
		m.services.CloseMovie()
		return m.setWindowTitle(AppTitle)

	case inputtypes.RateAction:
		m.services.Detail.SetUserRating(a.Rating)

	case inputtypes.AddWatchedAction:
		return m.addWatched()

	case inputtypes.RemoveWatchedAction:
		return m.cmdExecutor.ExecuteRemove(a.ID)

	case inputtypes.CycleSortAction:
		mode := m.services.Sorting.Cycle()
		m.services.WatchedNav.Reset()
		return m.setStatus("Watched list sorted by "+mode.String(), false)

	case inputtypes.UpdateTextAction:
		return m.setQuery(a.Text)

	case inputtypes.SubmitTextAction:
		cmd := m.setQuery(a.Text)
		m.state.Focus = inputtypes.PaneResults
		return cmd

	case inputtypes.CancelTextAction:
		// leaving the field keeps the query

	case inputtypes.OpenDetailAction:
		d, ok := m.services.Detail.Detail()
		if !ok {
			return nil
		}
		var watched *domain.WatchedEntry
		if e, ok := m.watchlist.Get(d.ID); ok {
			watched = &e
		}
		return showInPager("detail", m.helpRenderer.RenderDetailContent(d, watched))

	case inputtypes.ToggleHelpAction:
		return showInPager("help", m.helpRenderer.RenderHelpContent(m.viewModel.Keys()))

	case inputtypes.QuitAction:
		m.Close()
		return tea.Quit
	}

	return nil
}

// setQuery records the query and starts a lookup when one is needed
func (m *Model) setQuery(query string) tea.Cmd {
	ticket, ok := m.services.SetQuery(query)
	if !ok {
		return nil
	}
	return m.cmdExecutor.ExecuteSearch(ticket)
}

// addWatched stores the open movie with the pending rating and closes it
func (m *Model) addWatched() tea.Cmd {
	d, ok := m.services.Detail.Detail()
	rating := m.services.Detail.UserRating()
	if !ok || rating == 0 {
		return nil
	}

	cmd := m.cmdExecutor.ExecuteAdd(d, rating)
	if !m.watchlist.Has(d.ID) {
		return cmd
	}

	m.services.CloseMovie()
	return tea.Batch(cmd, m.setWindowTitle(AppTitle))
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case commands.SearchResultMsg:
		m.services.Search.Resolve(msg.Generation, msg.Movies, msg.Err)
		return m, nil

	case commands.DetailResultMsg:
		if !m.services.Detail.Resolve(msg.Generation, msg.ID, msg.Detail, msg.Err) || msg.Err != nil {
			return m, nil
		}
		return m, m.setWindowTitle(fmt.Sprintf("%s | %s", AppTitle, msg.Detail.Title))

	case commands.WatchlistResultMsg:
		if msg.Err != nil {
			return m, m.setStatus(watchlistErrorText(msg), true)
		}
		return m, nil

	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case handlers.ClearStatusMsg:
		m.state.ClearStatus(msg.Seq)
		return m, nil

	case pagerMsg:
		if msg.err != nil {
			m.log.Warn("pager failed", "what", msg.what, "error", msg.err)
			return m, m.setStatus(fmt.Sprintf("Could not open the %s pager: %v", msg.what, msg.err), true)
		}
		return m, nil

	default:
		// cursor blink and other text input messages
		return m, m.inputHandler.Update(msg)
	}
}

func (m *Model) setStatus(text string, isError bool) tea.Cmd {
	seq := m.state.SetStatus(text, isError)
	return handlers.ClearStatusAfter(seq, handlers.StatusTTL)
}

func (m *Model) setWindowTitle(title string) tea.Cmd {
	if m.state.WindowTitle == title {
		return nil
	}
	m.state.WindowTitle = title
	return tea.SetWindowTitle(title)
}

func watchlistErrorText(msg commands.WatchlistResultMsg) string {
	switch {
	case errors.Is(msg.Err, watchlist.ErrDuplicate):
		return fmt.Sprintf("%s is already on your watched list", msg.Title)
	case errors.Is(msg.Err, watchlist.ErrInvalidRating):
		return "Pick a rating between 1 and 10 first"
	default:
		return fmt.Sprintf("Could not %s movie: %v", msg.Op, msg.Err)
	}
}
