package ui

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movieflix/internal/domain"
	"movieflix/internal/logging"
	"movieflix/internal/omdb"
	"movieflix/internal/storage"
	"movieflix/internal/ui/commands"
	inputtypes "movieflix/internal/ui/input/types"
	"movieflix/internal/watchlist"
)

// fakeAPI answers from fixtures. Search honours cancellation like the
// real client; Details ignores it so late responses really arrive.
type fakeAPI struct {
	mu        sync.Mutex
	results   map[string][]domain.Movie
	searchErr map[string]error
	details   map[string]domain.MovieDetail
	searches  []string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		results: map[string][]domain.Movie{
			"inc":  {{ID: "tt9", Title: "Incendies", Year: "2010"}},
			"ince": {{ID: "tt1", Title: "Inception", Year: "2010"}, {ID: "tt2", Title: "Incendies", Year: "2010"}},
		},
		searchErr: map[string]error{
			"zzzz": &omdb.Error{Kind: omdb.KindAPI, Message: "Movie not found!"},
		},
		details: map[string]domain.MovieDetail{
			"tt1": {ID: "tt1", Title: "Inception", Year: "2010", Runtime: "148 min", RuntimeMinutes: 148, IMDbRating: "8.8"},
			"tt2": {ID: "tt2", Title: "Incendies", Year: "2010", Runtime: "131 min", RuntimeMinutes: 131, IMDbRating: "8.3"},
		},
	}
}

func (f *fakeAPI) Search(ctx context.Context, query string) ([]domain.Movie, error) {
	f.mu.Lock()
	f.searches = append(f.searches, query)
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", omdb.ErrCanceled, err)
	}
	if err := f.searchErr[query]; err != nil {
		return nil, err
	}
	return f.results[query], nil
}

func (f *fakeAPI) Details(_ context.Context, id string) (domain.MovieDetail, error) {
	d, ok := f.details[id]
	if !ok {
		return domain.MovieDetail{}, &omdb.Error{Kind: omdb.KindAPI, Message: "Incorrect IMDb ID."}
	}
	return d, nil
}

func (f *fakeAPI) searchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.searches)
}

func newTestModel(t *testing.T, entries ...domain.WatchedEntry) (*Model, *fakeAPI, *watchlist.Collection) {
	t.Helper()

	list := watchlist.Open(context.Background(), storage.NewMemoryStore(), "watched", nil, logging.Discard())
	for _, e := range entries {
		require.NoError(t, list.Add(context.Background(), e))
	}

	api := newFakeAPI()
	m := NewModel(Options{API: api, Watchlist: list})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	t.Cleanup(m.Close)
	return m, api, list
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		m.Update(keyMsg(k))
	}
}

// openMovie selects id and delivers its detail response
func openMovie(t *testing.T, m *Model, id string) {
	t.Helper()
	cmd := m.processAction(inputtypes.ToggleSelectAction{ID: id})
	require.NotNil(t, cmd)
	m.Update(cmd())
}

func TestSearchKeepsOnlyLatestResponse(t *testing.T) {
	m, _, _ := newTestModel(t)

	older := m.processAction(inputtypes.UpdateTextAction{Text: "inc"})
	newer := m.processAction(inputtypes.UpdateTextAction{Text: "ince"})
	require.NotNil(t, older)
	require.NotNil(t, newer)

	// the newer lookup finishes first
	m.Update(newer())
	m.Update(older())

	results := m.services.Search.Results()
	require.Len(t, results, 2)
	assert.Equal(t, "tt1", results[0].ID)
	assert.False(t, m.services.Search.Loading())
}

func TestSupersededLookupIsCanceled(t *testing.T) {
	m, _, _ := newTestModel(t)

	older := m.processAction(inputtypes.UpdateTextAction{Text: "inc"})
	m.processAction(inputtypes.UpdateTextAction{Text: "ince"})

	msg, ok := older().(commands.SearchResultMsg)
	require.True(t, ok)
	assert.True(t, omdb.IsCanceled(msg.Err))
}

func TestShortQueryClearsWithoutLookup(t *testing.T) {
	m, api, _ := newTestModel(t)

	m.Update(m.processAction(inputtypes.UpdateTextAction{Text: "ince"})())
	require.Len(t, m.services.Search.Results(), 2)
	calls := api.searchCount()

	cmd := m.processAction(inputtypes.UpdateTextAction{Text: "in"})
	assert.Nil(t, cmd)
	assert.Empty(t, m.services.Search.Results())
	assert.Empty(t, m.services.Search.Error())
	assert.Equal(t, calls, api.searchCount())
}

func TestSearchErrorReplacedBySuccess(t *testing.T) {
	m, _, _ := newTestModel(t)

	m.Update(m.processAction(inputtypes.UpdateTextAction{Text: "zzzz"})())
	assert.Equal(t, "Movie not found!", m.services.Search.Error())
	assert.Contains(t, m.View(), "Movie not found!")

	m.Update(m.processAction(inputtypes.UpdateTextAction{Text: "ince"})())
	assert.Empty(t, m.services.Search.Error())
	assert.Contains(t, m.View(), "Found 2 results")
}

func TestTypingInSearchModeStartsLookup(t *testing.T) {
	m, _, _ := newTestModel(t)

	press(m, "/", "i", "n", "c")
	assert.Equal(t, inputtypes.ModeSearch, m.inputHandler.CurrentMode())
	assert.Equal(t, "inc", m.services.Search.Query())
	assert.True(t, m.services.Search.Loading())

	press(m, "enter")
	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())
	assert.Equal(t, "inc", m.services.Search.Query())
}

func TestSelectingMovieLoadsDetailAndTitle(t *testing.T) {
	m, _, _ := newTestModel(t)

	openMovie(t, m, "tt1")

	d, ok := m.services.Detail.Detail()
	require.True(t, ok)
	assert.Equal(t, "Inception", d.Title)
	assert.Equal(t, "movieflix | Inception", m.state.WindowTitle)

	press(m, "esc")
	_, selected := m.services.Selection.Selected()
	assert.False(t, selected)
	assert.Equal(t, AppTitle, m.state.WindowTitle)
}

func TestLateDetailForPreviousMovieIsIgnored(t *testing.T) {
	m, _, _ := newTestModel(t)

	first := m.processAction(inputtypes.ToggleSelectAction{ID: "tt1"})
	second := m.processAction(inputtypes.ToggleSelectAction{ID: "tt2"})

	m.Update(second())
	m.Update(first())

	d, ok := m.services.Detail.Detail()
	require.True(t, ok)
	assert.Equal(t, "tt2", d.ID)
	assert.Equal(t, "movieflix | Incendies", m.state.WindowTitle)
}

func TestRateAndAddClosesDetail(t *testing.T) {
	m, _, list := newTestModel(t)
	openMovie(t, m, "tt1")

	press(m, "a")
	assert.False(t, list.Has("tt1"), "adding without a rating is ignored")

	press(m, "8")
	assert.Equal(t, 8, m.services.Detail.UserRating())
	assert.Contains(t, m.View(), "a: add to watchlist")

	press(m, "a")
	entry, ok := list.Get("tt1")
	require.True(t, ok)
	assert.Equal(t, 8, entry.UserRating)
	assert.Equal(t, domain.Number(8.8), entry.IMDbRating)
	assert.Equal(t, domain.Number(148), entry.RuntimeMinutes)

	_, selected := m.services.Selection.Selected()
	assert.False(t, selected)
}

func TestZeroRatesTen(t *testing.T) {
	m, _, _ := newTestModel(t)
	openMovie(t, m, "tt1")

	press(m, "0")
	assert.Equal(t, 10, m.services.Detail.UserRating())
}

func TestRatingResetsForNextMovie(t *testing.T) {
	m, _, _ := newTestModel(t)
	openMovie(t, m, "tt1")
	press(m, "7")

	openMovie(t, m, "tt2")
	assert.Equal(t, 0, m.services.Detail.UserRating())
}

func TestWatchedMovieShowsStoredRating(t *testing.T) {
	m, _, _ := newTestModel(t, domain.WatchedEntry{ID: "tt1", Title: "Inception", UserRating: 9, IMDbRating: 8.8, RuntimeMinutes: 148})
	openMovie(t, m, "tt1")

	assert.Contains(t, m.View(), "You already rated this movie with 9 ⭐")

	press(m, "5")
	assert.Equal(t, 0, m.services.Detail.UserRating())
}

func TestRemoveAsksForConfirmation(t *testing.T) {
	m, _, list := newTestModel(t,
		domain.WatchedEntry{ID: "tt1", Title: "Inception", UserRating: 9},
		domain.WatchedEntry{ID: "tt2", Title: "Incendies", UserRating: 8},
	)

	press(m, "tab", "d")
	assert.Equal(t, inputtypes.ModeConfirmRemove, m.inputHandler.CurrentMode())
	assert.Contains(t, m.View(), "Remove 'Inception' from your watched list? (y/n)")

	press(m, "n")
	assert.True(t, list.Has("tt1"))

	press(m, "j", "d", "y")
	assert.False(t, list.Has("tt2"))
	assert.True(t, list.Has("tt1"))
	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())
}

func TestSummaryReflectsWatchedList(t *testing.T) {
	m, _, _ := newTestModel(t,
		domain.WatchedEntry{ID: "tt1", Title: "Inception", UserRating: 9, IMDbRating: 8.8, RuntimeMinutes: 148},
		domain.WatchedEntry{ID: "tt2", Title: "Incendies", UserRating: 8, IMDbRating: 8.2, RuntimeMinutes: 131},
	)

	view := m.View()
	assert.Contains(t, view, "2 movies")
	assert.Contains(t, view, "8.5")
	assert.Contains(t, view, "139.5 min")
}

func TestUnknownValuesShowAsNA(t *testing.T) {
	m, _, _ := newTestModel(t,
		domain.WatchedEntry{ID: "tt1", Title: "Inception", UserRating: 9, IMDbRating: 8.0, RuntimeMinutes: 120},
		domain.WatchedEntry{ID: "tt3", Title: "Lost Reel", UserRating: 7},
	)

	view := m.View()
	assert.Contains(t, view, "N/A")
	assert.Contains(t, view, "8.0")
	assert.Contains(t, view, "120 min")
	assert.NotContains(t, view, "0.0")
	assert.NotContains(t, view, " 0 min")
	assert.NotContains(t, view, "60 min")
}

func TestHidingPanes(t *testing.T) {
	m, _, _ := newTestModel(t, domain.WatchedEntry{ID: "tt7", Title: "Alien", UserRating: 9})
	m.Update(m.processAction(inputtypes.UpdateTextAction{Text: "ince"})())
	require.Contains(t, m.View(), "Inception")

	press(m, "-")
	view := m.View()
	assert.NotContains(t, view, "Inception")
	assert.Contains(t, view, "+ hidden, press - to show")
	assert.Contains(t, view, "Alien")

	press(m, "tab", "-")
	assert.NotContains(t, m.View(), "Alien")

	press(m, "-", "tab", "-")
	view = m.View()
	assert.Contains(t, view, "Inception")
	assert.Contains(t, view, "Alien")
	assert.NotContains(t, view, "+ hidden")
}

func TestDuplicateAddReportsStatus(t *testing.T) {
	m, _, _ := newTestModel(t)

	m.Update(commands.WatchlistResultMsg{Op: commands.OpAdd, ID: "tt1", Title: "Inception", Err: watchlist.ErrDuplicate})
	assert.Equal(t, "Inception is already on your watched list", m.state.StatusMessage)
	assert.True(t, m.state.StatusIsError)
}

func TestEventsBecomeStatusMessages(t *testing.T) {
	m, _, _ := newTestModel(t)

	m.Update(EventMsg{Event: domain.StorageFailedEvent{Op: "write", Key: "watched", Err: errors.New("disk full")}})
	assert.Equal(t, "Could not write watched list: disk full", m.state.StatusMessage)
}

func TestQuitCancelsInFlightLookup(t *testing.T) {
	m, _, _ := newTestModel(t)

	cmd := m.processAction(inputtypes.UpdateTextAction{Text: "ince"})
	press(m, "q")

	msg := cmd().(commands.SearchResultMsg)
	assert.True(t, omdb.IsCanceled(msg.Err))
}
