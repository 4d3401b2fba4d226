package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"movieflix/internal/domain"
	"movieflix/internal/watchlist"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	// Navbar
	Query       string
	Searching   bool   // search field has focus
	SearchInput string // rendered text input, used while Searching

	// Results pane
	Results        []domain.Movie
	ResultsLoading bool
	ResultsError   string
	ResultsCursor  int
	ResultsOffset  int
	MinQueryLength int

	ResultsCollapsed bool
	RightCollapsed   bool

	// Right pane
	WatchedFocused bool
	SelectedID     string
	Detail         *domain.MovieDetail
	DetailLoading  bool
	DetailError    string
	UserRating     int // pending rating for the open movie
	WatchedRating  int // rating already stored for the open movie, 0 if not watched
	Watched        []domain.WatchedEntry
	WatchedCursor  int
	WatchedOffset  int
	Stats          watchlist.Stats
	SortLabel      string

	// Footer
	ConfirmTarget string
	StatusMessage string
	StatusIsError bool
	HelpModel     help.Model
	Keys          KeyMap
}

const (
	navbarLines  = 2 // navbar and a spacer
	footerLines  = 2 // status and help
	boxChrome    = 2 // top and bottom border
	summaryLines = 3 // watched summary above the list
)

// Layout holds panel geometry derived from the terminal size
type Layout struct {
	LeftWidth  int
	RightWidth int
	BoxHeight  int // inner height of both boxes
}

// ComputeLayout splits the terminal into the results and the right pane
func ComputeLayout(width, height int) Layout {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	boxHeight := height - navbarLines - footerLines - boxChrome
	if boxHeight < 3 {
		boxHeight = 3
	}

	left := width * 2 / 5
	if left < 24 {
		left = 24
	}
	if left > width {
		left = width
	}

	return Layout{LeftWidth: left, RightWidth: width - left, BoxHeight: boxHeight}
}

// ResultsRows returns the number of visible result rows
func (l Layout) ResultsRows() int {
	return l.BoxHeight
}

// WatchedRows returns the number of visible watched rows
func (l Layout) WatchedRows() int {
	if rows := l.BoxHeight - summaryLines; rows > 0 {
		return rows
	}
	return 1
}

// innerWidth is the usable text width of a box with the given outer width
func innerWidth(outer int) int {
	if w := outer - 4; w > 1 {
		return w
	}
	return 1
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Styles exposes the renderer styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	layout := ComputeLayout(state.Width, state.Height)

	var content strings.Builder
	content.WriteString(r.renderNavbar(state))
	content.WriteString("\n\n")

	leftContent := r.renderCollapsed()
	if !state.ResultsCollapsed {
		leftContent = r.renderResults(state, innerWidth(layout.LeftWidth), layout.ResultsRows())
	}
	left := r.box(!state.WatchedFocused, layout.LeftWidth, layout.BoxHeight).Render(leftContent)

	var rightContent string
	switch {
	case state.RightCollapsed:
		rightContent = r.renderCollapsed()
	case state.SelectedID != "":
		rightContent = r.renderDetail(state, innerWidth(layout.RightWidth), layout.BoxHeight)
	default:
		rightContent = r.renderWatched(state, innerWidth(layout.RightWidth), layout.WatchedRows())
	}
	right := r.box(state.WatchedFocused, layout.RightWidth, layout.BoxHeight).Render(rightContent)

	content.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	content.WriteString("\n")
	content.WriteString(r.renderStatus(state))
	content.WriteString("\n")
	content.WriteString(state.HelpModel.View(state.Keys))

	return lipgloss.NewStyle().MaxHeight(maxInt(state.Height, 1)).Render(content.String())
}

func (r *Renderer) box(focused bool, outerWidth, innerHeight int) lipgloss.Style {
	style := r.styles.Box
	if focused {
		style = r.styles.FocusedBox
	}
	return style.
		Width(maxInt(outerWidth-2, 1)).
		Height(innerHeight).
		MaxHeight(innerHeight + boxChrome)
}

// renderNavbar renders the logo, the search field and the result count
func (r *Renderer) renderNavbar(state ViewState) string {
	logo := r.styles.Logo.Render("🍿 movieflix")

	var search string
	switch {
	case state.Searching:
		search = state.SearchInput
	case state.Query != "":
		search = r.styles.SearchBox.Render(state.Query)
	default:
		search = r.styles.Dim.Render("Search movies... (press /)")
	}

	numResults := r.styles.NumResults.Render(fmt.Sprintf("Found %d results", len(state.Results)))

	width := state.Width
	if width <= 0 {
		width = 80
	}
	left := logo + "   " + search
	padding := width - lipgloss.Width(left) - lipgloss.Width(numResults) - 1
	if padding < 2 {
		padding = 2
	}
	return left + strings.Repeat(" ", padding) + numResults
}

func (r *Renderer) renderCollapsed() string {
	return r.styles.Dim.Render("+ hidden, press - to show")
}

// renderStatus renders the confirm prompt or the status message
func (r *Renderer) renderStatus(state ViewState) string {
	switch {
	case state.ConfirmTarget != "":
		return r.styles.Confirm.Render(fmt.Sprintf("Remove '%s' from your watched list? (y/n)", state.ConfirmTarget))
	case state.StatusMessage != "" && state.StatusIsError:
		return r.styles.StatusError.Render(state.StatusMessage)
	case state.StatusMessage != "":
		return r.styles.StatusSuccess.Render(state.StatusMessage)
	case state.Searching:
		return r.styles.Dim.Render("type to search • enter to browse results • esc to leave the field")
	default:
		return ""
	}
}

// window returns the rows visible from offset
func window(rows []string, offset, height int) []string {
	if offset < 0 {
		offset = 0
	}
	if offset > len(rows) {
		offset = len(rows)
	}
	end := offset + height
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end]
}

// truncate cuts s to width cells
func truncate(s string, width int) string {
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
