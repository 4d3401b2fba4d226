package views

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"movieflix/internal/domain"
)

// renderResults renders the search results box
func (r *Renderer) renderResults(state ViewState, width, rows int) string {
	switch {
	case state.ResultsLoading:
		return r.styles.StatusLoading.Render("Loading...")
	case state.ResultsError != "":
		return r.styles.StatusError.Render("⛔ " + state.ResultsError)
	case len(state.Results) == 0:
		if utf8.RuneCountInString(strings.TrimSpace(state.Query)) < state.MinQueryLength {
			return r.styles.Dim.Render(fmt.Sprintf("Type at least %d characters to search", state.MinQueryLength))
		}
		return r.styles.Dim.Render("No movies found")
	}

	lines := make([]string, 0, len(state.Results))
	for i, movie := range state.Results {
		lines = append(lines, r.renderMovieRow(movie, state, i, width))
	}
	return strings.Join(window(lines, state.ResultsOffset, rows), "\n")
}

func (r *Renderer) renderMovieRow(movie domain.Movie, state ViewState, index, width int) string {
	marker := "  "
	title := movie.Title
	if movie.ID == state.SelectedID {
		marker = "▸ "
		title = r.styles.Selected.Render(title)
	}

	row := fmt.Sprintf("%s%s %s", marker, title, r.styles.Dim.Render("🗓 "+movie.Year))
	row = truncate(row, width)
	if !state.WatchedFocused && index == state.ResultsCursor {
		row = r.styles.Cursor.Render(row)
	}
	return row
}
