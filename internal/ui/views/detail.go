package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"movieflix/internal/domain"
)

// renderDetail renders the panel of the selected movie
func (r *Renderer) renderDetail(state ViewState, width, height int) string {
	back := r.styles.Dim.Render("← esc")

	switch {
	case state.DetailLoading:
		return back + "\n\n" + r.styles.StatusLoading.Render("Loading...")
	case state.DetailError != "":
		return back + "\n\n" + r.styles.StatusError.Render("⛔ "+state.DetailError)
	case state.Detail == nil:
		return back
	}

	d := state.Detail
	wrap := lipgloss.NewStyle().Width(width)

	var b strings.Builder
	b.WriteString(back)
	b.WriteString("\n")
	b.WriteString(truncate(r.styles.Title.Render(d.Title), width))
	b.WriteString("\n")
	b.WriteString(truncate(fmt.Sprintf("%s • %s", orNA(d.Released), orNA(d.Runtime)), width))
	b.WriteString("\n")
	b.WriteString(truncate(orNA(d.Genre), width))
	b.WriteString("\n")
	b.WriteString(r.styles.Rating.Render(fmt.Sprintf("⭐ %s IMDb rating", orNA(d.IMDbRating))))
	b.WriteString("\n\n")
	b.WriteString(r.renderRatingRow(state, width))
	b.WriteString("\n\n")
	b.WriteString(wrap.Render(r.styles.Plot.Render(orNA(d.Plot))))
	b.WriteString("\n\n")
	b.WriteString(wrap.Render("Starring " + orNA(d.Actors)))
	b.WriteString("\n")
	b.WriteString(wrap.Render("Directed by " + orNA(d.Director)))

	return lipgloss.NewStyle().MaxHeight(height).Render(b.String())
}

// renderRatingRow renders either the stored rating or the rating picker
func (r *Renderer) renderRatingRow(state ViewState, width int) string {
	if state.WatchedRating > 0 {
		return r.styles.Rating.Render(fmt.Sprintf("You already rated this movie with %d ⭐", state.WatchedRating))
	}

	stars := strings.Repeat("★", state.UserRating) + strings.Repeat("☆", domain.MaxUserRating-state.UserRating)
	row := r.styles.Rating.Render(stars)
	if state.UserRating > 0 {
		row += fmt.Sprintf(" %d/%d", state.UserRating, domain.MaxUserRating)
		row += "\n" + r.styles.StatusSuccess.Render("a: add to watchlist")
	} else {
		row += r.styles.Dim.Render("  press 1-9, 0 for 10")
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(row)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
