package views

import (
	"fmt"
	"strings"

	"movieflix/internal/domain"
	"movieflix/internal/watchlist"
)

// renderWatched renders the summary and the watched list
func (r *Renderer) renderWatched(state ViewState, width, rows int) string {
	var b strings.Builder
	b.WriteString(r.styles.SectionHeader.Render("MOVIES YOU WATCHED"))
	if state.SortLabel != "" {
		b.WriteString(r.styles.Dim.Render("  sorted by " + state.SortLabel))
	}
	b.WriteString("\n")
	b.WriteString(truncate(r.renderSummary(state.Stats), width))
	b.WriteString("\n\n")

	if len(state.Watched) == 0 {
		b.WriteString(r.styles.Dim.Render("Rate a movie and press a to add it here"))
		return b.String()
	}

	lines := make([]string, 0, len(state.Watched))
	for i, entry := range state.Watched {
		lines = append(lines, r.renderWatchedRow(entry, state, i, width))
	}
	b.WriteString(strings.Join(window(lines, state.WatchedOffset, rows), "\n"))
	return b.String()
}

func (r *Renderer) renderSummary(stats watchlist.Stats) string {
	return fmt.Sprintf("#️⃣ %d movies  ⭐️ %s  🌟 %s  ⏳ %s min",
		stats.Count,
		watchlist.FormatRating(stats.AvgIMDb),
		watchlist.FormatRating(stats.AvgUser),
		watchlist.FormatRuntime(stats.AvgRuntime),
	)
}

func (r *Renderer) renderWatchedRow(entry domain.WatchedEntry, state ViewState, index, width int) string {
	imdb, runtime := "N/A", "N/A"
	if entry.IMDbRating.Known() {
		imdb = watchlist.FormatRating(float64(entry.IMDbRating))
	}
	if entry.RuntimeMinutes.Known() {
		runtime = watchlist.FormatRuntime(float64(entry.RuntimeMinutes)) + " min"
	}

	row := fmt.Sprintf("%s  %s  %s  %s",
		entry.Title,
		r.styles.Rating.Render("⭐️ "+imdb),
		r.styles.Rating.Render(fmt.Sprintf("🌟 %d", entry.UserRating)),
		r.styles.Dim.Render("⏳ "+runtime),
	)
	row = truncate(row, width)
	if state.WatchedFocused && index == state.WatchedCursor {
		row = r.styles.Cursor.Render(row)
	}
	return row
}
