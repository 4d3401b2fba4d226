package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"movieflix/internal/domain"
	"movieflix/internal/ui/views"
)

// HelpRenderer renders pager documents
type HelpRenderer struct {
	title   lipgloss.Style
	section lipgloss.Style
	key     lipgloss.Style
	desc    lipgloss.Style
	dim     lipgloss.Style
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).MarginBottom(1),
		section: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1),
		key:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		desc:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		dim:     lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")),
	}
}

// RenderHelpContent generates the help document for the pager
func (r *HelpRenderer) RenderHelpContent(keys views.KeyMap) string {
	var help strings.Builder

	help.WriteString(r.title.Render("movieflix help"))
	help.WriteString("\n")

	r.writeSection(&help, "Navigation", keys.Up, keys.Down, keys.Pane, keys.Hide,
		key.NewBinding(key.WithHelp("PgUp/PgDn", "page up/down")),
		key.NewBinding(key.WithHelp("gg/G", "go to top/bottom")),
	)
	r.writeSection(&help, "Search", keys.Search,
		key.NewBinding(key.WithHelp("enter/esc", "leave the search field")),
	)
	help.WriteString(r.dim.Render("  Queries shorter than 3 characters clear the results"))
	help.WriteString("\n")

	r.writeSection(&help, "Movies", keys.Open, keys.Close, keys.Pager)
	r.writeSection(&help, "Watched list", keys.Rate, keys.Add, keys.Remove, keys.Sort)
	help.WriteString(r.dim.Render("  0 rates a movie 10; a movie can be added once"))
	help.WriteString("\n")

	r.writeSection(&help, "Other", keys.Help, keys.Quit)
	return help.String()
}

func (r *HelpRenderer) writeSection(b *strings.Builder, name string, bindings ...key.Binding) {
	b.WriteString(r.section.Render(name))
	b.WriteString("\n")
	for _, binding := range bindings {
		h := binding.Help()
		b.WriteString(fmt.Sprintf("  %-12s %s\n", r.key.Render(h.Key), r.desc.Render(h.Desc)))
	}
}

// RenderDetailContent generates the full detail document of a movie
func (r *HelpRenderer) RenderDetailContent(d domain.MovieDetail, watched *domain.WatchedEntry) string {
	var b strings.Builder

	b.WriteString(r.title.Render(fmt.Sprintf("%s (%s)", d.Title, d.Year)))
	b.WriteString("\n")

	field := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			value = "N/A"
		}
		b.WriteString(fmt.Sprintf("%s %s\n", r.key.Render(fmt.Sprintf("%-10s", name)), r.desc.Render(value)))
	}
	field("Released", d.Released)
	field("Runtime", d.Runtime)
	field("Genre", d.Genre)
	field("IMDb", d.IMDbRating)
	field("Director", d.Director)
	field("Starring", d.Actors)
	field("IMDb ID", d.ID)
	if d.Poster != "" {
		field("Poster", d.Poster)
	}
	if watched != nil {
		field("Your rating", fmt.Sprintf("%d ⭐ (added %s)", watched.UserRating, watched.AddedAt.Local().Format("2006-01-02")))
	}

	b.WriteString("\n")
	b.WriteString(r.section.Render("Plot"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(78).Render(d.Plot))
	b.WriteString("\n")
	return b.String()
}
