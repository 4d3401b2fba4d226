package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Logo          lipgloss.Style
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Box           lipgloss.Style
	FocusedBox    lipgloss.Style
	SearchBox     lipgloss.Style
	NumResults    lipgloss.Style
	Confirm       lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Cursor        lipgloss.Style
	Selected      lipgloss.Style
	Rating        lipgloss.Style
	Plot          lipgloss.Style
	SectionHeader lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	StatusSuccess lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Logo:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Dim:   lipgloss.NewStyle().Faint(true),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		FocusedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		SearchBox:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		NumResults:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Confirm:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		Help:          lipgloss.NewStyle().Faint(true),
		Main:          lipgloss.NewStyle().Padding(0, 1),
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Cursor:        lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Selected:      lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Rating:        lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Plot:          lipgloss.NewStyle().Italic(true),
		SectionHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}
