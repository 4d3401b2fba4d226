package views

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the bindings shown in the footer and the help pager.
// Input handling lives in the input package; these are labels only.
type KeyMap struct {
	Search key.Binding
	Up     key.Binding
	Down   key.Binding
	Pane   key.Binding
	Hide   key.Binding
	Open   key.Binding
	Close  key.Binding
	Rate   key.Binding
	Add    key.Binding
	Remove key.Binding
	Sort   key.Binding
	Pager  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default key labels
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Pane:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		Hide:   key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "hide/show pane")),
		Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open/close")),
		Close:  key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		Rate:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9", "0"), key.WithHelp("1-0", "rate")),
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add to list")),
		Remove: key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "remove")),
		Sort:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort watched")),
		Pager:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "full details")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Pane, k.Open, k.Rate, k.Add, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Pane, k.Hide, k.Search},
		{k.Open, k.Close, k.Pager},
		{k.Rate, k.Add, k.Remove, k.Sort},
		{k.Help, k.Quit},
	}
}
