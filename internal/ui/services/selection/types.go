package selection

// State holds the ID of the movie shown in the detail panel
type State struct {
	SelectedID string
}
