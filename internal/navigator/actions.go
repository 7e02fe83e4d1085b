package navigator

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/burrow/internal/ui/action"
)

// NavigationChanged signals that the current directory or selection changed.
type NavigationChanged struct {
	CurrentPath  string
	SelectedName string
}

// ActionType implements action.Action.
func (a NavigationChanged) ActionType() string { return "navigator.navigation_changed" }

// FileSelected signals that the user opened a non-directory entry.
type FileSelected struct {
	Path string
}

// ActionType implements action.Action.
func (a FileSelected) ActionType() string { return "navigator.file_selected" }

// LoadFailed signals that a directory could not be listed. The navigator
// stays where it was.
type LoadFailed struct {
	Path string
	Err  error
}

// ActionType implements action.Action.
func (a LoadFailed) ActionType() string { return "navigator.load_failed" }

func emit(a action.Action) tea.Cmd {
	return action.Cmd("navigator", a)
}
