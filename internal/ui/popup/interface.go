// Package popup provides the modal popup contract and helpers to frame and
// overlay popups on the main view.
package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup is a modal component. While one is shown it receives every key; it
// reports its outcome as an action.Msg command rather than by return value.
type Popup interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Popup, tea.Cmd)
	// View renders the content only; RenderBordered adds the frame.
	View() string
	SetSize(width, height int)
}
