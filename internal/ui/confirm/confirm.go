// Package confirm provides a yes/no confirmation popup component.
package confirm

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/burrow/internal/ui"
	"github.com/llehouerou/burrow/internal/ui/action"
	"github.com/llehouerou/burrow/internal/ui/popup"
	"github.com/llehouerou/burrow/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// Model is a yes/no confirmation popup.
type Model struct {
	ui.Base
	title   string
	message string
	context any
	active  bool
}

// New creates a new confirmation model.
func New() Model {
	return Model{}
}

// Show displays the confirmation popup.
func (m *Model) Show(title, message string, context any, width, height int) {
	m.title = title
	m.message = message
	m.context = context
	m.SetSize(width, height)
	m.active = true
}

// Reset clears the confirmation state.
func (m *Model) Reset() {
	*m = Model{Base: m.Base}
}

// Active returns whether the confirmation is currently shown.
func (m Model) Active() bool {
	return m.active
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !m.active || !ok {
		return m, nil
	}

	var confirmed bool
	switch keyMsg.String() {
	case "enter", "y", "Y":
		confirmed = true
	case "esc", "n", "N":
		confirmed = false
	default:
		return m, nil
	}

	m.active = false
	return m, action.Cmd(source, Result{Confirmed: confirmed, Context: m.context})
}

// View implements popup.Popup.
func (m *Model) View() string {
	if !m.active || !m.Visible() {
		return ""
	}
	s := styles.T().S()
	return s.Warning.Bold(true).Render(m.title) + "\n\n" +
		s.Base.Render(m.message) + "\n\n" +
		s.Subtle.Render("y/enter: confirm · n/esc: cancel")
}
