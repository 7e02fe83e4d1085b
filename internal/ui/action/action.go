// Package action defines the envelope UI components use to report what
// happened to the root model.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is something a component reports upward. ActionType returns a
// stable identifier used in logs.
type Action interface {
	ActionType() string
}

// Msg carries an Action together with the component that produced it.
type Msg struct {
	Source string // "navigator", "confirm", "textinput", "helpbindings"
	Action Action
}

// Cmd returns a command that delivers a from source.
func Cmd(source string, a Action) tea.Cmd {
	return func() tea.Msg { return Msg{Source: source, Action: a} }
}
