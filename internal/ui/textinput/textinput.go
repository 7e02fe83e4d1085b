// Package textinput provides a single-line text input popup, used for
// naming new entries and renaming existing ones.
package textinput

import (
	"strings"

	bubbleinput "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/burrow/internal/ui"
	"github.com/llehouerou/burrow/internal/ui/action"
	"github.com/llehouerou/burrow/internal/ui/popup"
	"github.com/llehouerou/burrow/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

const charLimit = 255

// Model is a text input popup.
type Model struct {
	ui.Base
	title   string
	input   bubbleinput.Model
	context any
}

// New creates a new text input model.
func New() Model {
	return Model{input: newInput()}
}

func newInput() bubbleinput.Model {
	t := styles.T()
	in := bubbleinput.New()
	in.Prompt = "> "
	in.CharLimit = charLimit
	in.PromptStyle = t.S().Muted
	in.TextStyle = t.S().Base
	in.Cursor.Style = t.S().Dir
	return in
}

// Start initializes the input with a title and optional initial text. The
// cursor is placed after the initial text.
func (m *Model) Start(title, initialText string, context any, width, height int) {
	m.title = title
	m.context = context
	m.input = newInput()
	m.input.SetValue(initialText)
	m.input.CursorEnd()
	m.input.Focus()
	m.SetSize(width, height)
}

// SetSize implements popup.Popup.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.input.Width = max(width-len(m.input.Prompt)-1, 1)
}

// Value returns the current text.
func (m Model) Value() string {
	return m.input.Value()
}

// Reset clears the input state.
func (m *Model) Reset() {
	m.title = ""
	m.context = nil
	m.input = newInput()
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return bubbleinput.Blink
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, action.Cmd(source, Result{Canceled: true, Context: m.context})
		case "enter":
			text := strings.TrimSpace(m.input.Value())
			return m, action.Cmd(source, Result{Text: text, Context: m.context})
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements popup.Popup.
func (m *Model) View() string {
	if !m.Visible() {
		return ""
	}
	s := styles.T().S()
	return s.Title.Render(m.title) + "\n\n" +
		m.input.View() + "\n\n" +
		s.Subtle.Render("enter: confirm · esc: cancel")
}
