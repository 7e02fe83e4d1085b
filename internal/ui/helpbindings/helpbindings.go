// Package helpbindings provides a scrollable popup listing the key bindings.
package helpbindings

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/burrow/internal/keymap"
	"github.com/llehouerou/burrow/internal/ui"
	"github.com/llehouerou/burrow/internal/ui/action"
	"github.com/llehouerou/burrow/internal/ui/popup"
	"github.com/llehouerou/burrow/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

var contextLabels = map[string]string{
	"global":    "General",
	"navigator": "Navigation",
	"files":     "Files",
}

// chrome is the popup height spent outside the binding lines: title,
// footer, blank lines, border and padding.
const chrome = 10

// Model holds the state for the help popup.
type Model struct {
	ui.Base
	lines  []string
	scroll int
}

// New creates a help popup covering every binding context.
func New() Model {
	return Model{lines: buildLines()}
}

func buildLines() []string {
	s := styles.T().S()
	keyStyle := s.Dir
	headerStyle := s.Warning.Bold(true)

	keyWidth := 0
	for _, b := range keymap.Bindings {
		keyWidth = max(keyWidth, lipgloss.Width(b.Label()))
	}

	var lines []string
	for i, ctx := range keymap.Contexts() {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines,
			headerStyle.Render(contextLabels[ctx]),
			s.Subtle.Render(strings.Repeat("─", keyWidth+16)),
		)
		for _, b := range keymap.ByContext(ctx) {
			keys := b.Label()
			pad := strings.Repeat(" ", keyWidth-lipgloss.Width(keys))
			lines = append(lines, keyStyle.Render(keys+pad)+"  "+s.Base.Render(b.Description))
		}
	}
	return lines
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, action.Cmd(source, Close{})
	case "j", "down":
		m.scroll = min(m.scroll+1, m.maxScroll())
	case "k", "up":
		m.scroll = max(m.scroll-1, 0)
	}
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	if !m.Visible() {
		return ""
	}

	end := min(m.scroll+m.visibleHeight(), len(m.lines))
	footer := "?/esc close"
	if m.maxScroll() > 0 {
		footer = "j/k scroll · " + footer
	}

	s := styles.T().S()
	return s.Title.Render("Help") + "\n\n" +
		strings.Join(m.lines[m.scroll:end], "\n") + "\n\n" +
		s.Subtle.Render(footer)
}

func (m Model) visibleHeight() int {
	return max(m.Height()-chrome, 5)
}

func (m Model) maxScroll() int {
	return max(len(m.lines)-m.visibleHeight(), 0)
}
