package navigator

import (
	"strings"

	"github.com/llehouerou/burrow/internal/icons"
	"github.com/llehouerou/burrow/internal/snapshot"
	"github.com/llehouerou/burrow/internal/ui"
	"github.com/llehouerou/burrow/internal/ui/layout"
	"github.com/llehouerou/burrow/internal/ui/render"
	"github.com/llehouerou/burrow/internal/ui/styles"
)

// View renders the bordered three-column browser.
func (m Model) View() string {
	if !m.Visible() {
		return ""
	}

	innerWidth := m.Width() - ui.BorderWidth
	listHeight := m.listHeight()
	if innerWidth <= 0 || listHeight <= 0 {
		return ""
	}

	parentW, currentW, previewW := layout.ColumnWidths(innerWidth)

	header := headerStyle().Render(render.TruncateAndPad(render.TruncateLeft(m.current.Path, innerWidth), innerWidth))
	sep := separatorStyle().Render(render.Separator(innerWidth))

	cols := [3][]string{
		m.parentColumn(parentW, listHeight),
		m.currentColumn(currentW, listHeight),
		m.previewColumn(previewW, listHeight),
	}
	bar := separatorStyle().Render("│")

	lines := make([]string, 0, listHeight+2)
	lines = append(lines, header, sep)
	for i := range listHeight {
		lines = append(lines, cols[0][i]+bar+cols[1][i]+bar+cols[2][i])
	}

	return styles.PanelStyle(m.IsFocused()).Width(innerWidth).Render(strings.Join(lines, "\n"))
}

func (m Model) parentColumn(width, height int) []string {
	marked := m.parent.IndexOf(m.current.Path)
	offset := 0
	if marked >= 0 {
		offset = min(max(marked-height/2, 0), max(len(m.parent.Children)-height, 0))
	}

	lines := make([]string, height)
	for i := range height {
		idx := offset + i
		if idx >= len(m.parent.Children) {
			lines[i] = render.Pad("", width)
			continue
		}
		n := m.parent.Children[idx]
		text := render.TruncateAndPad(" "+entryName(n), width)
		if idx == marked {
			lines[i] = markedStyle().Render(text)
		} else {
			lines[i] = entryStyle(n).Faint(true).Render(text)
		}
	}
	return lines
}

func (m Model) currentColumn(width, height int) []string {
	lines := make([]string, height)
	children := m.current.Children
	if len(children) == 0 {
		lines[0] = styles.T().S().Subtle.Render(render.TruncateAndPad("  (empty)", width))
		for i := 1; i < height; i++ {
			lines[i] = render.Pad("", width)
		}
		return lines
	}

	start, _ := m.cursor.VisibleRange(len(children), height)
	for i := range height {
		idx := start + i
		if idx >= len(children) {
			lines[i] = render.Pad("", width)
			continue
		}
		n := children[idx]
		prefix := "  "
		if idx == m.cursor.Pos() {
			prefix = "> "
		}
		text := render.TruncateAndPad(prefix+entryName(n), width)
		if idx == m.cursor.Pos() {
			lines[i] = cursorStyle().Inherit(entryStyle(n)).Render(text)
		} else {
			lines[i] = entryStyle(n).Render(text)
		}
	}
	return lines
}

func (m Model) previewColumn(width, height int) []string {
	lines := make([]string, height)
	style := styles.T().S().Muted
	if m.pv.Err != nil {
		style = styles.T().S().Error
	}
	for i := range height {
		text := ""
		if i < len(m.pv.Lines) {
			text = " " + m.pv.Lines[i]
		}
		lines[i] = style.Render(render.TruncateAndPad(text, width))
	}
	return lines
}

func entryName(n snapshot.Node) string {
	return icons.FormatEntry(render.Sanitize(n.Name), n.IsDir, n.IsSymlink())
}
