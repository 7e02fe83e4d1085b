package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/burrow/internal/ui/styles"
)

// MaxWidth caps the auto-fitted popup width in columns.
const MaxWidth = 72

// RenderBordered wraps content in a rounded border and centers it on a
// screen of the given size.
func RenderBordered(content string, screenW, screenH int) string {
	width, height := dimensions(content, screenW, screenH)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().BorderFocus).
		Width(width-2). // border
		Height(height-2).
		Padding(1, 2).
		Render(content)
	return Center(box, screenW, screenH)
}

func dimensions(content string, screenW, screenH int) (width, height int) {
	width = min(maxLineWidth(content)+6, MaxWidth, screenW-4) // padding + border
	height = min(strings.Count(content, "\n")+1+4, screenH-4)
	return max(width, 0), max(height, 0)
}

func maxLineWidth(s string) int {
	w := 0
	for line := range strings.SplitSeq(s, "\n") {
		w = max(w, lipgloss.Width(line))
	}
	return w
}

// Center centers pre-rendered content on the screen.
func Center(box string, screenW, screenH int) string {
	lines := strings.Split(box, "\n")
	padTop := max((screenH-len(lines))/2, 0)
	padLeft := max((screenW-maxLineWidth(box))/2, 0)

	var b strings.Builder
	for range padTop {
		b.WriteString(strings.Repeat(" ", screenW))
		b.WriteByte('\n')
	}
	for _, line := range lines {
		b.WriteString(strings.Repeat(" ", padLeft))
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// Compose overlays a centered popup on top of a base view. Visually blank
// overlay lines leave the base untouched. ANSI styling on both sides is kept.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")

	for i, line := range strings.Split(overlay, "\n") {
		if i >= len(baseLines) {
			break
		}
		plain := ansi.Strip(line)
		if strings.TrimSpace(plain) == "" {
			continue
		}

		// leading spaces are one column each
		start := len(plain) - len(strings.TrimLeft(plain, " "))
		end := ansi.StringWidth(strings.TrimRight(plain, " "))

		under := baseLines[i]
		if w := ansi.StringWidth(under); w < width {
			under += strings.Repeat(" ", width-w)
		}

		prefix := ansi.Cut(under, 0, start)
		// a wide rune straddling the cut is dropped by ansi.Cut
		if w := ansi.StringWidth(prefix); w < start {
			prefix += strings.Repeat(" ", start-w)
		}
		out := prefix + ansi.Cut(line, start, end)
		if end < width {
			suffix := ansi.Cut(under, end, width)
			if w := ansi.StringWidth(suffix); w < width-end {
				suffix += strings.Repeat(" ", width-end-w)
			}
			out += suffix
		}
		baseLines[i] = out
	}
	return strings.Join(baseLines, "\n")
}
