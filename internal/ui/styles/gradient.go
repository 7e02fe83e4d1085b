package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// neutral replaces colors that are not "#rrggbb", such as ANSI indexes.
var neutral = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// ApplyGradient colors text one grapheme at a time, blending from the first
// color to the second in HCL space.
func ApplyGradient(text string, from, to lipgloss.Color) string {
	return gradient(text, lipgloss.NewStyle(), from, to)
}

// Logo renders the application name in bold, shading from the theme's
// primary to its secondary color.
func Logo(name string) string {
	t := T()
	return gradient(name, lipgloss.NewStyle().Bold(true), t.Primary, t.Secondary)
}

func gradient(text string, base lipgloss.Style, from, to lipgloss.Color) string {
	clusters := graphemes(text)
	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return base.Foreground(from).Render(text)
	}

	stops := blend(len(clusters), toColorful(from), toColorful(to))

	var b strings.Builder
	for i, g := range clusters {
		b.WriteString(base.Foreground(lipgloss.Color(stops[i].Hex())).Render(g))
	}
	return b.String()
}

// graphemes splits text into user-perceived characters so that combined
// emoji and accented letters get a single color.
func graphemes(text string) []string {
	var out []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}

// blend returns n colors evenly spaced from start to end, both included.
func blend(n int, start, end colorful.Color) []colorful.Color {
	if n < 2 {
		return []colorful.Color{start}
	}
	out := make([]colorful.Color, n)
	for i := range n {
		out[i] = start.BlendHcl(end, float64(i)/float64(n-1)).Clamped()
	}
	return out
}

func toColorful(c lipgloss.Color) colorful.Color {
	if col, err := colorful.Hex(string(c)); err == nil {
		return col
	}
	return neutral
}
