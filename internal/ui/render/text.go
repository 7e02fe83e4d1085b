// Package render provides text rendering utilities for TUI components.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const ellipsis = "..."

// Sanitize makes a file name safe to print: control characters (except tab)
// are replaced with '?' and invalid UTF-8 bytes with U+FFFD.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size <= 1:
			b.WriteRune(utf8.RuneError)
		case r != '\t' && unicode.IsControl(r):
			b.WriteByte('?')
		default:
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

func needsSanitize(s string) bool {
	for i := range len(s) {
		if c := s[i]; (c < 0x20 && c != '\t') || c == 0x7f || c >= 0x80 {
			return !utf8.ValidString(s) || strings.ContainsFunc(s, isBadRune)
		}
	}
	return false
}

func isBadRune(r rune) bool {
	return r != '\t' && unicode.IsControl(r)
}

// Truncate shortens a string to fit within maxWidth, adding an ellipsis if
// truncated. Wide characters (CJK, emoji) count as two columns.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), maxWidth, ellipsis)
}

// TruncateLeft shortens a string from the left, keeping its tail. Used for
// paths, where the deepest components matter most.
func TruncateLeft(s string, maxWidth int) string {
	s = Sanitize(s)
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= len(ellipsis) {
		return ellipsis[:max(maxWidth, 0)]
	}
	runes := []rune(s)
	w := len(ellipsis)
	i := len(runes)
	for i > 0 {
		rw := runewidth.RuneWidth(runes[i-1])
		if w+rw > maxWidth {
			break
		}
		w += rw
		i--
	}
	return ellipsis + string(runes[i:])
}

// Pad fills a string with spaces to reach the specified width.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// TruncateAndPad truncates a string if necessary, then pads to the exact width.
func TruncateAndPad(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// Row lays out left and right aligned content on one line of the given
// width. The left side is shortened from the left when both do not fit.
func Row(left, right string, width int) string {
	rightWidth := lipgloss.Width(right)
	leftWidth := lipgloss.Width(left)
	if leftWidth+rightWidth+1 > width {
		left = TruncateLeft(left, max(width-rightWidth-1, 0))
		leftWidth = lipgloss.Width(left)
	}
	gap := max(width-leftWidth-rightWidth, 1)
	return left + strings.Repeat(" ", gap) + right
}

// Separator creates a horizontal separator line of the specified width.
func Separator(width int) string {
	return strings.Repeat("─", max(width, 0))
}
