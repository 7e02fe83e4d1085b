package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "notes.txt", "notes.txt"},
		{"unicode untouched", "résumé 写真.pdf", "résumé 写真.pdf"},
		{"tab kept", "a\tb", "a\tb"},
		{"newline replaced", "bad\nname", "bad?name"},
		{"escape replaced", "x\x1b[31m", "x?[31m"},
		{"invalid byte", "a\xffb", "a�b"},
		{"delete char", "a\x7fb", "a?b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"no truncation needed", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"truncation with ellipsis", "hello world", 8, "hello..."},
		{"very short max width", "hello", 3, "..."},
		{"empty string", "", 10, ""},
		{"wide runes", "写真写真写真", 7, "写真..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.input, tt.maxWidth))
		})
	}
}

func TestTruncateLeft(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "/home/ana", 20, "/home/ana"},
		{"keeps tail", "/home/ana/projects/burrow", 12, "...ts/burrow"},
		{"tiny width", "/home/ana", 2, ".."},
		{"zero width", "/home/ana", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateLeft(tt.input, tt.maxWidth)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len(got), max(tt.maxWidth, len(tt.input)))
		})
	}
}

func TestPad(t *testing.T) {
	assert.Equal(t, "hello     ", Pad("hello", 10))
	assert.Equal(t, "hello", Pad("hello", 5))
	assert.Equal(t, "hello world", Pad("hello world", 5))
	assert.Equal(t, "     ", Pad("", 5))
}

func TestTruncateAndPad(t *testing.T) {
	assert.Equal(t, "hello...", TruncateAndPad("hello world", 8))
	assert.Equal(t, "hi      ", TruncateAndPad("hi", 8))
}

func TestRow(t *testing.T) {
	assert.Equal(t, "left"+strings.Repeat(" ", 11)+"right", Row("left", "right", 20))
	assert.Equal(t, "left right", Row("left", "right", 10))
	assert.Equal(t, "...ft right", Row("far left", "right", 11))
}

func TestSeparator(t *testing.T) {
	assert.Equal(t, "──────────", Separator(10))
	assert.Empty(t, Separator(-1))
}
