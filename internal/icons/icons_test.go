//nolint:goconst // test cases intentionally repeat strings for readability
package icons

import (
	"strings"
	"testing"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name     string
		style    string
		expected *Icons
	}{
		{"nerd style", "nerd", nerdIcons},
		{"unicode style", "unicode", unicodeIcons},
		{"none style", "none", noneIcons},
		{"empty string defaults to none", "", noneIcons},
		{"unknown style defaults to none", "invalid", noneIcons},
		{"case sensitive - NERD defaults to none", "NERD", noneIcons},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.style)
			if current != tt.expected {
				t.Errorf("Init(%q) selected the wrong icon set", tt.style)
			}
		})
	}

	// Reset to default
	Init("none")
}

func TestFormatDir(t *testing.T) {
	defer Init("none")

	Init("none")
	if got := FormatDir("src"); got != "src/" {
		t.Errorf("none: FormatDir = %q, want %q", got, "src/")
	}

	Init("unicode")
	if got := FormatDir("src"); got != "📁 src" {
		t.Errorf("unicode: FormatDir = %q, want %q", got, "📁 src")
	}

	Init("nerd")
	if got := FormatDir("src"); !strings.HasSuffix(got, "src") || got == "src" {
		t.Errorf("nerd: FormatDir = %q, want icon prefix", got)
	}
}

func TestFormatFile(t *testing.T) {
	defer Init("none")

	Init("none")
	if got := FormatFile("main.go"); got != "main.go" {
		t.Errorf("none: FormatFile = %q, want bare name", got)
	}

	Init("unicode")
	tests := []struct {
		name     string
		expected string
	}{
		{"photo.JPG", "🖼 photo.JPG"},
		{"backup.tar", "📦 backup.tar"},
		{"notes.txt", "📝 notes.txt"},
		{"config.toml", "⚙ config.toml"},
		{"unknown.bin", "📄 unknown.bin"},
		{"Makefile", "📄 Makefile"},
	}
	for _, tt := range tests {
		if got := FormatFile(tt.name); got != tt.expected {
			t.Errorf("unicode: FormatFile(%q) = %q, want %q", tt.name, got, tt.expected)
		}
	}

	Init("nerd")
	if got := FormatFile("main.go"); got != " main.go" {
		t.Errorf("nerd: FormatFile(main.go) = %q, want go icon", got)
	}
	if got := FormatFile("Dockerfile"); got != " Dockerfile" {
		t.Errorf("nerd: FormatFile(Dockerfile) = %q, want docker icon", got)
	}
	if got := FormatFile("photo.png"); got != nerdIcons.Categories[CategoryImage]+"photo.png" {
		t.Errorf("nerd: FormatFile(photo.png) = %q, want image category icon", got)
	}
}

func TestFormatEntry(t *testing.T) {
	defer Init("none")
	Init("none")

	tests := []struct {
		name      string
		isDir     bool
		isSymlink bool
		expected  string
	}{
		{"dir", true, false, "dir/"},
		{"link-to-dir", true, true, "link-to-dir/"},
		{"link", false, true, "link@"},
		{"file.txt", false, false, "file.txt"},
	}
	for _, tt := range tests {
		if got := FormatEntry(tt.name, tt.isDir, tt.isSymlink); got != tt.expected {
			t.Errorf("FormatEntry(%q, %v, %v) = %q, want %q", tt.name, tt.isDir, tt.isSymlink, got, tt.expected)
		}
	}
}

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		name     string
		expected Category
	}{
		{"a.PDF", CategoryDocument},
		{"song.flac", CategoryAudio},
		{"clip.mkv", CategoryVideo},
		{"script.py", CategoryCode},
		{"README", CategoryFile},
		{".bashrc", CategoryFile},
	}
	for _, tt := range tests {
		if got := CategoryOf(tt.name); got != tt.expected {
			t.Errorf("CategoryOf(%q) = %v, want %v", tt.name, got, tt.expected)
		}
	}
}

func TestIsPrefix(t *testing.T) {
	defer Init("none")

	Init("none")
	if IsPrefix() {
		t.Error("none style should use suffix indicators")
	}
	Init("unicode")
	if !IsPrefix() {
		t.Error("unicode style should prefix icons")
	}
}
