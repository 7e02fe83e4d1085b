package icons

import (
	"path/filepath"
	"strings"
)

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Category groups file extensions that share an icon.
type Category int

const (
	CategoryFile Category = iota
	CategoryText
	CategoryCode
	CategoryImage
	CategoryDocument
	CategoryArchive
	CategoryConfig
	CategoryAudio
	CategoryVideo
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Folder     string
	Symlink    string
	Categories map[Category]string
	Extensions map[string]string // per-extension overrides, nerd style only
	Back       string
	Forward    string
	Clipboard  string
}

var (
	nerdIcons = &Icons{
		Folder:  " ", // nf-fa-folder
		Symlink: " ", // nf-oct-file_symlink_file
		Categories: map[Category]string{
			CategoryFile:     " ", // nf-fa-file
			CategoryText:     " ", // nf-fa-file_text_o
			CategoryCode:     " ", // nf-fa-code
			CategoryImage:    " ", // nf-fa-file_image_o
			CategoryDocument: " ", // nf-fa-file_pdf_o
			CategoryArchive:  " ", // nf-fa-file_archive_o
			CategoryConfig:   " ", // nf-seti-config
			CategoryAudio:    " ", // nf-fa-file_audio_o
			CategoryVideo:    " ", // nf-fa-file_video_o
		},
		Extensions: map[string]string{
			".go":         " ", // nf-seti-go
			".py":         " ", // nf-seti-python
			".c":          " ", // nf-custom-c
			".h":          " ",
			".cpp":        " ", // nf-custom-cpp
			".hpp":        " ",
			".js":         " ", // nf-seti-javascript
			".ts":         " ", // nf-seti-typescript
			".html":       " ", // nf-dev-html5
			".css":        " ", // nf-dev-css3
			".json":       " ", // nf-seti-json
			".md":         " ", // nf-seti-markdown
			".sh":         " ", // nf-dev-terminal
			".rs":         " ", // nf-dev-rust
			".java":       " ", // nf-dev-java
			".php":        " ", // nf-dev-php
			".sql":        " ", // nf-dev-database
			".doc":        " ", // nf-fa-file_word_o
			".docx":       " ",
			".xls":        " ", // nf-fa-file_excel_o
			".xlsx":       " ",
			".ppt":        " ", // nf-fa-file_powerpoint_o
			".pptx":       " ",
			".gitignore":  " ", // nf-dev-git
			"dockerfile":  " ", // nf-dev-docker
			".dockerfile": " ",
		},
		Back:      "", // nf-fa-arrow_left
		Forward:   "", // nf-fa-arrow_right
		Clipboard: "", // nf-fa-clipboard
	}

	unicodeIcons = &Icons{
		Folder:  "📁 ",
		Symlink: "🔗 ",
		Categories: map[Category]string{
			CategoryFile:     "📄 ",
			CategoryText:     "📝 ",
			CategoryCode:     "📜 ",
			CategoryImage:    "🖼 ",
			CategoryDocument: "📕 ",
			CategoryArchive:  "📦 ",
			CategoryConfig:   "⚙ ",
			CategoryAudio:    "🎵 ",
			CategoryVideo:    "🎬 ",
		},
		Back:      "←",
		Forward:   "→",
		Clipboard: "📋",
	}

	noneIcons = &Icons{
		Folder:     "/",
		Symlink:    "@",
		Categories: map[Category]string{},
		Back:       "<",
		Forward:    ">",
		Clipboard:  "[c]",
	}

	// current holds the active icon set
	current = noneIcons
)

var extensionCategories = map[string]Category{
	".txt": CategoryText, ".log": CategoryText, ".csv": CategoryText, ".md": CategoryText,
	".go": CategoryCode, ".py": CategoryCode, ".c": CategoryCode, ".h": CategoryCode,
	".cpp": CategoryCode, ".hpp": CategoryCode, ".js": CategoryCode, ".ts": CategoryCode,
	".html": CategoryCode, ".css": CategoryCode, ".sh": CategoryCode, ".rs": CategoryCode,
	".java": CategoryCode, ".php": CategoryCode, ".sql": CategoryCode, ".xml": CategoryCode,
	".json": CategoryCode,
	".png": CategoryImage, ".jpg": CategoryImage, ".jpeg": CategoryImage, ".gif": CategoryImage,
	".svg": CategoryImage, ".ico": CategoryImage, ".webp": CategoryImage,
	".pdf": CategoryDocument, ".doc": CategoryDocument, ".docx": CategoryDocument,
	".xls": CategoryDocument, ".xlsx": CategoryDocument, ".ppt": CategoryDocument,
	".pptx": CategoryDocument, ".odt": CategoryDocument,
	".zip": CategoryArchive, ".tar": CategoryArchive, ".gz": CategoryArchive,
	".rar": CategoryArchive, ".7z": CategoryArchive, ".xz": CategoryArchive, ".bz2": CategoryArchive,
	".ini": CategoryConfig, ".conf": CategoryConfig, ".cfg": CategoryConfig,
	".toml": CategoryConfig, ".yml": CategoryConfig, ".yaml": CategoryConfig,
	".mp3": CategoryAudio, ".flac": CategoryAudio, ".ogg": CategoryAudio, ".wav": CategoryAudio,
	".mp4": CategoryVideo, ".mkv": CategoryVideo, ".webm": CategoryVideo, ".avi": CategoryVideo,
}

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// IsPrefix returns true if icons are prepended rather than appended.
func IsPrefix() bool {
	return current != noneIcons
}

// CategoryOf returns the icon category of a file name.
func CategoryOf(name string) Category {
	if c, ok := extensionCategories[extKey(name)]; ok {
		return c
	}
	return CategoryFile
}

// FormatDir formats a directory name with the appropriate icon.
// For "none" style, the indicator is a suffix ("/").
func FormatDir(name string) string {
	if current == noneIcons {
		return name + current.Folder
	}
	return current.Folder + name
}

// FormatSymlink formats a symbolic link name.
func FormatSymlink(name string) string {
	if current == noneIcons {
		return name + current.Symlink
	}
	return current.Symlink + name
}

// FormatFile formats a file name with an icon chosen by its extension.
func FormatFile(name string) string {
	if current == noneIcons {
		return name
	}
	if icon, ok := current.Extensions[extKey(name)]; ok {
		return icon + name
	}
	return current.Categories[CategoryOf(name)] + name
}

// FormatEntry picks the right formatter for an entry.
func FormatEntry(name string, isDir, isSymlink bool) string {
	switch {
	case isDir:
		return FormatDir(name)
	case isSymlink:
		return FormatSymlink(name)
	default:
		return FormatFile(name)
	}
}

// Back returns the history-back indicator.
func Back() string {
	return current.Back
}

// Forward returns the history-forward indicator.
func Forward() string {
	return current.Forward
}

// Clipboard returns the clipboard indicator.
func Clipboard() string {
	return current.Clipboard
}

// extKey returns the lowercased extension, or the whole lowercased name for
// extension-less names such as "Dockerfile".
func extKey(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return strings.ToLower(name)
	}
	return ext
}
