package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the browser.
type Theme struct {
	// Accent colors
	Primary   lipgloss.Color // focused items, directories
	Secondary lipgloss.Color // symlinks, clipboard indicator

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgCursor lipgloss.Color

	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Dir     lipgloss.Style // directory entries
	Symlink lipgloss.Style
	Hidden  lipgloss.Style // dot entries
	Cursor  lipgloss.Style // cursor row in the focused column
	Marked  lipgloss.Style // current directory in the parent column
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#7aa2f7"),
	Secondary: lipgloss.Color("#e0af68"),

	FgBase:   lipgloss.Color("#c0caf5"),
	FgMuted:  lipgloss.Color("#828bb8"),
	FgSubtle: lipgloss.Color("#565f89"),

	BgCursor: lipgloss.Color("#2f334d"),

	Border:      lipgloss.Color("#565f89"),
	BorderFocus: lipgloss.Color("#7aa2f7"),

	Success: lipgloss.Color("#9ece6a"),
	Error:   lipgloss.Color("#f7768e"),
	Warning: lipgloss.Color("#e0af68"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:    base,
		Muted:   lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:  lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:   base.Bold(true),
		Dir:     lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Symlink: lipgloss.NewStyle().Foreground(t.Secondary).Italic(true),
		Hidden:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Marked: lipgloss.NewStyle().
			Foreground(t.Primary).
			Underline(true),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
