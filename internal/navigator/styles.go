package navigator

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/burrow/internal/snapshot"
	"github.com/llehouerou/burrow/internal/ui/styles"
)

func headerStyle() lipgloss.Style {
	return styles.T().S().Title
}

// entryStyle picks the foreground for a listing row.
func entryStyle(n snapshot.Node) lipgloss.Style {
	s := styles.T().S()
	switch {
	case n.IsSymlink():
		return s.Symlink
	case n.IsDir:
		return s.Dir
	case n.IsHidden():
		return s.Hidden
	default:
		return s.Base
	}
}

func cursorStyle() lipgloss.Style {
	return styles.T().S().Cursor
}

func markedStyle() lipgloss.Style {
	return styles.T().S().Marked
}

func separatorStyle() lipgloss.Style {
	return styles.T().S().Subtle
}
