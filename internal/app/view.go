package app

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/burrow/internal/icons"
	"github.com/llehouerou/burrow/internal/ui/popup"
	"github.com/llehouerou/burrow/internal/ui/render"
	"github.com/llehouerou/burrow/internal/ui/styles"
)

const appName = "burrow"

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	view := strings.Join([]string{
		m.renderHeader(),
		m.nav.View(),
		m.renderStatus(),
		m.renderNotice(),
	}, "\n")

	if overlay := m.popups.View(); overlay != "" {
		view = popup.Compose(view, overlay, m.width)
	}
	return view
}

func (m Model) renderHeader() string {
	s := styles.T().S()
	right := ""
	if m.clipboard != "" {
		right = s.Symlink.Render(icons.Clipboard() + " " + render.Truncate(m.clipboard, m.width/2))
	}
	return render.Row(styles.Logo(appName), right, m.width)
}

// renderStatus shows the current path on the left and the entry count,
// selection size and history depth on the right.
func (m Model) renderStatus() string {
	s := styles.T().S()

	parts := make([]string, 0, 3)
	if sel, ok := m.nav.Selected(); ok && !sel.IsDir {
		parts = append(parts, humanize.IBytes(uint64(max(sel.Size, 0))))
	}
	parts = append(parts,
		itemCount(len(m.nav.Current().Children)),
		fmt.Sprintf("%s%d %s%d", icons.Back(), max(m.history.BackDepth()-1, 0), icons.Forward(), m.history.ForwardDepth()),
	)
	right := strings.Join(parts, " · ")

	return s.Muted.Render(render.Row(m.nav.CurrentPath(), right, m.width))
}

func (m Model) renderNotice() string {
	s := styles.T().S()
	if m.notice.text == "" {
		return s.Subtle.Render(render.Truncate("? help · q quit", m.width))
	}
	style := s.Success
	if m.notice.isErr {
		style = s.Error
	}
	return style.Render(render.Truncate(m.notice.text, m.width))
}

func itemCount(n int) string {
	if n == 1 {
		return "1 item"
	}
	return humanize.Comma(int64(n)) + " items"
}
