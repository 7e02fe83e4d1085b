// Package layout provides pure functions for UI dimension calculations.
package layout

import "github.com/llehouerou/burrow/internal/ui"

// Heights of the single-line bars drawn around the browser panel.
const (
	HeaderHeight = 1
	StatusHeight = 1
	NoticeHeight = 1
)

// ContentOpts contains the parameters needed to calculate content height.
type ContentOpts struct {
	HeaderHeight int
	StatusHeight int
	NoticeHeight int
}

// DefaultContentOpts is the chrome the browser always draws.
var DefaultContentOpts = ContentOpts{
	HeaderHeight: HeaderHeight,
	StatusHeight: StatusHeight,
	NoticeHeight: NoticeHeight,
}

// ContentHeight returns the height left for the browser panel: the window
// height minus header, status bar and notification line. Never negative.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	height := windowHeight
	height -= opts.HeaderHeight
	height -= opts.StatusHeight
	height -= opts.NoticeHeight
	return max(height, 0)
}

// ColumnWidths splits innerWidth, minus two one-cell separators, between the
// parent, current and preview columns. The side columns get their
// percentage but at least MinColumnWidth when a third of the room allows it;
// the current column takes the rest.
func ColumnWidths(innerWidth int) (parent, current, preview int) {
	avail := max(innerWidth-2, 0)
	parent = max(avail*ui.ParentColumnPct/100, min(ui.MinColumnWidth, avail/3))
	preview = max(avail*ui.PreviewColumnPct/100, min(ui.MinColumnWidth, avail/3))
	current = max(avail-parent-preview, 0)
	return parent, current, preview
}
