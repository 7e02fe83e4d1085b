// Package ui provides shared UI constants and the focus/size base embedded
// by components.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// ScrollMargin is the number of items to keep visible above/below the cursor.
	ScrollMargin = 3

	// BorderHeight is the vertical space consumed by a column border.
	BorderHeight = 2

	// BorderWidth is the horizontal space consumed by a column border.
	BorderWidth = 2

	// HeaderHeight is the space for header + separator in panels.
	HeaderHeight = 2

	// PanelOverhead is the vertical space a panel spends outside its list.
	PanelOverhead = BorderHeight + HeaderHeight

	// ParentColumnPct and PreviewColumnPct split the navigator width; the
	// current-directory column takes the rest.
	ParentColumnPct  = 20
	PreviewColumnPct = 40

	// MinColumnWidth is the narrowest a column is drawn.
	MinColumnWidth = 8
)
