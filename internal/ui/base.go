package ui

// Base carries the size and focus state every pane and popup needs. Embed it
// by value; the setters take a pointer receiver so the embedding model must
// be addressable when they are called.
type Base struct {
	w, h  int
	focus bool
}

// SetFocused marks the component as receiving keys.
func (b *Base) SetFocused(focused bool) { b.focus = focused }

// IsFocused reports whether the component receives keys.
func (b Base) IsFocused() bool { return b.focus }

// SetSize records the space the component may draw in.
func (b *Base) SetSize(width, height int) {
	b.w, b.h = max(width, 0), max(height, 0)
}

// Width returns the drawable width.
func (b Base) Width() int { return b.w }

// Height returns the drawable height.
func (b Base) Height() int { return b.h }

// Visible reports whether there is any room to draw in.
func (b Base) Visible() bool { return b.w > 0 && b.h > 0 }

// ListHeight returns the rows left for list content after overhead.
func (b Base) ListHeight(overhead int) int {
	return max(b.h-overhead, 0)
}
