// Package history tracks back/forward navigation across visited paths.
package history

// History is a two-stack navigation history. The top of the back stack is
// the current location; the forward stack holds locations left by Back.
//
// A History is owned by a single browsing session and is not safe for
// concurrent use.
type History struct {
	back    []string
	forward []string
}

// New returns an empty, uninitialized history.
func New() *History {
	return &History{}
}

// Init resets both stacks and makes path the current location.
func (h *History) Init(path string) {
	h.back = append(h.back[:0], path)
	h.forward = h.forward[:0]
}

// Push records a navigation to path. Pushing the current location again is a
// no-op; any other push discards the forward stack.
func (h *History) Push(path string) {
	if cur, ok := h.Current(); ok && cur == path {
		return
	}
	h.back = append(h.back, path)
	h.forward = h.forward[:0]
}

// Back moves to the previous location and returns it. It reports false when
// there is no previous location.
func (h *History) Back() (string, bool) {
	if len(h.back) <= 1 {
		return "", false
	}
	top := h.back[len(h.back)-1]
	h.back = h.back[:len(h.back)-1]
	h.forward = append(h.forward, top)
	return h.back[len(h.back)-1], true
}

// Forward moves to the location most recently left by Back and returns it.
// It reports false when the forward stack is empty.
func (h *History) Forward() (string, bool) {
	if len(h.forward) == 0 {
		return "", false
	}
	next := h.forward[len(h.forward)-1]
	h.forward = h.forward[:len(h.forward)-1]
	h.back = append(h.back, next)
	return next, true
}

// Current returns the current location, or false if Init was never called.
func (h *History) Current() (string, bool) {
	if len(h.back) == 0 {
		return "", false
	}
	return h.back[len(h.back)-1], true
}

// CanBack reports whether Back would move.
func (h *History) CanBack() bool {
	return len(h.back) > 1
}

// CanForward reports whether Forward would move.
func (h *History) CanForward() bool {
	return len(h.forward) > 0
}

// BackDepth returns the number of entries on the back stack, current included.
func (h *History) BackDepth() int {
	return len(h.back)
}

// ForwardDepth returns the number of entries on the forward stack.
func (h *History) ForwardDepth() int {
	return len(h.forward)
}
