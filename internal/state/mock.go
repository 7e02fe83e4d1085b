package state

// Mock is an in-memory Interface for tests. Saves apply immediately.
type Mock struct {
	navState *NavigationState
	saves    int
	closed   bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SaveNavigation(s NavigationState) {
	m.navState = &s
	m.saves++
}

func (m *Mock) GetNavigation() (*NavigationState, error) {
	return m.navState, nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Saves returns how many times SaveNavigation was called.
func (m *Mock) Saves() int { return m.saves }

// Closed reports whether Close was called.
func (m *Mock) Closed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
