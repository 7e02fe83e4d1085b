package state

// Interface is the part of Manager the browser depends on.
type Interface interface {
	SaveNavigation(state NavigationState)
	GetNavigation() (*NavigationState, error)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
