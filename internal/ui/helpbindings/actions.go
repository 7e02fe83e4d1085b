package helpbindings

const source = "helpbindings"

// Close asks the owner to hide the help popup.
type Close struct{}

// ActionType implements action.Action.
func (Close) ActionType() string { return "helpbindings.close" }
