package confirm

const source = "confirm"

// Result is reported when the user answers. Context is whatever was passed
// to Show.
type Result struct {
	Confirmed bool
	Context   any
}

// ActionType implements action.Action.
func (Result) ActionType() string { return "confirm.result" }
