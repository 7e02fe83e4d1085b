package textinput

const source = "textinput"

// Result is reported on enter (Text trimmed) or escape (Canceled). Context
// is whatever was passed to Start.
type Result struct {
	Text     string
	Context  any
	Canceled bool
}

// ActionType implements action.Action.
func (Result) ActionType() string { return "textinput.result" }
