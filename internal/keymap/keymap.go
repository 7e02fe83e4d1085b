package keymap

// Binding maps keys to an action within a context.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "navigator", "files"
}

// Bindings contains all key bindings.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionRefresh, []string{"R"}, "Refresh", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},
	{ActionToggleHidden, []string{"."}, "Toggle hidden files", "global"},

	// Navigator
	{ActionMoveDown, []string{"j", "down"}, "Move down", "navigator"},
	{ActionMoveUp, []string{"k", "up"}, "Move up", "navigator"},
	{ActionJumpStart, []string{"g", "home"}, "First item", "navigator"},
	{ActionJumpEnd, []string{"G", "end"}, "Last item", "navigator"},
	{ActionPageDown, []string{"ctrl+d", "pgdown"}, "Page down", "navigator"},
	{ActionPageUp, []string{"ctrl+u", "pgup"}, "Page up", "navigator"},
	{ActionEnter, []string{"l", "right", "enter"}, "Open", "navigator"},
	{ActionParent, []string{"-", "backspace"}, "Parent directory", "navigator"},
	{ActionHistoryBack, []string{"h", "left"}, "Back", "navigator"},
	{ActionHistoryFwd, []string{"L"}, "Forward", "navigator"},

	// File operations
	{ActionDelete, []string{"d", "delete"}, "Delete", "files"},
	{ActionRename, []string{"r"}, "Rename", "files"},
	{ActionNewFile, []string{"n"}, "New file", "files"},
	{ActionNewFolder, []string{"N"}, "New folder", "files"},
	{ActionCopy, []string{"c"}, "Copy", "files"},
	{ActionPaste, []string{"p"}, "Paste", "files"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Contexts returns the binding contexts in display order.
func Contexts() []string {
	return []string{"navigator", "files", "global"}
}
