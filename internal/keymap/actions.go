// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit    Action = "quit"
	ActionRefresh Action = "refresh"
	ActionHelp    Action = "help"

	// Navigation actions
	ActionMoveUp      Action = "move_up"
	ActionMoveDown    Action = "move_down"
	ActionJumpStart   Action = "jump_start"
	ActionJumpEnd     Action = "jump_end"
	ActionPageUp      Action = "page_up"
	ActionPageDown    Action = "page_down"
	ActionEnter       Action = "enter"
	ActionParent      Action = "parent"
	ActionHistoryBack Action = "history_back"
	ActionHistoryFwd  Action = "history_forward"

	// File operations
	ActionDelete       Action = "delete"
	ActionRename       Action = "rename"
	ActionNewFile      Action = "new_file"
	ActionNewFolder    Action = "new_folder"
	ActionCopy         Action = "copy"
	ActionPaste        Action = "paste"
	ActionToggleHidden Action = "toggle_hidden"
)
