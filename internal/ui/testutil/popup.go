package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/burrow/internal/ui/action"
	"github.com/llehouerou/burrow/internal/ui/popup"
)

// namedKeys are the key names, as written in keymap bindings, that are not
// typed text.
var namedKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEscape,
	"backspace": tea.KeyBackspace,
	"delete":    tea.KeyDelete,
	"tab":       tea.KeyTab,
	"space":     tea.KeySpace,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"home":      tea.KeyHome,
	"end":       tea.KeyEnd,
	"pgup":      tea.KeyPgUp,
	"pgdown":    tea.KeyPgDown,
	"ctrl+c":    tea.KeyCtrlC,
	"ctrl+d":    tea.KeyCtrlD,
	"ctrl+u":    tea.KeyCtrlU,
}

// KeyMsg builds the key message whose String() is key. Unknown names are
// sent as typed runes, so KeyMsg("docs") types four characters.
func KeyMsg(key string) tea.KeyMsg {
	if t, ok := namedKeys[key]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// PopupHarness drives a popup.Popup the way the app does: every message goes
// through Update and every returned command is recorded.
type PopupHarness struct {
	popup popup.Popup
	cmds  []tea.Cmd
}

// NewPopupHarness wraps p and records the command returned by its Init.
func NewPopupHarness(p popup.Popup) *PopupHarness {
	h := &PopupHarness{popup: p}
	h.record(p.Init())
	return h
}

func (h *PopupHarness) record(cmd tea.Cmd) tea.Cmd {
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// Popup returns the wrapped popup.
func (h *PopupHarness) Popup() popup.Popup {
	return h.popup
}

// SetSize resizes the popup.
func (h *PopupHarness) SetSize(width, height int) {
	h.popup.SetSize(width, height)
}

// View returns the rendered popup without styling.
func (h *PopupHarness) View() string {
	return StripANSI(h.popup.View())
}

// ViewContains reports whether some line of View contains substr.
func (h *PopupHarness) ViewContains(substr string) bool {
	return ContainsLine(h.View(), substr)
}

// SendMsg delivers msg and returns the command the popup answered with.
func (h *PopupHarness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.popup, cmd = h.popup.Update(msg)
	return h.record(cmd)
}

// SendKey presses key; see KeyMsg for how names are interpreted.
func (h *PopupHarness) SendKey(key string) tea.Cmd {
	return h.SendMsg(KeyMsg(key))
}

// SendSpecialKey presses a non-text key.
func (h *PopupHarness) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

// SendEnter presses enter.
func (h *PopupHarness) SendEnter() tea.Cmd {
	return h.SendSpecialKey(tea.KeyEnter)
}

// SendEscape presses escape.
func (h *PopupHarness) SendEscape() tea.Cmd {
	return h.SendSpecialKey(tea.KeyEscape)
}

// LastCommand returns the most recent command, or nil.
func (h *PopupHarness) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

// LastAction runs the most recent command and returns the action it
// carries, or nil when it produced no action.Msg.
func (h *PopupHarness) LastAction() action.Action {
	msg, ok := ExecuteCmd(h.LastCommand()).(action.Msg)
	if !ok {
		return nil
	}
	return msg.Action
}

// ExecuteCmd runs cmd and returns its message; nil for a nil command.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
