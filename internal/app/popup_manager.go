package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/burrow/internal/ui/confirm"
	"github.com/llehouerou/burrow/internal/ui/helpbindings"
	"github.com/llehouerou/burrow/internal/ui/popup"
	"github.com/llehouerou/burrow/internal/ui/textinput"
)

// PopupType identifies which popup is currently active.
type PopupType int

const (
	PopupNone PopupType = iota
	PopupHelp
	PopupConfirm
	PopupTextInput
)

// PopupManager owns the modal popups. At most one is shown at a time.
type PopupManager struct {
	active    PopupType
	help      helpbindings.Model
	confirm   confirm.Model
	textInput textinput.Model
	width     int
	height    int
}

// NewPopupManager creates a new PopupManager with initialized components.
func NewPopupManager() PopupManager {
	return PopupManager{
		help:      helpbindings.New(),
		confirm:   confirm.New(),
		textInput: textinput.New(),
	}
}

// SetSize updates the dimensions for popup rendering.
func (p *PopupManager) SetSize(width, height int) {
	p.width = width
	p.height = height
	if c := p.current(); c != nil {
		c.SetSize(width, height)
	}
}

// Active returns the shown popup type.
func (p PopupManager) Active() PopupType {
	return p.active
}

// ShowHelp opens the key binding help.
func (p *PopupManager) ShowHelp() {
	p.help = helpbindings.New()
	p.help.SetSize(p.width, p.height)
	p.active = PopupHelp
}

// ShowConfirm opens a yes/no confirmation.
func (p *PopupManager) ShowConfirm(title, message string, context any) {
	p.confirm.Show(title, message, context, p.width, p.height)
	p.active = PopupConfirm
}

// ShowTextInput opens the text input popup.
func (p *PopupManager) ShowTextInput(title, initial string, context any) tea.Cmd {
	p.textInput.Start(title, initial, context, p.width, p.height)
	p.active = PopupTextInput
	return p.textInput.Init()
}

// Close hides the active popup.
func (p *PopupManager) Close() {
	switch p.active {
	case PopupConfirm:
		p.confirm.Reset()
	case PopupTextInput:
		p.textInput.Reset()
	}
	p.active = PopupNone
}

// Update routes a message to the active popup.
func (p *PopupManager) Update(msg tea.Msg) tea.Cmd {
	c := p.current()
	if c == nil {
		return nil
	}
	_, cmd := c.Update(msg)
	return cmd
}

// View renders the active popup framed and centered, or "".
func (p *PopupManager) View() string {
	c := p.current()
	if c == nil {
		return ""
	}
	content := c.View()
	if content == "" {
		return ""
	}
	return popup.RenderBordered(content, p.width, p.height)
}

func (p *PopupManager) current() popup.Popup {
	switch p.active {
	case PopupHelp:
		return &p.help
	case PopupConfirm:
		return &p.confirm
	case PopupTextInput:
		return &p.textInput
	}
	return nil
}
