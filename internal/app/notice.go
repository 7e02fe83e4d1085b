package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// noticeTimeout is how long a notification stays on the bottom line.
const noticeTimeout = 4 * time.Second

type notice struct {
	text  string
	isErr bool
	id    int
}

// notify shows text on the bottom line and schedules its removal.
func (m *Model) notify(text string, isErr bool) tea.Cmd {
	id := m.notice.id + 1
	m.notice = notice{text: text, isErr: isErr, id: id}
	return tea.Tick(noticeTimeout, func(time.Time) tea.Msg {
		return clearNoticeMsg{id: id}
	})
}

func (m *Model) clearNotice(msg clearNoticeMsg) {
	if msg.id == m.notice.id {
		m.notice.text = ""
		m.notice.isErr = false
	}
}
