package app

import (
	"github.com/llehouerou/burrow/internal/errmsg"
)

// OpDoneMsg reports the outcome of a file operation run off the UI loop.
type OpDoneMsg struct {
	Op    errmsg.Op
	Name  string // entry the operation was about, as typed or listed
	Focus string // entry to select after refreshing; empty keeps the selection
	Err   error
}

// clearNoticeMsg hides a notification unless a newer one replaced it.
type clearNoticeMsg struct {
	id int
}
