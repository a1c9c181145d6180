package tui

import "time"

type savedMsg struct {
	err error
}

type submittedMsg struct {
	err error
}

type abandonedMsg struct {
	err error
}

type pastedMsg struct {
	text string
	err  error
}

type copiedMsg struct {
	err error
}

type tickMsg time.Time

type clearStatusMsg struct{}

type serverVersionMsg string
