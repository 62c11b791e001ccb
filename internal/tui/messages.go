package tui

// statusMsg updates the status line. A non-nil err is shown as an error.
type statusMsg struct {
	text string
	err  error
}

type sessionSavedMsg struct {
	err error
}

type eventPublishedMsg struct {
	event string
	err   error
}

type clipboardMsg struct {
	err error
}
