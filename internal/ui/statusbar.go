package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vidyasagar/seltrack/internal/theme"
)

// StatusBar shows the active selection and history position at the bottom
// of the screen.
type StatusBar struct {
	mode      string
	selection string
	message   string // temporary status message
	isError   bool
	position  int // 1-based history position, 0 when empty
	length    int
	canBack   bool
	canFwd    bool
	scroll    string // help scroll position, replaces the history position
	width     int
}

// NewStatusBar creates a new status bar.
func NewStatusBar() StatusBar {
	return StatusBar{
		mode: "NORMAL",
	}
}

// SetWidth sets the status bar width.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// SetMode sets the current mode indicator (NORMAL, COMMAND, ...).
func (s *StatusBar) SetMode(mode string) {
	s.mode = mode
}

// SetSelection sets the label of the active selection.
func (s *StatusBar) SetSelection(label string) {
	s.selection = label
}

// SetMessage sets a temporary status message.
func (s *StatusBar) SetMessage(msg string) {
	s.message = msg
	s.isError = false
}

// SetError sets a temporary error message.
func (s *StatusBar) SetError(msg string) {
	s.message = msg
	s.isError = true
}

// ClearMessage removes the temporary message.
func (s *StatusBar) ClearMessage() {
	s.message = ""
	s.isError = false
}

// Message returns the temporary message, if any.
func (s *StatusBar) Message() string {
	return s.message
}

// SetHistory sets the history position shown on the right.
func (s *StatusBar) SetHistory(cursor, length int, canBack, canFwd bool) {
	s.position = cursor + 1
	s.length = length
	s.canBack = canBack
	s.canFwd = canFwd
}

// SetScroll sets the scroll position shown on the right while a scrollable
// view is open. An empty string restores the history position.
func (s *StatusBar) SetScroll(info string) {
	s.scroll = info
}

// View renders the status bar.
func (s *StatusBar) View() string {
	t := theme.Current

	modeBg := t.Primary
	switch s.mode {
	case "COMMAND":
		modeBg = t.Accent
	case "INPUT":
		modeBg = t.Success
	case "HISTORY":
		modeBg = t.Secondary
	case "HELP":
		modeBg = t.Info
	}
	modeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Background).
		Background(modeBg).
		Padding(0, 1)
	mode := modeStyle.Render(s.mode)

	barStyle := lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Surface)

	var left string
	switch {
	case s.message != "":
		fg := t.Info
		if s.isError {
			fg = t.Error
		}
		left = lipgloss.NewStyle().
			Foreground(fg).
			Background(t.Surface).
			Padding(0, 1).
			Render(s.message)
	case s.selection != "":
		left = lipgloss.NewStyle().
			Foreground(t.Text).
			Background(t.Surface).
			Padding(0, 1).
			Render(s.selection)
	}

	back, fwd := "‹", "›"
	arrowStyle := lipgloss.NewStyle().Background(t.Surface)
	on := arrowStyle.Foreground(t.TextBright)
	off := arrowStyle.Foreground(t.TextDim)
	if s.canBack {
		back = on.Render(back)
	} else {
		back = off.Render(back)
	}
	if s.canFwd {
		fwd = on.Render(fwd)
	} else {
		fwd = off.Render(fwd)
	}

	posStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Secondary).
		Background(t.Surface).
		Padding(0, 1)
	right := back + posStyle.Render(fmt.Sprintf("%d/%d", s.position, s.length)) + fwd + arrowStyle.Render(" ")
	if s.scroll != "" {
		right = posStyle.Render(s.scroll)
	}

	spacerWidth := s.width - lipgloss.Width(mode) - lipgloss.Width(left) - lipgloss.Width(right)
	if spacerWidth < 0 {
		spacerWidth = 0
	}
	spacer := lipgloss.NewStyle().
		Background(t.Surface).
		Render(fmt.Sprintf("%*s", spacerWidth, ""))

	return barStyle.Render(mode + left + spacer + right)
}
