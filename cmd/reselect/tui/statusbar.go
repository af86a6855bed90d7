package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StatusBar renders the bottom row with the mode, the staged selection and
// keyboard shortcuts.
type StatusBar struct {
	mode    Mode
	pending string
	message string
	isError bool
	width   int
}

// SetWidth sets the available width for rendering.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// Update refreshes the mode and the pending-selection label ("" for none).
func (s *StatusBar) Update(mode Mode, pending string) {
	s.mode = mode
	s.pending = pending
}

// SetMessage shows msg until the next call. Errors are highlighted.
func (s *StatusBar) SetMessage(msg string, isError bool) {
	s.message = msg
	s.isError = isError
}

// View renders the status bar.
func (s StatusBar) View() string {
	modeStyle := BrowseModeStyle
	if s.mode == ModeEdit {
		modeStyle = EditModeStyle
	}
	left := modeStyle.Render(s.mode.String())
	if s.pending != "" {
		left += " " + fmt.Sprintf("pending %s", s.pending)
	}
	if s.message != "" {
		msg := s.message
		if s.isError {
			msg = ErrorStyle.Render(msg)
		}
		left += " · " + msg
	}

	shortcuts := []string{
		StatusBarKeyStyle.Render("e") + ": edit",
		StatusBarKeyStyle.Render("d") + ": delete",
		StatusBarKeyStyle.Render("J/K") + ": move",
		StatusBarKeyStyle.Render("o") + ": insert",
		StatusBarKeyStyle.Render("q") + ": quit",
	}
	right := strings.Join(shortcuts, " · ")

	gap := s.width - 2 - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		gap = 1
	}

	return StatusBarStyle.Width(s.width).Render(left + strings.Repeat(" ", gap) + right)
}
