package tui

// Mode is the list's interaction mode.
type Mode int

const (
	ModeBrowse Mode = iota // cursor moves select rows
	ModeEdit               // rows can be reordered; selection is held back
)

// String returns the status bar label for a mode.
func (m Mode) String() string {
	switch m {
	case ModeBrowse:
		return "BROWSE"
	case ModeEdit:
		return "EDIT"
	default:
		return "UNKNOWN"
	}
}

// PromptCloseMsg is emitted when the insert prompt is dismissed.
type PromptCloseMsg struct {
	Value     string
	Confirmed bool // true = enter, false = esc
}
