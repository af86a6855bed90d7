package reselect

import "fmt"

// Position is a (section, row) coordinate into a sectioned list. Positions are
// not stable across structural edits.
type Position struct {
	Section int
	Row     int
}

// At is shorthand for Position{Section: section, Row: row}.
func At(section, row int) Position {
	return Position{Section: section, Row: row}
}

// Compare orders positions section-major. It returns -1, 0 or +1.
func (p Position) Compare(o Position) int {
	switch {
	case p.Section < o.Section:
		return -1
	case p.Section > o.Section:
		return 1
	case p.Row < o.Row:
		return -1
	case p.Row > o.Row:
		return 1
	default:
		return 0
	}
}

// Before reports whether p sorts strictly before o.
func (p Position) Before(o Position) bool {
	return p.Compare(o) < 0
}

// String renders the position as "(section,row)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Section, p.Row)
}
