// Package headless provides a list widget that renders nothing. It follows
// the selection rules of an interactive table: entering edit mode clears the
// selection and programmatic selects are ignored while editing.
package headless

import "github.com/ruminaider/reselect/internal/reselect"

// Counter reports the shape of the data behind a table.
type Counter interface {
	SectionCount() int
	RowCount(section int) int
}

// Selection is the table's current selection and how it was applied.
type Selection struct {
	Position reselect.Position
	Animated bool
	Scroll   reselect.ScrollPosition
}

// Table is a headless reselect.Widget.
type Table struct {
	source   Counter
	counts   []int
	editing  bool
	selected *Selection
	delegate reselect.Delegate

	// Selects counts SelectRow calls that changed the selection.
	Selects int
}

// NewTable creates a table over source and loads its shape.
func NewTable(source Counter) *Table {
	t := &Table{source: source}
	t.Reload()
	return t
}

// Reload snapshots the section and row counts from the source. Until the
// next Reload the table keeps reporting the old shape.
func (t *Table) Reload() {
	n := t.source.SectionCount()
	t.counts = make([]int, n)
	for i := range t.counts {
		t.counts[i] = t.source.RowCount(i)
	}
	if t.selected != nil && !t.inRange(t.selected.Position) {
		t.selected = nil
	}
}

// LastPosition returns the last row of the last non-empty section.
func (t *Table) LastPosition() (reselect.Position, bool) {
	for s := len(t.counts) - 1; s >= 0; s-- {
		if t.counts[s] > 0 {
			return reselect.At(s, t.counts[s]-1), true
		}
	}
	return reselect.Position{}, false
}

// SelectRow selects pos unless the table is editing or pos is out of range.
func (t *Table) SelectRow(pos reselect.Position, animated bool, scroll reselect.ScrollPosition) {
	if t.editing || !t.inRange(pos) {
		return
	}
	t.selected = &Selection{Position: pos, Animated: animated, Scroll: scroll}
	t.Selects++
}

// Selected returns the current selection.
func (t *Table) Selected() (Selection, bool) {
	if t.selected == nil {
		return Selection{}, false
	}
	return *t.selected, true
}

// Deselect clears the selection.
func (t *Table) Deselect() {
	t.selected = nil
}

// SetEditing switches edit mode. Entering it clears the selection.
func (t *Table) SetEditing(editing bool) {
	t.editing = editing
	if editing {
		t.selected = nil
	}
}

// Editing reports whether the table is in edit mode.
func (t *Table) Editing() bool {
	return t.editing
}

// Delegate returns the delegate, which may be nil.
func (t *Table) Delegate() reselect.Delegate {
	return t.delegate
}

// SetDelegate installs d as the delegate.
func (t *Table) SetDelegate(d reselect.Delegate) {
	t.delegate = d
}

func (t *Table) inRange(pos reselect.Position) bool {
	return pos.Section >= 0 && pos.Section < len(t.counts) &&
		pos.Row >= 0 && pos.Row < t.counts[pos.Section]
}
