package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/ruminaider/reselect/internal/editor"
	"github.com/ruminaider/reselect/internal/reselect"
	"github.com/ruminaider/reselect/internal/sectionlist"
)

// ListView renders a sectioned list of entries with a cursor and a
// selection. It is the widget the editor drives, so it is always used
// through a pointer.
//
// The rendered shape only changes on Reload. Entering edit mode clears the
// selection and SelectRow is ignored while editing.
type ListView struct {
	source *sectionlist.List[editor.Entry]
	counts []int
	titles []string

	cursor      reselect.Position
	hasCursor   bool
	selected    reselect.Position
	hasSelected bool
	editing     bool

	delegate reselect.Delegate
	offset   int // first visible line
	height   int
	width    int
}

// NewListView creates a view over source and loads its shape.
func NewListView(source *sectionlist.List[editor.Entry]) *ListView {
	v := &ListView{source: source, height: 20}
	v.Reload()
	if first, ok := v.firstPosition(); ok {
		v.cursor, v.hasCursor = first, true
	}
	return v
}

// Reload snapshots section titles and row counts from the source, dropping a
// selection that no longer exists and keeping the cursor on a real row.
func (v *ListView) Reload() {
	n := v.source.SectionCount()
	v.counts = make([]int, n)
	v.titles = make([]string, n)
	for i := 0; i < n; i++ {
		v.counts[i] = v.source.RowCount(i)
		v.titles[i] = v.source.SectionTitle(i)
	}
	if v.hasSelected && !v.inRange(v.selected) {
		v.hasSelected = false
	}
	v.clampCursor()
	v.scrollTo(reselect.ScrollNone)
}

// LastPosition implements reselect.Structure.
func (v *ListView) LastPosition() (reselect.Position, bool) {
	for s := len(v.counts) - 1; s >= 0; s-- {
		if v.counts[s] > 0 {
			return reselect.At(s, v.counts[s]-1), true
		}
	}
	return reselect.Position{}, false
}

// SelectRow implements reselect.Widget. The cursor follows the selection and
// the row is scrolled to the requested edge. Animation is not rendered.
func (v *ListView) SelectRow(pos reselect.Position, _ bool, scroll reselect.ScrollPosition) {
	if v.editing || !v.inRange(pos) {
		return
	}
	v.selected, v.hasSelected = pos, true
	v.cursor, v.hasCursor = pos, true
	v.scrollTo(scroll)
}

// Delegate implements reselect.Widget.
func (v *ListView) Delegate() reselect.Delegate {
	return v.delegate
}

// SetDelegate installs d as the delegate.
func (v *ListView) SetDelegate(d reselect.Delegate) {
	v.delegate = d
}

// SetEditing switches edit mode. Entering it clears the selection.
func (v *ListView) SetEditing(editing bool) {
	v.editing = editing
	if editing {
		v.hasSelected = false
	}
}

// Editing reports whether the view is in edit mode.
func (v *ListView) Editing() bool {
	return v.editing
}

// Selected returns the selected row.
func (v *ListView) Selected() (reselect.Position, bool) {
	return v.selected, v.hasSelected
}

// Cursor returns the row under the cursor.
func (v *ListView) Cursor() (reselect.Position, bool) {
	return v.cursor, v.hasCursor
}

// SetCursor moves the cursor to pos if it is a rendered row.
func (v *ListView) SetCursor(pos reselect.Position) {
	if !v.inRange(pos) {
		return
	}
	v.cursor, v.hasCursor = pos, true
	v.scrollTo(reselect.ScrollNone)
}

// MoveCursor moves the cursor dir rows (+1 or -1), crossing section
// boundaries and skipping empty sections. It stops at either end.
func (v *ListView) MoveCursor(dir int) {
	if !v.hasCursor {
		return
	}
	p := v.cursor
	switch {
	case dir > 0 && p.Row+1 < v.counts[p.Section]:
		p.Row++
	case dir > 0:
		for s := p.Section + 1; s < len(v.counts); s++ {
			if v.counts[s] > 0 {
				p = reselect.At(s, 0)
				break
			}
		}
	case dir < 0 && p.Row > 0:
		p.Row--
	case dir < 0:
		for s := p.Section - 1; s >= 0; s-- {
			if v.counts[s] > 0 {
				p = reselect.At(s, v.counts[s]-1)
				break
			}
		}
	}
	v.cursor = p
	v.scrollTo(reselect.ScrollNone)
}

// RowCount returns the rendered number of rows in section.
func (v *ListView) RowCount(section int) int {
	if section < 0 || section >= len(v.counts) {
		return 0
	}
	return v.counts[section]
}

// SectionCount returns the rendered number of sections.
func (v *ListView) SectionCount() int {
	return len(v.counts)
}

// SetHeight sets the number of visible lines.
func (v *ListView) SetHeight(h int) {
	v.height = h
	v.scrollTo(reselect.ScrollNone)
}

// SetWidth sets the available width.
func (v *ListView) SetWidth(w int) {
	v.width = w
}

// View renders the visible part of the list.
func (v *ListView) View() string {
	lines := v.lines()
	if len(lines) == 0 {
		return ListPaneStyle.Render(DimStyle.Render("(no items)"))
	}

	end := v.offset + v.height
	if v.height <= 0 || end > len(lines) {
		end = len(lines)
	}
	visible := lines[v.offset:end]
	if v.width > 0 {
		for i, l := range visible {
			visible[i] = ansi.Truncate(l, v.width-2, "…")
		}
	}
	return ListPaneStyle.Render(strings.Join(visible, "\n"))
}

// lines renders every header and row.
func (v *ListView) lines() []string {
	var out []string
	for s, n := range v.counts {
		out = append(out, HeaderStyle.Render(fmt.Sprintf("── %s ──", v.titles[s])))
		for r := 0; r < n; r++ {
			out = append(out, v.row(reselect.At(s, r)))
		}
	}
	return out
}

func (v *ListView) row(pos reselect.Position) string {
	entry, _ := v.source.ItemAt(pos)

	marker := "  "
	if v.hasCursor && v.cursor == pos {
		marker = "> "
	}
	handle := ""
	if v.editing {
		handle = HandleStyle.Render("≡") + " "
	}

	switch {
	case v.hasSelected && v.selected == pos:
		return marker + handle + SelectedRowStyle.Render(entry.Title)
	case v.hasCursor && v.cursor == pos:
		return marker + handle + CursorRowStyle.Render(entry.Title)
	default:
		return marker + handle + entry.Title
	}
}

// line returns the rendered line index of pos; each section adds a header.
func (v *ListView) line(pos reselect.Position) int {
	n := 0
	for s := 0; s < pos.Section && s < len(v.counts); s++ {
		n += 1 + v.counts[s]
	}
	return n + 1 + pos.Row
}

func (v *ListView) totalLines() int {
	n := len(v.counts)
	for _, c := range v.counts {
		n += c
	}
	return n
}

// scrollTo adjusts the offset so the cursor row sits at the requested edge.
// ScrollNone only scrolls as far as needed to keep it visible.
func (v *ListView) scrollTo(scroll reselect.ScrollPosition) {
	if v.height <= 0 {
		return
	}
	if v.hasCursor {
		idx := v.line(v.cursor)
		switch scroll {
		case reselect.ScrollTop:
			v.offset = idx
		case reselect.ScrollMiddle:
			v.offset = idx - v.height/2
		case reselect.ScrollBottom:
			v.offset = idx - v.height + 1
		default:
			if idx < v.offset {
				v.offset = idx
			}
			if idx >= v.offset+v.height {
				v.offset = idx - v.height + 1
			}
		}
	}
	maxOffset := v.totalLines() - v.height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.offset > maxOffset {
		v.offset = maxOffset
	}
	if v.offset < 0 {
		v.offset = 0
	}
}

func (v *ListView) firstPosition() (reselect.Position, bool) {
	for s, n := range v.counts {
		if n > 0 {
			return reselect.At(s, 0), true
		}
	}
	return reselect.Position{}, false
}

// clampCursor keeps the cursor on an existing row, preferring the same
// section.
func (v *ListView) clampCursor() {
	if v.hasCursor && v.inRange(v.cursor) {
		return
	}
	if v.hasCursor && v.cursor.Section < len(v.counts) && v.counts[v.cursor.Section] > 0 {
		v.cursor.Row = v.counts[v.cursor.Section] - 1
		return
	}
	if last, ok := v.LastPosition(); ok {
		v.cursor, v.hasCursor = last, true
		return
	}
	v.hasCursor = false
}

func (v *ListView) inRange(pos reselect.Position) bool {
	return pos.Section >= 0 && pos.Section < len(v.counts) &&
		pos.Row >= 0 && pos.Row < v.counts[pos.Section]
}
