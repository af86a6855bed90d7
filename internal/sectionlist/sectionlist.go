// Package sectionlist is an in-memory sectioned collection that serves as the
// data side of a reselectable list.
package sectionlist

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ruminaider/reselect/internal/reselect"
)

var (
	// ErrOutOfRange is returned when a position does not address a row (or,
	// for inserts, a slot) in the list.
	ErrOutOfRange = errors.New("position out of range")

	// ErrDuplicate is returned when Delete is given the same position twice.
	ErrDuplicate = errors.New("duplicate position")
)

// Section is a titled run of items.
type Section[T comparable] struct {
	Title string
	Items []T
}

// List holds sections of items plus the currently detailed item.
type List[T comparable] struct {
	sections    []Section[T]
	detailed    T
	hasDetailed bool
}

// New creates a list from the given sections. The item slices are copied.
func New[T comparable](sections ...Section[T]) *List[T] {
	l := &List[T]{}
	for _, s := range sections {
		l.AppendSection(s.Title, s.Items...)
	}
	return l
}

// AppendSection adds a section at the end of the list.
func (l *List[T]) AppendSection(title string, items ...T) {
	l.sections = append(l.sections, Section[T]{
		Title: title,
		Items: append([]T(nil), items...),
	})
}

// SectionCount returns the number of sections.
func (l *List[T]) SectionCount() int {
	return len(l.sections)
}

// RowCount returns the number of rows in section, or 0 if it does not exist.
func (l *List[T]) RowCount(section int) int {
	if section < 0 || section >= len(l.sections) {
		return 0
	}
	return len(l.sections[section].Items)
}

// SectionTitle returns the title of section, or "" if it does not exist.
func (l *List[T]) SectionTitle(section int) string {
	if section < 0 || section >= len(l.sections) {
		return ""
	}
	return l.sections[section].Title
}

// Len returns the total number of rows across all sections.
func (l *List[T]) Len() int {
	n := 0
	for _, s := range l.sections {
		n += len(s.Items)
	}
	return n
}

// PositionOf returns the first position holding item.
func (l *List[T]) PositionOf(item T) (reselect.Position, bool) {
	for si, s := range l.sections {
		for ri, it := range s.Items {
			if it == item {
				return reselect.At(si, ri), true
			}
		}
	}
	return reselect.Position{}, false
}

// ItemAt returns the item at pos.
func (l *List[T]) ItemAt(pos reselect.Position) (T, bool) {
	if !l.valid(pos) {
		var zero T
		return zero, false
	}
	return l.sections[pos.Section].Items[pos.Row], true
}

// DetailedItem returns the item shown in the detail pane, if any.
func (l *List[T]) DetailedItem() (T, bool) {
	return l.detailed, l.hasDetailed
}

// SetDetailed records item as the detailed item. It need not be in the list.
func (l *List[T]) SetDetailed(item T) {
	l.detailed, l.hasDetailed = item, true
}

// ClearDetailed forgets the detailed item.
func (l *List[T]) ClearDetailed() {
	var zero T
	l.detailed, l.hasDetailed = zero, false
}

// Insert places item at pos, shifting later rows of the section down. Row may
// equal the section's row count to append.
func (l *List[T]) Insert(pos reselect.Position, item T) error {
	if pos.Section < 0 || pos.Section >= len(l.sections) ||
		pos.Row < 0 || pos.Row > len(l.sections[pos.Section].Items) {
		return fmt.Errorf("inserting at %s: %w", pos, ErrOutOfRange)
	}
	items := l.sections[pos.Section].Items
	items = append(items, item)
	copy(items[pos.Row+1:], items[pos.Row:])
	items[pos.Row] = item
	l.sections[pos.Section].Items = items
	return nil
}

// Delete removes the rows at positions, all addressed against the list as it
// was before the call. It returns the removed positions in the order given.
// Nothing is removed if any position is invalid.
func (l *List[T]) Delete(positions ...reselect.Position) ([]reselect.Position, error) {
	seen := make(map[reselect.Position]bool, len(positions))
	for _, p := range positions {
		if !l.valid(p) {
			return nil, fmt.Errorf("deleting %s: %w", p, ErrOutOfRange)
		}
		if seen[p] {
			return nil, fmt.Errorf("deleting %s: %w", p, ErrDuplicate)
		}
		seen[p] = true
	}

	// Remove from the bottom up so earlier positions stay valid.
	ordered := append([]reselect.Position(nil), positions...)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[j].Before(ordered[i])
	})
	for _, p := range ordered {
		items := l.sections[p.Section].Items
		l.sections[p.Section].Items = append(items[:p.Row], items[p.Row+1:]...)
	}
	return append([]reselect.Position(nil), positions...), nil
}

// Move relocates the row at from so that it ends up at to. The destination is
// addressed against the list after the row has been taken out.
func (l *List[T]) Move(from, to reselect.Position) error {
	item, ok := l.ItemAt(from)
	if !ok {
		return fmt.Errorf("moving from %s: %w", from, ErrOutOfRange)
	}
	if to.Section < 0 || to.Section >= len(l.sections) {
		return fmt.Errorf("moving to %s: %w", to, ErrOutOfRange)
	}
	limit := len(l.sections[to.Section].Items)
	if to.Section == from.Section {
		limit--
	}
	if to.Row < 0 || to.Row > limit {
		return fmt.Errorf("moving to %s: %w", to, ErrOutOfRange)
	}

	items := l.sections[from.Section].Items
	l.sections[from.Section].Items = append(items[:from.Row], items[from.Row+1:]...)
	return l.Insert(to, item)
}

func (l *List[T]) valid(pos reselect.Position) bool {
	return pos.Section >= 0 && pos.Section < len(l.sections) &&
		pos.Row >= 0 && pos.Row < len(l.sections[pos.Section].Items)
}
