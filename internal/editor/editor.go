// Package editor applies structural edits to a sectioned list and keeps the
// selection on the right row while doing so.
package editor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ruminaider/reselect/internal/reselect"
	"github.com/ruminaider/reselect/internal/sectionlist"
)

// Surface is a widget the editor can drive.
type Surface interface {
	reselect.Widget
	// Reload re-reads the list's shape.
	Reload()
	SetEditing(editing bool)
	Editing() bool
	SetDelegate(d reselect.Delegate)
}

// Option configures an Editor.
type Option func(*Editor)

// WithLogger sets the logger for edit and selection events. By default
// nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) {
		e.logger = l
	}
}

// WithOnSelect registers fn to run after every selection, user-driven or
// restored.
func WithOnSelect(fn func(Entry, reselect.Position)) Option {
	return func(e *Editor) {
		e.onSelect = fn
	}
}

// Editor owns the edit sequencing for one list and one surface. It installs
// itself as the surface's delegate.
type Editor struct {
	list     *sectionlist.List[Entry]
	surface  Surface
	sel      *reselect.Context[Entry]
	logger   *slog.Logger
	onSelect func(Entry, reselect.Position)
}

// New creates an Editor over list and surface.
func New(list *sectionlist.List[Entry], surface Surface, opts ...Option) *Editor {
	e := &Editor{
		list:    list,
		surface: surface,
		sel:     reselect.New[Entry](surface, list),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.New(discardHandler{})
	}
	surface.SetDelegate(e)
	return e
}

// List returns the edited list.
func (e *Editor) List() *sectionlist.List[Entry] {
	return e.list
}

// Editing reports whether the surface is in edit mode.
func (e *Editor) Editing() bool {
	return e.surface.Editing()
}

// Detailed returns the entry currently shown as detailed.
func (e *Editor) Detailed() (Entry, bool) {
	return e.list.DetailedItem()
}

// Pending returns the staged selection, if any.
func (e *Editor) Pending() (Entry, bool) {
	return e.sel.Pending()
}

// PendingPosition returns where the staged selection currently is.
func (e *Editor) PendingPosition() (reselect.Position, bool) {
	return e.sel.PendingPosition()
}

// Select performs a user selection of the row at pos. It is ignored while
// editing or when pos holds no row.
func (e *Editor) Select(pos reselect.Position) {
	if e.surface.Editing() {
		return
	}
	if _, ok := e.list.ItemAt(pos); !ok {
		return
	}
	e.WillSelectRow(pos)
	e.surface.SelectRow(pos, false, reselect.ScrollNone)
	e.DidSelectRow(pos)
}

// Restore re-applies the selection of the staged or detailed entry without
// any edit, e.g. when a list is first shown.
func (e *Editor) Restore() {
	e.afterEdit(nil)
}

// BeginEditing stages the current selection and enters edit mode.
func (e *Editor) BeginEditing() {
	if e.surface.Editing() {
		return
	}
	e.sel.Stage()
	e.surface.SetEditing(true)
	e.logger.Debug("edit mode entered", "pending", e.pendingAttr())
}

// EndEditing leaves edit mode and restores the staged selection.
func (e *Editor) EndEditing() {
	if !e.surface.Editing() {
		return
	}
	e.surface.SetEditing(false)
	e.logger.Debug("edit mode left", "pending", e.pendingAttr())
	e.sel.Commit()
}

// Delete removes the rows at positions.
func (e *Editor) Delete(positions ...reselect.Position) error {
	removed, err := e.list.Delete(positions...)
	if err != nil {
		return err
	}
	e.logger.Debug("rows deleted", "positions", fmt.Sprint(removed))
	e.afterEdit(removed)
	return nil
}

// Move relocates the row at from to to.
func (e *Editor) Move(from, to reselect.Position) error {
	if err := e.list.Move(from, to); err != nil {
		return err
	}
	e.logger.Debug("row moved", "from", from.String(), "to", to.String())
	e.afterEdit(nil)
	return nil
}

// Insert adds a new entry titled title at pos.
func (e *Editor) Insert(pos reselect.Position, title string) (Entry, error) {
	entry := NewEntry(title)
	if err := e.list.Insert(pos, entry); err != nil {
		return Entry{}, err
	}
	e.logger.Debug("row inserted", "at", pos.String(), "title", title)
	e.afterEdit(nil)
	return entry, nil
}

// afterEdit runs once the list has changed: the surface is reloaded first so
// that resolution sees the final shape.
func (e *Editor) afterEdit(removed []reselect.Position) {
	e.surface.Reload()
	if e.surface.Editing() {
		e.sel.Stage(removed...)
	} else {
		e.sel.ReselectNow(removed...)
	}
	e.dropStaleDetail()
}

// dropStaleDetail forgets a detailed entry that is no longer in the list.
func (e *Editor) dropStaleDetail() {
	d, ok := e.list.DetailedItem()
	if !ok {
		return
	}
	if _, present := e.list.PositionOf(d); !present {
		e.list.ClearDetailed()
		e.logger.Debug("detail cleared", "title", d.Title)
	}
}

// WillSelectRow implements reselect.Delegate.
func (e *Editor) WillSelectRow(pos reselect.Position) {
	e.logger.Debug("will select", "at", pos.String())
}

// DidSelectRow implements reselect.Delegate. The selected entry becomes the
// detailed one.
func (e *Editor) DidSelectRow(pos reselect.Position) {
	entry, ok := e.list.ItemAt(pos)
	if !ok {
		return
	}
	e.list.SetDetailed(entry)
	e.logger.Debug("did select", "at", pos.String(), "title", entry.Title)
	if e.onSelect != nil {
		e.onSelect(entry, pos)
	}
}

func (e *Editor) pendingAttr() string {
	if p, ok := e.sel.PendingPosition(); ok {
		return p.String()
	}
	return "none"
}

// discardHandler drops every record.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
