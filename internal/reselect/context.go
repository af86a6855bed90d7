// Package reselect keeps a logical row selected across structural edits of a
// sectioned list and across edit-mode transitions.
//
// Callers stage a selection with Stage while the widget cannot hold one (edit
// mode clears it and ignores programmatic selects) and apply it later with
// Commit. Outside edit mode ReselectNow does both at once. Every entry point
// must run after the edit that motivated it has been applied to both the list
// and the widget.
package reselect

// Context holds the pending selection for one widget/list pair. It does not
// own either collaborator and is not safe for concurrent use.
type Context[T comparable] struct {
	widget Widget
	list   ListSource[T]

	pending    T
	hasPending bool
}

// New creates a Context over widget and list.
func New[T comparable](widget Widget, list ListSource[T]) *Context[T] {
	return &Context[T]{widget: widget, list: list}
}

// Pending returns the staged item, if any.
func (c *Context[T]) Pending() (T, bool) {
	return c.pending, c.hasPending
}

// PendingPosition returns the current position of the staged item.
func (c *Context[T]) PendingPosition() (Position, bool) {
	if !c.hasPending {
		return Position{}, false
	}
	return c.list.PositionOf(c.pending)
}

// anchor is the pending item, else the list's detailed item.
func (c *Context[T]) anchor() (T, bool) {
	if c.hasPending {
		return c.pending, true
	}
	return c.list.DetailedItem()
}

// Stage computes the next selection and stores it as pending without
// touching the widget. With no anchor it does nothing. A failed resolution
// clears any previously staged item.
func (c *Context[T]) Stage(removed ...Position) {
	anchor, ok := c.anchor()
	if !ok {
		return
	}
	c.pending, c.hasPending = Resolve(c.list, c.widget, anchor, removed)
}

// Commit applies the pending selection, if it still has a position, and
// clears it. The delegate sees WillSelectRow, then the select, then
// DidSelectRow, exactly as for a user selection.
func (c *Context[T]) Commit() {
	if pos, ok := c.PendingPosition(); ok {
		d := c.widget.Delegate()
		if d != nil {
			d.WillSelectRow(pos)
		}
		c.widget.SelectRow(pos, true, ScrollBottom)
		if d != nil {
			d.DidSelectRow(pos)
		}
	}
	c.Refresh()
}

// Refresh drops the pending selection.
func (c *Context[T]) Refresh() {
	var zero T
	c.pending, c.hasPending = zero, false
}

// ReselectNow discards any pending selection, stages a new one and commits it
// immediately. Use it outside edit mode.
func (c *Context[T]) ReselectNow(removed ...Position) {
	c.Refresh()
	c.Stage(removed...)
	c.Commit()
}
