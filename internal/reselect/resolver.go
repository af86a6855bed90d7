package reselect

// Resolve computes the item that should be selected after a structural edit,
// starting from anchor.
//
// If anchor is still in the list, the item at its current position is
// returned (the list may hand back a normalized instance). Otherwise the
// fallback position derived from removed is used. The second result is false
// when nothing can be selected.
func Resolve[T comparable](list ListSource[T], structure Structure, anchor T, removed []Position) (T, bool) {
	if pos, ok := list.PositionOf(anchor); ok {
		return list.ItemAt(pos)
	}
	pos, ok := Fallback(structure, removed)
	if !ok {
		var zero T
		return zero, false
	}
	return list.ItemAt(pos)
}

// Fallback returns the position to select when the anchor was removed.
//
// Only removed[0] is consulted. If it sorts before the last rendered row, the
// row that shifted into its slot is chosen; otherwise the new last row is.
func Fallback(structure Structure, removed []Position) (Position, bool) {
	if len(removed) == 0 {
		return Position{}, false
	}
	last, ok := structure.LastPosition()
	if !ok {
		return Position{}, false
	}
	if first := removed[0]; first.Before(last) {
		return first, true
	}
	return last, true
}
