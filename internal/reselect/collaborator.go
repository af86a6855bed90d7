package reselect

// ListSource is the data side of a list: it maps items to their current
// positions and back. Implementations are owned by the embedding application.
type ListSource[T comparable] interface {
	// PositionOf returns the current position of item, if it is present.
	PositionOf(item T) (Position, bool)
	// ItemAt returns the item currently at pos, if pos is in range.
	ItemAt(pos Position) (T, bool)
	// DetailedItem returns the item shown in a detail pane, if any.
	DetailedItem() (T, bool)
}

// Structure exposes the shape the widget currently renders.
type Structure interface {
	// LastPosition returns the final rendered row, or false when the list
	// renders no rows.
	LastPosition() (Position, bool)
}

// ScrollPosition names the edge a selected row is scrolled to.
type ScrollPosition int

const (
	ScrollNone ScrollPosition = iota
	ScrollTop
	ScrollMiddle
	ScrollBottom
)

// String returns the lowercase name of the scroll position.
func (s ScrollPosition) String() string {
	switch s {
	case ScrollNone:
		return "none"
	case ScrollTop:
		return "top"
	case ScrollMiddle:
		return "middle"
	case ScrollBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Widget is the view side of a list.
//
// SelectRow must not invoke the delegate itself; Context fires the delegate
// hooks around it.
type Widget interface {
	Structure
	SelectRow(pos Position, animated bool, scroll ScrollPosition)
	// Delegate may return nil.
	Delegate() Delegate
}

// Delegate receives the notifications a user-driven selection produces.
type Delegate interface {
	WillSelectRow(pos Position)
	DidSelectRow(pos Position)
}
