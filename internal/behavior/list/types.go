package list

// Element is the host-side handle of a rendered item. In roving focus mode
// the behaviours call Focus on it to move host focus.
//
// Elements are compared by identity for pointer hit testing, so
// implementations should be pointers.
type Element interface {
	Focus()
}

// Item is the capability every collection member exposes.
type Item interface {
	ID() string
	Disabled() bool
	Element() Element
}

// SelectableItem is an Item keyed by a value for selection.
type SelectableItem interface {
	Item
	Value() string
}

// SearchableItem is an Item matched by typeahead.
type SearchableItem interface {
	Item
	SearchTerm() string
}

// FocusItem constrains the behaviours to comparable items.
type FocusItem interface {
	comparable
	Item
}

// Orientation is the visual axis items are laid out along.
type Orientation string

const (
	Vertical   Orientation = "vertical"
	Horizontal Orientation = "horizontal"
)

// TextDirection is the reading direction of the host.
type TextDirection string

const (
	LTR TextDirection = "ltr"
	RTL TextDirection = "rtl"
)

// FocusMode selects how host focus tracks the active item.
type FocusMode string

const (
	// Roving moves host focus onto the active item's element.
	Roving FocusMode = "roving"
	// ActiveDescendant keeps focus on the container and exposes the active
	// item's id instead.
	ActiveDescendant FocusMode = "activedescendant"
)

// SelectionMode decides whether moving the cursor also selects.
type SelectionMode string

const (
	// Follow selects whichever item navigation lands on.
	Follow SelectionMode = "follow"
	// Explicit only selects on Space, Enter or click.
	Explicit SelectionMode = "explicit"
)

func indexOf[T comparable](items []T, item T) int {
	for i, candidate := range items {
		if candidate == item {
			return i
		}
	}
	return -1
}
