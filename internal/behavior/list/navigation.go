package list

import (
	"github.com/alexisbeaulieu97/headless/internal/event"
	"github.com/alexisbeaulieu97/headless/internal/signal"
)

// NavigationInputs configure how the cursor walks the collection.
type NavigationInputs struct {
	Wrap          signal.Signal[bool]
	Orientation   signal.Signal[Orientation]
	TextDirection signal.Signal[TextDirection]
}

// Navigation moves the active cursor of a Focus.
type Navigation[T FocusItem] struct {
	focus  *Focus[T]
	inputs NavigationInputs
}

// NewNavigation creates a Navigation over focus. Nil inputs default to no
// wrapping, vertical orientation and left-to-right text.
func NewNavigation[T FocusItem](focus *Focus[T], inputs NavigationInputs) *Navigation[T] {
	inputs.Wrap = signal.Or(inputs.Wrap, false)
	inputs.Orientation = signal.Or(inputs.Orientation, Vertical)
	inputs.TextDirection = signal.Or(inputs.TextDirection, LTR)
	return &Navigation[T]{focus: focus, inputs: inputs}
}

// Orientation returns the layout axis.
func (n *Navigation[T]) Orientation() Orientation {
	return n.inputs.Orientation()
}

// PrevKey is the arrow key that moves toward the start of the collection.
// Horizontal right-to-left layouts swap the arrows.
func (n *Navigation[T]) PrevKey() string {
	if n.inputs.Orientation() == Vertical {
		return event.KeyArrowUp
	}
	if n.inputs.TextDirection() == RTL {
		return event.KeyArrowRight
	}
	return event.KeyArrowLeft
}

// NextKey is the arrow key that moves toward the end of the collection.
func (n *Navigation[T]) NextKey() string {
	if n.inputs.Orientation() == Vertical {
		return event.KeyArrowDown
	}
	if n.inputs.TextDirection() == RTL {
		return event.KeyArrowLeft
	}
	return event.KeyArrowRight
}

// Goto moves the cursor straight to item.
func (n *Navigation[T]) Goto(item T) bool {
	return n.focus.Focus(item)
}

// First moves to the first focusable item.
func (n *Navigation[T]) First() bool {
	for _, item := range n.focus.Items() {
		if n.focus.IsFocusable(item) {
			return n.Goto(item)
		}
	}
	return false
}

// Last moves to the last focusable item.
func (n *Navigation[T]) Last() bool {
	items := n.focus.Items()
	for i := len(items) - 1; i >= 0; i-- {
		if n.focus.IsFocusable(items[i]) {
			return n.Goto(items[i])
		}
	}
	return false
}

// Next moves to the following focusable item.
func (n *Navigation[T]) Next() bool {
	return n.advance(1)
}

// Prev moves to the preceding focusable item.
func (n *Navigation[T]) Prev() bool {
	return n.advance(-1)
}

func (n *Navigation[T]) advance(delta int) bool {
	items := n.focus.Items()
	count := len(items)
	if count == 0 {
		return false
	}

	start := n.focus.ActiveIndex()
	if start < 0 || start >= count {
		// The cursor fell off a shrunken collection; walk in from the edge.
		start = -1
		if delta < 0 {
			start = count
		}
	}

	wrap := n.inputs.Wrap()
	for step := 1; step <= count; step++ {
		i := start + delta*step
		if wrap {
			i = ((i % count) + count) % count
		} else if i < 0 || i >= count {
			return false
		}
		if i == start {
			return false
		}
		if n.focus.IsFocusable(items[i]) {
			return n.Goto(items[i])
		}
	}
	return false
}
