package list

import "github.com/alexisbeaulieu97/headless/internal/signal"

// FocusInputs are the host-owned accessors a Focus reads.
type FocusInputs[T FocusItem] struct {
	Items        signal.Signal[[]T]
	ActiveIndex  *signal.Writable[int]
	FocusMode    signal.Signal[FocusMode]
	Disabled     signal.Signal[bool]
	SkipDisabled signal.Signal[bool]
}

// Focus tracks the active item of a collection and derives the
// tabindex and active-descendant values the host renders.
type Focus[T FocusItem] struct {
	inputs          FocusInputs[T]
	prevActiveIndex int
}

// NewFocus creates a Focus. Nil inputs default to an empty collection,
// roving mode, an enabled list and skipping disabled items.
func NewFocus[T FocusItem](inputs FocusInputs[T]) *Focus[T] {
	inputs.Items = signal.Or[[]T](inputs.Items, nil)
	inputs.FocusMode = signal.Or(inputs.FocusMode, Roving)
	inputs.Disabled = signal.Or(inputs.Disabled, false)
	inputs.SkipDisabled = signal.Or(inputs.SkipDisabled, true)
	if inputs.ActiveIndex == nil {
		inputs.ActiveIndex = signal.NewWritable(0)
	}
	return &Focus[T]{inputs: inputs}
}

// Items returns the current collection snapshot.
func (f *Focus[T]) Items() []T {
	return f.inputs.Items()
}

// ActiveIndex returns the cursor position.
func (f *Focus[T]) ActiveIndex() int {
	return f.inputs.ActiveIndex.Get()
}

// PrevActiveIndex returns the cursor position before the last Focus call.
func (f *Focus[T]) PrevActiveIndex() int {
	return f.prevActiveIndex
}

// Mode returns the focus addressing mode.
func (f *Focus[T]) Mode() FocusMode {
	return f.inputs.FocusMode()
}

// SkipDisabled reports whether disabled items are passed over.
func (f *Focus[T]) SkipDisabled() bool {
	return f.inputs.SkipDisabled()
}

// Disabled reports whether the whole list is disabled by the host.
func (f *Focus[T]) Disabled() bool {
	return f.inputs.Disabled()
}

// ActiveItem returns the item under the cursor. The second result is false
// when the cursor is outside the current collection.
func (f *Focus[T]) ActiveItem() (T, bool) {
	items := f.inputs.Items()
	idx := f.inputs.ActiveIndex.Get()
	if idx < 0 || idx >= len(items) {
		var zero T
		return zero, false
	}
	return items[idx], true
}

// IsActive reports whether item is under the cursor.
func (f *Focus[T]) IsActive(item T) bool {
	active, ok := f.ActiveItem()
	return ok && active == item
}

// IsFocusable reports whether item may become the active item.
func (f *Focus[T]) IsFocusable(item T) bool {
	items := f.inputs.Items()
	if len(items) == 0 || indexOf(items, item) < 0 {
		return false
	}
	return !item.Disabled() || !f.inputs.SkipDisabled()
}

// IsListDisabled reports whether no item can take focus, either because
// the host disabled the list or every item is unfocusable. The container
// itself becomes the focus target in that case.
func (f *Focus[T]) IsListDisabled() bool {
	if f.inputs.Disabled() {
		return true
	}
	for _, item := range f.inputs.Items() {
		if !item.Disabled() || !f.inputs.SkipDisabled() {
			return false
		}
	}
	return true
}

// Focus moves the cursor to item. In roving mode the item's element also
// receives host focus. It returns false when item cannot be focused.
func (f *Focus[T]) Focus(item T) bool {
	if f.IsListDisabled() || !f.IsFocusable(item) {
		return false
	}
	idx := indexOf(f.inputs.Items(), item)
	f.prevActiveIndex = f.inputs.ActiveIndex.Get()
	f.inputs.ActiveIndex.Set(idx)

	if f.inputs.FocusMode() == Roving {
		if el := item.Element(); el != nil {
			el.Focus()
		}
	}
	return true
}

// ItemTabindex returns 0 for the single tab stop of a roving list and -1
// for every other item.
func (f *Focus[T]) ItemTabindex(item T) int {
	if f.IsListDisabled() || f.inputs.FocusMode() == ActiveDescendant {
		return -1
	}
	if f.IsActive(item) {
		return 0
	}
	return -1
}

// ListTabindex returns the container's tabindex: 0 when the container holds
// focus (active-descendant mode or nothing focusable), otherwise -1.
func (f *Focus[T]) ListTabindex() int {
	if f.IsListDisabled() || f.inputs.FocusMode() == ActiveDescendant {
		return 0
	}
	return -1
}

// ActiveDescendant returns the active item's id in active-descendant mode
// and "" otherwise.
func (f *Focus[T]) ActiveDescendant() string {
	if f.IsListDisabled() || f.inputs.FocusMode() != ActiveDescendant {
		return ""
	}
	if item, ok := f.ActiveItem(); ok {
		return item.ID()
	}
	return ""
}
