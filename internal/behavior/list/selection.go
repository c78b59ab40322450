package list

import "github.com/alexisbeaulieu97/headless/internal/signal"

// SelectionItem constrains Selection to comparable, value-keyed items.
type SelectionItem interface {
	comparable
	SelectableItem
}

// SelectionInputs are the host-owned accessors a Selection reads.
type SelectionInputs struct {
	// Values holds the selected item values in selection order.
	Values *signal.Writable[[]string]
	Multi  signal.Signal[bool]
}

// Selection maintains the set of selected item values. Values survive the
// host replacing the item slice as long as matching values persist.
//
// Range selection is anchored: BeginRange fixes one end, SelectRange
// selects everything between the anchor and the active item and
// deselects whatever the previous range covered beyond it.
type Selection[T SelectionItem] struct {
	focus      *Focus[T]
	inputs     SelectionInputs
	rangeStart int
	rangeEnd   int
}

// NewSelection creates a Selection positioned by focus.
func NewSelection[T SelectionItem](focus *Focus[T], inputs SelectionInputs) *Selection[T] {
	if inputs.Values == nil {
		inputs.Values = signal.NewWritable([]string{})
	}
	inputs.Multi = signal.Or(inputs.Multi, false)
	return &Selection[T]{focus: focus, inputs: inputs}
}

// Multi reports whether more than one value may be selected.
func (s *Selection[T]) Multi() bool {
	return s.inputs.Multi()
}

// Values returns a copy of the selected values.
func (s *Selection[T]) Values() []string {
	return append([]string(nil), s.inputs.Values.Get()...)
}

// IsSelected reports whether item's value is selected.
func (s *Selection[T]) IsSelected(item T) bool {
	return containsValue(s.inputs.Values.Get(), item.Value())
}

// SelectedItems returns the items of the current collection whose values
// are selected, in collection order.
func (s *Selection[T]) SelectedItems() []T {
	values := s.inputs.Values.Get()
	var out []T
	for _, item := range s.focus.Items() {
		if containsValue(values, item.Value()) {
			out = append(out, item)
		}
	}
	return out
}

// Select adds item to the selection and anchors range selection on it.
// In single mode any other selection is replaced.
func (s *Selection[T]) Select(item T) {
	s.selectItem(item, true)
}

// Deselect removes item from the selection.
func (s *Selection[T]) Deselect(item T) {
	if !s.canChange(item) {
		return
	}
	s.removeValue(item.Value())
}

// Toggle flips item's membership.
func (s *Selection[T]) Toggle(item T) {
	if s.IsSelected(item) {
		s.Deselect(item)
		return
	}
	s.Select(item)
}

// ToggleActive flips the active item's membership, leaving others alone.
func (s *Selection[T]) ToggleActive() {
	if item, ok := s.focus.ActiveItem(); ok {
		s.Toggle(item)
	}
}

// SelectOne makes the active item the only selected item.
func (s *Selection[T]) SelectOne() {
	item, ok := s.focus.ActiveItem()
	if !ok || !s.canChange(item) {
		return
	}
	s.DeselectAll()
	s.selectItem(item, true)
}

// DeselectOne removes the active item from the selection.
func (s *Selection[T]) DeselectOne() {
	if item, ok := s.focus.ActiveItem(); ok {
		s.Deselect(item)
	}
}

// ToggleOne deselects the active item when selected, otherwise makes it the
// only selected item.
func (s *Selection[T]) ToggleOne() {
	item, ok := s.focus.ActiveItem()
	if !ok {
		return
	}
	if s.IsSelected(item) {
		s.Deselect(item)
		return
	}
	s.SelectOne()
}

// SelectAll selects every enabled item. It does nothing in single mode.
func (s *Selection[T]) SelectAll() {
	if !s.inputs.Multi() {
		return
	}
	for _, item := range s.focus.Items() {
		s.selectItem(item, false)
	}
	s.BeginRange(s.focus.ActiveIndex())
}

// DeselectAll clears the selection. Values of disabled items stay selected;
// values no current item carries are dropped.
func (s *Selection[T]) DeselectAll() {
	if s.focus.Disabled() {
		return
	}
	items := s.focus.Items()
	kept := make([]string, 0)
	for _, value := range s.inputs.Values.Get() {
		for _, item := range items {
			if item.Value() == value && item.Disabled() {
				kept = append(kept, value)
				break
			}
		}
	}
	s.inputs.Values.Set(kept)
}

// ToggleAll selects every enabled item unless all of them already are, in
// which case it clears the selection.
func (s *Selection[T]) ToggleAll() {
	if !s.inputs.Multi() {
		return
	}
	values := s.inputs.Values.Get()
	for _, item := range s.focus.Items() {
		if !item.Disabled() && !containsValue(values, item.Value()) {
			s.SelectAll()
			return
		}
	}
	s.DeselectAll()
}

// BeginRange anchors range selection at index.
func (s *Selection[T]) BeginRange(index int) {
	s.rangeStart = index
	s.rangeEnd = index
}

// SelectRange selects the span between the anchor and the active item.
// Items the previous span covered beyond the new one are deselected, so
// moving back toward the anchor contracts the range.
func (s *Selection[T]) SelectRange() {
	if !s.inputs.Multi() {
		return
	}
	active := s.focus.ActiveIndex()
	inRange := s.span(s.rangeStart, active)
	for _, item := range s.span(s.rangeEnd, active) {
		if indexOf(inRange, item) < 0 {
			s.Deselect(item)
		}
	}
	for _, item := range inRange {
		s.selectItem(item, false)
	}
	if len(inRange) > 0 {
		s.rangeEnd = active
	}
}

func (s *Selection[T]) selectItem(item T, anchor bool) {
	if !s.canChange(item) {
		return
	}
	idx := indexOf(s.focus.Items(), item)
	if anchor {
		s.BeginRange(idx)
	}

	value := item.Value()
	current := s.inputs.Values.Get()
	if !s.inputs.Multi() {
		if len(current) == 1 && current[0] == value {
			return
		}
		s.inputs.Values.Set([]string{value})
		return
	}
	if containsValue(current, value) {
		return
	}
	next := make([]string, 0, len(current)+1)
	next = append(next, current...)
	s.inputs.Values.Set(append(next, value))
}

func (s *Selection[T]) canChange(item T) bool {
	if s.focus.Disabled() || item.Disabled() {
		return false
	}
	return indexOf(s.focus.Items(), item) >= 0
}

func (s *Selection[T]) removeValue(value string) {
	current := s.inputs.Values.Get()
	if !containsValue(current, value) {
		return
	}
	next := make([]string, 0, len(current))
	for _, v := range current {
		if v != value {
			next = append(next, v)
		}
	}
	s.inputs.Values.Set(next)
}

// span returns the items between from and the active index inclusive,
// ordered from from toward to.
func (s *Selection[T]) span(from, to int) []T {
	items := s.focus.Items()
	if from < 0 || to < 0 || from >= len(items) || to >= len(items) {
		return nil
	}
	var out []T
	if from <= to {
		for i := from; i <= to; i++ {
			out = append(out, items[i])
		}
		return out
	}
	for i := from; i >= to; i-- {
		out = append(out, items[i])
	}
	return out
}

func containsValue(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
