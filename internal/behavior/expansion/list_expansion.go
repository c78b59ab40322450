package expansion

import "github.com/alexisbeaulieu97/headless/internal/signal"

// ListInputs wire a ListExpansion.
type ListInputs struct {
	Items           signal.Signal[[]Item]
	ExpandedIDs     *signal.Writable[[]string]
	MultiExpandable signal.Signal[bool]
	Disabled        signal.Signal[bool]
}

// ListExpansion tracks the expanded members of a collection by expansion id
// and enforces single or multi expansion.
type ListExpansion struct {
	inputs ListInputs
}

var _ Manager = (*ListExpansion)(nil)

// NewList creates a ListExpansion.
func NewList(inputs ListInputs) *ListExpansion {
	inputs.Items = signal.Or[[]Item](inputs.Items, nil)
	inputs.MultiExpandable = signal.Or(inputs.MultiExpandable, false)
	inputs.Disabled = signal.Or(inputs.Disabled, false)
	if inputs.ExpandedIDs == nil {
		inputs.ExpandedIDs = signal.NewWritable([]string{})
	}
	return &ListExpansion{inputs: inputs}
}

// ExpandedIDs returns a copy of the expanded keys in expansion order.
func (l *ListExpansion) ExpandedIDs() []string {
	return append([]string(nil), l.inputs.ExpandedIDs.Get()...)
}

// IsExpanded reports whether item's key is in the expanded set.
func (l *ListExpansion) IsExpanded(item Item) bool {
	return contains(l.inputs.ExpandedIDs.Get(), item.ExpansionID())
}

// IsExpandable reports whether item belongs to the collection and may change.
func (l *ListExpansion) IsExpandable(item Item) bool {
	if l.inputs.Disabled() || !item.IsExpandable() {
		return false
	}
	id := item.ExpansionID()
	for _, candidate := range l.inputs.Items() {
		if candidate.ExpansionID() == id {
			return true
		}
	}
	return false
}

// Expand adds item to the expanded set. In single mode every other item is
// collapsed first.
func (l *ListExpansion) Expand(item Item) {
	if !l.IsExpandable(item) || l.IsExpanded(item) {
		return
	}
	id := item.ExpansionID()
	if !l.inputs.MultiExpandable() {
		l.inputs.ExpandedIDs.Set([]string{id})
		return
	}
	current := l.inputs.ExpandedIDs.Get()
	next := make([]string, 0, len(current)+1)
	next = append(next, current...)
	l.inputs.ExpandedIDs.Set(append(next, id))
}

// Collapse removes item from the expanded set.
func (l *ListExpansion) Collapse(item Item) {
	if !l.IsExpandable(item) || !l.IsExpanded(item) {
		return
	}
	id := item.ExpansionID()
	current := l.inputs.ExpandedIDs.Get()
	next := make([]string, 0, len(current))
	for _, v := range current {
		if v != id {
			next = append(next, v)
		}
	}
	l.inputs.ExpandedIDs.Set(next)
}

// Toggle flips item between expanded and collapsed.
func (l *ListExpansion) Toggle(item Item) {
	if l.IsExpanded(item) {
		l.Collapse(item)
		return
	}
	l.Expand(item)
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
