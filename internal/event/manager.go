// Package event dispatches keyboard and pointer input to interaction
// patterns through ordered binding tables.
//
// A Manager is data, not control flow: bindings are evaluated in
// registration order and only the first match runs. Patterns register
// modifier-specific bindings (Shift+Arrow) ahead of plain ones so the
// more specific binding wins.
package event

// Matcher reports whether a binding applies to an event.
type Matcher[E any] func(E) bool

// Handler reacts to a matched event.
type Handler[E any] func(E)

type binding[E any] struct {
	match  Matcher[E]
	handle Handler[E]
}

// Manager is an ordered (Matcher, Handler) table.
type Manager[E any] struct {
	bindings []binding[E]
}

// New returns an empty Manager.
func New[E any]() *Manager[E] {
	return &Manager[E]{}
}

// On appends a binding and returns the manager for chaining.
// Nil matchers or handlers are ignored.
func (m *Manager[E]) On(match Matcher[E], handle Handler[E]) *Manager[E] {
	if match == nil || handle == nil {
		return m
	}
	m.bindings = append(m.bindings, binding[E]{match: match, handle: handle})
	return m
}

// Handle runs the handler of the first binding matching e.
// It returns false when nothing matched, leaving default behaviour to the host.
func (m *Manager[E]) Handle(e E) bool {
	if m == nil {
		return false
	}
	for _, b := range m.bindings {
		if b.match(e) {
			b.handle(e)
			return true
		}
	}
	return false
}

// Len returns the number of registered bindings.
func (m *Manager[E]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.bindings)
}
