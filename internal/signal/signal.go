// Package signal provides the reactive accessors the interaction patterns
// read their inputs through.
//
// A Signal is a plain getter. Patterns call it on every operation and never
// cache the result, so a host may swap item lists or configuration between
// calls and the next read observes the change.
package signal

// Signal is a read-only accessor for a value owned elsewhere.
type Signal[T any] func() T

// Static returns a Signal that always yields v.
func Static[T any](v T) Signal[T] {
	return func() T { return v }
}

// Or returns s, or a Static default when s is nil.
func Or[T any](s Signal[T], def T) Signal[T] {
	if s == nil {
		return Static(def)
	}
	return s
}

// Writable is a settable value cell. It is not safe for concurrent use;
// callers serialize access on their own event loop.
type Writable[T any] struct {
	value     T
	listeners []*listener[T]
}

type listener[T any] struct {
	fn func(T)
}

// NewWritable creates a Writable holding initial.
func NewWritable[T any](initial T) *Writable[T] {
	return &Writable[T]{value: initial}
}

// Get returns the current value.
func (w *Writable[T]) Get() T {
	return w.value
}

// Set stores v and notifies subscribers.
func (w *Writable[T]) Set(v T) {
	w.value = v
	w.notify()
}

// Update replaces the value with fn(current).
func (w *Writable[T]) Update(fn func(T) T) {
	w.Set(fn(w.value))
}

// Signal exposes the cell as a read-only accessor.
func (w *Writable[T]) Signal() Signal[T] {
	return w.Get
}

// Subscribe registers fn to run after every Set. The returned function
// removes the subscription.
func (w *Writable[T]) Subscribe(fn func(T)) func() {
	l := &listener[T]{fn: fn}
	w.listeners = append(w.listeners, l)
	return func() {
		for i, existing := range w.listeners {
			if existing == l {
				w.listeners = append(w.listeners[:i], w.listeners[i+1:]...)
				return
			}
		}
	}
}

func (w *Writable[T]) notify() {
	if len(w.listeners) == 0 {
		return
	}
	// Copy so a listener may unsubscribe while being notified.
	snapshot := make([]*listener[T], len(w.listeners))
	copy(snapshot, w.listeners)
	for _, l := range snapshot {
		l.fn(w.value)
	}
}
