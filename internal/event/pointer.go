package event

// PointerEvent is a primary-button press on a target element.
type PointerEvent struct {
	Target any
	Mods   Modifier
	X, Y   int
}

// PointerManager is a Manager over pointer events.
type PointerManager = Manager[PointerEvent]

// NewPointer returns an empty PointerManager.
func NewPointer() *PointerManager {
	return New[PointerEvent]()
}

// Click matches presses made with exactly mods held (ModAny for any).
func Click(mods Modifier) Matcher[PointerEvent] {
	return func(e PointerEvent) bool {
		return mods.accepts(e.Mods)
	}
}

// ClickAnyOf matches presses made with one of the listed modifier masks.
func ClickAnyOf(masks ...Modifier) Matcher[PointerEvent] {
	return func(e PointerEvent) bool {
		for _, m := range masks {
			if m.accepts(e.Mods) {
				return true
			}
		}
		return false
	}
}
