package event

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Key names understood by the patterns.
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyHome       = "Home"
	KeyEnd        = "End"
	KeySpace      = " "
	KeyEnter      = "Enter"
	KeyTab        = "Tab"
	KeyEscape     = "Escape"
	KeyPageUp     = "PageUp"
	KeyPageDown   = "PageDown"
	KeyBackspace  = "Backspace"
	KeyDelete     = "Delete"
)

// Modifier is a bit set of held modifier keys.
type Modifier uint8

const (
	// ModNone means no modifier is held.
	ModNone Modifier = 0
	// ModCtrl is the Control key.
	ModCtrl Modifier = 1 << iota
	// ModAlt is the Alt/Option key.
	ModAlt
	// ModShift is the Shift key.
	ModShift
	// ModMeta is the Meta/Command key.
	ModMeta

	// ModAny is a wildcard used in bindings; it never appears on an event.
	ModAny Modifier = 1 << 7
)

// Has reports whether all bits of mod are set.
func (m Modifier) Has(mod Modifier) bool {
	return mod != ModNone && m&mod == mod
}

// String renders the modifier set as "ctrl+shift".
func (m Modifier) String() string {
	if m == ModAny {
		return "any"
	}
	if m == ModNone {
		return "none"
	}
	var parts []string
	if m.Has(ModAlt) {
		parts = append(parts, "alt")
	}
	if m.Has(ModCtrl) {
		parts = append(parts, "ctrl")
	}
	if m.Has(ModMeta) {
		parts = append(parts, "meta")
	}
	if m.Has(ModShift) {
		parts = append(parts, "shift")
	}
	return strings.Join(parts, "+")
}

func (m Modifier) accepts(actual Modifier) bool {
	return m == ModAny || m == actual
}

// KeyboardEvent is a single key press.
type KeyboardEvent struct {
	Key  string
	Mods Modifier
}

// Press builds a KeyboardEvent.
func Press(k string, mods ...Modifier) KeyboardEvent {
	ev := KeyboardEvent{Key: k}
	for _, m := range mods {
		ev.Mods |= m
	}
	return ev
}

// Printable reports whether the key is a single printable character.
func (e KeyboardEvent) Printable() bool {
	r := []rune(e.Key)
	return len(r) == 1 && r[0] >= ' '
}

// String renders the event the way bubbletea names keys ("shift+up", "ctrl+a").
func (e KeyboardEvent) String() string {
	var b strings.Builder
	if e.Mods.Has(ModAlt) {
		b.WriteString("alt+")
	}
	if e.Mods.Has(ModCtrl) {
		b.WriteString("ctrl+")
	}
	if e.Mods.Has(ModMeta) {
		b.WriteString("meta+")
	}
	if e.Mods.Has(ModShift) {
		b.WriteString("shift+")
	}
	b.WriteString(teaKeyName(e.Key, e.Mods))
	return b.String()
}

var teaNames = map[string]string{
	KeyArrowUp:    "up",
	KeyArrowDown:  "down",
	KeyArrowLeft:  "left",
	KeyArrowRight: "right",
	KeyHome:       "home",
	KeyEnd:        "end",
	KeyEnter:      "enter",
	KeyTab:        "tab",
	KeyEscape:     "esc",
	KeyPageUp:     "pgup",
	KeyPageDown:   "pgdown",
	KeyBackspace:  "backspace",
	KeyDelete:     "delete",
}

func teaKeyName(k string, mods Modifier) string {
	if name, ok := teaNames[k]; ok {
		return name
	}
	if k == KeySpace && mods != ModNone {
		return "space"
	}
	if mods.Has(ModCtrl) {
		return strings.ToLower(k)
	}
	return k
}

// KeyboardManager is a Manager over keyboard events.
type KeyboardManager = Manager[KeyboardEvent]

// NewKeyboard returns an empty KeyboardManager.
func NewKeyboard() *KeyboardManager {
	return New[KeyboardEvent]()
}

// Key matches any of keys pressed without modifiers.
func Key(keys ...string) Matcher[KeyboardEvent] {
	return KeyWith(ModNone, keys...)
}

// KeyWith matches any of keys pressed with exactly mods held.
// ModAny accepts any modifier combination.
func KeyWith(mods Modifier, keys ...string) Matcher[KeyboardEvent] {
	return KeyWithAnyOf([]Modifier{mods}, keys...)
}

// KeyWithAnyOf matches any of keys pressed with one of the listed
// modifier masks, e.g. Ctrl+Shift or Meta+Shift.
func KeyWithAnyOf(masks []Modifier, keys ...string) Matcher[KeyboardEvent] {
	return func(e KeyboardEvent) bool {
		if !keyIn(e.Key, keys) {
			return false
		}
		for _, m := range masks {
			if m.accepts(e.Mods) {
				return true
			}
		}
		return false
	}
}

// Binding matches events whose bubbletea key string is one of the
// binding's keys. Disabled bindings never match.
func Binding(b key.Binding) Matcher[KeyboardEvent] {
	return func(e KeyboardEvent) bool {
		if !b.Enabled() {
			return false
		}
		name := e.String()
		for _, k := range b.Keys() {
			if k == name {
				return true
			}
		}
		return false
	}
}

func keyIn(k string, keys []string) bool {
	for _, candidate := range keys {
		if k == candidate || (len(k) == 1 && strings.EqualFold(k, candidate)) {
			return true
		}
	}
	return false
}
