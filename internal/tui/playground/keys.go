package playground

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the playground-level bindings. Everything else is forwarded
// to the focused widget.
type KeyMap struct {
	NextWidget key.Binding
	PrevWidget key.Binding
	Flip       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// Keys is the default key map.
var Keys = KeyMap{
	NextWidget: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next widget"),
	),
	PrevWidget: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous widget"),
	),
	Flip: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "flip text direction"),
	),
	Help: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("f1", "more keys"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "quit"),
	),
}

// helpKeys merges the focused widget's bindings with the global ones for
// the help footer.
type helpKeys struct {
	global KeyMap
	widget []key.Binding
}

// ShortHelp returns bindings shown in the compact helpline.
func (h helpKeys) ShortHelp() []key.Binding {
	out := make([]key.Binding, 0, len(h.widget)+3)
	out = append(out, h.widget...)
	return append(out, h.global.NextWidget, h.global.Help, h.global.Quit)
}

// FullHelp returns the widget bindings and the global bindings as two columns.
func (h helpKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		h.widget,
		{h.global.NextWidget, h.global.PrevWidget, h.global.Flip, h.global.Help, h.global.Quit},
	}
}
