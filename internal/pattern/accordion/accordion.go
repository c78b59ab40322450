// Package accordion composes navigation, focus and expansion into the
// behaviour of an accordion: a vertical or horizontal set of triggers,
// each disclosing one panel.
package accordion

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/alexisbeaulieu97/headless/internal/behavior/expansion"
	"github.com/alexisbeaulieu97/headless/internal/behavior/list"
	"github.com/alexisbeaulieu97/headless/internal/event"
	"github.com/alexisbeaulieu97/headless/internal/signal"
)

// GroupInputs are the host-owned accessors of an accordion group.
type GroupInputs struct {
	Items           signal.Signal[[]*Trigger]
	ExpandedIDs     *signal.Writable[[]string]
	ActiveIndex     *signal.Writable[int]
	Disabled        signal.Signal[bool]
	MultiExpandable signal.Signal[bool]
	SkipDisabled    signal.Signal[bool]
	Wrap            signal.Signal[bool]
	Orientation     signal.Signal[list.Orientation]
	TextDirection   signal.Signal[list.TextDirection]
	FocusMode       signal.Signal[list.FocusMode]
}

// Group owns the shared behaviours of the triggers.
type Group struct {
	inputs     GroupInputs
	Focus      *list.Focus[*Trigger]
	Navigation *list.Navigation[*Trigger]
	Expansion  *expansion.ListExpansion
}

// NewGroup wires the behaviours of an accordion group. Triggers wrap by
// default, matching the usual accordion keyboard model.
func NewGroup(inputs GroupInputs) *Group {
	inputs.Items = signal.Or[[]*Trigger](inputs.Items, nil)
	inputs.Disabled = signal.Or(inputs.Disabled, false)
	inputs.MultiExpandable = signal.Or(inputs.MultiExpandable, false)
	inputs.SkipDisabled = signal.Or(inputs.SkipDisabled, true)
	inputs.Wrap = signal.Or(inputs.Wrap, true)
	inputs.Orientation = signal.Or(inputs.Orientation, list.Vertical)
	inputs.TextDirection = signal.Or(inputs.TextDirection, list.LTR)
	inputs.FocusMode = signal.Or(inputs.FocusMode, list.Roving)
	if inputs.ActiveIndex == nil {
		inputs.ActiveIndex = signal.NewWritable(0)
	}
	if inputs.ExpandedIDs == nil {
		inputs.ExpandedIDs = signal.NewWritable([]string{})
	}

	g := &Group{inputs: inputs}
	g.Focus = list.NewFocus(list.FocusInputs[*Trigger]{
		Items:        inputs.Items,
		ActiveIndex:  inputs.ActiveIndex,
		FocusMode:    inputs.FocusMode,
		Disabled:     inputs.Disabled,
		SkipDisabled: inputs.SkipDisabled,
	})
	g.Navigation = list.NewNavigation(g.Focus, list.NavigationInputs{
		Wrap:          inputs.Wrap,
		Orientation:   inputs.Orientation,
		TextDirection: inputs.TextDirection,
	})
	g.Expansion = expansion.NewList(expansion.ListInputs{
		Items:           g.expansionItems,
		ExpandedIDs:     inputs.ExpandedIDs,
		MultiExpandable: inputs.MultiExpandable,
		Disabled:        inputs.Disabled,
	})
	return g
}

// Disabled reports whether the whole group ignores input.
func (g *Group) Disabled() bool {
	return g.inputs.Disabled()
}

// Items returns the current triggers.
func (g *Group) Items() []*Trigger {
	return g.inputs.Items()
}

// ExpandedIDs returns the expanded trigger values.
func (g *Group) ExpandedIDs() []string {
	return g.Expansion.ExpandedIDs()
}

// SetDefaultState puts the cursor on the first expanded focusable trigger,
// or the first focusable one.
func (g *Group) SetDefaultState() {
	var first *Trigger
	for _, t := range g.inputs.Items() {
		if !g.Focus.IsFocusable(t) {
			continue
		}
		if first == nil {
			first = t
		}
		if t.Expanded() {
			g.inputs.ActiveIndex.Set(t.Index())
			return
		}
	}
	if first != nil {
		g.inputs.ActiveIndex.Set(first.Index())
	}
}

// OnKeydown routes a key press to the trigger under the cursor. When the
// cursor points past a shrunken collection only navigation keys apply.
func (g *Group) OnKeydown(e event.KeyboardEvent) bool {
	if t, ok := g.Focus.ActiveItem(); ok {
		return t.OnKeydown(e)
	}
	if g.Disabled() {
		return false
	}
	return g.Keydown().Handle(e)
}

// Keydown builds the navigation table used while no trigger is active.
func (g *Group) Keydown() *event.KeyboardManager {
	nav := g.Navigation
	return event.NewKeyboard().
		On(event.Key(nav.PrevKey()), func(event.KeyboardEvent) { nav.Prev() }).
		On(event.Key(nav.NextKey()), func(event.KeyboardEvent) { nav.Next() }).
		On(event.Key(event.KeyHome), func(event.KeyboardEvent) { nav.First() }).
		On(event.Key(event.KeyEnd), func(event.KeyboardEvent) { nav.Last() })
}

// OnPointerdown routes a press to the trigger it landed on.
func (g *Group) OnPointerdown(e event.PointerEvent) bool {
	t, ok := g.itemFor(e.Target)
	if !ok {
		return false
	}
	return t.OnPointerdown(e)
}

// KeyBindings describes the keyboard contract for help rendering.
func (g *Group) KeyBindings() []key.Binding {
	prev := event.Press(g.Navigation.PrevKey()).String()
	next := event.Press(g.Navigation.NextKey()).String()
	return []key.Binding{
		key.NewBinding(key.WithKeys(prev), key.WithHelp(arrowGlyph(prev), "previous")),
		key.NewBinding(key.WithKeys(next), key.WithHelp(arrowGlyph(next), "next")),
		key.NewBinding(key.WithKeys("home", "end"), key.WithHelp("home/end", "first/last")),
		key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space/enter", "toggle")),
	}
}

func (g *Group) expansionItems() []expansion.Item {
	triggers := g.inputs.Items()
	items := make([]expansion.Item, len(triggers))
	for i, t := range triggers {
		items[i] = t.Control
	}
	return items
}

func (g *Group) itemFor(target any) (*Trigger, bool) {
	if target == nil {
		return nil, false
	}
	for _, t := range g.inputs.Items() {
		if el := t.Element(); el != nil && any(el) == target {
			return t, true
		}
	}
	return nil, false
}

func arrowGlyph(name string) string {
	switch name {
	case "up":
		return "↑"
	case "down":
		return "↓"
	case "left":
		return "←"
	case "right":
		return "→"
	}
	return name
}
