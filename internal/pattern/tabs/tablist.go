// Package tabs composes focus, navigation, single selection and the
// expansion link into the behaviour of a tab list.
package tabs

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/alexisbeaulieu97/headless/internal/behavior/list"
	"github.com/alexisbeaulieu97/headless/internal/event"
	"github.com/alexisbeaulieu97/headless/internal/signal"
)

// TabListInputs are the host-owned accessors of a tab list.
type TabListInputs struct {
	Items         signal.Signal[[]*Tab]
	Value         *signal.Writable[[]string]
	ActiveIndex   *signal.Writable[int]
	Disabled      signal.Signal[bool]
	SelectionMode signal.Signal[list.SelectionMode]
	SkipDisabled  signal.Signal[bool]
	Wrap          signal.Signal[bool]
	Orientation   signal.Signal[list.Orientation]
	TextDirection signal.Signal[list.TextDirection]
	FocusMode     signal.Signal[list.FocusMode]
}

// TabList owns the shared behaviours of its tabs. At most one tab is
// selected at a time.
type TabList struct {
	inputs     TabListInputs
	Focus      *list.Focus[*Tab]
	Navigation *list.Navigation[*Tab]
	Selection  *list.Selection[*Tab]
}

// NewTabList wires the behaviours of a tab list. Tabs wrap and follow focus
// by default.
func NewTabList(inputs TabListInputs) *TabList {
	inputs.Items = signal.Or[[]*Tab](inputs.Items, nil)
	inputs.Disabled = signal.Or(inputs.Disabled, false)
	inputs.SelectionMode = signal.Or(inputs.SelectionMode, list.Follow)
	inputs.SkipDisabled = signal.Or(inputs.SkipDisabled, true)
	inputs.Wrap = signal.Or(inputs.Wrap, true)
	inputs.Orientation = signal.Or(inputs.Orientation, list.Horizontal)
	inputs.TextDirection = signal.Or(inputs.TextDirection, list.LTR)
	inputs.FocusMode = signal.Or(inputs.FocusMode, list.Roving)
	if inputs.ActiveIndex == nil {
		inputs.ActiveIndex = signal.NewWritable(0)
	}
	if inputs.Value == nil {
		inputs.Value = signal.NewWritable([]string{})
	}

	l := &TabList{inputs: inputs}
	l.Focus = list.NewFocus(list.FocusInputs[*Tab]{
		Items:        inputs.Items,
		ActiveIndex:  inputs.ActiveIndex,
		FocusMode:    inputs.FocusMode,
		Disabled:     inputs.Disabled,
		SkipDisabled: inputs.SkipDisabled,
	})
	l.Navigation = list.NewNavigation(l.Focus, list.NavigationInputs{
		Wrap:          inputs.Wrap,
		Orientation:   inputs.Orientation,
		TextDirection: inputs.TextDirection,
	})
	l.Selection = list.NewSelection(l.Focus, list.SelectionInputs{
		Values: inputs.Value,
		Multi:  signal.Static(false),
	})
	return l
}

// Disabled reports whether the tab list ignores input.
func (l *TabList) Disabled() bool { return l.inputs.Disabled() }

// Items returns the current tabs.
func (l *TabList) Items() []*Tab { return l.inputs.Items() }

// SelectionMode returns whether navigation also selects.
func (l *TabList) SelectionMode() list.SelectionMode { return l.inputs.SelectionMode() }

// Orientation returns the layout axis.
func (l *TabList) Orientation() list.Orientation { return l.inputs.Orientation() }

// Value returns the selected tab values.
func (l *TabList) Value() []string { return l.Selection.Values() }

// Tabindex returns the container's tabindex.
func (l *TabList) Tabindex() int { return l.Focus.ListTabindex() }

// ActiveDescendant returns the active tab id in active-descendant mode.
func (l *TabList) ActiveDescendant() string { return l.Focus.ActiveDescendant() }

// SetDefaultState puts the cursor on the selected tab when it is focusable,
// otherwise on the first focusable tab.
func (l *TabList) SetDefaultState() {
	var first *Tab
	for _, t := range l.inputs.Items() {
		if !l.Focus.IsFocusable(t) {
			continue
		}
		if first == nil {
			first = t
		}
		if l.Selection.IsSelected(t) {
			l.inputs.ActiveIndex.Set(t.Index())
			return
		}
	}
	if first != nil {
		l.inputs.ActiveIndex.Set(first.Index())
	}
}

// Keydown builds the keyboard binding table for the current configuration.
func (l *TabList) Keydown() *event.KeyboardManager {
	nav := l.Navigation
	return event.NewKeyboard().
		On(event.Key(nav.PrevKey()), func(event.KeyboardEvent) { l.move(nav.Prev) }).
		On(event.Key(nav.NextKey()), func(event.KeyboardEvent) { l.move(nav.Next) }).
		On(event.Key(event.KeyHome), func(event.KeyboardEvent) { l.move(nav.First) }).
		On(event.Key(event.KeyEnd), func(event.KeyboardEvent) { l.move(nav.Last) }).
		On(event.Key(event.KeySpace, event.KeyEnter), func(event.KeyboardEvent) { l.Selection.SelectOne() })
}

// Pointerdown builds the pointer binding table.
func (l *TabList) Pointerdown() *event.PointerManager {
	return event.NewPointer().
		On(event.Click(event.ModAny), func(e event.PointerEvent) {
			tab, ok := l.itemFor(e.Target)
			if !ok || tab.Disabled() {
				return
			}
			if l.Navigation.Goto(tab) {
				l.Selection.SelectOne()
			}
		})
}

// OnKeydown handles a key press delivered to the tab list. It reports
// whether a binding consumed the event.
func (l *TabList) OnKeydown(e event.KeyboardEvent) bool {
	if l.Disabled() {
		return false
	}
	return l.Keydown().Handle(e)
}

// OnPointerdown handles a press inside the tab list.
func (l *TabList) OnPointerdown(e event.PointerEvent) bool {
	if l.Disabled() {
		return false
	}
	return l.Pointerdown().Handle(e)
}

// KeyBindings describes the keyboard contract for help rendering.
func (l *TabList) KeyBindings() []key.Binding {
	prev := event.Press(l.Navigation.PrevKey()).String()
	next := event.Press(l.Navigation.NextKey()).String()
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys(prev), key.WithHelp(prev, "previous tab")),
		key.NewBinding(key.WithKeys(next), key.WithHelp(next, "next tab")),
		key.NewBinding(key.WithKeys("home", "end"), key.WithHelp("home/end", "first/last")),
	}
	if l.inputs.SelectionMode() == list.Explicit {
		bindings = append(bindings,
			key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space/enter", "select")))
	}
	return bindings
}

// move runs a navigation step and, in follow mode, selects where it lands.
func (l *TabList) move(step func() bool) {
	if step() && l.inputs.SelectionMode() == list.Follow {
		l.Selection.SelectOne()
	}
}

func (l *TabList) itemFor(target any) (*Tab, bool) {
	if target == nil {
		return nil, false
	}
	for _, t := range l.inputs.Items() {
		if el := t.Element(); el != nil && any(el) == target {
			return t, true
		}
	}
	return nil, false
}
