// Package listbox composes focus, navigation, selection and typeahead into
// the behaviour of a single or multi selection list.
package listbox

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/alexisbeaulieu97/headless/internal/behavior/list"
	"github.com/alexisbeaulieu97/headless/internal/event"
	"github.com/alexisbeaulieu97/headless/internal/signal"
	headlesserrors "github.com/alexisbeaulieu97/headless/pkg/errors"
)

// Inputs are the host-owned accessors of a listbox.
type Inputs struct {
	ID             signal.Signal[string]
	Items          signal.Signal[[]*Option]
	Value          *signal.Writable[[]string]
	ActiveIndex    *signal.Writable[int]
	Disabled       signal.Signal[bool]
	Readonly       signal.Signal[bool]
	Multi          signal.Signal[bool]
	SelectionMode  signal.Signal[list.SelectionMode]
	SkipDisabled   signal.Signal[bool]
	Wrap           signal.Signal[bool]
	Orientation    signal.Signal[list.Orientation]
	TextDirection  signal.Signal[list.TextDirection]
	FocusMode      signal.Signal[list.FocusMode]
	TypeaheadDelay signal.Signal[time.Duration]
	// Now is the clock typeahead expiry is measured with.
	Now func() time.Time
}

// Listbox owns the shared behaviours of its options.
type Listbox struct {
	inputs     Inputs
	Focus      *list.Focus[*Option]
	Navigation *list.Navigation[*Option]
	Selection  *list.Selection[*Option]
	Typeahead  *list.Typeahead[*Option]

	// ranging is set while consecutive range gestures extend the same
	// anchored span.
	ranging bool
}

// New wires the behaviours of a listbox.
func New(inputs Inputs) *Listbox {
	inputs.ID = signal.Or(inputs.ID, "")
	inputs.Items = signal.Or[[]*Option](inputs.Items, nil)
	inputs.Disabled = signal.Or(inputs.Disabled, false)
	inputs.Readonly = signal.Or(inputs.Readonly, false)
	inputs.Multi = signal.Or(inputs.Multi, false)
	inputs.SelectionMode = signal.Or(inputs.SelectionMode, list.Follow)
	inputs.SkipDisabled = signal.Or(inputs.SkipDisabled, true)
	inputs.Wrap = signal.Or(inputs.Wrap, true)
	inputs.Orientation = signal.Or(inputs.Orientation, list.Vertical)
	inputs.TextDirection = signal.Or(inputs.TextDirection, list.LTR)
	inputs.FocusMode = signal.Or(inputs.FocusMode, list.Roving)
	inputs.TypeaheadDelay = signal.Or(inputs.TypeaheadDelay, list.DefaultTypeaheadDelay)
	if inputs.ActiveIndex == nil {
		inputs.ActiveIndex = signal.NewWritable(0)
	}
	if inputs.Value == nil {
		inputs.Value = signal.NewWritable([]string{})
	}

	l := &Listbox{inputs: inputs}
	l.Focus = list.NewFocus(list.FocusInputs[*Option]{
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
		Multi:  inputs.Multi,
	})
	l.Typeahead = list.NewTypeahead(l.Focus, list.TypeaheadInputs{
		Delay: inputs.TypeaheadDelay,
		Now:   inputs.Now,
	})
	return l
}

// ID returns the listbox id.
func (l *Listbox) ID() string { return l.inputs.ID() }

// Items returns the current options.
func (l *Listbox) Items() []*Option { return l.inputs.Items() }

// Disabled reports whether the listbox ignores input.
func (l *Listbox) Disabled() bool { return l.Focus.IsListDisabled() }

// Readonly reports whether the selection is locked.
func (l *Listbox) Readonly() bool { return l.inputs.Readonly() }

// Multi reports whether several options may be selected.
func (l *Listbox) Multi() bool { return l.inputs.Multi() }

// Orientation returns the layout axis.
func (l *Listbox) Orientation() list.Orientation { return l.inputs.Orientation() }

// Value returns the selected option values.
func (l *Listbox) Value() []string { return l.Selection.Values() }

// Tabindex returns the container's tabindex.
func (l *Listbox) Tabindex() int { return l.Focus.ListTabindex() }

// ActiveDescendant returns the active option id in active-descendant mode.
func (l *Listbox) ActiveDescendant() string { return l.Focus.ActiveDescendant() }

func (l *Listbox) followFocus() bool {
	return l.inputs.SelectionMode() == list.Follow
}

// Validate reports configuration the listbox cannot honour: more values
// than single selection allows, or values no option carries.
func (l *Listbox) Validate() error {
	values := l.inputs.Value.Get()
	if !l.inputs.Multi() && len(values) > 1 {
		return headlesserrors.NewConfigError(l.ID(),
			fmt.Sprintf("%d values selected but multi selection is off", len(values)),
			headlesserrors.ErrTooManyValues)
	}
	items := l.inputs.Items()
	for _, v := range values {
		found := false
		for _, o := range items {
			if o.Value() == v {
				found = true
				break
			}
		}
		if !found {
			return headlesserrors.NewConfigError(l.ID(),
				fmt.Sprintf("value %q matches no option", v),
				headlesserrors.ErrUnknownValue)
		}
	}
	return nil
}

// SetDefaultState puts the cursor on the first selected focusable option,
// otherwise on the first focusable option.
func (l *Listbox) SetDefaultState() {
	var first *Option
	for _, o := range l.inputs.Items() {
		if !l.Focus.IsFocusable(o) {
			continue
		}
		if first == nil {
			first = o
		}
		if l.Selection.IsSelected(o) {
			l.inputs.ActiveIndex.Set(o.Index())
			return
		}
	}
	if first != nil {
		l.inputs.ActiveIndex.Set(first.Index())
	}
}

// Keydown builds the keyboard binding table for the current configuration.
// Modifier bindings are registered ahead of plain ones so they win.
func (l *Listbox) Keydown() *event.KeyboardManager {
	m := event.NewKeyboard()
	nav := l.Navigation
	sel := l.Selection
	prev, next := nav.PrevKey(), nav.NextKey()

	if l.inputs.Readonly() {
		return m.
			On(event.Key(prev), l.plain(nav.Prev)).
			On(event.Key(next), l.plain(nav.Next)).
			On(event.Key(event.KeyHome), l.plain(nav.First)).
			On(event.Key(event.KeyEnd), l.plain(nav.Last)).
			On(l.typeaheadKey, func(e event.KeyboardEvent) {
				l.ranging = false
				l.Typeahead.Search(e.Key)
			})
	}

	// Space extends a typeahead query while one is in progress.
	m.On(l.typeaheadSpace, func(e event.KeyboardEvent) { l.Typeahead.Search(e.Key) })

	multi := l.inputs.Multi()
	follow := l.followFocus()
	ctrlShift := []event.Modifier{event.ModCtrl | event.ModShift, event.ModMeta | event.ModShift}
	ctrl := []event.Modifier{event.ModCtrl, event.ModMeta}

	if multi {
		m.
			On(event.KeyWith(event.ModShift, prev), l.extend(nav.Prev)).
			On(event.KeyWith(event.ModShift, next), l.extend(nav.Next)).
			On(event.KeyWithAnyOf(ctrlShift, event.KeyHome), l.extend(nav.First)).
			On(event.KeyWithAnyOf(ctrlShift, event.KeyEnd), l.extend(nav.Last)).
			On(event.KeyWith(event.ModShift, event.KeySpace, event.KeyEnter), l.extendFromAnchor)
	}

	switch {
	case multi && follow:
		m.
			On(event.KeyWithAnyOf(ctrl, prev), l.plain(nav.Prev)).
			On(event.KeyWithAnyOf(ctrl, next), l.plain(nav.Next)).
			On(event.KeyWithAnyOf(ctrl, event.KeySpace, event.KeyEnter), l.plain(func() bool { sel.ToggleActive(); return true })).
			On(event.KeyWithAnyOf(ctrl, event.KeyHome), l.plain(nav.First)).
			On(event.KeyWithAnyOf(ctrl, event.KeyEnd), l.plain(nav.Last)).
			On(event.KeyWithAnyOf(ctrl, "a"), l.plain(func() bool { sel.ToggleAll(); return true }))
	case multi:
		m.
			On(event.Key(event.KeySpace, event.KeyEnter), l.plain(func() bool { sel.ToggleActive(); return true })).
			On(event.KeyWithAnyOf(ctrl, "a"), l.plain(func() bool { sel.ToggleAll(); return true }))
	case !follow:
		m.On(event.Key(event.KeySpace, event.KeyEnter), l.plain(func() bool { sel.ToggleOne(); return true }))
	}

	return m.
		On(event.Key(prev), l.navigate(nav.Prev)).
		On(event.Key(next), l.navigate(nav.Next)).
		On(event.Key(event.KeyHome), l.navigate(nav.First)).
		On(event.Key(event.KeyEnd), l.navigate(nav.Last)).
		On(l.typeaheadKey, func(e event.KeyboardEvent) {
			l.ranging = false
			if l.Typeahead.Search(e.Key) && follow {
				sel.SelectOne()
			}
		})
}

// Pointerdown builds the pointer binding table.
func (l *Listbox) Pointerdown() *event.PointerManager {
	m := event.NewPointer()
	sel := l.Selection
	if l.inputs.Readonly() {
		return m.On(event.Click(event.ModAny), l.click(func(*Option) {}))
	}
	if l.inputs.Multi() {
		m.
			On(event.Click(event.ModShift), l.click(func(*Option) {
				sel.SelectRange()
				l.ranging = true
			})).
			On(event.ClickAnyOf(event.ModCtrl, event.ModMeta), l.click(func(*Option) { sel.ToggleActive() }))
	}
	return m.On(event.Click(event.ModAny), l.click(func(*Option) {
		switch {
		case l.inputs.Multi() && !l.followFocus():
			sel.ToggleActive()
		case l.followFocus():
			sel.SelectOne()
		default:
			sel.ToggleOne()
		}
	}))
}

// OnKeydown handles a key press delivered to the listbox. It reports whether
// a binding consumed the event.
func (l *Listbox) OnKeydown(e event.KeyboardEvent) bool {
	if l.Disabled() {
		return false
	}
	return l.Keydown().Handle(e)
}

// OnPointerdown handles a press inside the listbox.
func (l *Listbox) OnPointerdown(e event.PointerEvent) bool {
	if l.Disabled() {
		return false
	}
	return l.Pointerdown().Handle(e)
}

// KeyBindings describes the keyboard contract for help rendering.
func (l *Listbox) KeyBindings() []key.Binding {
	prev := event.Press(l.Navigation.PrevKey()).String()
	next := event.Press(l.Navigation.NextKey()).String()
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys(prev, next), key.WithHelp(prev+"/"+next, "move")),
		key.NewBinding(key.WithKeys("home", "end"), key.WithHelp("home/end", "first/last")),
	}
	if l.inputs.Readonly() {
		return bindings
	}
	if l.inputs.Multi() || !l.followFocus() {
		bindings = append(bindings,
			key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")))
	}
	if l.inputs.Multi() {
		shiftPrev := event.Press(l.Navigation.PrevKey(), event.ModShift).String()
		shiftNext := event.Press(l.Navigation.NextKey(), event.ModShift).String()
		bindings = append(bindings,
			key.NewBinding(key.WithKeys(shiftPrev, shiftNext), key.WithHelp("shift+"+prev+"/"+next, "extend")),
			key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "toggle all")))
	}
	return bindings
}

// plain wraps an action that ends any range gesture.
func (l *Listbox) plain(action func() bool) event.Handler[event.KeyboardEvent] {
	return func(event.KeyboardEvent) {
		l.ranging = false
		action()
	}
}

// navigate moves the cursor and, in follow mode, selects where it lands.
func (l *Listbox) navigate(step func() bool) event.Handler[event.KeyboardEvent] {
	return func(event.KeyboardEvent) {
		l.ranging = false
		if step() && l.followFocus() {
			l.Selection.SelectOne()
		}
	}
}

// extend anchors a range at the cursor on the first gesture, runs step and
// selects the span from the anchor to where the cursor lands.
func (l *Listbox) extend(step func() bool) event.Handler[event.KeyboardEvent] {
	return func(event.KeyboardEvent) {
		if !l.ranging {
			l.Selection.BeginRange(l.Focus.ActiveIndex())
			l.ranging = true
		}
		step()
		l.Selection.SelectRange()
	}
}

// extendFromAnchor selects from the last selection anchor to the cursor.
func (l *Listbox) extendFromAnchor(event.KeyboardEvent) {
	l.ranging = true
	l.Selection.SelectRange()
}

func (l *Listbox) click(then func(*Option)) event.Handler[event.PointerEvent] {
	return func(e event.PointerEvent) {
		o, ok := l.itemFor(e.Target)
		if !ok || o.Disabled() {
			return
		}
		l.ranging = false
		if !l.Navigation.Goto(o) {
			return
		}
		then(o)
	}
}

func (l *Listbox) typeaheadKey(e event.KeyboardEvent) bool {
	return e.Mods == event.ModNone && e.Printable() && e.Key != event.KeySpace
}

func (l *Listbox) typeaheadSpace(e event.KeyboardEvent) bool {
	return e.Mods == event.ModNone && e.Key == event.KeySpace && l.Typeahead.IsTyping()
}

func (l *Listbox) itemFor(target any) (*Option, bool) {
	if target == nil {
		return nil, false
	}
	for _, o := range l.inputs.Items() {
		if el := o.Element(); el != nil && any(el) == target {
			return o, true
		}
	}
	return nil, false
}
