package accordion

import (
	"github.com/alexisbeaulieu97/headless/internal/behavior/expansion"
	"github.com/alexisbeaulieu97/headless/internal/behavior/list"
	"github.com/alexisbeaulieu97/headless/internal/event"
	"github.com/alexisbeaulieu97/headless/internal/signal"
)

// TriggerInputs are the host-owned accessors of one trigger.
type TriggerInputs struct {
	ID       signal.Signal[string]
	Value    signal.Signal[string]
	Disabled signal.Signal[bool]
	Element  signal.Signal[list.Element]
	Group    signal.Signal[*Group]
	Panel    signal.Signal[*Panel]
}

// Trigger is the header that expands and collapses one panel.
type Trigger struct {
	inputs  TriggerInputs
	Control *expansion.Control
}

// NewTrigger creates a trigger bound to its group and panel accessors.
func NewTrigger(inputs TriggerInputs) *Trigger {
	inputs.ID = signal.Or(inputs.ID, "")
	inputs.Value = signal.Or(inputs.Value, "")
	inputs.Disabled = signal.Or(inputs.Disabled, false)
	inputs.Element = signal.Or[list.Element](inputs.Element, nil)
	inputs.Group = signal.Or[*Group](inputs.Group, nil)
	inputs.Panel = signal.Or[*Panel](inputs.Panel, nil)

	t := &Trigger{inputs: inputs}
	t.Control = expansion.NewControl(expansion.ControlInputs{
		ExpansionID: inputs.Value,
		Expandable:  func() bool { return !t.inputs.Disabled() },
		Manager:     t.manager(),
		Panel: func() *expansion.Panel {
			if p := t.inputs.Panel(); p != nil {
				return p.Panel
			}
			return nil
		},
	})
	return t
}

// ID returns the trigger id.
func (t *Trigger) ID() string { return t.inputs.ID() }

// Value returns the expansion key.
func (t *Trigger) Value() string { return t.inputs.Value() }

// Disabled reports whether the trigger ignores input.
func (t *Trigger) Disabled() bool { return t.inputs.Disabled() }

// Element returns the host element.
func (t *Trigger) Element() list.Element { return t.inputs.Element() }

// Group returns the owning group.
func (t *Trigger) Group() *Group { return t.inputs.Group() }

// Index returns the trigger's position in its group, or -1.
func (t *Trigger) Index() int {
	g := t.inputs.Group()
	if g == nil {
		return -1
	}
	for i, candidate := range g.Items() {
		if candidate == t {
			return i
		}
	}
	return -1
}

// Expanded reports whether the trigger's panel is shown.
func (t *Trigger) Expanded() bool {
	return t.Control.IsExpanded()
}

// Active reports whether the trigger is under the group cursor.
func (t *Trigger) Active() bool {
	g := t.inputs.Group()
	return g != nil && g.Focus.IsActive(t)
}

// Controls returns the id of the panel this trigger discloses.
func (t *Trigger) Controls() string {
	return t.Control.Controls()
}

// Tabindex returns the trigger's tabindex.
func (t *Trigger) Tabindex() int {
	g := t.inputs.Group()
	if g == nil || !g.Focus.IsFocusable(t) {
		return -1
	}
	return g.Focus.ItemTabindex(t)
}

// HardDisabled reports whether the trigger is disabled and skipped, so the
// host should render it as inert rather than merely dimmed.
func (t *Trigger) HardDisabled() bool {
	g := t.inputs.Group()
	return t.Disabled() && g != nil && g.Focus.SkipDisabled()
}

// Keydown builds the keyboard binding table for the current configuration.
func (t *Trigger) Keydown() *event.KeyboardManager {
	g := t.inputs.Group()
	m := event.NewKeyboard()
	if g == nil {
		return m
	}
	nav := g.Navigation
	return m.
		On(event.Key(nav.PrevKey()), func(event.KeyboardEvent) { nav.Prev() }).
		On(event.Key(nav.NextKey()), func(event.KeyboardEvent) { nav.Next() }).
		On(event.Key(event.KeyHome), func(event.KeyboardEvent) { nav.First() }).
		On(event.Key(event.KeyEnd), func(event.KeyboardEvent) { nav.Last() }).
		On(event.Key(event.KeySpace, event.KeyEnter), func(event.KeyboardEvent) { t.toggleActive() })
}

// Pointerdown builds the pointer binding table.
func (t *Trigger) Pointerdown() *event.PointerManager {
	g := t.inputs.Group()
	m := event.NewPointer()
	if g == nil {
		return m
	}
	return m.On(event.Click(event.ModAny), func(e event.PointerEvent) {
		item, ok := g.itemFor(e.Target)
		if !ok || item.Disabled() {
			return
		}
		g.Navigation.Goto(item)
		item.Control.Toggle()
	})
}

// OnKeydown handles a key press delivered to the trigger. It reports whether
// a binding consumed the event.
func (t *Trigger) OnKeydown(e event.KeyboardEvent) bool {
	if t.inert() {
		return false
	}
	return t.Keydown().Handle(e)
}

// OnPointerdown handles a press on the trigger.
func (t *Trigger) OnPointerdown(e event.PointerEvent) bool {
	if t.inert() {
		return false
	}
	return t.Pointerdown().Handle(e)
}

func (t *Trigger) inert() bool {
	g := t.inputs.Group()
	return g == nil || g.Disabled() || t.Disabled()
}

// toggleActive toggles the trigger under the cursor, which is the trigger
// holding focus.
func (t *Trigger) toggleActive() {
	g := t.inputs.Group()
	if item, ok := g.Focus.ActiveItem(); ok {
		item.Control.Toggle()
	}
}

func (t *Trigger) manager() expansion.Manager {
	return groupManager{trigger: t}
}

// groupManager resolves the group lazily so triggers may be built before
// their group.
type groupManager struct {
	trigger *Trigger
}

func (m groupManager) list() *expansion.ListExpansion {
	if g := m.trigger.inputs.Group(); g != nil {
		return g.Expansion
	}
	return nil
}

func (m groupManager) IsExpanded(item expansion.Item) bool {
	if l := m.list(); l != nil {
		return l.IsExpanded(item)
	}
	return false
}

func (m groupManager) Expand(item expansion.Item) {
	if l := m.list(); l != nil {
		l.Expand(item)
	}
}

func (m groupManager) Collapse(item expansion.Item) {
	if l := m.list(); l != nil {
		l.Collapse(item)
	}
}

func (m groupManager) Toggle(item expansion.Item) {
	if l := m.list(); l != nil {
		l.Toggle(item)
	}
}
