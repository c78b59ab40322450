package widget

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/alexisbeaulieu97/headless/internal/behavior/list"
	"github.com/alexisbeaulieu97/headless/internal/event"
	"github.com/alexisbeaulieu97/headless/internal/pattern/accordion"
	"github.com/alexisbeaulieu97/headless/internal/signal"
	headlesserrors "github.com/alexisbeaulieu97/headless/pkg/errors"
)

// Accordion is a wired accordion group with its triggers and panels.
type Accordion struct {
	*base
	Group    *accordion.Group
	Triggers []*accordion.Trigger
	Panels   []*accordion.Panel
	expanded *signal.Writable[[]string]
}

func newAccordion(b *base) *Accordion {
	a := &Accordion{base: b, expanded: initial(b.cfg.Expanded)}
	b.watch("expanded", a.expanded)

	a.Group = accordion.NewGroup(accordion.GroupInputs{
		Items:           func() []*accordion.Trigger { return a.Triggers },
		ExpandedIDs:     a.expanded,
		ActiveIndex:     b.active,
		Disabled:        signal.Static(b.cfg.Disabled),
		MultiExpandable: signal.Static(b.cfg.Multi),
		SkipDisabled:    signal.Static(b.cfg.SkipDisabledOr(true)),
		Wrap:            signal.Static(b.cfg.WrapOr(true)),
		Orientation:     signal.Static(b.orientation(list.Vertical)),
		TextDirection:   b.direction.Signal(),
		FocusMode:       signal.Static(b.focusMode),
	})

	for i, item := range b.cfg.Items {
		a.Triggers = append(a.Triggers, accordion.NewTrigger(accordion.TriggerInputs{
			ID:       signal.Static(fmt.Sprintf("%s-trigger-%s", b.cfg.ID, item.Value)),
			Value:    signal.Static(item.Value),
			Disabled: b.disabledItem(i),
			Element:  b.element(i),
			Group:    signal.Static(a.Group),
			Panel:    func() *accordion.Panel { return a.Panels[i] },
		}))
		a.Panels = append(a.Panels, accordion.NewPanel(accordion.PanelInputs{
			ID:      signal.Static(fmt.Sprintf("%s-panel-%s", b.cfg.ID, item.Value)),
			Value:   signal.Static(item.Value),
			Trigger: func() *accordion.Trigger { return a.Triggers[i] },
		}))
	}
	return a
}

// OnKeydown forwards a key press to the active trigger.
func (a *Accordion) OnKeydown(e event.KeyboardEvent) bool {
	handled := a.Group.OnKeydown(e)
	a.logKey(e, handled)
	return handled
}

// OnPointerdown forwards a press to the trigger it hit.
func (a *Accordion) OnPointerdown(e event.PointerEvent) bool {
	handled := a.Group.OnPointerdown(e)
	a.logPointer(e, handled)
	return handled
}

// KeyBindings returns the group's help bindings.
func (a *Accordion) KeyBindings() []key.Binding { return a.Group.KeyBindings() }

// FocusActive gives terminal focus to the active trigger.
func (a *Accordion) FocusActive() { a.focusActive() }

// SetDefaultState moves the cursor to the first expanded trigger.
func (a *Accordion) SetDefaultState() { a.Group.SetDefaultState() }

// Validate rejects expansion state the group cannot represent.
func (a *Accordion) Validate() error {
	ids := a.expanded.Get()
	if !a.cfg.Multi && len(ids) > 1 {
		return headlesserrors.NewConfigError(a.cfg.ID,
			fmt.Sprintf("%d panels expanded but multi expansion is off", len(ids)),
			headlesserrors.ErrTooManyValues)
	}
	for _, id := range ids {
		found := false
		for _, t := range a.Triggers {
			if t.Value() == id {
				found = true
				break
			}
		}
		if !found {
			return headlesserrors.NewConfigError(a.cfg.ID,
				fmt.Sprintf("expanded id %q matches no trigger", id),
				headlesserrors.ErrUnknownValue)
		}
	}
	return nil
}
