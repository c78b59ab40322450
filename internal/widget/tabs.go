package widget

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/alexisbeaulieu97/headless/internal/behavior/list"
	"github.com/alexisbeaulieu97/headless/internal/event"
	"github.com/alexisbeaulieu97/headless/internal/pattern/tabs"
	"github.com/alexisbeaulieu97/headless/internal/signal"
	headlesserrors "github.com/alexisbeaulieu97/headless/pkg/errors"
)

// Tabs is a wired tab list with its tabs and panels.
type Tabs struct {
	*base
	List   *tabs.TabList
	Tabs   []*tabs.Tab
	Panels []*tabs.TabPanel
	value  *signal.Writable[[]string]
}

func newTabs(b *base) *Tabs {
	t := &Tabs{base: b, value: initial(b.cfg.Selected)}
	b.watch("selected", t.value)

	t.List = tabs.NewTabList(tabs.TabListInputs{
		Items:         func() []*tabs.Tab { return t.Tabs },
		Value:         t.value,
		ActiveIndex:   b.active,
		Disabled:      signal.Static(b.cfg.Disabled),
		SelectionMode: signal.Static(b.selectionMode()),
		SkipDisabled:  signal.Static(b.cfg.SkipDisabledOr(true)),
		Wrap:          signal.Static(b.cfg.WrapOr(true)),
		Orientation:   signal.Static(b.orientation(list.Horizontal)),
		TextDirection: b.direction.Signal(),
		FocusMode:     signal.Static(b.focusMode),
	})

	for i, item := range b.cfg.Items {
		t.Tabs = append(t.Tabs, tabs.NewTab(tabs.TabInputs{
			ID:       signal.Static(fmt.Sprintf("%s-tab-%s", b.cfg.ID, item.Value)),
			Value:    signal.Static(item.Value),
			Disabled: b.disabledItem(i),
			Element:  b.element(i),
			TabList:  signal.Static(t.List),
			Panel:    func() *tabs.TabPanel { return t.Panels[i] },
		}))
		t.Panels = append(t.Panels, tabs.NewTabPanel(tabs.TabPanelInputs{
			ID:    signal.Static(fmt.Sprintf("%s-tabpanel-%s", b.cfg.ID, item.Value)),
			Value: signal.Static(item.Value),
			Tab:   func() *tabs.Tab { return t.Tabs[i] },
		}))
	}
	return t
}

// OnKeydown forwards a key press to the tab list.
func (t *Tabs) OnKeydown(e event.KeyboardEvent) bool {
	handled := t.List.OnKeydown(e)
	t.logKey(e, handled)
	return handled
}

// OnPointerdown forwards a press to the tab list.
func (t *Tabs) OnPointerdown(e event.PointerEvent) bool {
	handled := t.List.OnPointerdown(e)
	t.logPointer(e, handled)
	return handled
}

// KeyBindings returns the tab list's help bindings.
func (t *Tabs) KeyBindings() []key.Binding { return t.List.KeyBindings() }

// FocusActive gives terminal focus to the active tab.
func (t *Tabs) FocusActive() { t.focusActive() }

// SetDefaultState moves the cursor to the selected tab.
func (t *Tabs) SetDefaultState() { t.List.SetDefaultState() }

// Validate rejects selection state a tab list cannot represent.
func (t *Tabs) Validate() error {
	values := t.value.Get()
	if len(values) > 1 {
		return headlesserrors.NewConfigError(t.cfg.ID,
			fmt.Sprintf("%d tabs selected", len(values)), headlesserrors.ErrTooManyValues)
	}
	for _, v := range values {
		found := false
		for _, tab := range t.Tabs {
			if tab.Value() == v {
				found = true
				break
			}
		}
		if !found {
			return headlesserrors.NewConfigError(t.cfg.ID,
				fmt.Sprintf("selected tab %q does not exist", v), headlesserrors.ErrUnknownValue)
		}
	}
	return nil
}
