package tabs

import (
	"github.com/alexisbeaulieu97/headless/internal/behavior/expansion"
	"github.com/alexisbeaulieu97/headless/internal/behavior/list"
	"github.com/alexisbeaulieu97/headless/internal/signal"
)

// TabInputs are the host-owned accessors of one tab.
type TabInputs struct {
	ID       signal.Signal[string]
	Value    signal.Signal[string]
	Disabled signal.Signal[bool]
	Element  signal.Signal[list.Element]
	TabList  signal.Signal[*TabList]
	Panel    signal.Signal[*TabPanel]
}

// Tab is one selectable tab. Its panel is visible exactly while it is
// selected.
type Tab struct {
	inputs  TabInputs
	Control *expansion.Control
}

// NewTab creates a tab bound to its list and panel accessors.
func NewTab(inputs TabInputs) *Tab {
	inputs.ID = signal.Or(inputs.ID, "")
	inputs.Value = signal.Or(inputs.Value, "")
	inputs.Disabled = signal.Or(inputs.Disabled, false)
	inputs.Element = signal.Or[list.Element](inputs.Element, nil)
	inputs.TabList = signal.Or[*TabList](inputs.TabList, nil)
	inputs.Panel = signal.Or[*TabPanel](inputs.Panel, nil)

	t := &Tab{inputs: inputs}
	t.Control = expansion.NewControl(expansion.ControlInputs{
		ExpansionID: inputs.Value,
		Expandable:  signal.Static(true),
		Visible:     t.Selected,
		Panel: func() *expansion.Panel {
			if p := t.inputs.Panel(); p != nil {
				return p.Panel
			}
			return nil
		},
	})
	return t
}

// ID returns the tab id.
func (t *Tab) ID() string { return t.inputs.ID() }

// Value returns the selection key.
func (t *Tab) Value() string { return t.inputs.Value() }

// Disabled reports whether the tab ignores input.
func (t *Tab) Disabled() bool { return t.inputs.Disabled() }

// Element returns the host element.
func (t *Tab) Element() list.Element { return t.inputs.Element() }

// TabList returns the owning list.
func (t *Tab) TabList() *TabList { return t.inputs.TabList() }

// Index returns the tab's position in its list, or -1.
func (t *Tab) Index() int {
	l := t.inputs.TabList()
	if l == nil {
		return -1
	}
	for i, candidate := range l.Items() {
		if candidate == t {
			return i
		}
	}
	return -1
}

// Selected reports whether the tab is the selected one.
func (t *Tab) Selected() bool {
	l := t.inputs.TabList()
	return l != nil && l.Selection.IsSelected(t)
}

// Active reports whether the tab is under the cursor.
func (t *Tab) Active() bool {
	l := t.inputs.TabList()
	return l != nil && l.Focus.IsActive(t)
}

// Controls returns the id of the bound panel.
func (t *Tab) Controls() string {
	return t.Control.Controls()
}

// Tabindex returns the tab's tabindex.
func (t *Tab) Tabindex() int {
	l := t.inputs.TabList()
	if l == nil {
		return -1
	}
	return l.Focus.ItemTabindex(t)
}
