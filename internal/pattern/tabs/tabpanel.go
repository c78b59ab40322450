package tabs

import (
	"github.com/alexisbeaulieu97/headless/internal/behavior/expansion"
	"github.com/alexisbeaulieu97/headless/internal/signal"
)

// TabPanelInputs are the host-owned accessors of one panel.
type TabPanelInputs struct {
	ID    signal.Signal[string]
	Value signal.Signal[string]
	Tab   signal.Signal[*Tab]
}

// TabPanel is the content region shown while its tab is selected.
type TabPanel struct {
	inputs TabPanelInputs
	Panel  *expansion.Panel
}

// NewTabPanel creates a panel bound to its tab accessor.
func NewTabPanel(inputs TabPanelInputs) *TabPanel {
	inputs.ID = signal.Or(inputs.ID, "")
	inputs.Value = signal.Or(inputs.Value, "")
	inputs.Tab = signal.Or[*Tab](inputs.Tab, nil)

	p := &TabPanel{inputs: inputs}
	p.Panel = expansion.NewPanel(expansion.PanelInputs{
		ID: inputs.ID,
		Control: func() *expansion.Control {
			if t := p.inputs.Tab(); t != nil {
				return t.Control
			}
			return nil
		},
	})
	return p
}

// ID returns the panel id.
func (p *TabPanel) ID() string { return p.inputs.ID() }

// Value returns the panel value.
func (p *TabPanel) Value() string { return p.inputs.Value() }

// Tab returns the bound tab, or nil.
func (p *TabPanel) Tab() *Tab { return p.inputs.Tab() }

// Hidden reports whether the panel's tab is unselected.
func (p *TabPanel) Hidden() bool { return p.Panel.Hidden() }

// LabelledBy returns the id of the tab labelling this panel.
func (p *TabPanel) LabelledBy() string {
	if t := p.inputs.Tab(); t != nil {
		return t.ID()
	}
	return ""
}
