package accordion

import (
	"github.com/alexisbeaulieu97/headless/internal/behavior/expansion"
	"github.com/alexisbeaulieu97/headless/internal/signal"
)

// PanelInputs are the host-owned accessors of one panel.
type PanelInputs struct {
	ID      signal.Signal[string]
	Value   signal.Signal[string]
	Trigger signal.Signal[*Trigger]
}

// Panel is the content region a trigger discloses.
type Panel struct {
	inputs PanelInputs
	Panel  *expansion.Panel
}

// NewPanel creates a panel bound to its trigger accessor.
func NewPanel(inputs PanelInputs) *Panel {
	inputs.ID = signal.Or(inputs.ID, "")
	inputs.Value = signal.Or(inputs.Value, "")
	inputs.Trigger = signal.Or[*Trigger](inputs.Trigger, nil)

	p := &Panel{inputs: inputs}
	p.Panel = expansion.NewPanel(expansion.PanelInputs{
		ID: inputs.ID,
		Control: func() *expansion.Control {
			if t := p.inputs.Trigger(); t != nil {
				return t.Control
			}
			return nil
		},
	})
	return p
}

// ID returns the panel id.
func (p *Panel) ID() string { return p.inputs.ID() }

// Value returns the panel value.
func (p *Panel) Value() string { return p.inputs.Value() }

// Trigger returns the bound trigger, or nil.
func (p *Panel) Trigger() *Trigger { return p.inputs.Trigger() }

// Hidden reports whether the panel is collapsed.
func (p *Panel) Hidden() bool {
	return p.Panel.Hidden()
}

// LabelledBy returns the id of the trigger labelling this panel.
func (p *Panel) LabelledBy() string {
	if t := p.inputs.Trigger(); t != nil {
		return t.ID()
	}
	return ""
}
