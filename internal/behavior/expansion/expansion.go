// Package expansion links disclosure controls to the panels they reveal and
// tracks which members of a collection are expanded.
package expansion

import "github.com/alexisbeaulieu97/headless/internal/signal"

// Item is a collection member that can be expanded.
type Item interface {
	ExpansionID() string
	IsExpandable() bool
}

// Manager owns the expanded state of a set of controls.
type Manager interface {
	IsExpanded(item Item) bool
	Expand(item Item)
	Collapse(item Item)
	Toggle(item Item)
}

// ControlInputs wire a Control.
//
// A Control with a Manager reads and mutates its state through it. Without
// a Manager the Visible accessor decides, which suits controls whose panel
// follows some other state such as tab selection.
type ControlInputs struct {
	ExpansionID signal.Signal[string]
	Expandable  signal.Signal[bool]
	Visible     signal.Signal[bool]
	Manager     Manager
	Panel       signal.Signal[*Panel]
}

// Control is the toggle side of a control/panel pair.
type Control struct {
	inputs ControlInputs
}

// NewControl creates a Control. Controls are expandable unless told otherwise.
func NewControl(inputs ControlInputs) *Control {
	inputs.ExpansionID = signal.Or(inputs.ExpansionID, "")
	inputs.Expandable = signal.Or(inputs.Expandable, true)
	inputs.Visible = signal.Or(inputs.Visible, false)
	inputs.Panel = signal.Or[*Panel](inputs.Panel, nil)
	return &Control{inputs: inputs}
}

// ExpansionID is the key tracked in the owning manager's expanded set.
func (c *Control) ExpansionID() string {
	return c.inputs.ExpansionID()
}

// IsExpandable reports whether the control may change state.
func (c *Control) IsExpandable() bool {
	return c.inputs.Expandable()
}

// IsExpanded reports whether the linked panel is shown.
func (c *Control) IsExpanded() bool {
	if c.inputs.Manager != nil {
		return c.inputs.Manager.IsExpanded(c)
	}
	return c.inputs.Visible()
}

// Expand opens the control through its manager.
func (c *Control) Expand() {
	if c.inputs.Manager != nil {
		c.inputs.Manager.Expand(c)
	}
}

// Collapse closes the control through its manager.
func (c *Control) Collapse() {
	if c.inputs.Manager != nil {
		c.inputs.Manager.Collapse(c)
	}
}

// Toggle flips the control through its manager.
func (c *Control) Toggle() {
	if c.inputs.Manager != nil {
		c.inputs.Manager.Toggle(c)
	}
}

// Panel returns the bound panel, or nil.
func (c *Control) Panel() *Panel {
	return c.inputs.Panel()
}

// Controls returns the id of the bound panel, or "" when unbound.
func (c *Control) Controls() string {
	if p := c.inputs.Panel(); p != nil {
		return p.ID()
	}
	return ""
}

// PanelInputs wire a Panel.
type PanelInputs struct {
	ID      signal.Signal[string]
	Control signal.Signal[*Control]
}

// Panel is the revealed side of a control/panel pair.
type Panel struct {
	inputs PanelInputs
}

// NewPanel creates a Panel.
func NewPanel(inputs PanelInputs) *Panel {
	inputs.ID = signal.Or(inputs.ID, "")
	inputs.Control = signal.Or[*Control](inputs.Control, nil)
	return &Panel{inputs: inputs}
}

// ID returns the panel id.
func (p *Panel) ID() string {
	return p.inputs.ID()
}

// Control returns the bound control, or nil.
func (p *Panel) Control() *Control {
	return p.inputs.Control()
}

// Hidden is the negation of the linked control's expanded state.
// A panel with no control is hidden.
func (p *Panel) Hidden() bool {
	c := p.inputs.Control()
	if c == nil {
		return true
	}
	return !c.IsExpanded()
}
