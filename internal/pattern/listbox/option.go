package listbox

import (
	"github.com/alexisbeaulieu97/headless/internal/behavior/list"
	"github.com/alexisbeaulieu97/headless/internal/signal"
)

// OptionInputs are the host-owned accessors of one option.
type OptionInputs struct {
	ID       signal.Signal[string]
	Value    signal.Signal[string]
	Label    signal.Signal[string]
	Disabled signal.Signal[bool]
	Element  signal.Signal[list.Element]
	Listbox  signal.Signal[*Listbox]
}

// Option is one selectable entry of a listbox.
type Option struct {
	inputs OptionInputs
}

// NewOption creates an option bound to its listbox accessor. The label
// doubles as the typeahead search term.
func NewOption(inputs OptionInputs) *Option {
	inputs.ID = signal.Or(inputs.ID, "")
	inputs.Value = signal.Or(inputs.Value, "")
	inputs.Label = signal.Or(inputs.Label, "")
	inputs.Disabled = signal.Or(inputs.Disabled, false)
	inputs.Element = signal.Or[list.Element](inputs.Element, nil)
	inputs.Listbox = signal.Or[*Listbox](inputs.Listbox, nil)
	return &Option{inputs: inputs}
}

// ID returns the option's host id.
func (o *Option) ID() string { return o.inputs.ID() }

// Value returns the value the option contributes to the selection.
func (o *Option) Value() string { return o.inputs.Value() }

// Label returns the text shown for the option.
func (o *Option) Label() string { return o.inputs.Label() }

// SearchTerm is the text typeahead matches against, which is the label.
func (o *Option) SearchTerm() string { return o.inputs.Label() }

// Disabled reports whether the option is disabled.
func (o *Option) Disabled() bool { return o.inputs.Disabled() }

// Element returns the host element the option is drawn as.
func (o *Option) Element() list.Element { return o.inputs.Element() }

// Listbox returns the owning listbox.
func (o *Option) Listbox() *Listbox { return o.inputs.Listbox() }

// Index returns the option's position in its listbox, or -1.
func (o *Option) Index() int {
	l := o.inputs.Listbox()
	if l == nil {
		return -1
	}
	for i, candidate := range l.Items() {
		if candidate == o {
			return i
		}
	}
	return -1
}

// Selected reports whether the option's value is selected.
func (o *Option) Selected() bool {
	l := o.inputs.Listbox()
	return l != nil && l.Selection.IsSelected(o)
}

// Active reports whether the option is under the cursor.
func (o *Option) Active() bool {
	l := o.inputs.Listbox()
	return l != nil && l.Focus.IsActive(o)
}

// Tabindex returns the option's tabindex.
func (o *Option) Tabindex() int {
	l := o.inputs.Listbox()
	if l == nil {
		return -1
	}
	return l.Focus.ItemTabindex(o)
}
