package widget

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/alexisbeaulieu97/headless/internal/behavior/list"
	"github.com/alexisbeaulieu97/headless/internal/config"
	"github.com/alexisbeaulieu97/headless/internal/event"
	"github.com/alexisbeaulieu97/headless/internal/pattern/listbox"
	"github.com/alexisbeaulieu97/headless/internal/signal"
)

// Listbox is a wired listbox with its options.
type Listbox struct {
	*base
	Listbox *listbox.Listbox
	Options []*listbox.Option
	value   *signal.Writable[[]string]
}

func newListbox(b *base, settings config.Settings) *Listbox {
	l := &Listbox{base: b, value: initial(b.cfg.Selected)}
	b.watch("selected", l.value)

	l.Listbox = listbox.New(listbox.Inputs{
		ID:             signal.Static(b.cfg.ID),
		Items:          func() []*listbox.Option { return l.Options },
		Value:          l.value,
		ActiveIndex:    b.active,
		Disabled:       signal.Static(b.cfg.Disabled),
		Readonly:       signal.Static(b.cfg.Readonly),
		Multi:          signal.Static(b.cfg.Multi),
		SelectionMode:  signal.Static(b.selectionMode()),
		SkipDisabled:   signal.Static(b.cfg.SkipDisabledOr(true)),
		Wrap:           signal.Static(b.cfg.WrapOr(true)),
		Orientation:    signal.Static(b.orientation(list.Vertical)),
		TextDirection:  b.direction.Signal(),
		FocusMode:      signal.Static(b.focusMode),
		TypeaheadDelay: typeaheadDelay(settings),
		Now:            b.now,
	})

	for i, item := range b.cfg.Items {
		l.Options = append(l.Options, listbox.NewOption(listbox.OptionInputs{
			ID:       signal.Static(fmt.Sprintf("%s-option-%s", b.cfg.ID, item.Value)),
			Value:    signal.Static(item.Value),
			Label:    signal.Static(item.Label),
			Disabled: b.disabledItem(i),
			Element:  b.element(i),
			Listbox:  signal.Static(l.Listbox),
		}))
	}
	return l
}

func typeaheadDelay(settings config.Settings) signal.Signal[time.Duration] {
	if d := settings.Delay(); d > 0 {
		return signal.Static(d)
	}
	return nil
}

// OnKeydown forwards a key press to the listbox.
func (l *Listbox) OnKeydown(e event.KeyboardEvent) bool {
	handled := l.Listbox.OnKeydown(e)
	l.logKey(e, handled)
	return handled
}

// OnPointerdown forwards a press to the listbox.
func (l *Listbox) OnPointerdown(e event.PointerEvent) bool {
	handled := l.Listbox.OnPointerdown(e)
	l.logPointer(e, handled)
	return handled
}

// KeyBindings returns the listbox's help bindings.
func (l *Listbox) KeyBindings() []key.Binding { return l.Listbox.KeyBindings() }

// FocusActive gives terminal focus to the active option.
func (l *Listbox) FocusActive() { l.focusActive() }

// SetDefaultState moves the cursor to the first selected option.
func (l *Listbox) SetDefaultState() { l.Listbox.SetDefaultState() }

// Validate reports selection state the listbox cannot represent.
func (l *Listbox) Validate() error { return l.Listbox.Validate() }
