// Package widget builds wired accordion, tab and listbox instances from a
// widget document and adapts them to the terminal host.
package widget

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/alexisbeaulieu97/headless/internal/behavior/list"
	"github.com/alexisbeaulieu97/headless/internal/config"
	"github.com/alexisbeaulieu97/headless/internal/event"
	"github.com/alexisbeaulieu97/headless/internal/logger"
	"github.com/alexisbeaulieu97/headless/internal/signal"
	headlesserrors "github.com/alexisbeaulieu97/headless/pkg/errors"
)

// Widget is the host-facing surface shared by every built pattern.
type Widget interface {
	ID() string
	Kind() string
	Title() string
	OnKeydown(e event.KeyboardEvent) bool
	OnPointerdown(e event.PointerEvent) bool
	KeyBindings() []key.Binding
	// Nodes returns the terminal elements in item order.
	Nodes() []*Node
	// Owns reports whether target is one of the widget's nodes.
	Owns(target any) bool
	// FocusActive gives terminal focus to the item under the cursor.
	FocusActive()
	// FlipDirection swaps the text direction at runtime.
	FlipDirection()
	Direction() list.TextDirection
	// SetDefaultState puts the cursor on the first selected or expanded item.
	SetDefaultState()
	Validate() error
}

// Options carry the host services a widget is built with.
type Options struct {
	Scope  *Scope
	Logger *logger.Logger
	// Now drives typeahead expiry; defaults to time.Now.
	Now func() time.Time
}

// Build creates one widget per document entry, in document order.
func Build(cfg *config.Config, opts Options) ([]Widget, error) {
	if cfg == nil {
		return nil, headlesserrors.NewConfigError("", "no widget document", nil)
	}
	if opts.Scope == nil {
		opts.Scope = NewScope()
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	widgets := make([]Widget, 0, len(cfg.Widgets))
	for _, wc := range cfg.Widgets {
		w, err := buildOne(wc, cfg.Settings, opts)
		if err != nil {
			return nil, err
		}
		if err := w.Validate(); err != nil {
			return nil, err
		}
		w.SetDefaultState()
		widgets = append(widgets, w)
	}
	return widgets, nil
}

func buildOne(wc config.Widget, settings config.Settings, opts Options) (Widget, error) {
	b := newBase(wc, settings, opts)
	switch wc.Kind {
	case config.KindAccordion:
		return newAccordion(b), nil
	case config.KindTabs:
		return newTabs(b), nil
	case config.KindListbox:
		return newListbox(b, settings), nil
	}
	return nil, headlesserrors.NewConfigError(wc.ID, fmt.Sprintf("unknown widget kind %q", wc.Kind), nil)
}

// base holds the configuration accessors every widget shares.
type base struct {
	cfg       config.Widget
	scope     *Scope
	log       *logger.Logger
	now       func() time.Time
	active    *signal.Writable[int]
	direction *signal.Writable[list.TextDirection]
	focusMode list.FocusMode
	nodes     []*Node
}

func newBase(wc config.Widget, settings config.Settings, opts Options) *base {
	b := &base{
		cfg:       wc,
		scope:     opts.Scope,
		log:       opts.Logger.WithWidget(wc.Kind, wc.ID),
		now:       opts.Now,
		active:    signal.NewWritable(0),
		direction: signal.NewWritable(list.TextDirection(wc.Direction(settings))),
		focusMode: list.Roving,
	}
	if settings.FocusMode != "" {
		b.focusMode = list.FocusMode(settings.FocusMode)
	}
	for _, item := range wc.Items {
		b.nodes = append(b.nodes, opts.Scope.NewNode(wc.ID+"-"+item.Value))
	}

	b.active.Subscribe(func(i int) {
		if b.log.DebugEnabled() {
			b.log.WithFields(map[string]any{"active": i}).Debug("cursor moved")
		}
	})
	return b
}

func (b *base) ID() string    { return b.cfg.ID }
func (b *base) Kind() string  { return b.cfg.Kind }
func (b *base) Title() string { return b.cfg.Title }

// Nodes returns the terminal elements in item order.
func (b *base) Nodes() []*Node { return b.nodes }

// Owns reports whether target is one of the widget's nodes.
func (b *base) Owns(target any) bool {
	for _, n := range b.nodes {
		if any(n) == target {
			return true
		}
	}
	return false
}

// Config returns the document entry the widget was built from.
func (b *base) Config() config.Widget { return b.cfg }

// Direction returns the current text direction.
func (b *base) Direction() list.TextDirection { return b.direction.Get() }

// FlipDirection swaps between left-to-right and right-to-left.
func (b *base) FlipDirection() {
	b.direction.Update(func(d list.TextDirection) list.TextDirection {
		if d == list.RTL {
			return list.LTR
		}
		return list.RTL
	})
	b.log.WithFields(map[string]any{"direction": b.direction.Get()}).Debug("text direction changed")
}

func (b *base) orientation(def list.Orientation) list.Orientation {
	if b.cfg.Orientation == "" {
		return def
	}
	return list.Orientation(b.cfg.Orientation)
}

func (b *base) selectionMode() list.SelectionMode {
	if b.cfg.SelectionMode == "" {
		return list.Follow
	}
	return list.SelectionMode(b.cfg.SelectionMode)
}

func (b *base) element(i int) signal.Signal[list.Element] {
	return signal.Static[list.Element](b.nodes[i])
}

func (b *base) disabledItem(i int) signal.Signal[bool] {
	return signal.Static(b.cfg.Items[i].Disabled)
}

// focusActive hands terminal focus to the active item's node.
func (b *base) focusActive() {
	i := b.active.Get()
	if i >= 0 && i < len(b.nodes) {
		b.nodes[i].Focus()
	}
}

// logKey records how a key press was handled.
func (b *base) logKey(e event.KeyboardEvent, handled bool) {
	b.log.Input("keydown", e.String(), handled)
}

func (b *base) logPointer(e event.PointerEvent, handled bool) {
	b.log.Input("pointerdown", fmt.Sprintf("%s@%d,%d", e.Mods, e.X, e.Y), handled)
}

func (b *base) watch(name string, w *signal.Writable[[]string]) {
	w.Subscribe(func(values []string) {
		b.log.WithFields(map[string]any{name: values}).Debug(name + " changed")
	})
}

func initial(values []string) *signal.Writable[[]string] {
	return signal.NewWritable(append([]string{}, values...))
}
