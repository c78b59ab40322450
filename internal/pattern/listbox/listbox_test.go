package listbox

import (
	stdErrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/headless/internal/behavior/list"
	"github.com/alexisbeaulieu97/headless/internal/event"
	"github.com/alexisbeaulieu97/headless/internal/signal"
	headlesserrors "github.com/alexisbeaulieu97/headless/pkg/errors"
)

type node struct {
	focused int
}

func (n *node) Focus() { n.focused++ }

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

var fruits = []string{"Apple", "Apricot", "Banana", "Blueberry", "Cherry"}

type fixture struct {
	listbox  *Listbox
	options  []*Option
	elements []*node
	disabled []bool
	clock    *fakeClock

	active      *signal.Writable[int]
	value       *signal.Writable[[]string]
	listOff     bool
	readonly    bool
	multi       bool
	skip        bool
	mode        list.SelectionMode
	orientation list.Orientation
	direction   list.TextDirection
}

func newFixture(configure ...func(*fixture)) *fixture {
	f := &fixture{
		active:      signal.NewWritable(0),
		value:       signal.NewWritable([]string{}),
		disabled:    make([]bool, len(fruits)),
		clock:       &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		skip:        true,
		mode:        list.Follow,
		orientation: list.Vertical,
		direction:   list.LTR,
	}
	for _, c := range configure {
		c(f)
	}

	f.listbox = New(Inputs{
		ID:            signal.Static("fruits"),
		Items:         func() []*Option { return f.options },
		Value:         f.value,
		ActiveIndex:   f.active,
		Disabled:      func() bool { return f.listOff },
		Readonly:      func() bool { return f.readonly },
		Multi:         func() bool { return f.multi },
		SelectionMode: func() list.SelectionMode { return f.mode },
		SkipDisabled:  func() bool { return f.skip },
		Orientation:   func() list.Orientation { return f.orientation },
		TextDirection: func() list.TextDirection { return f.direction },
		Now:           f.clock.Now,
	})

	for i, label := range fruits {
		el := &node{}
		f.elements = append(f.elements, el)
		f.options = append(f.options, NewOption(OptionInputs{
			ID:       signal.Static("option-" + strings.ToLower(label)),
			Value:    signal.Static(strings.ToLower(label)),
			Label:    signal.Static(label),
			Disabled: func() bool { return f.disabled[i] },
			Element:  signal.Static[list.Element](el),
			Listbox:  signal.Static(f.listbox),
		}))
	}
	return f
}

func multiExplicit(f *fixture) {
	f.multi = true
	f.mode = list.Explicit
}

var (
	up        = event.Press(event.KeyArrowUp)
	down      = event.Press(event.KeyArrowDown)
	home      = event.Press(event.KeyHome)
	end       = event.Press(event.KeyEnd)
	space     = event.Press(event.KeySpace)
	enter     = event.Press(event.KeyEnter)
	shiftUp   = event.Press(event.KeyArrowUp, event.ModShift)
	shiftDown = event.Press(event.KeyArrowDown, event.ModShift)
	ctrlA     = event.Press("a", event.ModCtrl)
)

func (f *fixture) press(events ...event.KeyboardEvent) {
	for _, e := range events {
		f.listbox.OnKeydown(e)
	}
}

func (f *fixture) typeText(s string) {
	for _, r := range s {
		f.listbox.OnKeydown(event.Press(string(r)))
	}
}

func TestFollowFocusSelectsOnNavigation(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.press(down)
	assert.Equal(t, []string{"apricot"}, f.listbox.Value())
	f.press(end)
	assert.Equal(t, []string{"cherry"}, f.listbox.Value())
	f.press(home, up)
	assert.Equal(t, 4, f.active.Get())
	assert.Equal(t, []string{"cherry"}, f.listbox.Value())
	assert.True(t, f.options[4].Selected())
}

func TestExplicitSingleSelectionToggles(t *testing.T) {
	t.Parallel()

	f := newFixture(func(f *fixture) { f.mode = list.Explicit })
	f.press(down)
	assert.Empty(t, f.listbox.Value())

	f.press(space)
	assert.Equal(t, []string{"apricot"}, f.listbox.Value())
	f.press(down, enter)
	assert.Equal(t, []string{"banana"}, f.listbox.Value())
	f.press(enter)
	assert.Empty(t, f.listbox.Value())
}

func TestShiftArrowExtendsAndContractsRange(t *testing.T) {
	t.Parallel()

	f := newFixture(multiExplicit)
	f.press(space)
	require.Equal(t, []string{"apple"}, f.listbox.Value())

	f.press(shiftDown, shiftDown)
	assert.Equal(t, []string{"apple", "apricot", "banana"}, f.listbox.Value())

	f.press(shiftUp)
	assert.Equal(t, []string{"apple", "apricot"}, f.listbox.Value())
}

func TestCtrlShiftHomeEndSelectsToEdges(t *testing.T) {
	t.Parallel()

	f := newFixture(multiExplicit)
	f.active.Set(1)

	f.press(event.Press(event.KeyEnd, event.ModCtrl, event.ModShift))
	assert.Equal(t, 4, f.active.Get())
	assert.Equal(t, []string{"apricot", "banana", "blueberry", "cherry"}, f.listbox.Value())

	f.press(event.Press(event.KeyHome, event.ModCtrl, event.ModShift))
	assert.Equal(t, 0, f.active.Get())
	assert.ElementsMatch(t, []string{"apple", "apricot"}, f.listbox.Value())
}

func TestShiftSpaceSelectsFromAnchor(t *testing.T) {
	t.Parallel()

	f := newFixture(multiExplicit)
	f.active.Set(1)
	f.press(space, down, down)
	f.press(event.Press(event.KeySpace, event.ModShift))

	assert.Equal(t, 3, f.active.Get())
	assert.Equal(t, []string{"apricot", "banana", "blueberry"}, f.listbox.Value())
}

func TestCtrlAToggleAll(t *testing.T) {
	t.Parallel()

	f := newFixture(multiExplicit)
	f.disabled[2] = true

	f.press(ctrlA)
	assert.Equal(t, []string{"apple", "apricot", "blueberry", "cherry"}, f.listbox.Value())
	f.press(ctrlA)
	assert.Empty(t, f.listbox.Value())
}

func TestMultiFollowCtrlMovesWithoutSelecting(t *testing.T) {
	t.Parallel()

	f := newFixture(func(f *fixture) { f.multi = true })

	f.press(down)
	assert.Equal(t, []string{"apricot"}, f.listbox.Value())

	f.press(event.Press(event.KeyArrowDown, event.ModCtrl))
	assert.Equal(t, 2, f.active.Get())
	assert.Equal(t, []string{"apricot"}, f.listbox.Value())

	f.press(event.Press(event.KeySpace, event.ModCtrl))
	assert.Equal(t, []string{"apricot", "banana"}, f.listbox.Value())

	f.press(down)
	assert.Equal(t, []string{"blueberry"}, f.listbox.Value())
}

func TestTypeahead(t *testing.T) {
	t.Parallel()

	f := newFixture()

	f.typeText("b")
	assert.Equal(t, 2, f.active.Get())
	assert.Equal(t, []string{"banana"}, f.listbox.Value())

	f.clock.Advance(100 * time.Millisecond)
	f.typeText("l")
	assert.Equal(t, 3, f.active.Get())
	assert.Equal(t, "bl", f.listbox.Typeahead.Query())

	f.clock.Advance(time.Second)
	assert.False(t, f.listbox.Typeahead.IsTyping())
	f.typeText("C")
	assert.Equal(t, 4, f.active.Get())
	assert.Equal(t, []string{"cherry"}, f.listbox.Value())
}

func TestSpaceContinuesTypeaheadQuery(t *testing.T) {
	t.Parallel()

	f := newFixture(multiExplicit)
	f.typeText("a")
	require.Equal(t, 1, f.active.Get())

	require.True(t, f.listbox.OnKeydown(space))
	assert.Empty(t, f.listbox.Value())
	assert.Equal(t, "a ", f.listbox.Typeahead.Query())

	f.clock.Advance(time.Second)
	f.press(space)
	assert.Equal(t, []string{"apricot"}, f.listbox.Value())
}

func TestReadonlyOnlyNavigates(t *testing.T) {
	t.Parallel()

	f := newFixture(func(f *fixture) {
		f.readonly = true
		f.multi = true
	})
	f.value.Set([]string{"apple"})

	f.press(down, space, ctrlA, shiftDown)
	assert.Equal(t, 1, f.active.Get())
	f.listbox.OnPointerdown(event.PointerEvent{Target: f.elements[3]})
	assert.Equal(t, 3, f.active.Get())
	assert.Equal(t, []string{"apple"}, f.listbox.Value())
}

func TestPointerSelection(t *testing.T) {
	t.Parallel()

	t.Run("single follow selects", func(t *testing.T) {
		t.Parallel()
		f := newFixture()
		require.True(t, f.listbox.OnPointerdown(event.PointerEvent{Target: f.elements[3]}))
		assert.Equal(t, 3, f.active.Get())
		assert.Equal(t, []string{"blueberry"}, f.listbox.Value())
		assert.Equal(t, 1, f.elements[3].focused)
	})

	t.Run("single explicit toggles", func(t *testing.T) {
		t.Parallel()
		f := newFixture(func(f *fixture) { f.mode = list.Explicit })
		f.listbox.OnPointerdown(event.PointerEvent{Target: f.elements[1]})
		assert.Equal(t, []string{"apricot"}, f.listbox.Value())
		f.listbox.OnPointerdown(event.PointerEvent{Target: f.elements[1]})
		assert.Empty(t, f.listbox.Value())
	})

	t.Run("multi explicit with modifiers", func(t *testing.T) {
		t.Parallel()
		f := newFixture(multiExplicit)
		f.listbox.OnPointerdown(event.PointerEvent{Target: f.elements[1]})
		f.listbox.OnPointerdown(event.PointerEvent{Target: f.elements[3], Mods: event.ModShift})
		assert.Equal(t, []string{"apricot", "banana", "blueberry"}, f.listbox.Value())

		f.listbox.OnPointerdown(event.PointerEvent{Target: f.elements[2], Mods: event.ModCtrl})
		assert.Equal(t, []string{"apricot", "blueberry"}, f.listbox.Value())
	})

	t.Run("disabled option", func(t *testing.T) {
		t.Parallel()
		f := newFixture()
		f.disabled[2] = true
		f.listbox.OnPointerdown(event.PointerEvent{Target: f.elements[2]})
		assert.Equal(t, 0, f.active.Get())
		assert.Empty(t, f.listbox.Value())
	})

	t.Run("disabled option that can take focus", func(t *testing.T) {
		t.Parallel()
		configs := map[string]func(*fixture){
			"single follow":  func(*fixture) {},
			"multi explicit": multiExplicit,
		}
		for name, configure := range configs {
			f := newFixture(configure, func(f *fixture) { f.skip = false })
			f.disabled[2] = true
			f.value.Set([]string{"apple"})

			for _, mods := range []event.Modifier{event.ModNone, event.ModShift, event.ModCtrl} {
				f.listbox.OnPointerdown(event.PointerEvent{Target: f.elements[2], Mods: mods})
				assert.Equal(t, 0, f.active.Get(), name)
				assert.Equal(t, []string{"apple"}, f.listbox.Value(), name)
				assert.Zero(t, f.elements[2].focused, name)
			}
		}
	})
}

func TestDisabledListboxIgnoresInput(t *testing.T) {
	t.Parallel()

	f := newFixture(func(f *fixture) { f.listOff = true })
	for _, e := range []event.KeyboardEvent{down, end, space, ctrlA, event.Press("b")} {
		assert.False(t, f.listbox.OnKeydown(e))
	}
	assert.False(t, f.listbox.OnPointerdown(event.PointerEvent{Target: f.elements[1]}))
	assert.Equal(t, 0, f.active.Get())
	assert.Empty(t, f.listbox.Value())
	assert.Equal(t, 0, f.listbox.Tabindex())
}

func TestHorizontalRightToLeft(t *testing.T) {
	t.Parallel()

	f := newFixture(func(f *fixture) {
		f.orientation = list.Horizontal
		f.direction = list.RTL
	})
	f.press(event.Press(event.KeyArrowLeft))
	assert.Equal(t, 1, f.active.Get())
	f.press(event.Press(event.KeyArrowRight))
	assert.Equal(t, 0, f.active.Get())
	assert.False(t, f.listbox.OnKeydown(down))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		multi  bool
		values []string
		want   error
	}{
		{name: "empty", values: nil},
		{name: "single value", values: []string{"banana"}},
		{name: "multi values", multi: true, values: []string{"banana", "cherry"}},
		{name: "too many for single", values: []string{"banana", "cherry"}, want: headlesserrors.ErrTooManyValues},
		{name: "unknown value", multi: true, values: []string{"banana", "kiwi"}, want: headlesserrors.ErrUnknownValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(func(f *fixture) { f.multi = tt.multi })
			f.value.Set(tt.values)

			err := f.listbox.Validate()
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			var configErr *headlesserrors.ConfigError
			require.ErrorAs(t, err, &configErr)
			require.Equal(t, "fruits", configErr.Widget)
			require.True(t, stdErrors.Is(err, tt.want))
		})
	}
}

func TestSetDefaultState(t *testing.T) {
	t.Parallel()

	f := newFixture(func(f *fixture) { f.multi = true })
	f.value.Set([]string{"blueberry", "banana"})
	f.active.Set(4)
	f.listbox.SetDefaultState()
	assert.Equal(t, 2, f.active.Get())

	f.value.Set(nil)
	f.disabled[0] = true
	f.listbox.SetDefaultState()
	assert.Equal(t, 1, f.active.Get())
}

func TestOptionAccessors(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.active.Set(2)
	o := f.options[2]
	assert.Equal(t, "option-banana", o.ID())
	assert.Equal(t, "Banana", o.SearchTerm())
	assert.Equal(t, 2, o.Index())
	assert.True(t, o.Active())
	assert.Equal(t, 0, o.Tabindex())
	assert.Equal(t, -1, f.options[0].Tabindex())

	orphan := NewOption(OptionInputs{Value: signal.Static("x")})
	assert.Equal(t, -1, orphan.Index())
	assert.False(t, orphan.Selected())
}

func TestKeyBindings(t *testing.T) {
	t.Parallel()

	assert.Len(t, newFixture().listbox.KeyBindings(), 2)
	assert.Len(t, newFixture(multiExplicit).listbox.KeyBindings(), 5)

	f := newFixture(func(f *fixture) {
		f.readonly = true
		f.multi = true
	})
	assert.Len(t, f.listbox.KeyBindings(), 2)
}
