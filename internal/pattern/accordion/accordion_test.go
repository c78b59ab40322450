package accordion

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/headless/internal/behavior/list"
	"github.com/alexisbeaulieu97/headless/internal/event"
	"github.com/alexisbeaulieu97/headless/internal/signal"
)

type node struct {
	focused int
}

func (n *node) Focus() { n.focused++ }

type fixture struct {
	group    *Group
	triggers []*Trigger
	panels   []*Panel
	elements []*node
	disabled []bool

	active       *signal.Writable[int]
	expanded     *signal.Writable[[]string]
	groupOff     bool
	multi        bool
	skipDisabled bool
	wrap         bool
	orientation  list.Orientation
	direction    list.TextDirection
}

func newFixture(n int, configure ...func(*fixture)) *fixture {
	f := &fixture{
		active:       signal.NewWritable(0),
		expanded:     signal.NewWritable([]string{}),
		disabled:     make([]bool, n),
		skipDisabled: true,
		wrap:         true,
		orientation:  list.Vertical,
		direction:    list.LTR,
	}
	for _, c := range configure {
		c(f)
	}

	f.group = NewGroup(GroupInputs{
		Items:           func() []*Trigger { return f.triggers },
		ExpandedIDs:     f.expanded,
		ActiveIndex:     f.active,
		Disabled:        func() bool { return f.groupOff },
		MultiExpandable: func() bool { return f.multi },
		SkipDisabled:    func() bool { return f.skipDisabled },
		Wrap:            func() bool { return f.wrap },
		Orientation:     func() list.Orientation { return f.orientation },
		TextDirection:   func() list.TextDirection { return f.direction },
	})

	for i := 0; i < n; i++ {
		el := &node{}
		f.elements = append(f.elements, el)
		f.triggers = append(f.triggers, NewTrigger(TriggerInputs{
			ID:       signal.Static(fmt.Sprintf("trigger-%d", i+1)),
			Value:    signal.Static(fmt.Sprintf("panel-%d", i+1)),
			Disabled: func() bool { return f.disabled[i] },
			Element:  signal.Static[list.Element](el),
			Group:    signal.Static(f.group),
			Panel:    func() *Panel { return f.panels[i] },
		}))
		f.panels = append(f.panels, NewPanel(PanelInputs{
			ID:      signal.Static(fmt.Sprintf("panel-%d", i+1)),
			Value:   signal.Static(fmt.Sprintf("panel-%d", i+1)),
			Trigger: func() *Trigger { return f.triggers[i] },
		}))
	}
	return f
}

func (f *fixture) hidden() []bool {
	out := make([]bool, len(f.panels))
	for i, p := range f.panels {
		out[i] = p.Hidden()
	}
	return out
}

var (
	space = event.Press(event.KeySpace)
	enter = event.Press(event.KeyEnter)
	up    = event.Press(event.KeyArrowUp)
	down  = event.Press(event.KeyArrowDown)
	left  = event.Press(event.KeyArrowLeft)
	right = event.Press(event.KeyArrowRight)
	home  = event.Press(event.KeyHome)
	end   = event.Press(event.KeyEnd)
)

func TestMultiExpandableKeepsOtherPanelsOpen(t *testing.T) {
	t.Parallel()

	f := newFixture(3, func(f *fixture) { f.multi = true })
	f.expanded.Set([]string{"panel-2"})

	require.True(t, f.triggers[0].OnKeydown(space))
	assert.False(t, f.panels[0].Hidden())
	assert.False(t, f.panels[1].Hidden())
	assert.True(t, f.panels[2].Hidden())
}

func TestSingleExpansionCollapsesOthers(t *testing.T) {
	t.Parallel()

	f := newFixture(3)
	f.expanded.Set([]string{"panel-2"})

	require.True(t, f.triggers[0].OnKeydown(space))
	assert.False(t, f.panels[0].Hidden())
	assert.True(t, f.panels[1].Hidden())
	assert.Equal(t, []string{"panel-1"}, f.group.ExpandedIDs())
}

func TestEnterTogglesBackAndForth(t *testing.T) {
	t.Parallel()

	f := newFixture(2)
	f.triggers[0].OnKeydown(enter)
	assert.True(t, f.triggers[0].Expanded())
	f.triggers[0].OnKeydown(enter)
	assert.False(t, f.triggers[0].Expanded())
}

func TestKeyboardNavigation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		orientation list.Orientation
		direction   list.TextDirection
		start       int
		key         event.KeyboardEvent
		want        int
	}{
		{"vertical down", list.Vertical, list.LTR, 0, down, 1},
		{"vertical up wraps", list.Vertical, list.LTR, 0, up, 2},
		{"vertical ignores left", list.Vertical, list.LTR, 1, left, 1},
		{"horizontal ltr right", list.Horizontal, list.LTR, 0, right, 1},
		{"horizontal ltr left", list.Horizontal, list.LTR, 1, left, 0},
		{"horizontal rtl left", list.Horizontal, list.RTL, 1, left, 2},
		{"horizontal rtl right", list.Horizontal, list.RTL, 1, right, 0},
		{"horizontal ignores down", list.Horizontal, list.LTR, 1, down, 1},
		{"home", list.Vertical, list.LTR, 2, home, 0},
		{"end", list.Vertical, list.LTR, 0, end, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(3, func(f *fixture) {
				f.orientation = tt.orientation
				f.direction = tt.direction
			})
			f.active.Set(tt.start)
			f.group.OnKeydown(tt.key)
			assert.Equal(t, tt.want, f.active.Get())
			assert.True(t, f.triggers[tt.want].Active())
		})
	}
}

func TestNavigationMovesHostFocus(t *testing.T) {
	t.Parallel()

	f := newFixture(3)
	f.triggers[0].OnKeydown(down)
	assert.Equal(t, 1, f.elements[1].focused)
	assert.Equal(t, 0, f.triggers[1].Tabindex())
	assert.Equal(t, -1, f.triggers[0].Tabindex())
}

func TestNavigationSkipsDisabledTriggers(t *testing.T) {
	t.Parallel()

	f := newFixture(3)
	f.disabled[1] = true

	f.triggers[0].OnKeydown(down)
	assert.Equal(t, 2, f.active.Get())
	assert.Equal(t, -1, f.triggers[1].Tabindex())
	assert.True(t, f.triggers[1].HardDisabled())
}

func TestDisabledGuards(t *testing.T) {
	t.Parallel()

	t.Run("group disabled", func(t *testing.T) {
		t.Parallel()
		f := newFixture(3, func(f *fixture) { f.groupOff = true })
		for _, ev := range []event.KeyboardEvent{space, enter, down, end} {
			assert.False(t, f.triggers[0].OnKeydown(ev))
		}
		assert.False(t, f.triggers[1].OnPointerdown(event.PointerEvent{Target: f.elements[1]}))
		assert.Equal(t, 0, f.active.Get())
		assert.Equal(t, []bool{true, true, true}, f.hidden())
	})

	t.Run("trigger disabled", func(t *testing.T) {
		t.Parallel()
		f := newFixture(3, func(f *fixture) { f.skipDisabled = false })
		f.disabled[0] = true
		for _, ev := range []event.KeyboardEvent{space, enter, down, end} {
			assert.False(t, f.triggers[0].OnKeydown(ev))
		}
		assert.False(t, f.triggers[0].OnPointerdown(event.PointerEvent{Target: f.elements[0]}))
		assert.Equal(t, 0, f.active.Get())
		assert.Equal(t, []bool{true, true, true}, f.hidden())
	})
}

func TestPointerdownNavigatesThenToggles(t *testing.T) {
	t.Parallel()

	f := newFixture(3)

	require.True(t, f.group.OnPointerdown(event.PointerEvent{Target: f.elements[2]}))
	assert.Equal(t, 2, f.active.Get())
	assert.False(t, f.panels[2].Hidden())

	f.group.OnPointerdown(event.PointerEvent{Target: f.elements[2]})
	assert.True(t, f.panels[2].Hidden())

	assert.False(t, f.group.OnPointerdown(event.PointerEvent{Target: &node{}}))
	assert.False(t, f.group.OnPointerdown(event.PointerEvent{}))
}

func TestToggleTwiceRestoresState(t *testing.T) {
	t.Parallel()

	f := newFixture(3, func(f *fixture) { f.multi = true })
	f.expanded.Set([]string{"panel-3"})

	for i := range f.triggers {
		f.active.Set(i)
		before := f.hidden()
		f.group.OnKeydown(space)
		f.group.OnKeydown(space)
		assert.Equal(t, before, f.hidden())
	}
}

func TestControlsAndLabelling(t *testing.T) {
	t.Parallel()

	f := newFixture(2)
	assert.Equal(t, "panel-1", f.triggers[0].Controls())
	assert.Equal(t, "trigger-2", f.panels[1].LabelledBy())
	assert.Equal(t, 1, f.triggers[1].Index())
}

func TestSetDefaultState(t *testing.T) {
	t.Parallel()

	f := newFixture(4, func(f *fixture) { f.multi = true })
	f.disabled[0] = true
	f.expanded.Set([]string{"panel-3", "panel-4"})
	f.active.Set(0)

	f.group.SetDefaultState()
	assert.Equal(t, 2, f.active.Get())

	f.expanded.Set(nil)
	f.group.SetDefaultState()
	assert.Equal(t, 1, f.active.Get())
}

func TestKeyBindingsFollowOrientation(t *testing.T) {
	t.Parallel()

	f := newFixture(2, func(f *fixture) {
		f.orientation = list.Horizontal
		f.direction = list.RTL
	})
	bindings := f.group.KeyBindings()
	require.Len(t, bindings, 4)
	assert.Equal(t, []string{"right"}, bindings[0].Keys())
	assert.Equal(t, "previous", bindings[0].Help().Desc)
	assert.Equal(t, []string{"left"}, bindings[1].Keys())
}

func TestStaleCursorRecoversAfterShrink(t *testing.T) {
	t.Parallel()

	f := newFixture(3)
	f.active.Set(2)
	f.triggers = f.triggers[:2]

	assert.False(t, f.group.OnKeydown(event.Press(event.KeySpace)), "nothing to toggle without an active trigger")
	assert.Empty(t, f.group.ExpandedIDs())

	require.True(t, f.group.OnKeydown(event.Press(event.KeyArrowDown)))
	assert.Equal(t, 0, f.active.Get())
	assert.Equal(t, 1, f.elements[0].focused)

	f.active.Set(5)
	require.True(t, f.group.OnKeydown(event.Press(event.KeyArrowUp)))
	assert.Equal(t, 1, f.active.Get())

	f.active.Set(5)
	require.True(t, f.group.OnKeydown(event.Press(event.KeyEnd)))
	assert.Equal(t, 1, f.active.Get())
}

func TestStaleCursorIgnoredWhenGroupDisabled(t *testing.T) {
	t.Parallel()

	f := newFixture(2, func(f *fixture) { f.groupOff = true })
	f.active.Set(4)

	assert.False(t, f.group.OnKeydown(event.Press(event.KeyArrowDown)))
	assert.Equal(t, 4, f.active.Get())
}
