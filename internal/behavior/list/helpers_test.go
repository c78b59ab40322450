package list

import (
	"fmt"

	"github.com/alexisbeaulieu97/headless/internal/signal"
)

type testElement struct {
	focusCount int
}

func (e *testElement) Focus() { e.focusCount++ }

type testItem struct {
	id       string
	value    string
	term     string
	disabled bool
	el       *testElement
}

func (i *testItem) ID() string         { return i.id }
func (i *testItem) Value() string      { return i.value }
func (i *testItem) SearchTerm() string { return i.term }
func (i *testItem) Disabled() bool     { return i.disabled }
func (i *testItem) Element() Element   { return i.el }

func makeItems(n int, disabled ...int) []*testItem {
	items := make([]*testItem, n)
	for i := range items {
		items[i] = &testItem{
			id:    fmt.Sprintf("item-%d", i),
			value: fmt.Sprintf("v%d", i),
			term:  fmt.Sprintf("item %d", i),
			el:    &testElement{},
		}
	}
	for _, d := range disabled {
		items[d].disabled = true
	}
	return items
}

type fixture struct {
	items        []*testItem
	active       *signal.Writable[int]
	values       *signal.Writable[[]string]
	wrap         bool
	skipDisabled bool
	multi        bool
	mode         FocusMode
	disabled     bool
	orientation  Orientation
	direction    TextDirection

	focus *Focus[*testItem]
	nav   *Navigation[*testItem]
	sel   *Selection[*testItem]
}

func newFixture(items []*testItem, configure ...func(*fixture)) *fixture {
	f := &fixture{
		items:        items,
		active:       signal.NewWritable(0),
		values:       signal.NewWritable([]string{}),
		skipDisabled: true,
		mode:         Roving,
		orientation:  Vertical,
		direction:    LTR,
	}
	for _, c := range configure {
		c(f)
	}
	f.focus = NewFocus(FocusInputs[*testItem]{
		Items:        func() []*testItem { return f.items },
		ActiveIndex:  f.active,
		FocusMode:    func() FocusMode { return f.mode },
		Disabled:     func() bool { return f.disabled },
		SkipDisabled: func() bool { return f.skipDisabled },
	})
	f.nav = NewNavigation(f.focus, NavigationInputs{
		Wrap:          func() bool { return f.wrap },
		Orientation:   func() Orientation { return f.orientation },
		TextDirection: func() TextDirection { return f.direction },
	})
	f.sel = NewSelection(f.focus, SelectionInputs{
		Values: f.values,
		Multi:  func() bool { return f.multi },
	})
	return f
}
