package playground

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/headless/internal/behavior/list"
	"github.com/alexisbeaulieu97/headless/internal/pattern/accordion"
	"github.com/alexisbeaulieu97/headless/internal/widget"
)

const (
	indent    = 2
	separator = "│"
)

// canvas accumulates output lines so zones can be recorded with the row
// they were drawn on.
type canvas struct {
	lines []string
}

func (c *canvas) add(s string) int {
	c.lines = append(c.lines, s)
	return len(c.lines) - 1
}

func (c *canvas) addBlock(s string) {
	for _, line := range strings.Split(s, "\n") {
		c.add(line)
	}
}

// cell is one clickable item of a row or column.
type cell struct {
	text  string
	style lipgloss.Style
	node  *widget.Node
}

// View renders the current model state and records where every item was
// drawn for mouse hit testing.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.scope.ResetZones()
	c := &canvas{}
	c.add(titleStyle.Render("headless playground"))
	c.add("")

	if m.errorMsg != "" {
		c.add(errorBannerStyle.Render(m.errorMsg))
		c.add("")
	}

	for i, w := range m.widgets {
		m.renderWidget(c, w, i == m.focus)
		c.add("")
	}

	c.add(m.renderStatus())
	var bindings helpKeys
	bindings.global = m.keys
	if w := m.Focused(); w != nil {
		bindings.widget = w.KeyBindings()
	}
	c.addBlock(m.help.View(bindings))

	return strings.Join(c.lines, "\n")
}

func (m Model) renderWidget(c *canvas, w widget.Widget, focused bool) {
	header := fmt.Sprintf("%s (%s)", w.Title(), w.Kind())
	if w.Title() == "" {
		header = fmt.Sprintf("%s (%s)", w.ID(), w.Kind())
	}
	if w.Direction() == list.RTL {
		header += " rtl"
	}
	if focused {
		c.add(focusedHeaderStyle.Render(header))
	} else {
		c.add(headerStyle.Render(header))
	}

	switch w := w.(type) {
	case *widget.Accordion:
		m.renderAccordion(c, w, focused)
	case *widget.Tabs:
		m.renderTabs(c, w, focused)
	case *widget.Listbox:
		m.renderListbox(c, w, focused)
	}
}

func (m Model) renderAccordion(c *canvas, a *widget.Accordion, focused bool) {
	items := a.Config().Items
	for i, t := range a.Triggers {
		icon := "▸"
		if t.Expanded() {
			icon = "▾"
		}
		active := focused && t.Active()
		text := fmt.Sprintf("%s %s %s", cursor(active), icon, items[i].Label)
		m.column(c, cell{text: text, style: triggerStyle(t, active), node: a.Nodes()[i]})

		if !a.Panels[i].Hidden() && items[i].Content != "" {
			c.addBlock(panelStyle.Render(items[i].Content))
		}
	}
}

func (m Model) renderTabs(c *canvas, t *widget.Tabs, focused bool) {
	items := t.Config().Items
	cells := make([]cell, len(t.Tabs))
	for i, tab := range t.Tabs {
		active := focused && tab.Active()
		label := " " + items[i].Label + " "
		if tab.Selected() {
			label = "[" + items[i].Label + "]"
		}
		cells[i] = cell{text: label, style: itemStyleFor(active, tab.Selected(), tab.Disabled()), node: t.Nodes()[i]}
	}

	if t.List.Orientation() == list.Horizontal {
		m.row(c, cells, t.Direction() == list.RTL)
	} else {
		for i := range cells {
			cells[i].text = cursor(focused && t.Tabs[i].Active()) + cells[i].text
			m.column(c, cells[i])
		}
	}

	for i, p := range t.Panels {
		if !p.Hidden() && items[i].Content != "" {
			c.addBlock(panelStyle.Render(items[i].Content))
		}
	}
}

func (m Model) renderListbox(c *canvas, l *widget.Listbox, focused bool) {
	items := l.Config().Items
	cells := make([]cell, len(l.Options))
	for i, o := range l.Options {
		active := focused && o.Active()
		mark := "( )"
		switch {
		case l.Listbox.Multi() && o.Selected():
			mark = "[x]"
		case l.Listbox.Multi():
			mark = "[ ]"
		case o.Selected():
			mark = "(•)"
		}
		cells[i] = cell{
			text:  fmt.Sprintf("%s %s %s", cursor(active), mark, items[i].Label),
			style: itemStyleFor(active, o.Selected(), o.Disabled()),
			node:  l.Nodes()[i],
		}
	}

	if l.Listbox.Orientation() == list.Horizontal {
		m.row(c, cells, l.Direction() == list.RTL)
	} else {
		for _, cl := range cells {
			m.column(c, cl)
		}
	}

	if q := l.Listbox.Typeahead.Query(); q != "" {
		c.add(statusStyle.Render(fmt.Sprintf("%ssearching %q", strings.Repeat(" ", indent), q)))
	}
}

// column draws one cell on its own line.
func (m Model) column(c *canvas, cl cell) {
	rendered := cl.style.Render(cl.text)
	y := c.add(strings.Repeat(" ", indent) + rendered)
	cl.node.SetZone(widget.Zone{X: indent, Y: y, Width: lipgloss.Width(rendered), Height: 1})
}

// row draws cells side by side, right to left when rtl is set.
func (m Model) row(c *canvas, cells []cell, rtl bool) {
	order := make([]cell, len(cells))
	copy(order, cells)
	if rtl {
		for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
			order[i], order[j] = order[j], order[i]
		}
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", indent))
	x := indent
	zones := make([]widget.Zone, len(order))
	for i, cl := range order {
		if i > 0 {
			b.WriteString(separator)
			x += lipgloss.Width(separator)
		}
		rendered := cl.style.Render(cl.text)
		width := lipgloss.Width(rendered)
		zones[i] = widget.Zone{X: x, Width: width, Height: 1}
		b.WriteString(rendered)
		x += width
	}

	y := c.add(b.String())
	for i, cl := range order {
		zones[i].Y = y
		cl.node.SetZone(zones[i])
	}
}

func (m Model) renderStatus() string {
	if m.lastKey == "" {
		return statusStyle.Render("tab switches widgets, the mouse works too")
	}
	outcome := "ignored"
	if m.lastHandled {
		outcome = "handled"
	}
	return statusStyle.Render(fmt.Sprintf("%s %s", m.lastKey, outcome))
}

func cursor(active bool) string {
	if active {
		return "›"
	}
	return " "
}

// triggerStyle strikes through triggers navigation skips and only dims
// disabled triggers the cursor can still reach.
func triggerStyle(t *accordion.Trigger, active bool) lipgloss.Style {
	switch {
	case t.HardDisabled():
		return disabledItemStyle
	case t.Disabled() && active:
		return activeItemStyle.Faint(true)
	case t.Disabled():
		return dimmedItemStyle
	}
	return itemStyleFor(active, false, false)
}

func itemStyleFor(active, selected, disabled bool) lipgloss.Style {
	switch {
	case disabled:
		return disabledItemStyle
	case active:
		return activeItemStyle
	case selected:
		return selectedItemStyle
	}
	return itemStyle
}
