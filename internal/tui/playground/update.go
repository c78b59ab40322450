package playground

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/headless/internal/event"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		ApplyMaxWidth(m.width)

		const minWidth = 40
		if m.width < minWidth {
			m.errorMsg = fmt.Sprintf("Terminal too narrow (%d columns). Minimum: %d", m.width, minWidth)
		} else {
			m.errorMsg = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	e := event.FromKeyMsg(msg)

	var cmd tea.Cmd
	global := event.NewKeyboard().
		On(event.Binding(m.keys.Quit), func(event.KeyboardEvent) {
			m.quitting = true
			cmd = tea.Quit
		}).
		On(event.Binding(m.keys.NextWidget), func(event.KeyboardEvent) { m.cycle(1) }).
		On(event.Binding(m.keys.PrevWidget), func(event.KeyboardEvent) { m.cycle(-1) }).
		On(event.Binding(m.keys.Help), func(event.KeyboardEvent) { m.help.ShowAll = !m.help.ShowAll }).
		On(event.Binding(m.keys.Flip), func(event.KeyboardEvent) {
			if w := m.Focused(); w != nil {
				w.FlipDirection()
			}
		})
	if global.Handle(e) {
		return m, cmd
	}

	w := m.Focused()
	if w == nil {
		return m, nil
	}
	m.lastKey = e.String()
	m.lastHandled = w.OnKeydown(e)
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	e, ok := event.FromMouseMsg(msg, m.scope.HitTest)
	if !ok || e.Target == nil {
		return m
	}
	for i, w := range m.widgets {
		if !w.Owns(e.Target) {
			continue
		}
		if i != m.focus {
			m.focus = i
			m.log.WithFields(map[string]any{"widget": w.ID()}).Debug("widget focused by pointer")
		}
		m.lastKey = "click"
		if e.Mods != event.ModNone {
			m.lastKey = e.Mods.String() + "+click"
		}
		m.lastHandled = w.OnPointerdown(e)
		return m
	}
	return m
}

// cycle moves keyboard focus to the next or previous widget.
func (m *Model) cycle(delta int) {
	if len(m.widgets) == 0 {
		return
	}
	m.focus = ((m.focus+delta)%len(m.widgets) + len(m.widgets)) % len(m.widgets)
	w := m.widgets[m.focus]
	w.FocusActive()
	m.log.WithFields(map[string]any{"widget": w.ID()}).Debug("widget focused")
}
