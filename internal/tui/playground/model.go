// Package playground is the terminal host that exercises the interaction
// patterns: keyboard and mouse input are translated into pattern events
// and the derived state is drawn back with lipgloss.
package playground

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/headless/internal/logger"
	"github.com/alexisbeaulieu97/headless/internal/widget"
)

// Model is the bubbletea state of the playground.
type Model struct {
	widgets []widget.Widget
	scope   *widget.Scope
	log     *logger.Logger

	keys  KeyMap
	help  help.Model
	focus int

	lastKey     string
	lastHandled bool
	errorMsg    string

	width    int
	height   int
	quitting bool
}

// NewModel creates a playground over widgets built in scope.
func NewModel(widgets []widget.Widget, scope *widget.Scope, log *logger.Logger) Model {
	if log == nil {
		log = logger.Nop()
	}
	m := Model{
		widgets: widgets,
		scope:   scope,
		log:     log,
		keys:    Keys,
		help:    help.New(),
		width:   80,
		height:  24,
	}
	if len(widgets) > 0 {
		widgets[0].FocusActive()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Focused returns the widget receiving keyboard input, or nil.
func (m Model) Focused() widget.Widget {
	if m.focus < 0 || m.focus >= len(m.widgets) {
		return nil
	}
	return m.widgets[m.focus]
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}
