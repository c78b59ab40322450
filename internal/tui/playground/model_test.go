package playground

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/headless/internal/config"
	"github.com/alexisbeaulieu97/headless/internal/widget"
)

func newTestModel(t *testing.T) Model {
	t.Helper()

	cfg, err := config.Default()
	require.NoError(t, err)

	scope := widget.NewScope()
	widgets, err := widget.Build(cfg, widget.Options{Scope: scope})
	require.NoError(t, err)
	require.Len(t, widgets, 3)

	return NewModel(widgets, scope, nil)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func TestNewModel(t *testing.T) {
	m := newTestModel(t)

	assert.Nil(t, m.Init())
	assert.Equal(t, "faq", m.Focused().ID())
	assert.False(t, m.Quitting())
	assert.True(t, m.Focused().Nodes()[0].Focused(), "the first widget's cursor holds terminal focus")
}

func TestNewModel_NoWidgets(t *testing.T) {
	m := NewModel(nil, widget.NewScope(), nil)

	assert.Nil(t, m.Focused())
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Nil(t, m.Focused())
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Empty(t, m.lastKey)
}
