package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/str4t3gy/sweetbakery/internal/config"
	"github.com/str4t3gy/sweetbakery/internal/logger"
	"github.com/str4t3gy/sweetbakery/internal/models"
	"github.com/str4t3gy/sweetbakery/internal/services"
)

func loadedModel(t *testing.T) Model {
	t.Helper()
	logger.SetOutput(io.Discard)

	planner := services.NewPlanner(config.NewConfig())
	msg := computeReports(planner)()
	loaded, ok := msg.(ReportsLoaded)
	require.True(t, ok)
	require.Len(t, loaded.Reports, 3)

	updated, _ := NewModel(planner).Update(loaded)
	return updated.(Model)
}

func press(m Model, key tea.KeyMsg) (Model, tea.Cmd) {
	updated, cmd := m.Update(key)
	return updated.(Model), cmd
}

func TestModelStartsComputing(t *testing.T) {
	m := NewModel(services.NewPlanner(config.NewConfig()))

	_, ok := m.Selected()
	assert.False(t, ok)
	assert.Contains(t, m.View(), "Searching the best intervals")
}

func TestModelSwitchesScenario(t *testing.T) {
	m := loadedModel(t)

	selected, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, models.ScenarioSingle, selected.Scenario.Kind)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyTab})
	selected, _ = m.Selected()
	assert.Equal(t, models.ScenarioSplit, selected.Scenario.Kind)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	selected, _ = m.Selected()
	assert.Equal(t, models.ScenarioPair, selected.Scenario.Kind)
	assert.Contains(t, m.View(), "PAIR COMPOUNDING")
}

func TestModelRecompute(t *testing.T) {
	m := loadedModel(t)

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	assert.True(t, m.computing)
	assert.NotNil(t, cmd)
}

func TestModelQuit(t *testing.T) {
	m := loadedModel(t)

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, "Bye!\n", m.View())
}

func TestModelWindowSize(t *testing.T) {
	m := loadedModel(t)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, updated.(Model).width)
}
