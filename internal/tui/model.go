package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/str4t3gy/sweetbakery/internal/models"
	"github.com/str4t3gy/sweetbakery/internal/report"
	"github.com/str4t3gy/sweetbakery/internal/services"
)

type ReportsLoaded struct {
	Reports []models.ScenarioReport
}

type Model struct {
	planner   *services.Planner
	reports   []models.ScenarioReport
	selected  int
	computing bool
	spinner   spinner.Model
	width     int
	height    int
	quit      bool
}

func NewModel(planner *services.Planner) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return Model{
		planner:   planner,
		computing: true,
		spinner:   sp,
		width:     80,
		height:    24,
	}
}

// computeReports runs the planner outside of Update
func computeReports(planner *services.Planner) tea.Cmd {
	return func() tea.Msg {
		return ReportsLoaded{Reports: planner.RunAll()}
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		computeReports(m.planner),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.handleKeyMsg(msg)
		if m.quit {
			return m, tea.Quit
		}
		cmds = append(cmds, cmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case ReportsLoaded:
		m.reports = msg.Reports
		m.computing = false
		if m.selected >= len(m.reports) {
			m.selected = 0
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quit = true
	case "tab", "right", "l":
		if len(m.reports) > 0 {
			m.selected = (m.selected + 1) % len(m.reports)
		}
	case "shift+tab", "left", "h":
		if len(m.reports) > 0 {
			m.selected = (m.selected + len(m.reports) - 1) % len(m.reports)
		}
	case "r":
		if !m.computing {
			m.computing = true
			return m, tea.Batch(m.spinner.Tick, computeReports(m.planner))
		}
	}
	return m, nil
}

// Selected returns the report currently shown, if any
func (m Model) Selected() (models.ScenarioReport, bool) {
	if len(m.reports) == 0 {
		return models.ScenarioReport{}, false
	}
	return m.reports[m.selected], true
}

func (m Model) View() string {
	if m.quit {
		return "Bye!\n"
	}

	var s strings.Builder

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginBottom(1)

	s.WriteString(headerStyle.Render("🥞 Sweet Bakery compounding planner"))
	s.WriteString("\n\n")

	if m.computing {
		s.WriteString(fmt.Sprintf("%s Searching the best intervals...\n", m.spinner.View()))
		return s.String()
	}

	// Tabs
	activeTab := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82")).Underline(true)
	inactiveTab := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	tabs := make([]string, 0, len(m.reports))
	for i, r := range m.reports {
		style := inactiveTab
		if i == m.selected {
			style = activeTab
		}
		tabs = append(tabs, style.Render(string(r.Scenario.Kind)))
	}
	s.WriteString(strings.Join(tabs, "  |  "))
	s.WriteString("\n\n")

	if selected, ok := m.Selected(); ok {
		sectionStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1).
			Width(m.width - 2)
		s.WriteString(sectionStyle.Render(report.View(selected)))
		s.WriteString("\n\n")
	}

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	s.WriteString(footerStyle.Render("tab/←/→ switch pool | r recompute | q quit"))

	return s.String()
}
