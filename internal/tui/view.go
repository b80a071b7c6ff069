package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/str4t3gy/sweetbakery/internal/logger"
	"github.com/str4t3gy/sweetbakery/internal/services"
)

// PlannerView runs the interactive planner in the alternate screen
type PlannerView struct {
	program *tea.Program
}

func NewPlannerView(planner *services.Planner, opts ...tea.ProgramOption) *PlannerView {
	if len(opts) == 0 {
		opts = []tea.ProgramOption{tea.WithAltScreen()}
	}
	return &PlannerView{
		program: tea.NewProgram(NewModel(planner), opts...),
	}
}

// Run blocks until the user quits
func (v *PlannerView) Run() error {
	logger.Info("Starting interactive planner")

	if _, err := v.program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func (v *PlannerView) Stop() {
	if v.program != nil {
		v.program.Quit()
	}
}
