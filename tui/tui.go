// Package tui is the full-screen planner: a two-field form, a scrollable
// list of subnet cards, a status bar and a session summary pane.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"subnet-planner/models"
	"subnet-planner/processor"
	"subnet-planner/utils"
)

// Run starts the TUI application
func Run(config *models.Config, proc *processor.Processor, writer *utils.ReportWriter, logger *log.Logger) error {
	m := NewModel(config, proc, writer, logger)

	// Alt screen and mouse support so the wheel scrolls the result list
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
