package tui

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"subnet-planner/models"
	"subnet-planner/utils"
)

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		return m.handleKeyMessage(msg)
	case tea.MouseMsg:
		return m.handleMouseMessage(msg)
	case PlanResultMsg:
		return m.handlePlanResult(msg)
	case ExportResultMsg:
		return m.handleExportResult(msg)
	case TickMsg:
		return m.handleTick()
	}

	// Cursor blink and other textinput housekeeping
	if m.state != StateResults {
		return m.updateFocusedInput(msg)
	}
	return m, nil
}

// handleWindowSize handles window resize events
func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.layoutPanes()
	m.clampResultScroll()
	return m, nil
}

// layoutPanes splits the width 60/40 once the session pane is visible.
func (m *Model) layoutPanes() {
	if m.showRightPane {
		m.leftPaneWidth = int(float64(m.width) * 0.6)
		m.rightPaneWidth = m.width - m.leftPaneWidth - 1
	} else {
		m.leftPaneWidth = m.width
		m.rightPaneWidth = 0
	}
}

// handleKeyMessage handles keyboard input based on current state
func (m Model) handleKeyMessage(msg tea.KeyMsg) (Model, tea.Cmd) {
	// Session pane scrolling; in the form these keys belong to the text fields
	if m.showRightPane && m.state != StateInput {
		switch msg.String() {
		case "ctrl+u":
			m.scrollOutputSummary(-5)
			return m, nil
		case "ctrl+d":
			m.scrollOutputSummary(5)
			return m, nil
		}
	}

	switch m.state {
	case StateInput:
		return m.updateInput(msg)
	case StateResults:
		return m.updateResults(msg)
	case StateError:
		return m.updateError(msg)
	}

	return m, nil
}

// handleMouseMessage handles mouse wheel scrolling
func (m Model) handleMouseMessage(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	step := m.config.TUI.ScrollStep
	onRightPane := m.showRightPane && msg.X > m.leftPaneWidth

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if onRightPane {
			m.scrollOutputSummary(-step)
		} else if m.state == StateResults {
			m.scrollResults(-step)
		}
	case tea.MouseButtonWheelDown:
		if onRightPane {
			m.scrollOutputSummary(step)
		} else if m.state == StateResults {
			m.scrollResults(step)
		}
	}

	return m, nil
}

// handlePlanResult handles a finished calculation
func (m Model) handlePlanResult(result PlanResultMsg) (Model, tea.Cmd) {
	m.openRightPane()
	m.addFormattedAction(fmt.Sprintf("%s into %s",
		utils.TruncateString(result.Request.CIDR, 20), utils.TruncateString(result.Request.Count, 12)))

	if result.Err != nil {
		m.state = StateError
		m.err = result.Err
		m.hasPlan = false
		m.setStatus("Error: "+result.Err.Error(), true)
		m.addFormattedStatusIndented("Error", errorKind(result.Err))
		return m, nil
	}

	m.state = StateResults
	m.err = nil
	m.request = result.Request
	m.partition = result.Partition
	m.hasPlan = true
	m.resultScroll = 0

	total := result.Partition.Len()
	m.setStatus("Number of Networks: "+utils.FormatCount(total), false)
	m.addFormattedStatusIndented("Subnets", fmt.Sprintf("%s x /%d", utils.FormatNumber(total), result.Partition.NewPrefix))
	if total != result.Partition.Requested {
		m.addFormattedStatusIndented("Rounded up", "from "+utils.FormatNumber(result.Partition.Requested))
	}

	return m, nil
}

// handleExportResult records the outcome of an export
func (m Model) handleExportResult(result ExportResultMsg) (Model, tea.Cmd) {
	m.exporting = false
	if result.Err != nil {
		m.logger.Error("export failed", "error", result.Err)
		m.setStatus("Export failed: "+result.Err.Error(), true)
		m.addFormattedStatusIndented("Export", "failed")
		return m, nil
	}

	m.logger.Info("plan exported", "path", result.Path)
	m.setStatus("Report written to "+result.Path, false)
	m.addFormattedStatusIndented("Exported", utils.TruncateString(filepath.Base(result.Path), 40))
	return m, nil
}

func (m *Model) openRightPane() {
	if m.showRightPane {
		return
	}
	m.showRightPane = true
	m.layoutPanes()
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusIsErr = isErr
}

func errorKind(err error) string {
	if pe, ok := models.AsPlanError(err); ok {
		return string(pe.Kind)
	}
	return "failed"
}
