package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"subnet-planner/models"
	"subnet-planner/processor"
	"subnet-planner/utils"
)

// PlanResultMsg carries the outcome of a calculation back into Update.
type PlanResultMsg struct {
	Request   processor.Request
	Partition processor.Partition
	Err       error
}

// ExportResultMsg reports where a plan report was written.
type ExportResultMsg struct {
	Path string
	Err  error
}

// calculateCmd plans the request off the update loop.
func calculateCmd(proc *processor.Processor, req processor.Request) tea.Cmd {
	return func() tea.Msg {
		part, err := proc.Plan(req)
		return PlanResultMsg{Request: req, Partition: part, Err: err}
	}
}

// exportCmd writes the whole partition as a YAML report.
func exportCmd(proc *processor.Processor, writer *utils.ReportWriter, part processor.Partition) tea.Cmd {
	return func() tea.Msg {
		report, err := proc.Report(part)
		if err != nil {
			return ExportResultMsg{Err: err}
		}
		path, err := writer.WriteReport(report, models.FormatYAML)
		return ExportResultMsg{Path: path, Err: err}
	}
}
