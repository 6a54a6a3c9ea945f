package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent periodically while an export runs
type TickMsg time.Time

var exportFrames = []string{".", "..", "..."}

// tickCmd returns a command that sends periodic tick messages
func tickCmd() tea.Cmd {
	return tea.Tick(300*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// handleTick advances the export indicator; ticking stops with the export.
func (m Model) handleTick() (Model, tea.Cmd) {
	if !m.exporting {
		return m, nil
	}
	m.animFrame = (m.animFrame + 1) % len(exportFrames)
	m.setStatus("Exporting"+exportFrames[m.animFrame], false)
	return m, tickCmd()
}
