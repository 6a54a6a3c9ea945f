package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderOutputSummary generates the content for the right pane with scrolling
func (m Model) renderOutputSummary() string {
	var s strings.Builder

	s.WriteString(highlightStyle.Render("Session Summary") + "\n\n")

	if len(m.outputSummary) == 0 {
		s.WriteString(helpStyle.Render("No calculations yet."))
		return s.String()
	}

	visibleLines := m.summaryVisibleLines()
	startIdx := m.outputScrollOffset
	if startIdx >= len(m.outputSummary) {
		startIdx = max(len(m.outputSummary)-1, 0)
	}
	endIdx := min(startIdx+visibleLines, len(m.outputSummary))

	s.WriteString(strings.Join(m.outputSummary[startIdx:endIdx], "\n"))

	if len(m.outputSummary) > visibleLines {
		s.WriteString("\n\n" + helpStyle.Render("Ctrl+U/D or mouse wheel to scroll"))
	}

	return s.String()
}

func (m Model) summaryVisibleLines() int {
	// borders, padding, title
	return max(m.height-8, 5)
}

func (m *Model) scrollOutputSummary(delta int) {
	maxScroll := max(len(m.outputSummary)-m.summaryVisibleLines(), 0)
	m.outputScrollOffset = min(max(m.outputScrollOffset+delta, 0), maxScroll)
}

// addToOutputSummary appends a line, dropping the oldest beyond the history size
func (m *Model) addToOutputSummary(item string) {
	m.outputSummary = append(m.outputSummary, item)
	if limit := m.config.TUI.HistorySize; limit > 0 && len(m.outputSummary) > limit {
		m.outputSummary = m.outputSummary[len(m.outputSummary)-limit:]
	}
	// keep the newest entry in view
	m.outputScrollOffset = max(len(m.outputSummary)-m.summaryVisibleLines(), 0)
}

// formatSessionStatus formats a status line with key: value format and coloring
func formatSessionStatus(key, value string) string {
	keyStyled := sessionStatusStyle.Render(key + ": ")
	valueStyled := determineValueStyle(key).Render(value)
	return keyStyled + valueStyled
}

func determineValueStyle(key string) lipgloss.Style {
	switch strings.ToLower(key) {
	case "error", "export":
		return sessionErrorValueStyle
	case "rounded up":
		return sessionWarningValueStyle
	case "subnets", "exported":
		return sessionSuccessValueStyle
	}
	return sessionNeutralValueStyle
}

// addFormattedAction adds a formatted action to the output summary
func (m *Model) addFormattedAction(action string) {
	m.addToOutputSummary(sessionActionStyle.Render(action))
}

// addFormattedStatusIndented adds a formatted status line with indentation
func (m *Model) addFormattedStatusIndented(key, value string) {
	m.addToOutputSummary("  " + formatSessionStatus(key, value))
}

// SessionSummary returns the raw summary lines, mainly for tests.
func (m Model) SessionSummary() []string {
	return m.outputSummary
}
