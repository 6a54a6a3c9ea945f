package tui

import "github.com/charmbracelet/lipgloss"

// View implements tea.Model
func (m Model) View() string {
	switch m.state {
	case StateInput:
		return m.viewInput()
	case StateResults:
		return m.viewResults()
	case StateError:
		return m.viewError()
	}

	return ""
}

// renderWithDynamicWidth frames content for the current terminal size.
func (m Model) renderWithDynamicWidth(content string) string {
	if m.width > 0 && m.height > 0 {
		if m.showRightPane && m.leftPaneWidth > 0 && m.rightPaneWidth > 0 {
			return m.renderTwoPaneLayout(content)
		}
		return m.renderSinglePaneLayout(content)
	}

	// Plain box until the first WindowSizeMsg arrives
	return boxStyle.Render(content)
}

const (
	minPaneHeight = 10
	minFormWidth  = 50
)

// paneStyle is the rounded frame shared by the planner and session panes.
// width and height are the inner size; frame and padding come on top.
func paneStyle(width, height int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Height(max(height, minPaneHeight)).
		Padding(1, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(secondaryColor)
}

// renderSinglePaneLayout centres the planner frame with a two column gutter
// until the first plan opens the session pane.
func (m Model) renderSinglePaneLayout(content string) string {
	frame := paneStyle(max(m.width-6, minFormWidth), m.height-4)
	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Padding(1, 2).
		Render(frame.Render(content))
}

// renderTwoPaneLayout puts the planner on the left and the session history
// on the right, sized by layoutPanes.
func (m Model) renderTwoPaneLayout(content string) string {
	height := m.height - 4
	planner := paneStyle(m.leftPaneWidth-6, height).Render(content)
	session := paneStyle(m.rightPaneWidth-6, height).Render(m.renderOutputSummary())

	return lipgloss.NewStyle().
		Padding(1, 1).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, planner, " ", session))
}
