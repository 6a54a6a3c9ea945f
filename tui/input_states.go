package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"subnet-planner/processor"
)

// Input state handlers
func (m Model) updateInput(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		if m.hasPlan {
			m.blurInputs()
			m.state = StateResults
			return m, nil
		}
		return m, tea.Quit
	case "tab", "down":
		return m, m.setFocus((m.focus + 1) % fieldTotal)
	case "shift+tab", "up":
		return m, m.setFocus((m.focus + fieldTotal - 1) % fieldTotal)
	case "enter":
		if m.focus == fieldCIDR && m.inputs[fieldCount].Value() == "" {
			return m, m.setFocus(fieldCount)
		}
		return m.calculate()
	}

	return m.updateFocusedInput(msg)
}

// calculate submits the form. Inputs are sent as typed; validation is the processor's job.
func (m Model) calculate() (Model, tea.Cmd) {
	req := processor.Request{
		CIDR:  strings.TrimSpace(m.inputs[fieldCIDR].Value()),
		Count: strings.TrimSpace(m.inputs[fieldCount].Value()),
	}
	m.setStatus("Calculating...", false)
	return m, calculateCmd(m.processor, req)
}

// Error state: the error stays on screen and any key goes back to editing
func (m Model) updateError(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	m.state = StateInput
	if msg.String() == "esc" {
		return m, nil
	}
	return m.updateInput(msg)
}

func (m Model) updateFocusedInput(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(field int) tea.Cmd {
	m.focus = field
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == field {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return cmd
}

func (m *Model) blurInputs() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

// renderForm renders the two labelled fields
func (m Model) renderForm() string {
	var s strings.Builder
	labels := []string{"CIDR Block:         ", "Number of Networks: "}
	for i, label := range labels {
		style := inputFieldStyle
		if m.state != StateResults && m.focus == i {
			style = focusedFieldStyle
		}
		s.WriteString(style.Render(label) + m.inputs[i].View() + "\n")
	}
	return s.String()
}

func (m Model) viewInput() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Subnet Planner") + "\n")
	s.WriteString(m.renderForm() + "\n")
	s.WriteString(helpStyle.Render("Split an IPv4 network into equal subnets. The count is rounded up to a power of two.") + "\n\n")
	s.WriteString(m.renderStatusBar() + "\n")

	help := "Tab to switch field, Enter to calculate, Ctrl+C to quit"
	if m.hasPlan {
		help = "Tab to switch field, Enter to calculate, Esc for last results, Ctrl+C to quit"
	}
	s.WriteString(helpStyle.Render(help))

	return m.renderWithDynamicWidth(s.String())
}

func (m Model) viewError() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Subnet Planner") + "\n")
	s.WriteString(m.renderForm() + "\n")

	msg := "Unknown error"
	if m.err != nil {
		msg = m.err.Error()
	}
	width := m.leftPaneWidth - 12
	if width < 30 {
		width = 30
	}
	s.WriteString(errorCardStyle.Width(width).Render(msg) + "\n\n")
	s.WriteString(m.renderStatusBar() + "\n")
	s.WriteString(helpStyle.Render("Edit the input and press Enter to try again, Ctrl+C to quit"))

	return m.renderWithDynamicWidth(s.String())
}
