package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"subnet-planner/models"
	"subnet-planner/utils"
)

// cardHeight is the rendered height of one subnet card: four lines plus border.
const cardHeight = 6

// Results state handlers
func (m Model) updateResults(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "esc", "n", "/":
		m.state = StateInput
		return m, m.setFocus(fieldCIDR)
	case "up", "k":
		m.scrollResults(-1)
	case "down", "j":
		m.scrollResults(1)
	case "pgup", "b":
		m.scrollResults(-m.visibleCards())
	case "pgdown", " ", "f":
		m.scrollResults(m.visibleCards())
	case "home", "g":
		m.resultScroll = 0
	case "end", "G":
		m.resultScroll = m.maxResultScroll()
	case "e":
		if m.hasPlan && !m.exporting {
			m.exporting = true
			m.animFrame = 0
			m.setStatus("Exporting"+exportFrames[0], false)
			return m, tea.Batch(exportCmd(m.processor, m.writer, m.partition), tickCmd())
		}
	}

	return m, nil
}

// visibleCards estimates how many cards fit in the left pane
func (m Model) visibleCards() int {
	// margins, border, padding, title, summary line, status bar, help
	available := m.height - 2 - 2 - 2 - 2 - 2 - 3
	n := available / cardHeight
	if n < 1 {
		n = 1
	}
	return n
}

func (m Model) maxResultScroll() uint64 {
	if !m.hasPlan {
		return 0
	}
	total := m.partition.Len()
	visible := uint64(m.visibleCards())
	if total <= visible {
		return 0
	}
	return total - visible
}

func (m *Model) scrollResults(delta int) {
	if delta < 0 {
		d := uint64(-delta)
		if d > m.resultScroll {
			m.resultScroll = 0
		} else {
			m.resultScroll -= d
		}
		return
	}
	m.resultScroll += uint64(delta)
	m.clampResultScroll()
}

func (m *Model) clampResultScroll() {
	if maxScroll := m.maxResultScroll(); m.resultScroll > maxScroll {
		m.resultScroll = maxScroll
	}
}

func (m Model) viewResults() string {
	var s strings.Builder

	part := m.partition
	s.WriteString(titleStyle.Render("Subnets of "+part.Parent.String()) + "\n")
	s.WriteString(fmt.Sprintf("%s requested, %s x /%d (%s %s each)\n",
		highlightStyle.Render(utils.FormatCount(part.Requested)),
		highlightStyle.Render(utils.FormatCount(part.Len())),
		part.NewPrefix,
		utils.FormatCount(part.SubnetSize()),
		utils.Plural(part.SubnetSize(), "address", "addresses")))
	if part.Len() != part.Requested {
		s.WriteString(warningStyle.Render("Rounded up to the next power of two") + "\n")
	}
	s.WriteString("\n")

	width := m.leftPaneWidth - 12
	if width < 40 {
		width = 40
	}

	count := part.Window(m.resultScroll, uint64(m.visibleCards()))
	cards := make([]string, 0, count)
	for i := m.resultScroll; i < m.resultScroll+count; i++ {
		cards = append(cards, renderCard(i, part.At(i).Result(), width))
	}
	s.WriteString(lipgloss.JoinVertical(lipgloss.Left, cards...) + "\n")

	if part.Len() > count {
		s.WriteString(helpStyle.Render(fmt.Sprintf("%s-%s of %s",
			utils.FormatCount(m.resultScroll+1),
			utils.FormatCount(m.resultScroll+count),
			utils.FormatCount(part.Len()))) + "\n")
	}

	s.WriteString(m.renderStatusBar() + "\n")
	s.WriteString(helpStyle.Render("↑/↓ PgUp/PgDn Home/End or wheel to scroll, e to export, Esc for new input, q to quit"))

	return m.renderWithDynamicWidth(s.String())
}

// renderCard renders one subnet record
func renderCard(index uint64, r models.SubnetResult, width int) string {
	broadcast := r.Broadcast
	if broadcast == "" {
		broadcast = "none (point-to-point)"
	}

	lines := []string{
		cardLabelStyle.Render("Network:") + cardValueStyle.Render(r.Network) + helpStyle.Render(fmt.Sprintf("  #%d", index+1)),
		cardLabelStyle.Render("Netmask:") + cardValueStyle.Render(r.Netmask),
		cardLabelStyle.Render("Broadcast:") + cardValueStyle.Render(broadcast),
		cardLabelStyle.Render("Usable Range:") + cardValueStyle.Render(r.UsableRange),
	}
	return cardStyle.Width(width).Render(strings.Join(lines, "\n"))
}

// renderStatusBar renders the one-line status bar
func (m Model) renderStatusBar() string {
	if m.status == "" {
		return helpStyle.Render("Ready")
	}
	if m.statusIsErr {
		return statusErrorStyle.Render(m.status)
	}
	return statusStyle.Render(m.status)
}
