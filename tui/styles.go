package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - Professional blue/purple theme
	primaryColor   = lipgloss.Color("#7C3AED") // Purple
	secondaryColor = lipgloss.Color("#3B82F6") // Blue
	accentColor    = lipgloss.Color("#06B6D4") // Cyan
	successColor   = lipgloss.Color("#10B981") // Green
	warningColor   = lipgloss.Color("#F59E0B") // Amber
	errorColor     = lipgloss.Color("#EF4444") // Red
	mutedColor     = lipgloss.Color("#6B7280") // Gray
	textColor      = lipgloss.Color("#F9FAFB") // Light gray

	// Box container
	boxStyle = lipgloss.NewStyle().
		Padding(2, 3).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(secondaryColor).
		Align(lipgloss.Left)

	titleStyle = lipgloss.NewStyle().
		Foreground(primaryColor).
		Bold(true).
		PaddingBottom(1)

	// Form fields
	inputFieldStyle = lipgloss.NewStyle().
		Foreground(secondaryColor).
		Bold(true)

	focusedFieldStyle = lipgloss.NewStyle().
		Foreground(primaryColor).
		Bold(true)

	placeholderStyle = lipgloss.NewStyle().
		Foreground(mutedColor).
		Italic(true)

	// Result cards
	cardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(mutedColor).
		Padding(0, 1)

	cardLabelStyle = lipgloss.NewStyle().
		Foreground(accentColor).
		Width(14)

	cardValueStyle = lipgloss.NewStyle().
		Foreground(textColor)

	errorCardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(errorColor).
		Foreground(textColor).
		Background(errorColor).
		Padding(0, 1)

	// Status bar
	statusStyle = lipgloss.NewStyle().
		Foreground(successColor).
		Bold(true)

	statusErrorStyle = lipgloss.NewStyle().
		Foreground(errorColor).
		Bold(true)

	warningStyle = lipgloss.NewStyle().
		Foreground(warningColor)

	highlightStyle = lipgloss.NewStyle().
		Foreground(primaryColor).
		Bold(true)

	// Help text
	helpStyle = lipgloss.NewStyle().
		Foreground(mutedColor).
		Italic(true)

	// Session summary pane
	sessionActionStyle = lipgloss.NewStyle().
		Foreground(textColor).
		Italic(true)

	sessionStatusStyle = lipgloss.NewStyle().
		Foreground(mutedColor)

	sessionSuccessValueStyle = lipgloss.NewStyle().
		Foreground(successColor)

	sessionWarningValueStyle = lipgloss.NewStyle().
		Foreground(warningColor)

	sessionErrorValueStyle = lipgloss.NewStyle().
		Foreground(errorColor)

	sessionNeutralValueStyle = lipgloss.NewStyle().
		Foreground(textColor)
)
