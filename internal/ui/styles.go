package ui

import "github.com/charmbracelet/lipgloss"

const accent = lipgloss.Color("#6C63FF")

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent)
	mutedStyle    = lipgloss.NewStyle().Faint(true)
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	doneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	plainStyle    = lipgloss.NewStyle()

	filterActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(accent).Padding(0, 1)
	filterStyle       = lipgloss.NewStyle().Faint(true).Padding(0, 1)

	dialogStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(1, 3)
	dialogTitleStyle = lipgloss.NewStyle().Bold(true)
	buttonStyle      = lipgloss.NewStyle().Foreground(accent).Bold(true)

	addButtonStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(accent).Padding(0, 1)
)

const (
	boxChecked   = "[x]"
	boxUnchecked = "[ ]"
	editGlyph    = "✎"
	deleteGlyph  = "✗"
)

func textStyle(completed bool) lipgloss.Style {
	if completed {
		return doneStyle
	}
	return plainStyle
}
