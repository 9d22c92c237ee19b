package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Width(5).
			Align(lipgloss.Center).
			Border(lipgloss.NormalBorder())

	cursorCellStyle = cellStyle.
			BorderForeground(lipgloss.Color("39")).
			Bold(true)

	winningCellStyle = cellStyle.
				Background(lipgloss.Color("28")).
				Foreground(lipgloss.Color("255")).
				Bold(true)

	markX = lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")).
		Bold(true)

	markO = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42")).
		Bold(true)

	jumpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("25")).
			Foreground(lipgloss.Color("255"))

	currentMoveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("242")).
				Italic(true)

	sortStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("238")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	panelStyle = lipgloss.NewStyle().
			Padding(0, 2)
)
