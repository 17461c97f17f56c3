package terminal

import "github.com/charmbracelet/lipgloss"

var (
	cellStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("8")).
			Width(cellWidth-2).
			Height(cellHeight-2).
			Align(lipgloss.Center, lipgloss.Center)
	cursorStyle  = cellStyle.BorderForeground(lipgloss.Color("11"))
	winningStyle = cellStyle.BorderForeground(lipgloss.Color("10"))

	crossStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	circleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

	titleStyle = lipgloss.NewStyle().Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	doneStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)
