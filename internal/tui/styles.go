package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/warpdl/daily420/internal/service"
)

var (
	colorEnabled  = lipgloss.Color("#2e7d32")
	colorDisabled = lipgloss.Color("#c62828")
	colorError    = lipgloss.Color("#e67e22")
	colorMuted    = lipgloss.Color("#7f8c8d")
	colorNote     = lipgloss.Color("#1f4e8c")

	titleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	statusStyle = lipgloss.NewStyle().Bold(true)
	noteStyle   = lipgloss.NewStyle().Foreground(colorNote)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 2).
			MarginRight(2).
			Border(lipgloss.RoundedBorder())
	enableButtonStyle  = buttonStyle.BorderForeground(colorEnabled).Foreground(colorEnabled)
	disableButtonStyle = buttonStyle.BorderForeground(colorDisabled).Foreground(colorDisabled)
	inactiveButton     = buttonStyle.BorderForeground(colorMuted).Foreground(colorMuted)

	noticeStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorNote)
	noticeErrorStyle = noticeStyle.BorderForeground(colorDisabled)
)

func stateColor(s service.State) lipgloss.Color {
	switch s {
	case service.StateEnabled:
		return colorEnabled
	case service.StateError:
		return colorError
	case service.StateDisabled:
		return colorDisabled
	default:
		return colorMuted
	}
}

func keyHelp(key, desc string) string {
	return lipgloss.NewStyle().Bold(true).Render(key) + " " + mutedStyle.Render(desc)
}
