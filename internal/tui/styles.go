package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText     lipgloss.Color = "#cdd6f4"
	colorMuted    lipgloss.Color = "#a6adc8"
	colorBorder   lipgloss.Color = "#585b70"
	colorAccent   lipgloss.Color = "#89b4fa"
	colorWarn     lipgloss.Color = "#f9e2af"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	dotActiveStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	dotIdleStyle   = lipgloss.NewStyle().Foreground(colorBorder)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface0)
	statusLockStyle = lipgloss.NewStyle().Foreground(colorWarn).Background(colorSurface0)
	footerStyle     = lipgloss.NewStyle().
			Background(colorMantle)
)
