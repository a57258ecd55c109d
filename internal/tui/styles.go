package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg     = lipgloss.Color("#E6E6E6")
	baseDimFg  = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg   = lipgloss.Color("#7C3AED")
	borderCol  = lipgloss.Color("#243141")
	enclosedFg = lipgloss.Color("#22C55E")
	freeFg     = lipgloss.Color("#F59E0B")
	hoverFg    = lipgloss.Color("#FFA500")
	interiorFg = lipgloss.Color("#38BDF8")

	appStyle      = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle    = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(baseDimFg)
	enclosedStyle = lipgloss.NewStyle().Foreground(enclosedFg).Bold(true)
	freeStyle     = lipgloss.NewStyle().Foreground(freeFg)
	hoverStyle    = lipgloss.NewStyle().Foreground(hoverFg)
	boundaryStyle = lipgloss.NewStyle().Foreground(accentFg)
	interiorStyle = lipgloss.NewStyle().Foreground(interiorFg)
)
