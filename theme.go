package main

import "github.com/charmbracelet/lipgloss"

// Palette helpers. The board must stay readable on both light and dark
// terminal backgrounds, so everything routes through AdaptiveColor.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted          = ac("240", "243")
	colorAccent         = ac("27", "62")
	colorSelectedBorder = ac("232", "255")
	colorCardBorder     = ac("250", "243")
	colorError          = ac("124", "203")
	colorOK             = ac("28", "78")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorOK)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(colorCardBorder).
			Width(panelWidth - 1).
			Padding(0, 1)

	panelItemStyle = lipgloss.NewStyle().
			PaddingLeft(1)

	panelSelectedStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Bold(true).
				Foreground(colorAccent)

	overlayStyleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSelectedBorder).
			Padding(0, 2)

	overlayCloseStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Bold(true)

	fieldLabelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true)

	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorCardBorder).
			Padding(1, 3)
)
