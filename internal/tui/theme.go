package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha palette, true-color hex values.
// https://catppuccin.com/palette

const (
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

// Semantic aliases. Status colors follow the order lifecycle: open is the
// attention color, in progress the warning color, completed the success color.
const (
	colorAccent     = colorMauve
	colorError      = colorRed
	colorOpen       = colorTeal
	colorInProgress = colorYellow
	colorCompleted  = colorGreen
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	statusStyle  = lipgloss.NewStyle().Foreground(colorSubtext0)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(colorCompleted)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)

	tableHeaderStyle = lipgloss.NewStyle().Foreground(colorSubtext0).Bold(true)
	cursorStyle      = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	labelStyle       = lipgloss.NewStyle().Foreground(colorLavender)
	dimStyle         = lipgloss.NewStyle().Foreground(colorOverlay1)

	statusOpenStyle       = lipgloss.NewStyle().Foreground(colorOpen)
	statusInProgressStyle = lipgloss.NewStyle().Foreground(colorInProgress)
	statusCompletedStyle  = lipgloss.NewStyle().Foreground(colorCompleted)
)

// statusStyleFor picks the lifecycle color for a status label.
func statusStyleFor(status string) lipgloss.Style {
	switch status {
	case "Em Aberto":
		return statusOpenStyle
	case "Em Manutenção":
		return statusInProgressStyle
	case "Concluído":
		return statusCompletedStyle
	default:
		return statusStyle
	}
}
