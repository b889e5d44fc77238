package tui

import "github.com/charmbracelet/lipgloss"

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

// cell style classes for the canvas compositor
const (
	classBlank = iota
	classRow
	classCursor
	classDragged
	classShadow
)

var classStyles = map[int]lipgloss.Style{
	classRow:     white,
	classCursor:  cyan,
	classDragged: yellow,
	classShadow:  dimmer,
}
