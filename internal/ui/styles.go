package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Colors used throughout the UI.
var (
	PrimaryColor   = lipgloss.Color("39")
	SecondaryColor = lipgloss.Color("62")
	AccentColor    = lipgloss.Color("214")
	MutedColor     = lipgloss.Color("241")
	SoftMutedColor = lipgloss.Color("245")
	TextColor      = lipgloss.Color("252")
	ErrorColor     = lipgloss.Color("203")
)

// Styles for the application.
var (
	BorderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(SecondaryColor)

	HelpStyle = lipgloss.NewStyle().
			Foreground(SoftMutedColor)

	NormalStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(AccentColor)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SoftMutedColor)

	TableDimmedStyle = lipgloss.NewStyle().
				Foreground(MutedColor)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(SecondaryColor)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	TotalBarStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	UniqueBarStyle = lipgloss.NewStyle().
			Foreground(AccentColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)
)

// PaneStyle returns a bordered style sized to width x height.
func PaneStyle(width, height int) lipgloss.Style {
	return BorderStyle.Width(width - 2).Height(height - 2)
}

// TruncateWithEllipsis shortens s to at most width display cells.
func TruncateWithEllipsis(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}

// PadRight pads s with spaces to width display cells.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Repeat returns n copies of cell, or an empty string for n <= 0.
func Repeat(cell string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(cell, n)
}
