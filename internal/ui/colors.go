package ui

import "github.com/charmbracelet/lipgloss"

// ColorReset returns the escape code that clears formatting.
func ColorReset() string { return GetCurrentTheme().Reset }

// ColorRed returns the error colour.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorGreen returns the success colour.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow returns the warning colour.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorCyan returns the primary accent colour.
func ColorCyan() string { return GetCurrentTheme().Primary }

// ColorBold returns the bold escape code.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the underline escape code.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// Heading renders text as a bold section heading in the accent colour.
func Heading(text string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(GetCurrentTheme().Accent).
		Render(text)
}

// Banner renders text inside a rounded border.
func Banner(text string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(GetCurrentTheme().Accent).
		Padding(0, 2).
		Render(text)
}
