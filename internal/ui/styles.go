// Package ui provides consistent styling and prompts for the cursorlock CLI
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/cursorlock/internal/display"
)

// Color palette - consistent across the application
var (
	ColorPrimary = lipgloss.Color("39")  // Bright blue
	ColorSuccess = lipgloss.Color("82")  // Green
	ColorWarning = lipgloss.Color("214") // Orange
	ColorError   = lipgloss.Color("196") // Red
	ColorInfo    = lipgloss.Color("86")  // Cyan

	ColorText   = lipgloss.Color("252") // Light gray
	ColorSubtle = lipgloss.Color("241") // Medium gray
	ColorMuted  = lipgloss.Color("238") // Dark gray

	ColorLocked   = ColorSuccess
	ColorUnlocked = ColorSubtle
)

// Base styles
var (
	TextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorMuted).
			Padding(0, 1)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	ListItemStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	ControlKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	ControlDescStyle = lipgloss.NewStyle().
				Foreground(ColorText)
)

// Status indicators
var (
	LockedIndicator = lipgloss.NewStyle().
			Foreground(ColorLocked).
			Render("●")

	UnlockedIndicator = lipgloss.NewStyle().
				Foreground(ColorUnlocked).
				Render("○")
)

// Icons
var (
	IconSuccess = "✓"
	IconError   = "✗"
	IconWarning = "!"
	IconInfo    = "i"
)

// FormatControl renders a key and what it does
func FormatControl(key, desc string) string {
	return ControlKeyStyle.Render(key) + " - " + ControlDescStyle.Render(desc)
}

// FormatListItem renders a bullet, highlighted when active
func FormatListItem(item string, active bool) string {
	style := ListItemStyle
	if active {
		style = style.Foreground(ColorPrimary)
	}
	return "  • " + style.Render(item)
}

// FormatMonitorList renders the numbered monitor table used for selection
func FormatMonitorList(monitors []*display.Monitor) string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Detected monitors"))
	b.WriteString("\n")
	for i, m := range monitors {
		line := fmt.Sprintf("%d. %s", i+1, m.Describe())
		if m.Primary {
			line += " [primary]"
		}
		b.WriteString(FormatListItem(line, m.Primary))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatLocking renders the line announcing the chosen monitor
func FormatLocking(m *display.Monitor) string {
	return InfoStyle.Render(IconInfo) + " Locking cursor to monitor: " + BoldStyle.Render(m.Describe())
}

// FormatToggle renders the line printed after each toggle
func FormatToggle(enabled bool) string {
	if enabled {
		return LockedIndicator + " " + SuccessStyle.Render("Cursor locked")
	}
	return UnlockedIndicator + " " + SubtleStyle.Render("Cursor unlocked")
}

// FormatBanner renders the controls shown once listeners are running
func FormatBanner(toggleKey string, chimes bool) string {
	chimeState := "off"
	if chimes {
		chimeState = "on"
	}
	lines := []string{
		TitleStyle.Render("cursorlock"),
		CreateSeparator(40, ""),
		FormatControl(toggleKey, "toggle the cursor lock"),
		FormatControl("Ctrl+C", "unlock and exit"),
		SubtleStyle.Render("Chimes: " + chimeState),
	}
	return strings.Join(lines, "\n")
}

// FormatError renders a fatal error line
func FormatError(err error) string {
	return ErrorStyle.Render(IconError + " " + err.Error())
}

// CreateSeparator creates a horizontal line separator
func CreateSeparator(width int, char string) string {
	if width <= 0 {
		width = 50 // Default width
	}
	if char == "" {
		char = "─"
	}

	return lipgloss.NewStyle().
		Foreground(ColorSubtle).
		Render(strings.Repeat(char, width))
}
