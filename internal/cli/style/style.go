// Package style holds the lipgloss styles of the rs command.
package style

import "charm.land/lipgloss/v2"

var (
	ColorDim   = lipgloss.Color("#666666")
	ColorTeal  = lipgloss.Color("#00F19F") // success, signed output
	ColorBlue  = lipgloss.Color("#67AEE6") // keys, identifiers
	ColorAmber = lipgloss.Color("#FFDE00") // warnings, pending states
	ColorRed   = lipgloss.Color("#FF0026") // failures
)

var (
	OK    = lipgloss.NewStyle().Foreground(ColorTeal).Bold(true)
	Fail  = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
	Warn  = lipgloss.NewStyle().Foreground(ColorAmber)
	Dim   = lipgloss.NewStyle().Foreground(ColorDim)
	Key   = lipgloss.NewStyle().Foreground(ColorBlue)
	Value = lipgloss.NewStyle()
)

// KV renders an aligned "key  value" line.
func KV(key, value string, width int) string {
	return Key.Width(width).Render(key) + Value.Render(value)
}

// Status picks a style for an API or event status word.
func Status(s string) lipgloss.Style {
	switch s {
	case "completed", "valid", "ok":
		return OK
	case "failed", "invalid":
		return Fail
	default:
		return Warn
	}
}
