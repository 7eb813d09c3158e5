package report

import "github.com/charmbracelet/lipgloss"

// ConsoleStyles exports the console styles for testing.
func ConsoleStyles() map[string]lipgloss.Style {
	return map[string]lipgloss.Style{
		"project": projectStyle,
		"remove":  removeStyle,
		"add":     addStyle,
		"change":  changeStyle,
		"trace":   traceStyle,
	}
}
