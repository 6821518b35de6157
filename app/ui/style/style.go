// Package style contains colors, styles and small rendering helpers shared by views.
package style

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
const (
	colorPrimary   = "#7D56F4"
	colorSuccess   = "#04B575"
	colorError     = "#FF5F87"
	colorInfo      = "#626262"
	colorHighlight = "#FAFAFA"
	colorBorder    = "#874BFD"
	colorCached    = "#3C8DBC"
	colorFresh     = "#04B575"
)

// Styles for the views.
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorPrimary)).
		MarginBottom(1)

	Heading = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorHighlight))

	Status = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorSuccess))

	Error = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorError))

	Info = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorInfo))

	Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colorBorder)).
		Padding(0, 1)

	Highlight = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorHighlight)).
			Background(lipgloss.Color(colorPrimary)).
			Padding(0, 1)

	Selected = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorPrimary))

	button = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorHighlight)).
		Background(lipgloss.Color(colorPrimary)).
		Padding(0, 1)

	disabledButton = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorInfo)).
			Padding(0, 1).
			Strikethrough(true)

	cachedBadge = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorHighlight)).
			Background(lipgloss.Color(colorCached)).
			Padding(0, 1)

	freshBadge = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorHighlight)).
			Background(lipgloss.Color(colorFresh)).
			Padding(0, 1)
)

// Button renders an action label, disabled actions are dimmed.
func Button(label string, enabled bool) string {
	if !enabled {
		return disabledButton.Render(label)
	}
	return button.Render(label)
}

// Badge renders the summary cache badge.
func Badge(cached bool) string {
	if cached {
		return cachedBadge.Render("Cached")
	}
	return freshBadge.Render("Fresh")
}

// Date formats an optional publish time.
func Date(t *time.Time) string {
	if t == nil {
		return "Unknown date"
	}
	return t.Local().Format("Jan 2, 2006")
}
