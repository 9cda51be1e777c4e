package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/trackdeck/trackdeck/internal/tui/theme"
)

type StatusBarProps struct {
	Width int
	// Left shows context: the signed-in user or the open project
	Left string
	// Filter shows the active dashboard filter summary, empty when none
	Filter string
}

// RenderStatusBar renders a status bar with left and right aligned text
func RenderStatusBar(props StatusBarProps) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	left := props.Left
	if props.Filter != "" {
		left += "  " + lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Highlight)).
			Render("⧩ "+props.Filter)
	}
	leftRendered := style.Render(left)
	rightRendered := style.Render("press ? for help")

	gapWidth := props.Width - lipgloss.Width(leftRendered) - lipgloss.Width(rightRendered)
	if gapWidth < 1 {
		gapWidth = 1
	}
	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
