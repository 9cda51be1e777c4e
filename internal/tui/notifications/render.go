// Package notifications renders floating notification banners.
package notifications

import (
	"charm.land/lipgloss/v2"

	"github.com/trackdeck/trackdeck/internal/tui/state"
	"github.com/trackdeck/trackdeck/internal/tui/theme"
)

type style struct {
	icon       string
	title      string
	foreground string
	background string
}

func styleFor(level state.NotificationLevel) style {
	switch level {
	case state.LevelWarning:
		return style{icon: "⚠", title: "Warning", foreground: theme.WarningFg, background: theme.WarningBg}
	case state.LevelError:
		return style{icon: "✕", title: "Error", foreground: theme.ErrorFg, background: theme.ErrorBg}
	default:
		return style{icon: "🔔", title: "Info", foreground: theme.InfoFg, background: theme.InfoBg}
	}
}

// Render renders a notification banner: a bold header line with the
// severity icon, then the message, boxed and colored by severity.
func Render(n state.Notification) string {
	s := styleFor(n.Level)

	headerText := s.icon + " " + s.title
	maxWidth := max(lipgloss.Width(headerText), lipgloss.Width(n.Message))

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.foreground)).
		Bold(true).
		Width(maxWidth).
		Render(headerText)

	message := lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.foreground)).
		Width(maxWidth).
		Render(n.Message)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(s.background)).
		Background(lipgloss.Color(s.background)).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, message))
}
