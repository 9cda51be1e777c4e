package tui

import (
	"charm.land/lipgloss/v2"

	"github.com/trackdeck/trackdeck/internal/tui/components"
	"github.com/trackdeck/trackdeck/internal/tui/theme"
)

// viewDashboard renders the project list with the filter summary and
// status bar.
func (m Model) viewDashboard() string {
	width := m.Ui.Width()

	header := components.TitleStyle.Render("Projects")
	if m.Projects.Loading() {
		header += "  " + components.SubtleStyle.Render("refreshing…")
	}

	var errLine string
	if m.Projects.Error() != "" {
		errLine = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.ErrorFg)).
			Render(m.Projects.Error()) + "\n"
	}

	list := components.RenderProjectList(
		m.visibleProjects(), m.Ui.SelectedProject(), width-2)

	statusBar := components.RenderStatusBar(components.StatusBarProps{
		Width:  width,
		Left:   "TrackDeck · " + m.displayName(),
		Filter: m.filterSummary(),
	})

	body := header + "\n\n" + errLine + list

	content := lipgloss.NewStyle().
		Width(width).
		Height(m.Ui.Height() - 1).
		Padding(0, 1).
		Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}
