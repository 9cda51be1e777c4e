package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/trackdeck/trackdeck/internal/models"
	"github.com/trackdeck/trackdeck/internal/tui/theme"
)

// RenderProjectRow renders one dashboard row:
//
//	{Name}  [category]  #tag #tag   (N members)
func RenderProjectRow(project models.Project, selected bool, width int) string {
	name := lipgloss.NewStyle().Bold(true).Render(project.Name)

	var parts []string
	parts = append(parts, name)
	if project.Category != "" {
		parts = append(parts, SubtleStyle.Render("["+project.Category+"]"))
	}
	for _, tag := range project.Tags {
		parts = append(parts, lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Highlight)).
			Render("#"+tag))
	}
	parts = append(parts, SubtleStyle.Render(fmt.Sprintf("(%d members)", len(project.Team))))

	row := strings.Join(parts, "  ")

	style := lipgloss.NewStyle().Width(width).Padding(0, 1)
	if selected {
		style = style.
			Background(lipgloss.Color(theme.SelectedBg)).
			BorderLeft(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	return style.Render(row)
}

// RenderProjectList renders the dashboard rows with an empty-state line.
func RenderProjectList(projects []models.Project, selected int, width int) string {
	if len(projects) == 0 {
		return SubtleStyle.Italic(true).Padding(1, 1).
			Render("No projects. Press P to create one.")
	}
	rows := make([]string, 0, len(projects))
	for i, p := range projects {
		rows = append(rows, RenderProjectRow(p, i == selected, width))
	}
	return strings.Join(rows, "\n")
}
