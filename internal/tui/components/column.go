package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/trackdeck/trackdeck/internal/models"
	"github.com/trackdeck/trackdeck/internal/tui/theme"
)

// ColumnProps carries everything needed to render one board column.
type ColumnProps struct {
	Status   models.Status
	Issues   []models.Issue
	Selected bool
	// SelectedCard is the index of the selected card, -1 when the
	// cursor is in another column
	SelectedCard int
	// GrabbedIssueID is the card currently carried, 0 when none
	GrabbedIssueID int
	// PendingIssueIDs marks cards with a move awaiting the server
	PendingIssueIDs map[int]bool
	Width           int
	Height          int
	ScrollOffset    int
}

// RenderColumn renders a complete column with its title and cards
//
// Layout:
//
//	{Column Title} ({count})
//	▲ (if scrolled down)
//	{Card 1}
//	{Card 2}
//	...
//	▼ (if more cards below)
func RenderColumn(props ColumnProps) string {
	header := fmt.Sprintf("%s (%d)", props.Status.Label(), len(props.Issues))
	content := TitleStyle.Render(header) + "\n"

	if len(props.Issues) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Padding(1, 0)
		content += emptyStyle.Render("No issues")
	} else {
		// Column overhead: border+padding (3) + header (1) + both
		// scroll indicators (2)
		const columnOverhead = 6
		availableHeight := props.Height - columnOverhead
		maxVisibleCards := max(availableHeight/CardHeight, 1)

		indicatorStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Align(lipgloss.Center)

		if props.ScrollOffset > 0 {
			content += indicatorStyle.Render("▲ more above") + "\n"
		} else {
			content += "\n"
		}

		endIdx := min(props.ScrollOffset+maxVisibleCards, len(props.Issues))
		for i, issue := range props.Issues[props.ScrollOffset:endIdx] {
			actualIdx := props.ScrollOffset + i
			selected := props.Selected && actualIdx == props.SelectedCard
			grabbed := props.GrabbedIssueID != 0 && issue.ID == props.GrabbedIssueID
			pending := props.PendingIssueIDs[issue.ID]
			content += RenderCard(issue, selected, grabbed, pending) + "\n"
		}

		if endIdx < len(props.Issues) {
			content += indicatorStyle.Render("▼ more below")
		}
	}

	style := ColumnStyle
	if props.Selected {
		style = SelectedColumnStyle
	}
	return style.
		Width(props.Width).
		Height(props.Height).
		Render(strings.TrimRight(content, "\n"))
}
