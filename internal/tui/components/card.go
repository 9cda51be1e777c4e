package components

import (
	"charm.land/lipgloss/v2"

	"github.com/trackdeck/trackdeck/internal/models"
	"github.com/trackdeck/trackdeck/internal/tui/theme"
)

// RenderCard renders a single issue as a card
//
//	╭─────────────────────╮
//	│ {Title}             │
//	│ priority │ assignee │
//	│ due date            │
//	╰─────────────────────╯
//
// Grabbed cards get the highlight border; cards with a move awaiting
// the server render their metadata dimmed.
func RenderCard(issue models.Issue, selected, grabbed, pending bool) string {
	var bg string
	if selected {
		bg = theme.SelectedBg
	} else {
		bg = theme.CardBg
	}

	content := renderCardTitle(issue, bg) + "\n" +
		renderCardMetadata(issue, bg, pending) + "\n" +
		renderCardDueDate(issue, bg)

	style := CardStyle.
		BorderBackground(lipgloss.Color(bg)).
		Background(lipgloss.Color(bg))
	if grabbed {
		style = style.BorderForeground(lipgloss.Color(theme.Highlight))
	} else if selected {
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}

	return style.Render(content)
}

func renderCardTitle(issue models.Issue, bg string) string {
	title := issue.Title
	if len(title) > cardTitleMaxLength {
		title = title[:cardTitleMaxLength] + "…"
	}
	return lipgloss.NewStyle().
		Bold(true).
		Background(lipgloss.Color(bg)).
		Render(title)
}

// renderCardMetadata renders priority and assignee on one line, separated by │
func renderCardMetadata(issue models.Issue, bg string, pending bool) string {
	priorityColor := issue.Priority.Color()
	if pending {
		priorityColor = theme.Subtle
	}
	priority := lipgloss.NewStyle().
		Foreground(lipgloss.Color(priorityColor)).
		Background(lipgloss.Color(bg)).
		Render(issue.Priority.Label())

	var assignee string
	if issue.Assignee != nil {
		assignee = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Normal)).
			Background(lipgloss.Color(bg)).
			Render(issue.Assignee.Initials())
	} else {
		assignee = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Background(lipgloss.Color(bg)).
			Italic(true).
			Render("unassigned")
	}

	separator := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Background(lipgloss.Color(bg)).
		Render(" │ ")

	return priority + separator + assignee
}

func renderCardDueDate(issue models.Issue, bg string) string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Background(lipgloss.Color(bg))
	if issue.DueDate == nil {
		return style.Italic(true).Render("no due date")
	}
	return style.Render("due " + issue.DueDate.Format("2006-01-02"))
}
