package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/trackdeck/trackdeck/internal/models"
	"github.com/trackdeck/trackdeck/internal/tui/theme"
)

// RenderCommentCard renders a single comment as a card
//
//	┌──────────────────────────────────────────┐
//	│ jane.doe    Dec 28 17:32                 │
//	│ another comment here                     │
//	└──────────────────────────────────────────┘
func RenderCommentCard(comment models.Comment, width int) string {
	author := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Highlight)).
		Render(comment.UserName)
	stamp := SubtleStyle.Render(comment.CreatedAt.Format("Jan 2 15:04"))
	header := author + "    " + stamp

	return CardStyle.
		BorderForeground(lipgloss.Color(theme.Subtle)).
		Width(width).
		Render(header + "\n" + comment.Content)
}

// RenderComments renders the comment section of the issue view.
func RenderComments(comments []models.Comment, width int) string {
	if len(comments) == 0 {
		return SubtleStyle.Italic(true).Render("No comments yet")
	}
	cards := make([]string, 0, len(comments))
	for _, c := range comments {
		cards = append(cards, RenderCommentCard(c, width))
	}
	return strings.Join(cards, "\n")
}
