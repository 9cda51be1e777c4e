package tui

import (
	"charm.land/lipgloss/v2"

	"github.com/trackdeck/trackdeck/internal/tui/components"
	"github.com/trackdeck/trackdeck/internal/tui/state"
	"github.com/trackdeck/trackdeck/internal/tui/theme"
)

// viewIssue renders the full ticket: metadata, markdown description and
// the comment thread.
func (m Model) viewIssue() string {
	width := m.Ui.Width()
	detail := m.openIssue

	if detail == nil {
		return lipgloss.Place(width, m.Ui.Height(),
			lipgloss.Center, lipgloss.Center,
			components.SubtleStyle.Render("Loading issue…"))
	}

	title := components.TitleStyle.Render(detail.Title)

	priority := lipgloss.NewStyle().
		Foreground(lipgloss.Color(detail.Priority.Color())).
		Render(detail.Priority.Label())

	assignee := detail.AssigneeName
	if assignee == "" {
		assignee = "unassigned"
	}

	meta := components.SubtleStyle.Render(detail.Status.Label()+" · ") +
		priority +
		components.SubtleStyle.Render(" · assigned to "+assignee+" · created by "+detail.CreatedByName)

	var due string
	if detail.DueDate != nil {
		due = components.SubtleStyle.Render("due " + detail.DueDate.Format("2006-01-02"))
	}

	description := components.RenderDescription(components.DescriptionProps{
		Description: detail.Description,
		Width:       width - 6,
	})

	commentsHeader := components.TitleStyle.Render("Comments")
	if m.Conversation.CommentsLoading() {
		commentsHeader += "  " + components.SubtleStyle.Render("loading…")
	}
	var commentErr string
	if m.Conversation.CommentError() != "" {
		commentErr = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.ErrorFg)).
			Render(m.Conversation.CommentError()) + "\n"
	}
	comments := components.RenderComments(m.Conversation.Comments(), width-6)

	var inputLine string
	if m.Ui.Mode() == state.CommentInputMode {
		inputLine = "\n> " + m.Input.comment + "_"
	} else {
		inputLine = "\n" + components.SubtleStyle.Render("press c to comment, esc to go back")
	}

	parts := []string{title, meta}
	if due != "" {
		parts = append(parts, due)
	}
	parts = append(parts, "", description, "", commentsHeader, commentErr+comments, inputLine)

	body := lipgloss.JoinVertical(lipgloss.Left, parts...)

	return lipgloss.NewStyle().
		Width(width).
		Height(m.Ui.Height()).
		Padding(1, 2).
		Render(body)
}
