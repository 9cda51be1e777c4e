package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/trackdeck/trackdeck/internal/models"
	"github.com/trackdeck/trackdeck/internal/tui/theme"
)

// ChatPaneProps carries the chat pane's content and chrome.
type ChatPaneProps struct {
	Messages []models.ChatMessage
	// Input is the in-progress message, shown when Typing
	Input   string
	Typing  bool
	Sending bool
	Error   string
	Width   int
	Height  int
}

// RenderChatPane renders the team chat beside the board: newest messages
// at the bottom, then the input line.
func RenderChatPane(props ChatPaneProps) string {
	header := TitleStyle.Render("Team Chat")

	// Chrome: border+padding (3) + header (1) + input line (1)
	visible := max(props.Height-5, 1)
	messages := props.Messages
	if len(messages) > visible {
		messages = messages[len(messages)-visible:]
	}

	var lines []string
	for _, msg := range messages {
		sender := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Highlight)).
			Render(msg.Sender.FullName())
		stamp := SubtleStyle.Render(msg.CreatedAt.Format("15:04"))
		lines = append(lines, stamp+" "+sender+": "+msg.Content)
	}
	if len(lines) == 0 {
		lines = append(lines, SubtleStyle.Italic(true).Render("No messages yet"))
	}

	var footer string
	switch {
	case props.Error != "":
		footer = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.ErrorFg)).
			Render(props.Error)
	case props.Sending:
		footer = SubtleStyle.Italic(true).Render("sending…")
	case props.Typing:
		footer = "> " + props.Input + "_"
	default:
		footer = SubtleStyle.Render("press t to close, enter to type")
	}

	content := header + "\n" + strings.Join(lines, "\n") + "\n" + footer

	return ColumnStyle.
		Width(props.Width).
		Height(props.Height).
		Render(content)
}
