package tui

import (
	"charm.land/lipgloss/v2"

	"github.com/trackdeck/trackdeck/internal/board"
	"github.com/trackdeck/trackdeck/internal/tui/components"
	"github.com/trackdeck/trackdeck/internal/tui/state"
	"github.com/trackdeck/trackdeck/internal/tui/theme"
)

// viewBoard renders the three columns, the optional chat pane, the move
// error banner and the status bar.
func (m Model) viewBoard() string {
	width := m.Ui.Width()
	height := m.Ui.Height()

	project := m.Projects.Current()
	var title string
	if project != nil {
		title = project.Name
	}
	header := components.TitleStyle.Render(title)
	if m.Issues.Loading() {
		header += "  " + components.SubtleStyle.Render("refreshing…")
	}

	// The move error banner sits between header and columns
	var banner string
	if m.Drag.HasError() {
		banner = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.ErrorFg)).
			Background(lipgloss.Color(theme.ErrorBg)).
			Padding(0, 1).
			Render(m.Drag.Error())
	} else if m.Issues.Error() != "" {
		banner = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.ErrorFg)).
			Render(m.Issues.Error())
	}

	boardWidth := width
	var chatPane string
	if m.Ui.ChatOpen() {
		chatWidth := width / 3
		boardWidth = width - chatWidth
		chatPane = components.RenderChatPane(components.ChatPaneProps{
			Messages: m.Conversation.Messages(),
			Input:    m.Input.chat,
			Typing:   m.Ui.Mode() == state.ChatInputMode,
			Sending:  m.Conversation.Sending(),
			Error:    m.Conversation.ChatError(),
			Width:    chatWidth - 2,
			Height:   height - 4,
		})
	}

	columnWidth := boardWidth/len(board.Columns) - 2
	columnHeight := height - 4
	pending := m.pendingIssueIDs()

	columns := make([]string, 0, len(board.Columns))
	for i, status := range board.Columns {
		selectedCard := -1
		if i == m.Ui.SelectedColumn() {
			selectedCard = m.Ui.SelectedCard()
		}
		columns = append(columns, components.RenderColumn(components.ColumnProps{
			Status:          status,
			Issues:          m.columnIssues(i),
			Selected:        i == m.Ui.SelectedColumn(),
			SelectedCard:    selectedCard,
			GrabbedIssueID:  m.Drag.Grabbed(),
			PendingIssueIDs: pending,
			Width:           columnWidth,
			Height:          columnHeight,
		}))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	if chatPane != "" {
		row = lipgloss.JoinHorizontal(lipgloss.Top, row, chatPane)
	}

	left := "TrackDeck"
	if project != nil {
		left = project.Name
	}
	if m.Ui.Mode() == state.GrabMode {
		left += "  " + components.SubtleStyle.Render("carrying card · h/l to drop, esc to cancel")
	}
	statusBar := components.RenderStatusBar(components.StatusBarProps{
		Width: width,
		Left:  left,
	})

	parts := []string{header}
	if banner != "" {
		parts = append(parts, banner)
	}
	parts = append(parts, row, statusBar)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
