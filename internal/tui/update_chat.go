package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/trackdeck/trackdeck/internal/api"
	"github.com/trackdeck/trackdeck/internal/tui/state"
)

// chatInput and commentInput are the line buffers for the two typing
// modes. They live on the model, not in FormState: these are single
// lines with no huh form behind them.
type inputBuffers struct {
	chat    string
	comment string
}

func (m Model) handleChatInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Input.chat = ""
		m.Ui.SetMode(state.NormalMode)
		return m, nil
	case "enter":
		content := m.Input.chat
		if content == "" || m.Conversation.Sending() {
			return m, nil
		}
		project := m.Projects.Current()
		if project == nil {
			m.Ui.SetMode(state.NormalMode)
			return m, nil
		}
		m.Conversation.SetSending(true)
		m.Input.chat = ""
		m.Ui.SetMode(state.NormalMode)
		return m, m.sendChatCmd(project.ID, content)
	case "backspace", "ctrl+h":
		if len(m.Input.chat) > 0 {
			m.Input.chat = trimLastRune(m.Input.chat)
		}
		return m, nil
	case "space":
		m.Input.chat += " "
		return m, nil
	}
	if key := msg.String(); len([]rune(key)) == 1 {
		m.Input.chat += key
	}
	return m, nil
}

func (m Model) handleCommentInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Input.comment = ""
		m.Ui.SetMode(state.NormalMode)
		return m, nil
	case "enter":
		content := m.Input.comment
		issue := m.selectedIssue()
		if content == "" || issue == nil {
			return m, nil
		}
		m.Input.comment = ""
		m.Ui.SetMode(state.NormalMode)
		return m, m.addCommentCmd(issue.ID, content)
	case "backspace", "ctrl+h":
		if len(m.Input.comment) > 0 {
			m.Input.comment = trimLastRune(m.Input.comment)
		}
		return m, nil
	case "space":
		m.Input.comment += " "
		return m, nil
	}
	if key := msg.String(); len([]rune(key)) == 1 {
		m.Input.comment += key
	}
	return m, nil
}

func trimLastRune(s string) string {
	runes := []rune(s)
	return string(runes[:len(runes)-1])
}

func (m Model) handleChatLoaded(msg chatLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.Conversation.FailChatFetch(msg.gen, api.Message(msg.err))
		return m, nil
	}
	m.Conversation.FinishChatFetch(msg.gen, msg.messages)
	return m, nil
}

func (m Model) handleChatSent(msg chatSentMsg) (tea.Model, tea.Cmd) {
	m.Conversation.SetSending(false)
	if msg.err != nil {
		m.Notifications.Add(state.LevelError, api.Message(msg.err))
		return m, nil
	}
	m.Conversation.AppendMessage(msg.message)
	return m, nil
}

// handleChatTick refreshes the chat pane while it is open and re-arms
// the poll timer. The timer dies whenever the pane closes or the
// project is left.
func (m Model) handleChatTick() (tea.Model, tea.Cmd) {
	project := m.Projects.Current()
	if project == nil || m.Ui.View() != state.BoardView || !m.Ui.ChatOpen() {
		return m, nil
	}
	return m, tea.Batch(
		m.fetchChatCmd(project.ID),
		m.chatTickCmd(),
	)
}

func (m Model) handleCommentsLoaded(msg commentsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.Conversation.FailCommentFetch(msg.gen, api.Message(msg.err))
		return m, nil
	}
	m.Conversation.FinishCommentFetch(msg.gen, msg.comments)
	return m, nil
}

func (m Model) handleCommentSaved(msg commentSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.Notifications.Add(state.LevelError, api.Message(msg.err))
		return m, nil
	}
	m.Conversation.AppendComment(msg.comment)
	return m, nil
}
