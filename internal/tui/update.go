package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/trackdeck/trackdeck/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.Ui.SetSize(msg.Width, msg.Height)
		m.Notifications.SetWindowSize(msg.Width, msg.Height)
		return m, nil

	case SessionExpiredMsg:
		return m.handleSessionExpired()

	case cachedProjectsMsg, projectsLoadedMsg, projectSavedMsg, projectDeletedMsg,
		projectDetailMsg, cachedIssuesMsg, issuesLoadedMsg, issueSavedMsg,
		issueDeletedMsg, issueDetailMsg,
		moveResultMsg, dragErrorExpiredMsg,
		authResultMsg, inviteResultMsg, acceptResultMsg,
		pendingInvitationsMsg, profileMsg,
		chatLoadedMsg, chatSentMsg, chatTickMsg,
		commentsLoadedMsg, commentSavedMsg:
		return m.handleResult(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Anything else may belong to the active form
	if m.Ui.Mode() == state.FormMode && m.Form.Form != nil {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Ui.Mode() {
	case state.FormMode:
		return m.handleFormKey(msg)
	case state.GrabMode:
		return m.handleGrabMode(msg)
	case state.ChatInputMode:
		return m.handleChatInput(msg)
	case state.CommentInputMode:
		return m.handleCommentInput(msg)
	case state.DeleteIssueConfirmMode, state.DeleteProjectConfirmMode, state.ResendConfirmMode:
		return m.handleConfirmMode(msg)
	case state.HelpMode:
		return m.handleHelpMode(msg)
	default:
		return m.handleNormalMode(msg)
	}
}

func (m Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.Config.KeyMappings.Back, m.Config.KeyMappings.ShowHelp, "q":
		m.Ui.SetMode(state.NormalMode)
	}
	return m, nil
}

// handleSessionExpired drops back to the login screen. The api client
// already cleared the stored token.
func (m Model) handleSessionExpired() (tea.Model, tea.Cmd) {
	m.Projects.ClearCurrent()
	m.Issues.Clear()
	m.Conversation.Clear()
	m.openIssue = nil
	m.profile = nil
	m.Ui.SetView(state.LoginView)
	m.openLoginForm()
	m.Notifications.Add(state.LevelError, "Session expired. Please login again.")
	return m, nil
}
