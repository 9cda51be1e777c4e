package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/trackdeck/trackdeck/internal/board"
	"github.com/trackdeck/trackdeck/internal/invite"
	"github.com/trackdeck/trackdeck/internal/tui/state"
)

func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.Notifications.Clear()

	key := msg.String()
	km := m.Config.KeyMappings

	// Global keys first
	switch key {
	case km.Quit, "ctrl+c":
		return m, tea.Quit
	case km.ShowHelp:
		m.Ui.SetMode(state.HelpMode)
		return m, nil
	case km.Logout:
		return m.handleLogout()
	}

	switch m.Ui.View() {
	case state.DashboardView:
		return m.handleDashboardKey(key)
	case state.BoardView:
		return m.handleBoardKey(key)
	case state.IssueView:
		return m.handleIssueViewKey(key)
	}
	return m, nil
}

func (m Model) handleDashboardKey(key string) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings
	visible := m.visibleProjects()

	switch key {
	case km.PrevItem, "up":
		if m.Ui.SelectedProject() > 0 {
			m.Ui.SetSelectedProject(m.Ui.SelectedProject() - 1)
		}
	case km.NextItem, "down":
		if m.Ui.SelectedProject() < len(visible)-1 {
			m.Ui.SetSelectedProject(m.Ui.SelectedProject() + 1)
		}
	case km.Open:
		return m.handleOpenProject()
	case km.CreateProject:
		m.openProjectForm(nil)
	case km.EditProject:
		if project := m.selectedProject(); project != nil {
			m.openProjectForm(project)
		}
	case km.DeleteProject:
		if m.selectedProject() != nil {
			m.Ui.SetMode(state.DeleteProjectConfirmMode)
		}
	case km.InviteMember:
		if project := m.selectedProject(); project != nil {
			m.Flow = invite.NewFlow(project.ID)
			m.openInviteForm()
		}
	case km.AcceptInvite:
		m.openAcceptForm()
	case km.FilterMode:
		m.openFilterForm()
	case km.Refresh:
		return m, m.fetchProjectsCmd()
	}
	return m, nil
}

func (m Model) handleOpenProject() (tea.Model, tea.Cmd) {
	project := m.selectedProject()
	if project == nil {
		return m, nil
	}
	m.Projects.SetCurrent(*project)
	m.Issues.Clear()
	m.Conversation.Clear()
	m.Ui.ResetBoardCursor()
	m.Ui.SetView(state.BoardView)
	return m, tea.Batch(
		m.loadCachedIssuesCmd(project.ID),
		m.fetchIssuesCmd(project.ID),
		m.fetchProjectDetailCmd(project.ID),
		m.fetchChatCmd(project.ID),
	)
}

func (m Model) handleBoardKey(key string) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings

	switch key {
	case km.Back:
		m.Projects.ClearCurrent()
		m.Issues.Clear()
		m.Conversation.Clear()
		m.Drag.ClearError()
		m.Ui.SetView(state.DashboardView)
		return m, nil
	case km.PrevColumn, "left":
		if m.Ui.SelectedColumn() > 0 {
			m.Ui.SetSelectedColumn(m.Ui.SelectedColumn() - 1)
		}
	case km.NextColumn, "right":
		if m.Ui.SelectedColumn() < len(board.Columns)-1 {
			m.Ui.SetSelectedColumn(m.Ui.SelectedColumn() + 1)
		}
	case km.PrevItem, "up":
		if m.Ui.SelectedCard() > 0 {
			m.Ui.SetSelectedCard(m.Ui.SelectedCard() - 1)
		}
	case km.NextItem, "down":
		cards := m.columnIssues(m.Ui.SelectedColumn())
		if m.Ui.SelectedCard() < len(cards)-1 {
			m.Ui.SetSelectedCard(m.Ui.SelectedCard() + 1)
		}
	case km.Open, km.ViewIssue:
		return m.handleOpenIssue()
	case km.AddIssue:
		m.openIssueForm(nil)
	case km.EditIssue:
		if issue := m.selectedIssue(); issue != nil {
			m.openIssueForm(issue)
		}
	case km.DeleteIssue:
		return m.handleDeleteIssueKey()
	case km.AssignIssue:
		return m.handleAssignKey()
	case km.MoveIssueLeft:
		return m.handleMoveSelected(-1)
	case km.MoveIssueRight:
		return m.handleMoveSelected(1)
	case km.GrabIssue:
		return m.handleGrab()
	case km.ToggleChat:
		m.Ui.ToggleChat()
		if m.Ui.ChatOpen() {
			if project := m.Projects.Current(); project != nil {
				return m, tea.Batch(m.fetchChatCmd(project.ID), m.chatTickCmd())
			}
		}
	case km.InviteMember:
		if project := m.Projects.Current(); project != nil {
			m.Flow = invite.NewFlow(project.ID)
			m.openInviteForm()
		}
	case km.Refresh:
		if project := m.Projects.Current(); project != nil {
			return m, m.fetchIssuesCmd(project.ID)
		}
	case "enter":
		if m.Ui.ChatOpen() {
			m.Ui.SetMode(state.ChatInputMode)
		}
	}
	return m, nil
}

func (m Model) handleOpenIssue() (tea.Model, tea.Cmd) {
	issue := m.selectedIssue()
	if issue == nil {
		return m, nil
	}
	m.Ui.SetView(state.IssueView)
	return m, tea.Batch(
		m.fetchIssueDetailCmd(issue.ID),
		m.fetchCommentsCmd(issue.ID),
	)
}

func (m Model) handleIssueViewKey(key string) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings

	switch key {
	case km.Back:
		m.openIssue = nil
		m.Ui.SetView(state.BoardView)
	case km.CommentIssue:
		m.Ui.SetMode(state.CommentInputMode)
	case km.EditIssue:
		if issue := m.selectedIssue(); issue != nil {
			m.openIssueForm(issue)
		}
	case km.Refresh:
		if issue := m.selectedIssue(); issue != nil {
			return m, tea.Batch(
				m.fetchIssueDetailCmd(issue.ID),
				m.fetchCommentsCmd(issue.ID),
			)
		}
	}
	return m, nil
}

func (m Model) handleDeleteIssueKey() (tea.Model, tea.Cmd) {
	issue := m.selectedIssue()
	if issue == nil {
		return m, nil
	}
	if !m.Store.Session().CanDelete(*issue) {
		m.Notifications.Add(state.LevelWarning, "Only the creator or project owner can delete this issue")
		return m, nil
	}
	m.Ui.SetMode(state.DeleteIssueConfirmMode)
	return m, nil
}

func (m Model) handleAssignKey() (tea.Model, tea.Cmd) {
	issue := m.selectedIssue()
	if issue == nil {
		return m, nil
	}
	if !m.Store.Session().CanAssign(*issue) {
		m.Notifications.Add(state.LevelWarning, "Only the creator or project owner can assign this issue")
		return m, nil
	}
	m.openAssignForm(issue)
	return m, nil
}

func (m Model) handleLogout() (tea.Model, tea.Cmd) {
	m.Store.Clear()
	m.Projects.ClearCurrent()
	m.Issues.Clear()
	m.Conversation.Clear()
	m.openIssue = nil
	m.profile = nil
	m.Ui.SetView(state.LoginView)
	m.openLoginForm()
	return m, func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		m.Cache.Clear(ctx)
		return nil
	}
}
