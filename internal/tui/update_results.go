package tui

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/trackdeck/trackdeck/internal/api"
	"github.com/trackdeck/trackdeck/internal/invite"
	"github.com/trackdeck/trackdeck/internal/tui/state"
)

// handleResult routes every async completion message.
func (m Model) handleResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case cachedProjectsMsg:
		return m.handleCachedProjects(msg)
	case projectsLoadedMsg:
		return m.handleProjectsLoaded(msg)
	case projectSavedMsg:
		return m.handleProjectSaved(msg)
	case projectDeletedMsg:
		return m.handleProjectDeleted(msg)
	case projectDetailMsg:
		return m.handleProjectDetail(msg)
	case cachedIssuesMsg:
		return m.handleCachedIssues(msg)
	case issuesLoadedMsg:
		return m.handleIssuesLoaded(msg)
	case issueSavedMsg:
		return m.handleIssueSaved(msg)
	case issueDeletedMsg:
		return m.handleIssueDeleted(msg)
	case issueDetailMsg:
		return m.handleIssueDetail(msg)
	case moveResultMsg:
		return m.handleMoveResult(msg)
	case dragErrorExpiredMsg:
		m.Drag.Expire(msg.seq)
		return m, nil
	case notificationExpiredMsg:
		m.Notifications.Expire(msg.id)
		return m, nil
	case authResultMsg:
		return m.handleAuthResult(msg)
	case inviteResultMsg:
		return m.handleInviteResult(msg)
	case acceptResultMsg:
		return m.handleAcceptResult(msg)
	case pendingInvitationsMsg:
		return m.handlePendingInvitations(msg)
	case profileMsg:
		return m.handleProfile(msg)
	case chatLoadedMsg:
		return m.handleChatLoaded(msg)
	case chatSentMsg:
		return m.handleChatSent(msg)
	case chatTickMsg:
		return m.handleChatTick()
	case commentsLoadedMsg:
		return m.handleCommentsLoaded(msg)
	case commentSavedMsg:
		return m.handleCommentSaved(msg)
	}
	return m, nil
}

// handleCachedProjects seeds the dashboard from the snapshot, but never
// over a server response that has already landed. The seed does not
// touch the fetch generation, so the in-flight refresh still applies.
func (m Model) handleCachedProjects(msg cachedProjectsMsg) (tea.Model, tea.Cmd) {
	if !msg.ok {
		return m, nil
	}
	m.Projects.Seed(msg.projects)
	return m, nil
}

func (m Model) handleProjectsLoaded(msg projectsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if !m.Projects.FailFetch(msg.gen, api.Message(msg.err)) {
			return m, nil
		}
		slog.Error("failed to load projects", "error", msg.err)
		return m, nil
	}
	if !m.Projects.FinishFetch(msg.gen, msg.projects) {
		return m, nil
	}
	m.Ui.SetSelectedProject(0)
	return m, m.saveProjectsSnapshot(msg.projects)
}

func (m Model) handleProjectSaved(msg projectSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.Notifications.Add(state.LevelError, api.Message(msg.err))
		return m, nil
	}
	if msg.created {
		m.Projects.Add(msg.project)
		m.Notifications.Add(state.LevelInfo, "Project created")
	} else {
		m.Projects.Replace(msg.project)
		m.Notifications.Add(state.LevelInfo, "Project updated")
	}
	return m, m.saveProjectsSnapshot(m.Projects.Projects())
}

func (m Model) handleProjectDeleted(msg projectDeletedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.Notifications.Add(state.LevelError, api.Message(msg.err))
		return m, nil
	}
	m.Projects.Remove(msg.id)
	m.Ui.SetSelectedProject(0)
	m.Notifications.Add(state.LevelInfo, "Project deleted")
	return m, m.saveProjectsSnapshot(m.Projects.Projects())
}

// handleProjectDetail folds the refreshed record into the list and the
// current project. A failure is not worth a banner; the list copy works.
func (m Model) handleProjectDetail(msg projectDetailMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		slog.Warn("failed to refresh project", "error", msg.err)
		return m, nil
	}
	m.Projects.Replace(msg.project)
	return m, nil
}

func (m Model) handleCachedIssues(msg cachedIssuesMsg) (tea.Model, tea.Cmd) {
	project := m.Projects.Current()
	if !msg.ok || project == nil || project.ID != msg.projectID {
		return m, nil
	}
	m.Issues.Seed(msg.issues)
	return m, nil
}

func (m Model) handleIssuesLoaded(msg issuesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if !m.Issues.FailFetch(msg.gen, api.Message(msg.err)) {
			return m, nil
		}
		slog.Error("failed to load issues", "project", msg.projectID, "error", msg.err)
		return m, nil
	}
	if !m.Issues.FinishFetch(msg.gen, msg.issues) {
		return m, nil
	}
	m.Ui.ClampCard(len(m.columnIssues(m.Ui.SelectedColumn())))
	return m, m.saveIssuesSnapshot(msg.projectID, msg.issues)
}

func (m Model) handleIssueSaved(msg issueSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.Notifications.Add(state.LevelError, api.Message(msg.err))
		return m, nil
	}
	if msg.created {
		m.Issues.Add(msg.issue)
		m.Notifications.Add(state.LevelInfo, "Issue created")
	} else {
		m.Issues.Replace(msg.issue)
	}
	m.followCard(msg.issue.ID)
	if project := m.Projects.Current(); project != nil {
		return m, m.saveIssuesSnapshot(project.ID, m.Issues.Issues())
	}
	return m, nil
}

func (m Model) handleIssueDeleted(msg issueDeletedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.Notifications.Add(state.LevelError, api.Message(msg.err))
		return m, nil
	}
	m.Issues.Remove(msg.id)
	m.Ui.ClampCard(len(m.columnIssues(m.Ui.SelectedColumn())))
	m.Notifications.Add(state.LevelInfo, "Issue deleted")
	if project := m.Projects.Current(); project != nil {
		return m, m.saveIssuesSnapshot(project.ID, m.Issues.Issues())
	}
	return m, nil
}

func (m Model) handleIssueDetail(msg issueDetailMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.Notifications.Add(state.LevelError, api.Message(msg.err))
		m.Ui.SetView(state.BoardView)
		return m, nil
	}
	detail := msg.detail
	m.openIssue = &detail
	return m, nil
}

func (m Model) handleAuthResult(msg authResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.Notifications.Add(state.LevelError, api.Message(msg.err))
		m.openLoginForm()
		return m, nil
	}
	if err := m.Store.Set(msg.token); err != nil {
		slog.Error("failed to persist session", "error", err)
	}
	m.Form.Reset()
	m.Ui.SetView(state.DashboardView)
	if msg.registered {
		m.Notifications.Add(state.LevelInfo, "Welcome to TrackDeck")
	}
	return m, tea.Batch(
		tea.ClearScreen,
		m.fetchProjectsCmd(),
		m.fetchProfileCmd(),
		m.processPendingInvitationsCmd(),
	)
}

// handlePendingInvitations reports memberships granted by the post-login
// sweep. Failures stay in the log; the sweep is best effort.
func (m Model) handlePendingInvitations(msg pendingInvitationsMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		slog.Warn("failed to process pending invitations", "error", msg.err)
		return m, nil
	}
	if msg.processed == 0 {
		return m, nil
	}
	if msg.processed == 1 {
		m.Notifications.Add(state.LevelInfo, "A pending invitation was accepted")
	} else {
		m.Notifications.Add(state.LevelInfo,
			fmt.Sprintf("%d pending invitations were accepted", msg.processed))
	}
	return m, m.fetchProjectsCmd()
}

func (m Model) handleProfile(msg profileMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		slog.Warn("failed to load profile", "error", msg.err)
		return m, nil
	}
	profile := msg.profile
	m.profile = &profile
	return m, nil
}

func (m Model) handleInviteResult(msg inviteResultMsg) (tea.Model, tea.Cmd) {
	if m.Flow == nil {
		return m, nil
	}
	if msg.err == nil {
		m.Flow.Succeed("Invitation sent")
		id := m.Notifications.Add(state.LevelInfo, fmt.Sprintf("Invitation sent to %s", m.Flow.Email()))
		return m, notificationExpiryCmd(id)
	}

	m.Flow.Fail(msg.err)
	switch m.Flow.State() {
	case invite.ConflictPending:
		m.Ui.SetMode(state.ResendConfirmMode)
	case invite.Failed:
		m.Notifications.Add(state.LevelError, m.Flow.Message())
	}
	return m, nil
}

func (m Model) handleAcceptResult(msg acceptResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.Notifications.Add(state.LevelError, api.Message(msg.err))
		return m, nil
	}
	if !msg.acceptance.UserExists {
		m.Notifications.Add(state.LevelWarning,
			"Invitation is for an unregistered address. Register with it first.")
		return m, nil
	}
	joined := msg.acceptance.ProjectName
	if joined == "" {
		joined = msg.details.ProjectName
	}
	if msg.details.InviterName != "" {
		m.Notifications.Add(state.LevelInfo,
			fmt.Sprintf("Joined %s, invited by %s", joined, msg.details.InviterName))
	} else {
		m.Notifications.Add(state.LevelInfo, fmt.Sprintf("Joined %s", joined))
	}
	return m, m.fetchProjectsCmd()
}
