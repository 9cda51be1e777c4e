package tui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/trackdeck/trackdeck/internal/api"
	"github.com/trackdeck/trackdeck/internal/models"
)

// requestContext bounds one API call by the configured timeout.
func (m Model) requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), m.Config.Server.RequestTimeout)
}

func (m Model) loadCachedProjectsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		projects, ok := m.Cache.LoadProjects(ctx)
		return cachedProjectsMsg{projects: projects, ok: ok}
	}
}

func (m Model) loadCachedIssuesCmd(projectID int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		issues, ok := m.Cache.LoadIssues(ctx, projectID)
		return cachedIssuesMsg{projectID: projectID, issues: issues, ok: ok}
	}
}

func (m Model) fetchProjectsCmd() tea.Cmd {
	gen := m.Projects.BeginFetch()
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		projects, found, err := m.Client.ListProjects(ctx, "", "")
		return projectsLoadedMsg{gen: gen, projects: projects, found: found, err: err}
	}
}

func (m Model) fetchIssuesCmd(projectID int) tea.Cmd {
	gen := m.Issues.BeginFetch()
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		issues, found, err := m.Client.ListIssues(ctx, projectID)
		return issuesLoadedMsg{gen: gen, projectID: projectID, issues: issues, found: found, err: err}
	}
}

// fetchProjectDetailCmd refreshes one project's record, picking up team
// changes made elsewhere since the list was fetched.
func (m Model) fetchProjectDetailCmd(id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		project, err := m.Client.GetProject(ctx, id)
		return projectDetailMsg{project: project, err: err}
	}
}

func (m Model) saveProjectCmd(id int, draft models.ProjectDraft) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		if id == 0 {
			project, err := m.Client.CreateProject(ctx, draft)
			return projectSavedMsg{project: project, created: true, err: err}
		}
		project, err := m.Client.UpdateProject(ctx, id, draft)
		return projectSavedMsg{project: project, err: err}
	}
}

func (m Model) deleteProjectCmd(id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		return projectDeletedMsg{id: id, err: m.Client.DeleteProject(ctx, id)}
	}
}

func (m Model) saveIssueCmd(projectID, id int, draft models.IssueDraft) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		if id == 0 {
			issue, err := m.Client.CreateIssue(ctx, projectID, draft)
			return issueSavedMsg{issue: issue, created: true, err: err}
		}
		issue, err := m.Client.UpdateIssue(ctx, id, draft)
		return issueSavedMsg{issue: issue, err: err}
	}
}

func (m Model) deleteIssueCmd(id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		return issueDeletedMsg{id: id, err: m.Client.DeleteIssue(ctx, id)}
	}
}

func (m Model) assignIssueCmd(issueID, userID int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		issue, err := m.Client.AssignIssue(ctx, issueID, userID)
		return issueSavedMsg{issue: issue, err: err}
	}
}

func (m Model) fetchIssueDetailCmd(id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		detail, err := m.Client.GetIssueDetail(ctx, id)
		return issueDetailMsg{detail: detail, err: err}
	}
}

// moveIssueCmd sends the status change already applied to the board.
func (m Model) moveIssueCmd(issueID int, status models.Status) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		_, err := m.Client.UpdateIssueStatus(ctx, issueID, status)
		return moveResultMsg{issueID: issueID, err: err}
	}
}

func (m Model) loginCmd(creds api.Credentials) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		resp, err := m.Client.Login(ctx, creds)
		return authResultMsg{token: resp.AccessToken, err: err}
	}
}

func (m Model) registerCmd(reg api.Registration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		resp, err := m.Client.Register(ctx, reg)
		return authResultMsg{token: resp.AccessToken, registered: true, err: err}
	}
}

func (m Model) sendInvitationCmd(req api.InvitationRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		return inviteResultMsg{err: m.Client.SendInvitation(ctx, req)}
	}
}

// acceptInvitationCmd resolves the token to its invitation first, so a
// bad or expired token fails before any membership change is attempted.
func (m Model) acceptInvitationCmd(token, email string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		details, err := m.Client.GetInvitationDetails(ctx, token)
		if err != nil {
			return acceptResultMsg{err: err}
		}
		acceptance, err := m.Client.AcceptInvitation(ctx, token, email)
		return acceptResultMsg{details: details, acceptance: acceptance, err: err}
	}
}

// processPendingInvitationsCmd sweeps invitations that were sent to this
// address before the account existed. Runs once per login.
func (m Model) processPendingInvitationsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		processed, err := m.Client.ProcessPendingInvitations(ctx)
		return pendingInvitationsMsg{processed: processed, err: err}
	}
}

func (m Model) fetchProfileCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		profile, err := m.Client.GetProfile(ctx)
		return profileMsg{profile: profile, err: err}
	}
}

func (m Model) fetchChatCmd(projectID int) tea.Cmd {
	gen := m.Conversation.BeginChatFetch()
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		messages, _, err := m.Client.ListChatMessages(ctx, projectID)
		return chatLoadedMsg{gen: gen, messages: messages, err: err}
	}
}

func (m Model) sendChatCmd(projectID int, content string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		message, err := m.Client.SendChatMessage(ctx, projectID, content)
		return chatSentMsg{message: message, err: err}
	}
}

func (m Model) chatTickCmd() tea.Cmd {
	return tea.Tick(m.Config.Server.ChatPoll, func(t time.Time) tea.Msg {
		return chatTickMsg(t)
	})
}

func (m Model) fetchCommentsCmd(issueID int) tea.Cmd {
	gen := m.Conversation.BeginCommentFetch()
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		comments, _, err := m.Client.ListComments(ctx, issueID)
		return commentsLoadedMsg{gen: gen, comments: comments, err: err}
	}
}

func (m Model) addCommentCmd(issueID int, content string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		comment, err := m.Client.AddComment(ctx, issueID, content)
		return commentSavedMsg{comment: comment, err: err}
	}
}

// dragErrorExpiryCmd arms the 3 second timer that clears a move error.
func dragErrorExpiryCmd(seq int) tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return dragErrorExpiredMsg{seq: seq}
	})
}

// notificationExpiryCmd arms the 3 second timer that dismisses a
// confirmation banner on its own.
func notificationExpiryCmd(id int) tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return notificationExpiredMsg{id: id}
	})
}

// saveProjectsSnapshot writes the fetched list through to the cache.
func (m Model) saveProjectsSnapshot(projects []models.Project) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		m.Cache.SaveProjects(ctx, projects)
		return nil
	}
}

func (m Model) saveIssuesSnapshot(projectID int, issues []models.Issue) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		m.Cache.SaveIssues(ctx, projectID, issues)
		return nil
	}
}
