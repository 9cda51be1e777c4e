package tui

import (
	"time"

	"github.com/trackdeck/trackdeck/internal/api"
	"github.com/trackdeck/trackdeck/internal/models"
)

// SessionExpiredMsg is sent from outside the program when any request
// comes back 401. The stored token is already gone by the time it
// arrives.
type SessionExpiredMsg struct{}

// cachedProjectsMsg delivers the snapshot read at startup.
type cachedProjectsMsg struct {
	projects []models.Project
	ok       bool
}

// cachedIssuesMsg delivers a project's snapshot when its board opens.
type cachedIssuesMsg struct {
	projectID int
	issues    []models.Issue
	ok        bool
}

type projectsLoadedMsg struct {
	gen      int
	projects []models.Project
	found    bool
	err      error
}

type projectSavedMsg struct {
	project models.Project
	created bool
	err     error
}

type projectDeletedMsg struct {
	id  int
	err error
}

// projectDetailMsg refreshes one project's full record, mainly for a
// current member list.
type projectDetailMsg struct {
	project models.Project
	err     error
}

type issuesLoadedMsg struct {
	gen       int
	projectID int
	issues    []models.Issue
	found     bool
	err       error
}

type issueSavedMsg struct {
	issue   models.Issue
	created bool
	err     error
}

type issueDeletedMsg struct {
	id  int
	err error
}

type issueDetailMsg struct {
	detail models.IssueDetail
	err    error
}

// moveResultMsg settles an optimistic card move.
type moveResultMsg struct {
	issueID int
	err     error
}

// dragErrorExpiredMsg clears the move error banner; seq must match the
// banner it was armed for.
type dragErrorExpiredMsg struct {
	seq int
}

// notificationExpiredMsg dismisses one timed notification by id.
type notificationExpiredMsg struct {
	id int
}

type authResultMsg struct {
	token      string
	registered bool
	err        error
}

type inviteResultMsg struct {
	err error
}

type acceptResultMsg struct {
	details    models.InvitationDetails
	acceptance models.InvitationAcceptance
	err        error
}

// pendingInvitationsMsg reports the post-login sweep of invitations
// addressed to this account.
type pendingInvitationsMsg struct {
	processed int
	err       error
}

type profileMsg struct {
	profile api.Profile
	err     error
}

type chatLoadedMsg struct {
	gen      int
	messages []models.ChatMessage
	err      error
}

type chatSentMsg struct {
	message models.ChatMessage
	err     error
}

// chatTickMsg drives the chat poll while the pane is open.
type chatTickMsg time.Time

type commentsLoadedMsg struct {
	gen      int
	comments []models.Comment
	err      error
}

type commentSavedMsg struct {
	comment models.Comment
	err     error
}
