package tui

import (
	"fmt"

	"github.com/trackdeck/trackdeck/internal/tui/components"
)

// renderHelp creates the shortcut overlay from the configured key
// mappings.
func (m Model) renderHelp() string {
	km := m.Config.KeyMappings
	text := fmt.Sprintf(`TRACKDECK - Keyboard Shortcuts

ISSUES
  %s     Add new issue
  %s     Edit selected issue
  %s     Delete selected issue
  %s     Open issue details
  %s     Move issue to previous column
  %s     Move issue to next column
  %s     Grab issue (then h/l to drop)
  %s     Assign issue
  %s     Comment on open issue

NAVIGATION
  %s     Previous column
  %s     Next column
  %s     Previous item
  %s     Next item
  %s  Open selection
  %s    Back

PROJECTS
  %s     Create project
  %s     Edit project
  %s     Delete project
  %s     Invite member
  %s     Accept invitation token

OTHER
  %s     Toggle team chat
  %s     Filter projects
  %s     Refresh
  %s  Logout
  %s     Quit

Press %s or esc to close`,
		km.AddIssue, km.EditIssue, km.DeleteIssue, km.ViewIssue,
		km.MoveIssueLeft, km.MoveIssueRight, km.GrabIssue,
		km.AssignIssue, km.CommentIssue,
		km.PrevColumn, km.NextColumn, km.PrevItem, km.NextItem,
		km.Open, km.Back,
		km.CreateProject, km.EditProject, km.DeleteProject,
		km.InviteMember, km.AcceptInvite,
		km.ToggleChat, km.FilterMode, km.Refresh, km.Logout, km.Quit,
		km.ShowHelp)

	return components.EditFormBoxStyle.Width(54).Render(text)
}
