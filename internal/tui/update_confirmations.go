package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/trackdeck/trackdeck/internal/tui/state"
)

// handleConfirmMode answers the y/n dialogs: issue delete, project
// delete, and the invitation resend prompt.
func (m Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	mode := m.Ui.Mode()

	switch msg.String() {
	case "y", "Y", "enter":
		m.Ui.SetMode(state.NormalMode)
		switch mode {
		case state.DeleteIssueConfirmMode:
			if issue := m.selectedIssue(); issue != nil {
				return m, m.deleteIssueCmd(issue.ID)
			}
		case state.DeleteProjectConfirmMode:
			if project := m.selectedProject(); project != nil {
				return m, m.deleteProjectCmd(project.ID)
			}
		case state.ResendConfirmMode:
			if m.Flow != nil {
				if req, ok := m.Flow.ConfirmResend(); ok {
					return m, m.sendInvitationCmd(req)
				}
			}
		}
		return m, nil

	case "n", "N", "esc":
		m.Ui.SetMode(state.NormalMode)
		if mode == state.ResendConfirmMode && m.Flow != nil {
			m.Flow.DeclineResend()
		}
		return m, nil
	}
	return m, nil
}
