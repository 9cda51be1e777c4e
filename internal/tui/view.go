package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/trackdeck/trackdeck/internal/tui/components"
	"github.com/trackdeck/trackdeck/internal/tui/notifications"
	"github.com/trackdeck/trackdeck/internal/tui/state"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.Ui.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	// Base screen
	var base string
	switch m.Ui.View() {
	case state.LoginView:
		base = m.viewAuth()
	case state.DashboardView:
		base = m.viewDashboard()
	case state.BoardView:
		base = m.viewBoard()
	case state.IssueView:
		base = m.viewIssue()
	}

	layers := []*lipgloss.Layer{lipgloss.NewLayer(base)}

	// Modal overlay
	if modal := m.renderModal(); modal != "" {
		layers = append(layers, centeredLayer(modal, m.Ui.Width(), m.Ui.Height()))
	}

	// Floating notifications in the top-right corner
	layers = append(layers, m.Notifications.GetLayers(notifications.Render)...)

	view.Content = lipgloss.NewCanvas(layers...).Render()
	return view
}

// renderModal returns the active dialog, or "" in plain navigation.
func (m Model) renderModal() string {
	switch m.Ui.Mode() {
	case state.FormMode:
		// The auth screens draw their form as the base view instead
		if m.Ui.View() == state.LoginView || m.Form.Form == nil {
			return ""
		}
		style := components.EditFormBoxStyle
		if m.creatingForm() {
			style = components.CreateFormBoxStyle
		}
		return style.Width(m.Ui.Width() / 2).Render(m.Form.Form.View())

	case state.DeleteIssueConfirmMode:
		if issue := m.selectedIssue(); issue != nil {
			return components.DeleteConfirmBoxStyle.Width(50).
				Render("Delete '" + issue.Title + "'?\n\n[y]es  [n]o")
		}

	case state.DeleteProjectConfirmMode:
		if project := m.selectedProject(); project != nil {
			return components.DeleteConfirmBoxStyle.Width(50).
				Render("Delete project '" + project.Name +
					"'?\nIssues and chat history go with it.\n\n[y]es  [n]o")
		}

	case state.ResendConfirmMode:
		if m.Flow != nil {
			return components.EditFormBoxStyle.Width(56).
				Render("An invitation for " + m.Flow.Email() +
					" is already pending.\nSend it again?\n\n[y]es  [n]o")
		}

	case state.HelpMode:
		return m.renderHelp()
	}
	return ""
}

// creatingForm reports whether the active form creates something new,
// which picks the green border over the blue one.
func (m Model) creatingForm() bool {
	switch m.Form.Kind {
	case state.ProjectForm:
		return m.Form.EditingProjectID == 0
	case state.IssueForm:
		return m.Form.EditingIssueID == 0
	case state.InviteForm, state.AcceptForm, state.RegisterForm:
		return true
	}
	return false
}

func centeredLayer(content string, screenWidth, screenHeight int) *lipgloss.Layer {
	x := max((screenWidth-lipgloss.Width(content))/2, 0)
	y := max((screenHeight-lipgloss.Height(content))/2, 0)
	return lipgloss.NewLayer(content).X(x).Y(y)
}

// viewAuth renders the login/register screen: the form centered with a
// hint line under it.
func (m Model) viewAuth() string {
	title := components.TitleStyle.Render("TrackDeck")
	hint := components.SubtleStyle.Render("ctrl+r to switch login/register · esc to quit")

	var formView string
	if m.Form.Form != nil {
		formView = m.Form.Form.View()
	}

	box := components.CreateFormBoxStyle.
		Width(min(m.Ui.Width()-4, 60)).
		Render(title + "\n\n" + formView + "\n" + hint)

	return lipgloss.Place(
		m.Ui.Width(), m.Ui.Height(),
		lipgloss.Center, lipgloss.Center,
		box,
	)
}
