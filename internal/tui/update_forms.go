package tui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	"github.com/trackdeck/trackdeck/internal/api"
	"github.com/trackdeck/trackdeck/internal/models"
	"github.com/trackdeck/trackdeck/internal/tui/huhforms"
	"github.com/trackdeck/trackdeck/internal/tui/state"
)

// ============================================================================
// FORM OPENERS
// ============================================================================

func (m Model) openLoginForm() {
	m.Form.Reset()
	m.Form.Kind = state.LoginForm
	m.Form.Form = huhforms.LoginForm(&m.Form.Email, &m.Form.Password).
		WithTheme(huhforms.Theme(m.Config.ColorScheme))
	m.Ui.SetMode(state.FormMode)
}

func (m Model) openRegisterForm() {
	m.Form.Reset()
	m.Form.Kind = state.RegisterForm
	m.Form.Form = huhforms.RegisterForm(
		&m.Form.FirstName, &m.Form.LastName, &m.Form.Email, &m.Form.Password).
		WithTheme(huhforms.Theme(m.Config.ColorScheme))
	m.Ui.SetMode(state.FormMode)
}

// openProjectForm opens the create form, or the edit form pre-filled
// from the given project.
func (m Model) openProjectForm(project *models.Project) {
	m.Form.Reset()
	m.Form.Kind = state.ProjectForm
	if project != nil {
		m.Form.EditingProjectID = project.ID
		m.Form.ProjectName = project.Name
		m.Form.ProjectDescription = project.Description
		m.Form.ProjectCategory = project.Category
		m.Form.ProjectTags = strings.Join(project.Tags, ", ")
	}
	m.Form.Form = huhforms.ProjectForm(
		&m.Form.ProjectName, &m.Form.ProjectDescription,
		&m.Form.ProjectCategory, &m.Form.ProjectTags,
		project != nil).
		WithTheme(huhforms.Theme(m.Config.ColorScheme))
	m.Ui.SetMode(state.FormMode)
}

func (m Model) openIssueForm(issue *models.Issue) {
	m.Form.Reset()
	m.Form.Kind = state.IssueForm
	m.Form.IssuePriority = models.PriorityMedium
	var team []models.User
	canAssign := true
	if project := m.Projects.Current(); project != nil {
		team = project.Team
	}
	if issue != nil {
		m.Form.EditingIssueID = issue.ID
		m.Form.IssueTitle = issue.Title
		m.Form.IssueDescription = issue.Description
		m.Form.IssuePriority = issue.Priority
		m.Form.IssueAssigneeID = issue.AssigneeID()
		if issue.DueDate != nil {
			m.Form.IssueDueDate = issue.DueDate.Format("2006-01-02")
		}
		canAssign = m.Store.Session().CanAssign(*issue)
	}
	m.Form.Form = huhforms.IssueForm(
		&m.Form.IssueTitle, &m.Form.IssueDescription,
		&m.Form.IssuePriority, &m.Form.IssueDueDate,
		&m.Form.IssueAssigneeID, team, canAssign).
		WithTheme(huhforms.Theme(m.Config.ColorScheme))
	m.Ui.SetMode(state.FormMode)
}

func (m Model) openInviteForm() {
	m.Form.Reset()
	m.Form.Kind = state.InviteForm
	m.Form.Form = huhforms.InviteForm(&m.Form.InviteEmail).
		WithTheme(huhforms.Theme(m.Config.ColorScheme))
	m.Ui.SetMode(state.FormMode)
}

func (m Model) openAcceptForm() {
	m.Form.Reset()
	m.Form.Kind = state.AcceptForm
	m.Form.Form = huhforms.AcceptForm(&m.Form.AcceptToken).
		WithTheme(huhforms.Theme(m.Config.ColorScheme))
	m.Ui.SetMode(state.FormMode)
}

func (m Model) openFilterForm() {
	m.Form.Kind = state.FilterForm
	m.Form.FilterCategory = m.filterOpts.Category
	m.Form.FilterTag = m.filterOpts.Tag
	m.Form.FilterName = m.filterOpts.Name
	m.Form.Form = huhforms.FilterForm(
		&m.Form.FilterCategory, &m.Form.FilterTag, &m.Form.FilterName).
		WithTheme(huhforms.Theme(m.Config.ColorScheme))
	m.Ui.SetMode(state.FormMode)
}

func (m Model) openAssignForm(issue *models.Issue) {
	m.Form.Reset()
	m.Form.Kind = state.AssignForm
	m.Form.EditingIssueID = issue.ID
	m.Form.IssueAssigneeID = issue.AssigneeID()
	var team []models.User
	if project := m.Projects.Current(); project != nil {
		team = project.Team
	}
	m.Form.Form = huhforms.AssignForm(&m.Form.IssueAssigneeID, team).
		WithTheme(huhforms.Theme(m.Config.ColorScheme))
	m.Ui.SetMode(state.FormMode)
}

// ============================================================================
// FORM UPDATE
// ============================================================================

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.cancelForm()
	case "ctrl+r":
		// Switch between login and register on the auth screen
		switch m.Form.Kind {
		case state.LoginForm:
			m.openRegisterForm()
			return m, tea.ClearScreen
		case state.RegisterForm:
			m.openLoginForm()
			return m, tea.ClearScreen
		}
	}
	return m.updateForm(msg)
}

func (m Model) cancelForm() (tea.Model, tea.Cmd) {
	// The auth forms have nothing to fall back to
	if m.Form.Kind == state.LoginForm || m.Form.Kind == state.RegisterForm {
		return m, tea.Quit
	}
	m.Form.Reset()
	m.Ui.SetMode(state.NormalMode)
	return m, tea.ClearScreen
}

// updateForm forwards a message to the active huh form and submits it
// when the form completes.
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.Form.Form == nil {
		m.Ui.SetMode(state.NormalMode)
		return m, nil
	}

	model, cmd := m.Form.Form.Update(msg)
	m.Form.Form = model.(*huh.Form)

	if m.Form.Form.State == huh.StateCompleted {
		return m.submitForm()
	}
	return m, cmd
}

// submitForm reads the draft values and fires the matching request.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	kind := m.Form.Kind
	m.Form.Form = nil

	switch kind {
	case state.LoginForm:
		return m, m.loginCmd(api.Credentials{
			Email:    strings.TrimSpace(m.Form.Email),
			Password: m.Form.Password,
		})

	case state.RegisterForm:
		return m, m.registerCmd(api.Registration{
			FirstName: strings.TrimSpace(m.Form.FirstName),
			LastName:  strings.TrimSpace(m.Form.LastName),
			Email:     strings.TrimSpace(m.Form.Email),
			Password:  m.Form.Password,
		})

	case state.ProjectForm:
		draft := models.ProjectDraft{
			Name:        strings.TrimSpace(m.Form.ProjectName),
			Description: strings.TrimSpace(m.Form.ProjectDescription),
			Category:    strings.TrimSpace(m.Form.ProjectCategory),
			Tags:        models.NormalizeTags(strings.Split(m.Form.ProjectTags, ",")),
		}
		id := m.Form.EditingProjectID
		m.Ui.SetMode(state.NormalMode)
		return m, tea.Batch(tea.ClearScreen, m.saveProjectCmd(id, draft))

	case state.IssueForm:
		draft := models.IssueDraft{
			Title:       strings.TrimSpace(m.Form.IssueTitle),
			Description: m.Form.IssueDescription,
			Priority:    m.Form.IssuePriority,
			AssigneeID:  m.Form.IssueAssigneeID,
		}
		if m.Form.IssueDueDate != "" {
			if due, err := time.Parse("2006-01-02", m.Form.IssueDueDate); err == nil {
				draft.DueDate = &due
			}
		}
		id := m.Form.EditingIssueID
		var projectID int
		if project := m.Projects.Current(); project != nil {
			projectID = project.ID
		}
		m.Ui.SetMode(state.NormalMode)
		return m, tea.Batch(tea.ClearScreen, m.saveIssueCmd(projectID, id, draft))

	case state.AssignForm:
		id := m.Form.EditingIssueID
		assignee := m.Form.IssueAssigneeID
		m.Ui.SetMode(state.NormalMode)
		return m, tea.Batch(tea.ClearScreen, m.assignIssueCmd(id, assignee))

	case state.InviteForm:
		return m.submitInvite()

	case state.AcceptForm:
		token := strings.TrimSpace(m.Form.AcceptToken)
		m.Ui.SetMode(state.NormalMode)
		return m, tea.Batch(tea.ClearScreen,
			m.acceptInvitationCmd(token, m.Store.Session().Email))

	case state.FilterForm:
		m.filterOpts.Category = strings.TrimSpace(m.Form.FilterCategory)
		m.filterOpts.Tag = strings.TrimSpace(m.Form.FilterTag)
		m.filterOpts.Name = strings.TrimSpace(m.Form.FilterName)
		m.Ui.SetSelectedProject(0)
		m.Ui.SetMode(state.NormalMode)
		return m, tea.ClearScreen
	}

	m.Ui.SetMode(state.NormalMode)
	return m, tea.ClearScreen
}

func (m Model) submitInvite() (tea.Model, tea.Cmd) {
	if m.Flow == nil {
		m.Ui.SetMode(state.NormalMode)
		return m, tea.ClearScreen
	}
	req, err := m.Flow.Begin(m.Form.InviteEmail)
	if err != nil {
		// The form already validates the address; a busy flow is the
		// only way here.
		m.Notifications.Add(state.LevelInfo, "Invitation already in flight")
		m.Ui.SetMode(state.NormalMode)
		return m, tea.ClearScreen
	}
	m.Ui.SetMode(state.NormalMode)
	return m, tea.Batch(tea.ClearScreen, m.sendInvitationCmd(req))
}
