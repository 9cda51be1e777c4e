package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/trackdeck/trackdeck/internal/api"
	"github.com/trackdeck/trackdeck/internal/board"
	"github.com/trackdeck/trackdeck/internal/cache"
	"github.com/trackdeck/trackdeck/internal/config"
	"github.com/trackdeck/trackdeck/internal/filter"
	"github.com/trackdeck/trackdeck/internal/invite"
	"github.com/trackdeck/trackdeck/internal/models"
	"github.com/trackdeck/trackdeck/internal/session"
	appstate "github.com/trackdeck/trackdeck/internal/state"
	"github.com/trackdeck/trackdeck/internal/tui/components"
	"github.com/trackdeck/trackdeck/internal/tui/state"
	"github.com/trackdeck/trackdeck/internal/tui/theme"
)

// Model represents the application state for the TUI
type Model struct {
	Client *api.Client
	Store  *session.Store
	Cache  *cache.Cache
	Config *config.Config

	Projects     *appstate.ProjectState
	Issues       *appstate.IssueState
	Conversation *appstate.ConversationState
	Engine       *board.Engine
	Flow         *invite.Flow

	Ui            *state.UIState
	Notifications *state.NotificationState
	Drag          *state.DragState
	Form          *state.FormState

	// Input holds the chat and comment line buffers
	Input inputBuffers

	// openIssue is the detail of the ticket in IssueView, nil otherwise
	openIssue *models.IssueDetail

	// profile is the logged-in user's record, nil until fetched
	profile *api.Profile

	// filterOpts narrows the dashboard project list
	filterOpts filter.Options
}

// InitialModel creates the TUI model. The view starts at login unless a
// stored session is still valid.
func InitialModel(client *api.Client, store *session.Store, snapshots *cache.Cache, cfg *config.Config) Model {
	theme.Init(cfg.ColorScheme)
	components.InitStyles()

	issues := appstate.NewIssueState()

	m := Model{
		Client:        client,
		Store:         store,
		Cache:         snapshots,
		Config:        cfg,
		Projects:      appstate.NewProjectState(),
		Issues:        issues,
		Conversation:  appstate.NewConversationState(),
		Engine:        board.NewEngine(issues),
		Ui:            state.NewUIState(),
		Notifications: state.NewNotificationState(),
		Drag:          state.NewDragState(),
		Form:          state.NewFormState(),
	}

	if store.Authenticated() {
		m.Ui.SetView(state.DashboardView)
	} else {
		m.openLoginForm()
	}
	return m
}

// Init starts the first data loads.
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	if !m.Store.Authenticated() {
		return nil
	}
	// Cached snapshot first so the dashboard is never blank, then the
	// real fetch.
	return tea.Batch(
		m.loadCachedProjectsCmd(),
		m.fetchProjectsCmd(),
		m.fetchProfileCmd(),
	)
}

// displayName is what the status bar shows for the logged-in user.
func (m Model) displayName() string {
	if m.profile != nil {
		return m.profile.User().FullName()
	}
	return m.Store.Session().Email
}

// visibleProjects applies the dashboard filters to the project list.
func (m Model) visibleProjects() []models.Project {
	return filter.Apply(m.Projects.Projects(), m.filterOpts)
}

// selectedProject returns the project under the dashboard cursor.
func (m Model) selectedProject() *models.Project {
	visible := m.visibleProjects()
	i := m.Ui.SelectedProject()
	if i < 0 || i >= len(visible) {
		return nil
	}
	return &visible[i]
}

// columnIssues returns the cards of the given board column.
func (m Model) columnIssues(column int) []models.Issue {
	if column < 0 || column >= len(board.Columns) {
		return nil
	}
	return board.Grouped(m.Issues.Issues())[board.Columns[column]]
}

// selectedIssue returns the card under the board cursor.
func (m Model) selectedIssue() *models.Issue {
	cards := m.columnIssues(m.Ui.SelectedColumn())
	i := m.Ui.SelectedCard()
	if i < 0 || i >= len(cards) {
		return nil
	}
	return &cards[i]
}

// pendingIssueIDs lists cards with a move awaiting the server.
func (m Model) pendingIssueIDs() map[int]bool {
	pending := make(map[int]bool)
	for _, issue := range m.Issues.Issues() {
		if m.Engine.InFlight(issue.ID) {
			pending[issue.ID] = true
		}
	}
	return pending
}

func (m Model) filterSummary() string {
	var parts []string
	if m.filterOpts.Category != "" {
		parts = append(parts, "category:"+m.filterOpts.Category)
	}
	if m.filterOpts.Tag != "" {
		parts = append(parts, "tag:"+m.filterOpts.Tag)
	}
	if m.filterOpts.Name != "" {
		parts = append(parts, "name:"+m.filterOpts.Name)
	}
	return strings.Join(parts, " ")
}
