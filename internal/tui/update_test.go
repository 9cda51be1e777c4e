package tui

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/trackdeck/trackdeck/internal/config"
	"github.com/trackdeck/trackdeck/internal/config/colors"
	"github.com/trackdeck/trackdeck/internal/models"
	"github.com/trackdeck/trackdeck/internal/session"
	"github.com/trackdeck/trackdeck/internal/tui/state"
)

// testUserID is the identity every test session carries. Seeded issues
// use it as creator so permission checks pass unless a test says
// otherwise.
const testUserID = 7

// setupTestModel creates an authenticated Model with test data. No API
// client or cache is needed for pure state transitions: commands are
// never executed, only returned.
func setupTestModel(t *testing.T, projects []models.Project, issues []models.Issue) Model {
	t.Helper()

	cfg := &config.Config{
		KeyMappings: config.DefaultKeyMappings(),
		ColorScheme: *colors.Default(),
	}

	store := session.NewStore(t.TempDir())
	if err := store.Set(mintToken(t, testUserID, "ada@example.com")); err != nil {
		t.Fatalf("storing test session: %v", err)
	}

	m := InitialModel(nil, store, nil, cfg)

	if projects != nil {
		gen := m.Projects.BeginFetch()
		m.Projects.FinishFetch(gen, projects)
	}
	if issues != nil {
		gen := m.Issues.BeginFetch()
		m.Issues.FinishFetch(gen, issues)
	}
	return m
}

// mintToken signs a token shaped like the backend's: userId claim,
// email subject, one hour expiry.
func mintToken(t *testing.T, userID int, email string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
		"sub":    email,
		"exp":    jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}
	return signed
}

func keyPress(s string) tea.KeyMsg {
	r := []rune(s)[0]
	return tea.KeyPressMsg(tea.Key{Text: s, Code: r})
}

func testProjects() []models.Project {
	return []models.Project{
		{ID: 1, Name: "Apollo", Category: "Web", Owner: models.User{ID: testUserID}},
		{ID: 2, Name: "Borealis", Category: "Mobile", Owner: models.User{ID: 99}},
	}
}

func testIssues() []models.Issue {
	return []models.Issue{
		{ID: 10, Title: "First", Status: models.StatusToDo, CreatedByID: testUserID, ProjectID: 1, ProjectOwnerID: testUserID},
		{ID: 11, Title: "Second", Status: models.StatusToDo, CreatedByID: testUserID, ProjectID: 1, ProjectOwnerID: testUserID},
		{ID: 12, Title: "Third", Status: models.StatusInProgress, CreatedByID: testUserID, ProjectID: 1, ProjectOwnerID: testUserID},
	}
}

// openBoard puts the model on the board of project 1, the way
// handleOpenProject would, without issuing fetch commands.
func openBoard(m *Model) {
	projects := m.Projects.Projects()
	m.Projects.SetCurrent(projects[0])
	m.Ui.ResetBoardCursor()
	m.Ui.SetView(state.BoardView)
}

// TestInitialModel_StartsAtDashboardWhenAuthenticated ensures a stored
// session skips the login screen.
func TestInitialModel_StartsAtDashboardWhenAuthenticated(t *testing.T) {
	m := setupTestModel(t, nil, nil)

	if m.Ui.View() != state.DashboardView {
		t.Errorf("View = %v, want DashboardView", m.Ui.View())
	}
	if m.Ui.Mode() != state.NormalMode {
		t.Errorf("Mode = %v, want NormalMode", m.Ui.Mode())
	}
}

// TestDashboardNavigation_Bounds ensures j/k clamp at the list edges.
// Edge case: k at the first project and j at the last must not move.
func TestDashboardNavigation_Bounds(t *testing.T) {
	m := setupTestModel(t, testProjects(), nil)

	newModel, _ := m.Update(keyPress("k"))
	m = newModel.(Model)
	if m.Ui.SelectedProject() != 0 {
		t.Errorf("SelectedProject after k at top = %d, want 0", m.Ui.SelectedProject())
	}

	newModel, _ = m.Update(keyPress("j"))
	m = newModel.(Model)
	if m.Ui.SelectedProject() != 1 {
		t.Errorf("SelectedProject after j = %d, want 1", m.Ui.SelectedProject())
	}

	newModel, _ = m.Update(keyPress("j"))
	m = newModel.(Model)
	if m.Ui.SelectedProject() != 1 {
		t.Errorf("SelectedProject after j at bottom = %d, want 1 (clamped)", m.Ui.SelectedProject())
	}
}

// TestBoardNavigation_ColumnChangeResetsCard ensures moving between
// columns puts the cursor back on the top card.
func TestBoardNavigation_ColumnChangeResetsCard(t *testing.T) {
	m := setupTestModel(t, testProjects(), testIssues())
	openBoard(&m)

	newModel, _ := m.Update(keyPress("j"))
	m = newModel.(Model)
	if m.Ui.SelectedCard() != 1 {
		t.Fatalf("SelectedCard after j = %d, want 1", m.Ui.SelectedCard())
	}

	newModel, _ = m.Update(keyPress("l"))
	m = newModel.(Model)
	if m.Ui.SelectedColumn() != 1 {
		t.Errorf("SelectedColumn after l = %d, want 1", m.Ui.SelectedColumn())
	}
	if m.Ui.SelectedCard() != 0 {
		t.Errorf("SelectedCard after column change = %d, want 0", m.Ui.SelectedCard())
	}
}

// TestBoardNavigation_LastColumnClamps ensures l at the Done column is
// a no-op rather than walking off the board.
func TestBoardNavigation_LastColumnClamps(t *testing.T) {
	m := setupTestModel(t, testProjects(), testIssues())
	openBoard(&m)
	m.Ui.SetSelectedColumn(2)

	newModel, _ := m.Update(keyPress("l"))
	m = newModel.(Model)
	if m.Ui.SelectedColumn() != 2 {
		t.Errorf("SelectedColumn after l at last column = %d, want 2", m.Ui.SelectedColumn())
	}
}

// TestHelpMode_Toggle ensures ? opens the shortcut sheet and ? or esc
// closes it again.
func TestHelpMode_Toggle(t *testing.T) {
	m := setupTestModel(t, testProjects(), nil)

	newModel, _ := m.Update(keyPress("?"))
	m = newModel.(Model)
	if m.Ui.Mode() != state.HelpMode {
		t.Fatalf("Mode after ? = %v, want HelpMode", m.Ui.Mode())
	}

	newModel, _ = m.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape}))
	m = newModel.(Model)
	if m.Ui.Mode() != state.NormalMode {
		t.Errorf("Mode after esc in help = %v, want NormalMode", m.Ui.Mode())
	}
}

// TestSessionExpired_DropsToLogin ensures a 401-triggered message clears
// project state and lands on the login form with an error banner.
func TestSessionExpired_DropsToLogin(t *testing.T) {
	m := setupTestModel(t, testProjects(), testIssues())
	openBoard(&m)

	newModel, _ := m.Update(SessionExpiredMsg{})
	m = newModel.(Model)

	if m.Ui.View() != state.LoginView {
		t.Errorf("View after session expiry = %v, want LoginView", m.Ui.View())
	}
	if m.Ui.Mode() != state.FormMode {
		t.Errorf("Mode after session expiry = %v, want FormMode (login form)", m.Ui.Mode())
	}
	if m.Projects.Current() != nil {
		t.Error("Current project should be cleared on session expiry")
	}
	if len(m.Issues.Issues()) != 0 {
		t.Error("Issues should be cleared on session expiry")
	}
	if !m.Notifications.HasAny() {
		t.Error("Expected a session-expired notification")
	}
}

// TestStaleProjectsResult_Discarded ensures a fetch result from an old
// generation never overwrites newer data.
// Edge case: refresh fired while an older fetch was still in flight.
func TestStaleProjectsResult_Discarded(t *testing.T) {
	m := setupTestModel(t, nil, nil)

	oldGen := m.Projects.BeginFetch()
	newGen := m.Projects.BeginFetch()

	newModel, _ := m.Update(projectsLoadedMsg{gen: newGen, projects: testProjects()})
	m = newModel.(Model)
	if len(m.Projects.Projects()) != 2 {
		t.Fatalf("Projects after current fetch = %d, want 2", len(m.Projects.Projects()))
	}

	newModel, _ = m.Update(projectsLoadedMsg{gen: oldGen, projects: []models.Project{{ID: 9, Name: "Stale"}}})
	m = newModel.(Model)
	if got := m.Projects.Projects(); len(got) != 2 || got[0].Name != "Apollo" {
		t.Errorf("Stale fetch result overwrote current projects: %+v", got)
	}
}

// TestCachedProjects_NeverOverwriteLiveData ensures the disk snapshot
// only seeds an empty dashboard.
// Edge case: server response lands before the cache read finishes.
func TestCachedProjects_NeverOverwriteLiveData(t *testing.T) {
	m := setupTestModel(t, testProjects(), nil)

	cached := []models.Project{{ID: 50, Name: "FromDisk"}}
	newModel, _ := m.Update(cachedProjectsMsg{projects: cached, ok: true})
	m = newModel.(Model)

	if got := m.Projects.Projects(); len(got) != 2 || got[0].Name != "Apollo" {
		t.Errorf("Snapshot overwrote live projects: %+v", got)
	}
}

// TestCachedProjects_ServerRefreshLandsAfterSeed ensures seeding from
// the snapshot does not orphan the fetch that was already in flight.
// Edge case: the disk read completes before the network response.
func TestCachedProjects_ServerRefreshLandsAfterSeed(t *testing.T) {
	m := setupTestModel(t, nil, nil)

	gen := m.Projects.BeginFetch()

	cached := []models.Project{{ID: 50, Name: "FromDisk"}}
	newModel, _ := m.Update(cachedProjectsMsg{projects: cached, ok: true})
	m = newModel.(Model)
	if got := m.Projects.Projects(); len(got) != 1 || got[0].Name != "FromDisk" {
		t.Fatalf("Snapshot did not seed the empty dashboard: %+v", got)
	}

	newModel, _ = m.Update(projectsLoadedMsg{gen: gen, projects: testProjects()})
	m = newModel.(Model)
	if got := m.Projects.Projects(); len(got) != 2 || got[0].Name != "Apollo" {
		t.Errorf("Server refresh was discarded after the seed: %+v", got)
	}
}

// TestCachedIssues_ServerRefreshLandsAfterSeed is the board variant:
// the snapshot draws first, the fetch in flight still replaces it.
func TestCachedIssues_ServerRefreshLandsAfterSeed(t *testing.T) {
	m := setupTestModel(t, testProjects(), nil)
	openBoard(&m)

	gen := m.Issues.BeginFetch()

	cached := []models.Issue{{ID: 90, Title: "FromDisk", Status: models.StatusToDo, ProjectID: 1}}
	newModel, _ := m.Update(cachedIssuesMsg{projectID: 1, issues: cached, ok: true})
	m = newModel.(Model)
	if got := m.Issues.Issues(); len(got) != 1 || got[0].Title != "FromDisk" {
		t.Fatalf("Snapshot did not seed the empty board: %+v", got)
	}

	newModel, _ = m.Update(issuesLoadedMsg{projectID: 1, gen: gen, issues: testIssues()})
	m = newModel.(Model)
	if got := m.Issues.Issues(); len(got) != 3 || got[0].ID != 10 {
		t.Errorf("Server refresh was discarded after the seed: %+v", got)
	}
}

// TestFilter_NarrowsDashboard ensures active filter options shrink the
// visible list and the cursor maps into the filtered slice.
func TestFilter_NarrowsDashboard(t *testing.T) {
	m := setupTestModel(t, testProjects(), nil)
	m.filterOpts.Category = "Mobile"

	visible := m.visibleProjects()
	if len(visible) != 1 || visible[0].Name != "Borealis" {
		t.Fatalf("visibleProjects() = %+v, want only Borealis", visible)
	}

	m.Ui.SetSelectedProject(0)
	if got := m.selectedProject(); got == nil || got.Name != "Borealis" {
		t.Errorf("selectedProject() = %+v, want Borealis", got)
	}
}

// TestOpenProject_EntersBoard ensures enter on a project switches views,
// clears old board data and issues the fetch commands.
func TestOpenProject_EntersBoard(t *testing.T) {
	m := setupTestModel(t, testProjects(), testIssues())

	newModel, cmd := m.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter}))
	m = newModel.(Model)

	if m.Ui.View() != state.BoardView {
		t.Errorf("View after enter = %v, want BoardView", m.Ui.View())
	}
	if current := m.Projects.Current(); current == nil || current.ID != 1 {
		t.Errorf("Current project = %+v, want ID 1", current)
	}
	if len(m.Issues.Issues()) != 0 {
		t.Error("Issues from the previous project should be cleared")
	}
	if cmd == nil {
		t.Error("Opening a project should return fetch commands")
	}
}

// TestBoardBack_ReturnsToDashboard ensures esc leaves the board and
// drops its per-project state.
func TestBoardBack_ReturnsToDashboard(t *testing.T) {
	m := setupTestModel(t, testProjects(), testIssues())
	openBoard(&m)

	newModel, _ := m.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape}))
	m = newModel.(Model)

	if m.Ui.View() != state.DashboardView {
		t.Errorf("View after esc = %v, want DashboardView", m.Ui.View())
	}
	if m.Projects.Current() != nil {
		t.Error("Current project should be cleared when leaving the board")
	}
}
