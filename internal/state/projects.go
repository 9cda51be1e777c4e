// Package state holds the client's normalized view of server data.
// Three independent slices (projects, issues, conversation) each track a
// loading flag, the last error, and the fetched collection; each is
// mutated only by the operations it defines. A generation counter guards
// against stale async responses: a fetch completion carrying an old
// generation is discarded, so a view that navigated away never has a
// late response applied to state it no longer owns.
package state

import "github.com/trackdeck/trackdeck/internal/models"

// ProjectState mirrors the server's project collection plus the
// currently opened project.
type ProjectState struct {
	projects   []models.Project
	current    *models.Project
	loading    bool
	err        string
	generation int
}

// NewProjectState creates an empty ProjectState.
func NewProjectState() *ProjectState {
	return &ProjectState{}
}

// BeginFetch marks a fetch in flight and returns its generation token.
func (s *ProjectState) BeginFetch() int {
	s.generation++
	s.loading = true
	s.err = ""
	return s.generation
}

// FinishFetch installs a fetched collection. Returns false (and changes
// nothing) when gen is stale.
func (s *ProjectState) FinishFetch(gen int, projects []models.Project) bool {
	if gen != s.generation {
		return false
	}
	s.loading = false
	s.err = ""
	s.projects = projects
	return true
}

// FailFetch records a fetch error. Stale generations are discarded.
func (s *ProjectState) FailFetch(gen int, msg string) bool {
	if gen != s.generation {
		return false
	}
	s.loading = false
	s.err = msg
	return true
}

// Seed installs a snapshot read from disk. It only fills an empty
// collection and leaves the generation and loading flag alone, so a
// server fetch already in flight still lands on top of it.
func (s *ProjectState) Seed(projects []models.Project) bool {
	if len(s.projects) > 0 {
		return false
	}
	s.projects = projects
	return true
}

// SetCurrent installs the opened project.
func (s *ProjectState) SetCurrent(p models.Project) {
	s.current = &p
}

// ClearCurrent drops the opened project, e.g. when navigating back.
func (s *ProjectState) ClearCurrent() {
	s.current = nil
}

// Current returns the opened project, or nil on the dashboard.
func (s *ProjectState) Current() *models.Project {
	return s.current
}

// Add appends a newly created project.
func (s *ProjectState) Add(p models.Project) {
	s.projects = append(s.projects, p)
}

// Replace swaps the stored project with the same id.
func (s *ProjectState) Replace(p models.Project) {
	for i := range s.projects {
		if s.projects[i].ID == p.ID {
			s.projects[i] = p
			break
		}
	}
	if s.current != nil && s.current.ID == p.ID {
		s.current = &p
	}
}

// Remove drops the project with the given id.
func (s *ProjectState) Remove(id int) {
	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			break
		}
	}
	if s.current != nil && s.current.ID == id {
		s.current = nil
	}
}

// Projects returns the fetched collection.
func (s *ProjectState) Projects() []models.Project {
	return s.projects
}

// Loading reports whether a fetch is in flight.
func (s *ProjectState) Loading() bool {
	return s.loading
}

// Error returns the last fetch error, "" when none.
func (s *ProjectState) Error() string {
	return s.err
}

// ClearError dismisses the last error.
func (s *ProjectState) ClearError() {
	s.err = ""
}
