package state

import "github.com/trackdeck/trackdeck/internal/models"

// IssueState mirrors the opened project's issue collection. Status is
// mutated only through SetStatus, which the board's move engine drives.
type IssueState struct {
	issues     []models.Issue
	loading    bool
	err        string
	generation int
}

// NewIssueState creates an empty IssueState.
func NewIssueState() *IssueState {
	return &IssueState{}
}

// BeginFetch marks a fetch in flight and returns its generation token.
func (s *IssueState) BeginFetch() int {
	s.generation++
	s.loading = true
	s.err = ""
	return s.generation
}

// FinishFetch installs a fetched collection unless gen is stale.
func (s *IssueState) FinishFetch(gen int, issues []models.Issue) bool {
	if gen != s.generation {
		return false
	}
	s.loading = false
	s.err = ""
	s.issues = issues
	return true
}

// FailFetch records a fetch error unless gen is stale.
func (s *IssueState) FailFetch(gen int, msg string) bool {
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
func (s *IssueState) Seed(issues []models.Issue) bool {
	if len(s.issues) > 0 {
		return false
	}
	s.issues = issues
	return true
}

// Clear empties the collection, e.g. when leaving the project page.
func (s *IssueState) Clear() {
	s.generation++ // orphan any in-flight fetch
	s.issues = nil
	s.loading = false
	s.err = ""
}

// Get returns a pointer into the collection, nil when absent.
func (s *IssueState) Get(id int) *models.Issue {
	for i := range s.issues {
		if s.issues[i].ID == id {
			return &s.issues[i]
		}
	}
	return nil
}

// SetStatus mutates one issue's status in place. Only the board move
// engine calls this: optimistic apply and rollback.
func (s *IssueState) SetStatus(id int, status models.Status) bool {
	if issue := s.Get(id); issue != nil {
		issue.Status = status
		return true
	}
	return false
}

// Add appends a newly created issue.
func (s *IssueState) Add(issue models.Issue) {
	s.issues = append(s.issues, issue)
}

// Replace swaps the stored issue with the same id.
func (s *IssueState) Replace(issue models.Issue) {
	for i := range s.issues {
		if s.issues[i].ID == issue.ID {
			s.issues[i] = issue
			break
		}
	}
}

// Remove drops the issue with the given id.
func (s *IssueState) Remove(id int) {
	for i := range s.issues {
		if s.issues[i].ID == id {
			s.issues = append(s.issues[:i], s.issues[i+1:]...)
			break
		}
	}
}

// Issues returns the fetched collection in server order.
func (s *IssueState) Issues() []models.Issue {
	return s.issues
}

// Loading reports whether a fetch is in flight.
func (s *IssueState) Loading() bool {
	return s.loading
}

// Error returns the last fetch error, "" when none. Board move failures
// never land here; they have their own channel so a failed move cannot
// blank out a rendered board.
func (s *IssueState) Error() string {
	return s.err
}

// ClearError dismisses the last error.
func (s *IssueState) ClearError() {
	s.err = ""
}
