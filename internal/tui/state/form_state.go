package state

import (
	"charm.land/huh/v2"

	"github.com/trackdeck/trackdeck/internal/models"
)

// FormKind names which form is currently active.
type FormKind int

const (
	NoForm FormKind = iota
	LoginForm
	RegisterForm
	ProjectForm
	IssueForm
	InviteForm
	AssignForm
	FilterForm
	AcceptForm
)

// FormState holds the active huh form and the draft values its fields
// bind to. Forms write through the pointers, so submit handlers read
// straight from here.
type FormState struct {
	Kind FormKind
	Form *huh.Form

	// Auth
	Email     string
	Password  string
	FirstName string
	LastName  string

	// Project
	ProjectName        string
	ProjectDescription string
	ProjectCategory    string
	ProjectTags        string // comma-separated in the form
	EditingProjectID   int    // 0 when creating

	// Issue
	IssueTitle       string
	IssueDescription string
	IssuePriority    models.Priority
	IssueDueDate     string // YYYY-MM-DD, empty for none
	IssueAssigneeID  int
	EditingIssueID   int // 0 when creating

	// Invitation
	InviteEmail string

	// Accept invitation
	AcceptToken string

	// Dashboard filters
	FilterCategory string
	FilterTag      string
	FilterName     string
}

// NewFormState creates an empty FormState.
func NewFormState() *FormState {
	return &FormState{}
}

// Reset drops the active form and all draft values except the filters,
// which persist until explicitly cleared.
func (s *FormState) Reset() {
	category, tag, name := s.FilterCategory, s.FilterTag, s.FilterName
	*s = FormState{
		FilterCategory: category,
		FilterTag:      tag,
		FilterName:     name,
	}
}
