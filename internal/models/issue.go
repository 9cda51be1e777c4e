package models

import "time"

// Issue is a board card as returned by the issue list endpoint.
// AssigneeID and ProjectOwnerID are carried so permission checks can run
// without an extra round trip.
type Issue struct {
	ID             int        `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Priority       Priority   `json:"priority"`
	Status         Status     `json:"status"`
	Assignee       *User      `json:"assignee,omitempty"`
	DueDate        *time.Time `json:"dueDate,omitempty"`
	CreatedByID    int        `json:"createdById"`
	ProjectID      int        `json:"projectId"`
	ProjectOwnerID int        `json:"projectOwnerId"`
}

// AssigneeID returns the assignee's user id, or 0 when unassigned.
func (i Issue) AssigneeID() int {
	if i.Assignee == nil {
		return 0
	}
	return i.Assignee.ID
}

// IssueDetail is the full ticket view returned by the detail endpoint.
// Names come denormalized so the view never joins against the member list.
type IssueDetail struct {
	ID             int        `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Priority       Priority   `json:"priority"`
	Status         Status     `json:"status"`
	AssigneeID     int        `json:"assigneeId"`
	AssigneeName   string     `json:"assigneeName"`
	DueDate        *time.Time `json:"dueDate,omitempty"`
	CreatedByID    int        `json:"createdById"`
	CreatedByName  string     `json:"createdByName"`
	ProjectID      int        `json:"projectId"`
	ProjectOwnerID int        `json:"projectOwnerId"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// IssueDraft carries the writable fields for create and update calls.
type IssueDraft struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    Priority   `json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	AssigneeID  int        `json:"assigneeId,omitempty"`
}
