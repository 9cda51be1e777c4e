package session

import "github.com/trackdeck/trackdeck/internal/models"

// Permission predicates. These gate which actions the UI offers; the
// server re-enforces every one of them and is the sole authority. A zero
// or expired session fails every check.

// IsCreator reports whether the session's user created the entity.
func (s Session) IsCreator(createdByID int) bool {
	return s.Valid() && s.UserID == createdByID
}

// IsProjectOwner reports whether the session's user owns the project.
func (s Session) IsProjectOwner(ownerID int) bool {
	return s.Valid() && s.UserID == ownerID
}

// IsAssignee reports whether the issue is assigned to the session's user.
func (s Session) IsAssignee(issue models.Issue) bool {
	return s.Valid() && issue.AssigneeID() != 0 && s.UserID == issue.AssigneeID()
}

// CanAssign reports whether the user may change the issue's assignee:
// the issue's creator or the owner of its project.
func (s Session) CanAssign(issue models.Issue) bool {
	return s.IsCreator(issue.CreatedByID) || s.IsProjectOwner(issue.ProjectOwnerID)
}

// CanUpdateStatus reports whether the user may move the issue between
// columns: the assignee, the creator, or the project owner.
func (s Session) CanUpdateStatus(issue models.Issue) bool {
	return s.IsAssignee(issue) || s.IsCreator(issue.CreatedByID) || s.IsProjectOwner(issue.ProjectOwnerID)
}

// CanDelete reports whether the user may delete the issue: its creator
// or the project owner.
func (s Session) CanDelete(issue models.Issue) bool {
	return s.IsCreator(issue.CreatedByID) || s.IsProjectOwner(issue.ProjectOwnerID)
}
