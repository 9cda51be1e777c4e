package models

import "time"

// Comment is a single comment on an issue.
type Comment struct {
	ID        int       `json:"id"`
	IssueID   int       `json:"issueId"`
	UserID    int       `json:"userId"`
	UserName  string    `json:"userName"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdDateTime"`
}
