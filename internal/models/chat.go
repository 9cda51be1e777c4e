package models

import "time"

// ChatMessage is a single message in a project's team chat.
type ChatMessage struct {
	ID        int       `json:"id"`
	ProjectID int       `json:"projectId"`
	Sender    User      `json:"sender"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
