package api

import (
	"context"
	"fmt"

	"github.com/trackdeck/trackdeck/internal/models"
)

// ListChatMessages fetches a project's chat history, oldest first.
func (c *Client) ListChatMessages(ctx context.Context, projectID int) (messages []models.ChatMessage, found bool, err error) {
	if err := c.get(ctx, fmt.Sprintf("/api/chats/project/%d", projectID), &messages); err != nil {
		if IsKind(err, KindNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return messages, true, nil
}

// SendChatMessage posts a message to the project chat.
func (c *Client) SendChatMessage(ctx context.Context, projectID int, content string) (models.ChatMessage, error) {
	var out models.ChatMessage
	body := struct {
		Content string `json:"content"`
	}{Content: content}
	err := c.post(ctx, fmt.Sprintf("/api/chats/project/%d/send", projectID), body, &out)
	return out, err
}
