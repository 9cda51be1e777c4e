package api

import (
	"context"
	"fmt"

	"github.com/trackdeck/trackdeck/internal/models"
)

// ListComments fetches an issue's comments, oldest first.
func (c *Client) ListComments(ctx context.Context, issueID int) (comments []models.Comment, found bool, err error) {
	if err := c.get(ctx, fmt.Sprintf("/api/comments/issue/%d", issueID), &comments); err != nil {
		if IsKind(err, KindNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return comments, true, nil
}

// AddComment posts a comment on an issue.
func (c *Client) AddComment(ctx context.Context, issueID int, content string) (models.Comment, error) {
	var out models.Comment
	body := struct {
		Content string `json:"content"`
	}{Content: content}
	err := c.post(ctx, fmt.Sprintf("/api/comments/issue/%d", issueID), body, &out)
	return out, err
}
