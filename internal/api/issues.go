package api

import (
	"context"
	"fmt"

	"github.com/trackdeck/trackdeck/internal/models"
)

// ListIssues fetches all issues for a project. A 404 means the board is
// missing rather than empty; found makes that explicit so callers don't
// infer it from message text.
func (c *Client) ListIssues(ctx context.Context, projectID int) (issues []models.Issue, found bool, err error) {
	if err := c.get(ctx, fmt.Sprintf("/api/issues/project/%d", projectID), &issues); err != nil {
		if IsKind(err, KindNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return issues, true, nil
}

// GetIssue fetches a single issue in its board shape.
func (c *Client) GetIssue(ctx context.Context, id int) (models.Issue, error) {
	var out models.Issue
	err := c.get(ctx, fmt.Sprintf("/api/issues/%d", id), &out)
	return out, err
}

// GetIssueDetail fetches the full ticket view with denormalized names.
func (c *Client) GetIssueDetail(ctx context.Context, id int) (models.IssueDetail, error) {
	var out models.IssueDetail
	err := c.get(ctx, fmt.Sprintf("/api/issues/%d/detail", id), &out)
	return out, err
}

// CreateIssue creates an issue inside a project; new issues start in
// TO_DO on the server.
func (c *Client) CreateIssue(ctx context.Context, projectID int, draft models.IssueDraft) (models.Issue, error) {
	var out models.Issue
	err := c.post(ctx, fmt.Sprintf("/api/issues/%d", projectID), draft, &out)
	return out, err
}

// UpdateIssue replaces an issue's writable fields.
func (c *Client) UpdateIssue(ctx context.Context, id int, draft models.IssueDraft) (models.Issue, error) {
	var out models.Issue
	err := c.put(ctx, fmt.Sprintf("/api/issues/%d", id), draft, &out)
	return out, err
}

// DeleteIssue removes an issue. Creator or project owner only; the
// server enforces it.
func (c *Client) DeleteIssue(ctx context.Context, id int) error {
	return c.del(ctx, fmt.Sprintf("/api/issues/%d", id))
}

// AssignIssue sets the issue's assignee.
func (c *Client) AssignIssue(ctx context.Context, issueID, userID int) (models.Issue, error) {
	var out models.Issue
	err := c.put(ctx, fmt.Sprintf("/api/issues/%d/assignee/%d", issueID, userID), nil, &out)
	return out, err
}

// UpdateIssueStatus confirms a board move with the server. This is the
// only way status changes; the caller has already applied the value
// optimistically and rolls it back if this fails.
func (c *Client) UpdateIssueStatus(ctx context.Context, issueID int, status models.Status) (models.Issue, error) {
	var out models.Issue
	err := c.put(ctx, fmt.Sprintf("/api/issues/%d/status/%s", issueID, status), nil, &out)
	return out, err
}
