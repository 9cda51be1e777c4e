package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/trackdeck/trackdeck/internal/models"
)

// ListProjects fetches the user's projects, optionally narrowed by
// category and tag on the server side. found is false when the server
// reports the collection itself missing (404), which is distinct from an
// empty list.
func (c *Client) ListProjects(ctx context.Context, category, tag string) (projects []models.Project, found bool, err error) {
	path := "/api/projects"
	query := url.Values{}
	if category != "" {
		query.Set("category", category)
	}
	if tag != "" {
		query.Set("tag", tag)
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	if err := c.get(ctx, path, &projects); err != nil {
		if IsKind(err, KindNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return projects, true, nil
}

// GetProject fetches one project with its team and tags.
func (c *Client) GetProject(ctx context.Context, id int) (models.Project, error) {
	var out models.Project
	err := c.get(ctx, fmt.Sprintf("/api/projects/%d", id), &out)
	return out, err
}

// CreateProject creates a project owned by the current user.
func (c *Client) CreateProject(ctx context.Context, draft models.ProjectDraft) (models.Project, error) {
	var out models.Project
	err := c.post(ctx, "/api/projects", draft, &out)
	return out, err
}

// UpdateProject patches a project's writable fields.
func (c *Client) UpdateProject(ctx context.Context, id int, draft models.ProjectDraft) (models.Project, error) {
	var out models.Project
	err := c.patch(ctx, fmt.Sprintf("/api/projects/%d", id), draft, &out)
	return out, err
}

// DeleteProject removes a project. Owner only; the server enforces it.
func (c *Client) DeleteProject(ctx context.Context, id int) error {
	return c.del(ctx, fmt.Sprintf("/api/projects/%d", id))
}
