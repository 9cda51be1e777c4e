package api

import (
	"context"

	"github.com/trackdeck/trackdeck/internal/models"
)

// Profile is the authenticated user's own record.
type Profile struct {
	UserID    int    `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// GetProfile fetches the current user's profile.
func (c *Client) GetProfile(ctx context.Context) (Profile, error) {
	var out Profile
	err := c.get(ctx, "/api/users/profile", &out)
	return out, err
}

// User converts the profile to the shared member representation.
func (p Profile) User() models.User {
	return models.User{
		ID:        p.UserID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
	}
}
