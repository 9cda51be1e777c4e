package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/trackdeck/trackdeck/internal/models"
)

// InvitationRequest is the send-invitation body. ForceResend re-issues
// an invitation the server already holds as pending for this email and
// project.
type InvitationRequest struct {
	Email       string `json:"email"`
	ProjectID   int    `json:"projectId"`
	ForceResend bool   `json:"forceResend"`
}

// SendInvitation emails a project invitation. A duplicate pending
// invitation surfaces as KindConflict with ConflictDetails; use
// Conflict(err) to extract them.
func (c *Client) SendInvitation(ctx context.Context, req InvitationRequest) error {
	return c.post(ctx, "/api/invitations/send", req, nil)
}

// GetInvitationDetails fetches what an invitation token points to.
// Unauthenticated: the recipient may not have an account yet.
func (c *Client) GetInvitationDetails(ctx context.Context, token string) (models.InvitationDetails, error) {
	var out models.InvitationDetails
	err := c.anon(ctx, http.MethodGet, "/api/invitations/details/"+token, nil, &out)
	return out, err
}

// AcceptInvitation accepts an invitation on behalf of userEmail.
// Unauthenticated for the same reason as GetInvitationDetails.
func (c *Client) AcceptInvitation(ctx context.Context, token, userEmail string) (models.InvitationAcceptance, error) {
	var out models.InvitationAcceptance
	body := struct {
		UserEmail string `json:"userEmail"`
	}{UserEmail: userEmail}
	err := c.anon(ctx, http.MethodPost, "/api/invitations/accept/"+token, body, &out)
	return out, err
}

// ProcessPendingInvitations attaches any invitations addressed to the
// logged-in user's email. Called right after login/register.
func (c *Client) ProcessPendingInvitations(ctx context.Context) (int, error) {
	var out struct {
		Processed int `json:"processed"`
	}
	if err := c.post(ctx, "/api/invitations/process-pending", nil, &out); err != nil {
		return 0, fmt.Errorf("processing pending invitations: %w", err)
	}
	return out.Processed, nil
}
