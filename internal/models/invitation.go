package models

import "time"

// InvitationDetails describes a pending invitation, fetched by its opaque
// token before the user decides to accept.
type InvitationDetails struct {
	Email       string     `json:"email"`
	ProjectName string     `json:"projectName"`
	InviterName string     `json:"inviterName"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
}

// InvitationAcceptance is the outcome of accepting an invitation.
// UserExists distinguishes "added to the project" from "needs to register
// first".
type InvitationAcceptance struct {
	ProjectName string `json:"projectName"`
	UserExists  bool   `json:"userExists"`
}
