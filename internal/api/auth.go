package api

import (
	"context"
	"net/http"
)

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the register request body.
type Registration struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// AuthResponse carries the bearer token issued on login or register.
type AuthResponse struct {
	AccessToken string `json:"accessToken"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, creds Credentials) (AuthResponse, error) {
	var out AuthResponse
	err := c.anon(ctx, http.MethodPost, "/auth/login", creds, &out)
	return out, err
}

// Register creates an account and returns its first bearer token.
func (c *Client) Register(ctx context.Context, reg Registration) (AuthResponse, error) {
	var out AuthResponse
	err := c.anon(ctx, http.MethodPost, "/auth/register", reg, &out)
	return out, err
}
