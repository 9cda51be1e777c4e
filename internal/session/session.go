package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Sentinel errors for session handling
var (
	// ErrNoToken indicates no token is stored; the user must log in.
	ErrNoToken = errors.New("no session token")

	// ErrMalformedToken indicates the stored token cannot be decoded.
	ErrMalformedToken = errors.New("malformed session token")

	// ErrExpired indicates the token's expiry is in the past.
	ErrExpired = errors.New("session expired")
)

// claims is the token payload the backend issues. The subject holds the
// user's email.
type claims struct {
	UserID int `json:"userId"`
	jwt.RegisteredClaims
}

// Session is the authenticated identity derived from the bearer token.
// It is read-only: created on login/register, cleared on logout or 401,
// never mutated otherwise.
type Session struct {
	UserID    int
	Email     string
	ExpiresAt time.Time
}

// Decode derives a Session from a raw bearer token. The signature is not
// verified here: the server is the authority on token validity, the
// client only needs identity and expiry for display and UX gating.
func Decode(token string) (Session, error) {
	if token == "" {
		return Session{}, ErrNoToken
	}

	var c claims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &c); err != nil {
		return Session{}, ErrMalformedToken
	}

	s := Session{
		UserID: c.UserID,
		Email:  c.Subject,
	}
	if c.ExpiresAt != nil {
		s.ExpiresAt = c.ExpiresAt.Time
	}
	return s, nil
}

// Valid reports whether the session carries an identity that has not
// expired. A zero session is never valid.
func (s Session) Valid() bool {
	if s.UserID == 0 {
		return false
	}
	if s.ExpiresAt.IsZero() {
		return false
	}
	return time.Now().Before(s.ExpiresAt)
}
