package models

import "strings"

// User is a member reference as returned inside project and issue payloads.
type User struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email,omitempty"`
}

// FullName joins the user's first and last name for display.
func (u User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Email
	}
	return name
}

// Initials returns up to two uppercase initials for avatar-style display.
func (u User) Initials() string {
	var b strings.Builder
	for _, part := range []string{u.FirstName, u.LastName} {
		for _, r := range part {
			b.WriteRune(r)
			break
		}
	}
	if b.Len() == 0 {
		return "??"
	}
	return strings.ToUpper(b.String())
}
