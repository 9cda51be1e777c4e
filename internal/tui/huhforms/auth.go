package huhforms

import (
	"errors"

	"charm.land/huh/v2"

	"github.com/trackdeck/trackdeck/internal/invite"
)

// LoginForm creates a huh form for signing in.
// The form uses pointers to update values in place.
func LoginForm(email, password *string) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("email").
			Title("Email").
			Placeholder("you@example.com").
			Value(email).
			Validate(validateEmailField),

		huh.NewInput().
			Key("password").
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(password),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}

// RegisterForm creates a huh form for creating an account.
func RegisterForm(firstName, lastName, email, password *string) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("firstName").
			Title("First Name").
			Value(firstName).
			Validate(required("First name")),

		huh.NewInput().
			Key("lastName").
			Title("Last Name").
			Value(lastName).
			Validate(required("Last name")),

		huh.NewInput().
			Key("email").
			Title("Email").
			Placeholder("you@example.com").
			Value(email).
			Validate(validateEmailField),

		huh.NewInput().
			Key("password").
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(password).
			Validate(func(s string) error {
				if len(s) < 8 {
					return errors.New("password must be at least 8 characters")
				}
				return nil
			}),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}

func validateEmailField(s string) error {
	if !invite.ValidateEmail(s) {
		return errors.New("enter a valid email address")
	}
	return nil
}

func required(name string) func(string) error {
	return func(s string) error {
		if s == "" {
			return errors.New(name + " is required")
		}
		return nil
	}
}
