package huhforms

import "charm.land/huh/v2"

// InviteForm creates a huh form for inviting a member by email.
// Address validation runs in the form so a bad address never leaves it.
func InviteForm(email *string) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Key("email").
			Title("Invite Member").
			Description("The invitation is sent by email").
			Placeholder("teammate@example.com").
			Value(email).
			Validate(validateEmailField),
	))
}

// AcceptForm creates a huh form for pasting an invitation token.
func AcceptForm(token *string) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Key("token").
			Title("Accept Invitation").
			Description("Paste the token from the invitation email").
			Value(token).
			Validate(required("Token")),
	))
}

// FilterForm creates a huh form for the dashboard filters.
// Empty fields match everything.
func FilterForm(category, tag, name *string) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Key("category").
			Title("Category").
			Placeholder("exact match, empty for all").
			Value(category),

		huh.NewInput().
			Key("tag").
			Title("Tag").
			Placeholder("substring match").
			Value(tag),

		huh.NewInput().
			Key("name").
			Title("Name").
			Placeholder("substring match").
			Value(name),
	))
}
