package huhforms

import "charm.land/huh/v2"

// ProjectForm creates a huh form for adding or editing a project.
// Tags are edited as a comma-separated string and split on submit.
func ProjectForm(
	name *string,
	description *string,
	category *string,
	tags *string,
	isEdit bool,
) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title("Project Name").
			Placeholder("Enter project name...").
			Value(name).
			Validate(required("Project name")),

		huh.NewText().
			Key("description").
			Title("Description (optional)").
			Placeholder("Enter project description...").
			CharLimit(500).
			Lines(3).
			Value(description),

		huh.NewInput().
			Key("category").
			Title("Category").
			Placeholder("e.g. Web, Mobile, Infra").
			Value(category),

		huh.NewInput().
			Key("tags").
			Title("Tags").
			Placeholder("comma, separated, tags").
			Value(tags),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(KeyMapWithShiftEnter())
}
