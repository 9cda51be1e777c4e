package huhforms

import (
	"errors"
	"time"

	"charm.land/huh/v2"

	"github.com/trackdeck/trackdeck/internal/models"
)

// IssueForm creates a huh form for adding/editing an issue.
// The form uses pointers to update values in place. The assignee select
// is only shown when the caller may assign and the team is known.
func IssueForm(
	title *string,
	description *string,
	priority *models.Priority,
	dueDate *string,
	assigneeID *int,
	team []models.User,
	canAssign bool,
) *huh.Form {
	var fields []huh.Field

	fields = append(fields,
		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder("Enter issue title...").
			Value(title).
			Validate(required("Title")),

		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("Enter issue description (markdown ok)...").
			CharLimit(2000).
			Lines(5).
			Value(description),
	)

	var priorityOptions []huh.Option[models.Priority]
	for _, p := range models.Priorities {
		priorityOptions = append(priorityOptions, huh.NewOption(p.Label(), p))
	}
	fields = append(fields,
		huh.NewSelect[models.Priority]().
			Key("priority").
			Title("Priority").
			Options(priorityOptions...).
			Value(priority),
	)

	fields = append(fields,
		huh.NewInput().
			Key("dueDate").
			Title("Due Date (optional)").
			Placeholder("YYYY-MM-DD").
			Value(dueDate).
			Validate(validateDueDate),
	)

	if canAssign && len(team) > 0 {
		options := []huh.Option[int]{huh.NewOption("Unassigned", 0)}
		for _, member := range team {
			options = append(options, huh.NewOption(member.FullName(), member.ID))
		}
		fields = append(fields,
			huh.NewSelect[int]().
				Key("assignee").
				Title("Assignee").
				Options(options...).
				Value(assigneeID),
		)
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(KeyMapWithShiftEnter())
}

// AssignForm creates a standalone assignee picker for the A shortcut.
func AssignForm(assigneeID *int, team []models.User) *huh.Form {
	options := []huh.Option[int]{huh.NewOption("Unassigned", 0)}
	for _, member := range team {
		options = append(options, huh.NewOption(member.FullName(), member.ID))
	}

	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[int]().
			Key("assignee").
			Title("Assign To").
			Options(options...).
			Value(assigneeID),
	))
}

func validateDueDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return errors.New("use YYYY-MM-DD")
	}
	return nil
}
