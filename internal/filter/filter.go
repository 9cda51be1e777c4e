// Package filter narrows the project list shown on the dashboard.
package filter

import (
	"strings"

	"github.com/trackdeck/trackdeck/internal/models"
)

// Options holds the active dashboard filters. Empty fields match
// everything; set fields are ANDed together.
type Options struct {
	Category string
	Tag      string
	Name     string
}

// Active reports whether any filter is set.
func (o Options) Active() bool {
	return o.Category != "" || o.Tag != "" || o.Name != ""
}

// Apply returns the projects matching every set filter: exact category,
// case-insensitive tag substring, case-insensitive name substring.
func Apply(projects []models.Project, opts Options) []models.Project {
	if !opts.Active() {
		return projects
	}
	matched := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if opts.Category != "" && p.Category != opts.Category {
			continue
		}
		if opts.Tag != "" && !p.HasTag(opts.Tag) {
			continue
		}
		if opts.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(opts.Name)) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}
