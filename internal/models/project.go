package models

import "strings"

// Project is a project as returned by the list and detail endpoints.
// Tags are unique and keep their insertion order for display; matching
// against them is order-independent.
type Project struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Owner       User     `json:"owner"`
	Team        []User   `json:"team"`
	IssueCount  int      `json:"issueCount,omitempty"`
}

// HasTag reports whether any tag contains the given fragment,
// case-insensitively. An empty fragment matches every project.
func (p Project) HasTag(fragment string) bool {
	if fragment == "" {
		return true
	}
	fragment = strings.ToLower(fragment)
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), fragment) {
			return true
		}
	}
	return false
}

// ProjectDraft carries the writable fields for create and patch calls.
type ProjectDraft struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

// NormalizeTags trims, drops empties and de-duplicates tags while keeping
// the first occurrence's position.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tag)
	}
	return out
}
