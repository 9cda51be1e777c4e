package filter

import (
	"testing"

	"github.com/trackdeck/trackdeck/internal/models"
)

var projects = []models.Project{
	{ID: 1, Name: "Payments API", Category: "Web", Tags: []string{"api", "billing"}},
	{ID: 2, Name: "Mobile Wallet", Category: "Mobile", Tags: []string{"api", "wallet"}},
	{ID: 3, Name: "Mobile Games", Category: "Mobile", Tags: []string{"unity"}},
	{ID: 4, Name: "Data Pipeline", Category: "Infra", Tags: nil},
}

func ids(ps []models.Project) []int {
	out := make([]int, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestApply_NoFiltersReturnsAll(t *testing.T) {
	if got := Apply(projects, Options{}); len(got) != len(projects) {
		t.Errorf("got %d projects, want %d", len(got), len(projects))
	}
}

// TestApply_CategoryAndTag intersects the two filters.
func TestApply_CategoryAndTag(t *testing.T) {
	got := Apply(projects, Options{Category: "Mobile", Tag: "api"})
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("Mobile+api = %v, want [2]", ids(got))
	}
}

func TestApply_CategoryExact(t *testing.T) {
	got := Apply(projects, Options{Category: "Mobile"})
	if len(got) != 2 {
		t.Errorf("Mobile = %v, want [2 3]", ids(got))
	}
	// Category is an exact match, not a substring.
	if got := Apply(projects, Options{Category: "Mob"}); len(got) != 0 {
		t.Errorf("partial category matched %v", ids(got))
	}
}

func TestApply_TagCaseInsensitive(t *testing.T) {
	got := Apply(projects, Options{Tag: "API"})
	if len(got) != 2 {
		t.Errorf("tag API = %v, want [1 2]", ids(got))
	}
}

func TestApply_NameSubstring(t *testing.T) {
	got := Apply(projects, Options{Name: "mobile"})
	if len(got) != 2 {
		t.Errorf("name mobile = %v, want [2 3]", ids(got))
	}
}

func TestApply_NoMatches(t *testing.T) {
	got := Apply(projects, Options{Category: "Web", Tag: "unity"})
	if len(got) != 0 {
		t.Errorf("got %v, want none", ids(got))
	}
}
