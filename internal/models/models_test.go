package models

import "testing"

// TestParseStatus_KnownColumns ensures all three board columns parse.
func TestParseStatus_KnownColumns(t *testing.T) {
	for _, want := range Statuses {
		got, ok := ParseStatus(string(want))
		if !ok || got != want {
			t.Errorf("ParseStatus(%q) = (%q, %v), want (%q, true)", want, got, ok, want)
		}
	}
}

// TestParseStatus_Unknown ensures unknown values are rejected.
// Edge case: a drop target that cannot be mapped to a column must not
// produce a usable status.
func TestParseStatus_Unknown(t *testing.T) {
	for _, s := range []string{"", "to_do", "ARCHIVED", "DONE "} {
		if got, ok := ParseStatus(s); ok {
			t.Errorf("ParseStatus(%q) = (%q, true), want rejection", s, got)
		}
	}
}

// TestParsePriority covers the three levels plus rejection of junk.
func TestParsePriority(t *testing.T) {
	for _, want := range Priorities {
		got, ok := ParsePriority(string(want))
		if !ok || got != want {
			t.Errorf("ParsePriority(%q) = (%q, %v), want (%q, true)", want, got, ok, want)
		}
	}
	if _, ok := ParsePriority("URGENT"); ok {
		t.Error("ParsePriority(\"URGENT\") accepted, want rejection")
	}
}

// TestNormalizeTags ensures uniqueness with insertion order preserved.
func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{" api ", "Mobile", "api", "", "API", "go"})
	want := []string{"api", "Mobile", "go"}
	if len(got) != len(want) {
		t.Fatalf("NormalizeTags = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("NormalizeTags[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

// TestHasTag_CaseInsensitiveSubstring matches fragments regardless of case.
func TestHasTag_CaseInsensitiveSubstring(t *testing.T) {
	p := Project{Tags: []string{"REST-API", "frontend"}}

	if !p.HasTag("api") {
		t.Error("HasTag(\"api\") = false, want true for tag REST-API")
	}
	if !p.HasTag("") {
		t.Error("HasTag(\"\") = false, want true (empty fragment matches all)")
	}
	if p.HasTag("backend") {
		t.Error("HasTag(\"backend\") = true, want false")
	}
}

// TestUserInitials covers normal, partial and empty names.
func TestUserInitials(t *testing.T) {
	tests := []struct {
		user User
		want string
	}{
		{User{FirstName: "Ada", LastName: "Lovelace"}, "AL"},
		{User{FirstName: "ada"}, "A"},
		{User{}, "??"},
	}
	for _, tt := range tests {
		if got := tt.user.Initials(); got != tt.want {
			t.Errorf("Initials(%+v) = %q, want %q", tt.user, got, tt.want)
		}
	}
}

// TestIssueAssigneeID returns 0 for unassigned issues.
func TestIssueAssigneeID(t *testing.T) {
	if got := (Issue{}).AssigneeID(); got != 0 {
		t.Errorf("AssigneeID() with no assignee = %d, want 0", got)
	}
	i := Issue{Assignee: &User{ID: 7}}
	if got := i.AssigneeID(); got != 7 {
		t.Errorf("AssigneeID() = %d, want 7", got)
	}
}
