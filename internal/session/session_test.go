package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/trackdeck/trackdeck/internal/models"
)

// mintToken signs a token the way the backend does, carrying userId,
// email subject and expiry.
func mintToken(t *testing.T, userID int, email string, expiresIn time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}
	return signed
}

// TestDecode_Identity ensures userId, email and expiry come out of the
// token unchanged.
func TestDecode_Identity(t *testing.T) {
	tok := mintToken(t, 42, "ada@example.com", time.Hour)

	sess, err := Decode(tok)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if sess.UserID != 42 {
		t.Errorf("UserID = %d, want 42", sess.UserID)
	}
	if sess.Email != "ada@example.com" {
		t.Errorf("Email = %q, want ada@example.com", sess.Email)
	}
	if !sess.Valid() {
		t.Error("Valid() = false for a fresh token")
	}
}

// TestDecode_Rejections covers empty and garbage tokens.
func TestDecode_Rejections(t *testing.T) {
	if _, err := Decode(""); err != ErrNoToken {
		t.Errorf("Decode(\"\") error = %v, want ErrNoToken", err)
	}
	if _, err := Decode("not.a.jwt"); err != ErrMalformedToken {
		t.Errorf("Decode(garbage) error = %v, want ErrMalformedToken", err)
	}
}

// TestValid_Expired ensures an expired token yields an invalid session.
func TestValid_Expired(t *testing.T) {
	tok := mintToken(t, 42, "ada@example.com", -time.Minute)

	sess, err := Decode(tok)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if sess.Valid() {
		t.Error("Valid() = true for an expired token")
	}
}

// TestStore_Roundtrip persists a token, reopens the store, and expects
// the same session back. Clear must remove it.
func TestStore_Roundtrip(t *testing.T) {
	dir := t.TempDir()
	tok := mintToken(t, 7, "grace@example.com", time.Hour)

	store := NewStore(dir)
	if store.Authenticated() {
		t.Fatal("fresh store reports authenticated")
	}
	if err := store.Set(tok); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	reopened := NewStore(dir)
	if !reopened.Authenticated() {
		t.Fatal("reopened store not authenticated")
	}
	if got := reopened.Session().UserID; got != 7 {
		t.Errorf("reopened UserID = %d, want 7", got)
	}
	if reopened.Token() != tok {
		t.Error("reopened token differs from stored token")
	}

	reopened.Clear()
	if NewStore(dir).Authenticated() {
		t.Error("store still authenticated after Clear")
	}
}

// TestCanUpdateStatus covers the full predicate truth table: assignee,
// creator and project owner may move the issue, nobody else may.
func TestCanUpdateStatus(t *testing.T) {
	issue := models.Issue{
		ID:             1,
		Assignee:       &models.User{ID: 10},
		CreatedByID:    20,
		ProjectOwnerID: 30,
	}

	tests := []struct {
		name   string
		userID int
		want   bool
	}{
		{"assignee", 10, true},
		{"creator", 20, true},
		{"project owner", 30, true},
		{"unrelated user", 40, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess, err := Decode(mintToken(t, tt.userID, "u@example.com", time.Hour))
			if err != nil {
				t.Fatal(err)
			}
			if got := sess.CanUpdateStatus(issue); got != tt.want {
				t.Errorf("CanUpdateStatus() for user %d = %v, want %v", tt.userID, got, tt.want)
			}
		})
	}

	// An expired session fails regardless of identity.
	expired, err := Decode(mintToken(t, 10, "u@example.com", -time.Minute))
	if err != nil {
		t.Fatal(err)
	}
	if expired.CanUpdateStatus(issue) {
		t.Error("CanUpdateStatus() = true for expired session")
	}
}

// TestCanAssign allows only creator and project owner, not the assignee.
func TestCanAssign(t *testing.T) {
	issue := models.Issue{
		Assignee:       &models.User{ID: 10},
		CreatedByID:    20,
		ProjectOwnerID: 30,
	}

	assignee, _ := Decode(mintToken(t, 10, "u@example.com", time.Hour))
	if assignee.CanAssign(issue) {
		t.Error("assignee may not reassign the issue")
	}
	creator, _ := Decode(mintToken(t, 20, "u@example.com", time.Hour))
	if !creator.CanAssign(issue) {
		t.Error("creator should be able to assign")
	}
	owner, _ := Decode(mintToken(t, 30, "u@example.com", time.Hour))
	if !owner.CanAssign(issue) {
		t.Error("project owner should be able to assign")
	}
}

// TestIsAssignee_Unassigned ensures an unassigned issue never matches,
// even for user id 0 style zero values.
func TestIsAssignee_Unassigned(t *testing.T) {
	sess, _ := Decode(mintToken(t, 5, "u@example.com", time.Hour))
	if sess.IsAssignee(models.Issue{}) {
		t.Error("IsAssignee() = true for unassigned issue")
	}
}
