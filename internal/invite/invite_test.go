package invite

import (
	"testing"

	"github.com/trackdeck/trackdeck/internal/api"
)

// TestValidateEmail covers the permissive pattern. Edge case: a double
// at-sign must not slip through.
func TestValidateEmail(t *testing.T) {
	valid := []string{
		"a@b.co",
		"user.name@example.com",
		"first+last@sub.domain.org",
		"o'brien@example.ie",
		"  padded@example.com  ",
	}
	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Errorf("ValidateEmail(%q) = false, want true", email)
		}
	}

	invalid := []string{
		"",
		"foo@@bar.com",
		"foo@bar",
		"@example.com",
		"user@.com",
		"user@example.c",
		"no-at-sign.example.com",
	}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Errorf("ValidateEmail(%q) = true, want false", email)
		}
	}
}

// TestFlow_SendSuccess walks Composing -> Sending -> Sent.
func TestFlow_SendSuccess(t *testing.T) {
	f := NewFlow(7)

	req, err := f.Begin("dev@example.com")
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if req.ProjectID != 7 || req.Email != "dev@example.com" || req.ForceResend {
		t.Errorf("request = %+v", req)
	}
	if f.State() != Sending {
		t.Fatalf("state = %v, want sending", f.State())
	}

	f.Succeed("Invitation sent")
	if f.State() != Sent || f.Message() != "Invitation sent" {
		t.Errorf("state = %v message = %q", f.State(), f.Message())
	}
}

func TestFlow_InvalidEmailRejectedBeforeSend(t *testing.T) {
	f := NewFlow(7)
	if _, err := f.Begin("foo@@bar.com"); err != ErrInvalidEmail {
		t.Fatalf("Begin = %v, want ErrInvalidEmail", err)
	}
	if f.State() != Composing {
		t.Errorf("state = %v, want composing", f.State())
	}
}

func TestFlow_RefusesConcurrentSend(t *testing.T) {
	f := NewFlow(7)
	f.Begin("dev@example.com")
	if _, err := f.Begin("other@example.com"); err != ErrBusy {
		t.Fatalf("second Begin = %v, want ErrBusy", err)
	}
}

// TestFlow_ConflictResend ensures a resendable conflict waits for the
// user and that confirming reuses the captured address with the force
// flag set.
func TestFlow_ConflictResend(t *testing.T) {
	f := NewFlow(7)
	f.Begin("dev@example.com")

	f.Fail(&api.Error{
		Kind:    api.KindConflict,
		Status:  409,
		Message: "An invitation is already pending",
		Details: &api.ConflictDetails{CanResend: true, Email: "dev@example.com", ProjectID: 7},
	})
	if f.State() != ConflictPending {
		t.Fatalf("state = %v, want conflict", f.State())
	}

	req, ok := f.ConfirmResend()
	if !ok {
		t.Fatal("ConfirmResend refused")
	}
	if !req.ForceResend || req.Email != "dev@example.com" || req.ProjectID != 7 {
		t.Errorf("resend request = %+v", req)
	}
	if f.State() != Sending {
		t.Errorf("state = %v, want sending", f.State())
	}

	f.Succeed("Invitation sent")
	if f.State() != Sent {
		t.Errorf("state = %v, want sent", f.State())
	}
}

// TestFlow_ConflictDecline clears the draft.
func TestFlow_ConflictDecline(t *testing.T) {
	f := NewFlow(7)
	f.Begin("dev@example.com")
	f.Fail(&api.Error{
		Kind:    api.KindConflict,
		Status:  409,
		Details: &api.ConflictDetails{CanResend: true, Email: "dev@example.com"},
	})

	f.DeclineResend()
	if f.State() != Composing || f.Email() != "" || f.Message() != "" {
		t.Errorf("after decline: state=%v email=%q message=%q", f.State(), f.Email(), f.Message())
	}
}

// TestFlow_NonResendableConflictFails ensures only conflicts whose
// details allow resending enter the confirmation state.
func TestFlow_NonResendableConflictFails(t *testing.T) {
	f := NewFlow(7)
	f.Begin("dev@example.com")
	f.Fail(&api.Error{
		Kind:    api.KindConflict,
		Status:  409,
		Message: "User is already a member",
		Details: &api.ConflictDetails{CanResend: false},
	})
	if f.State() != Failed {
		t.Fatalf("state = %v, want failed", f.State())
	}
	if f.Message() != "User is already a member" {
		t.Errorf("message = %q", f.Message())
	}
}

// TestFlow_FailurePreservesDraft lets the user correct and retry.
func TestFlow_FailurePreservesDraft(t *testing.T) {
	f := NewFlow(7)
	f.Begin("dev@example.com")
	f.Fail(&api.Error{Kind: api.KindServer, Status: 500, Message: "boom"})

	if f.State() != Failed || f.Email() != "dev@example.com" {
		t.Fatalf("state=%v email=%q", f.State(), f.Email())
	}

	f.Reset()
	if f.State() != Composing || f.Email() != "dev@example.com" {
		t.Errorf("after reset: state=%v email=%q", f.State(), f.Email())
	}

	if _, err := f.Begin("dev@example.com"); err != nil {
		t.Errorf("retry Begin: %v", err)
	}
}
