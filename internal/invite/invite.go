// Package invite drives the member invitation flow: compose, send, and
// the resend confirmation that follows a pending-invitation conflict.
package invite

import (
	"errors"
	"regexp"
	"strings"

	"github.com/trackdeck/trackdeck/internal/api"
)

// State names a position in the invitation flow.
type State int

const (
	// Composing accepts an email address.
	Composing State = iota
	// Sending has a request in flight.
	Sending
	// Sent is the settled success state.
	Sent
	// ConflictPending waits for the user to confirm or decline a resend.
	ConflictPending
	// Failed is the settled error state; the draft survives for retry.
	Failed
)

func (s State) String() string {
	switch s {
	case Composing:
		return "composing"
	case Sending:
		return "sending"
	case Sent:
		return "sent"
	case ConflictPending:
		return "conflict"
	case Failed:
		return "failed"
	}
	return "unknown"
}

var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrBusy         = errors.New("invitation already in flight")
)

var emailPattern = regexp.MustCompile(
	`^(?:[a-zA-Z0-9_'^&/+-])+(?:\.(?:[a-zA-Z0-9_'^&/+-]+))*@(?:[a-zA-Z0-9-]+\.)+[a-zA-Z]{2,}$`)

// ValidateEmail accepts addresses matching a permissive RFC-like
// pattern. Checked before any request goes out.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// Flow is the invitation state machine for one project. It performs no
// I/O itself; Begin and ConfirmResend hand back the request to send,
// and Succeed/Fail report the outcome.
type Flow struct {
	projectID int
	state     State
	email     string
	message   string
}

func NewFlow(projectID int) *Flow {
	return &Flow{projectID: projectID, state: Composing}
}

func (f *Flow) State() State    { return f.state }
func (f *Flow) Email() string   { return f.email }
func (f *Flow) Message() string { return f.message }

// Begin validates the address and moves to Sending.
func (f *Flow) Begin(email string) (api.InvitationRequest, error) {
	if f.state == Sending {
		return api.InvitationRequest{}, ErrBusy
	}
	email = strings.TrimSpace(email)
	if !ValidateEmail(email) {
		return api.InvitationRequest{}, ErrInvalidEmail
	}
	f.state = Sending
	f.email = email
	f.message = ""
	return api.InvitationRequest{Email: email, ProjectID: f.projectID}, nil
}

// Succeed settles a delivered invitation.
func (f *Flow) Succeed(message string) {
	if f.state != Sending {
		return
	}
	f.state = Sent
	f.message = message
}

// Fail routes a send error: a conflict whose details allow resending
// enters ConflictPending, anything else lands in Failed with the draft
// intact.
func (f *Flow) Fail(err error) {
	if f.state != Sending {
		return
	}
	if details, ok := api.Conflict(err); ok && details.CanResend {
		f.state = ConflictPending
		if details.Email != "" {
			f.email = details.Email
		}
		f.message = api.Message(err)
		return
	}
	f.state = Failed
	f.message = api.Message(err)
}

// ConfirmResend reissues the conflicted invitation with the force flag,
// reusing the captured address verbatim.
func (f *Flow) ConfirmResend() (api.InvitationRequest, bool) {
	if f.state != ConflictPending {
		return api.InvitationRequest{}, false
	}
	f.state = Sending
	f.message = ""
	return api.InvitationRequest{
		Email:       f.email,
		ProjectID:   f.projectID,
		ForceResend: true,
	}, true
}

// DeclineResend abandons the conflicted invitation and clears the draft.
func (f *Flow) DeclineResend() {
	if f.state != ConflictPending {
		return
	}
	f.state = Composing
	f.email = ""
	f.message = ""
}

// Reset returns to composing, keeping the draft after a failure so the
// address can be corrected.
func (f *Flow) Reset() {
	if f.state == Sending {
		return
	}
	f.state = Composing
	f.message = ""
}
