package state

// DragState tracks the grabbed card and the move-specific error line.
// Move failures render next to the board instead of joining the general
// notifications, and expire on a timer rather than on the next keypress.
type DragState struct {
	// grabbedIssueID is the card currently being carried, 0 when none
	grabbedIssueID int

	// message is the last failed-move error
	message string

	// seq distinguishes expiry timers; a timer fired for an older
	// message must not clear a newer one
	seq int
}

func NewDragState() *DragState {
	return &DragState{}
}

// Grab starts carrying a card.
func (s *DragState) Grab(issueID int) {
	s.grabbedIssueID = issueID
}

// Release drops the carried card.
func (s *DragState) Release() {
	s.grabbedIssueID = 0
}

// Grabbed returns the carried card's issue id, 0 when none.
func (s *DragState) Grabbed() int {
	return s.grabbedIssueID
}

// SetError records a move failure and returns the sequence number the
// expiry timer must present to clear it.
func (s *DragState) SetError(msg string) int {
	s.message = msg
	s.seq++
	return s.seq
}

// Expire clears the error only if seq still identifies it.
func (s *DragState) Expire(seq int) {
	if seq == s.seq {
		s.message = ""
	}
}

// ClearError removes the error unconditionally.
func (s *DragState) ClearError() {
	s.message = ""
	s.seq++
}

func (s *DragState) Error() string {
	return s.message
}

func (s *DragState) HasError() bool {
	return s.message != ""
}
