package models

// Status is one of the three fixed board columns an issue can occupy.
// The wire format matches the backend enum exactly.
type Status string

const (
	StatusToDo       Status = "TO_DO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
)

// Statuses lists the board columns in display order.
var Statuses = []Status{StatusToDo, StatusInProgress, StatusDone}

// ParseStatus maps a wire value to a Status.
// Returns false for anything that is not one of the three known columns.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusToDo, StatusInProgress, StatusDone:
		return Status(s), true
	}
	return "", false
}

// Valid reports whether the status is one of the three known columns.
func (s Status) Valid() bool {
	_, ok := ParseStatus(string(s))
	return ok
}

// Label returns the human-readable column title.
func (s Status) Label() string {
	switch s {
	case StatusToDo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusDone:
		return "Done"
	}
	return string(s)
}
