package board

import (
	"github.com/trackdeck/trackdeck/internal/models"
	"github.com/trackdeck/trackdeck/internal/state"
)

// DropTarget names where a grabbed card is dropped: either a column
// directly, or another card whose column becomes the destination.
type DropTarget struct {
	Column  models.Status
	IssueID int
}

// ColumnTarget targets a column by status.
func ColumnTarget(status models.Status) DropTarget {
	return DropTarget{Column: status}
}

// CardTarget targets the column occupied by another issue.
func CardTarget(issueID int) DropTarget {
	return DropTarget{IssueID: issueID}
}

// Move records an optimistic status change awaiting server confirmation.
type Move struct {
	IssueID int
	From    models.Status
	To      models.Status
}

// BeginResult classifies the outcome of starting a move.
type BeginResult int

const (
	// MoveStarted means the status was applied and a request should go out.
	MoveStarted BeginResult = iota
	// MoveNoop means the target resolved to the card's current column.
	MoveNoop
	// MoveUnresolved means the target could not be resolved; abandoned.
	MoveUnresolved
	// MoveBusy means the issue already has a move awaiting confirmation.
	MoveBusy
)

// Engine applies card moves to the issue slice before the server
// answers, remembering the prior status of each in-flight move so a
// failed request can be undone exactly.
type Engine struct {
	issues  *state.IssueState
	pending map[int]models.Status
}

func NewEngine(issues *state.IssueState) *Engine {
	return &Engine{
		issues:  issues,
		pending: make(map[int]models.Status),
	}
}

// Begin resolves the drop target and, when it names a different column,
// applies the new status immediately and records the prior one. A
// second move for an issue is refused until Confirm or Rollback settles
// the first.
func (e *Engine) Begin(issueID int, target DropTarget) (Move, BeginResult) {
	if _, busy := e.pending[issueID]; busy {
		return Move{}, MoveBusy
	}

	issue := e.issues.Get(issueID)
	if issue == nil {
		return Move{}, MoveUnresolved
	}

	to, ok := e.resolve(target)
	if !ok {
		return Move{}, MoveUnresolved
	}
	if to == issue.Status {
		return Move{}, MoveNoop
	}

	from := issue.Status
	e.issues.SetStatus(issueID, to)
	e.pending[issueID] = from
	return Move{IssueID: issueID, From: from, To: to}, MoveStarted
}

// Confirm settles a successful move, discarding the captured status.
func (e *Engine) Confirm(issueID int) bool {
	if _, ok := e.pending[issueID]; !ok {
		return false
	}
	delete(e.pending, issueID)
	return true
}

// Rollback restores the status captured when the move began.
func (e *Engine) Rollback(issueID int) bool {
	from, ok := e.pending[issueID]
	if !ok {
		return false
	}
	delete(e.pending, issueID)
	e.issues.SetStatus(issueID, from)
	return true
}

// InFlight reports whether the issue has a move awaiting confirmation.
func (e *Engine) InFlight(issueID int) bool {
	_, ok := e.pending[issueID]
	return ok
}

func (e *Engine) resolve(target DropTarget) (models.Status, bool) {
	if target.IssueID != 0 {
		other := e.issues.Get(target.IssueID)
		if other == nil {
			return "", false
		}
		return other.Status, other.Status.Valid()
	}
	if !target.Column.Valid() {
		return "", false
	}
	return target.Column, true
}
