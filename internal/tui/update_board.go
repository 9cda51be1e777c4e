package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/trackdeck/trackdeck/internal/api"
	"github.com/trackdeck/trackdeck/internal/board"
	"github.com/trackdeck/trackdeck/internal/tui/state"
)

// handleMoveSelected moves the card under the cursor one column left or
// right: apply locally, then send, then confirm or roll back when the
// server answers.
func (m Model) handleMoveSelected(delta int) (tea.Model, tea.Cmd) {
	issue := m.selectedIssue()
	if issue == nil {
		return m, nil
	}
	return m.beginMove(issue.ID, delta)
}

func (m Model) beginMove(issueID, delta int) (tea.Model, tea.Cmd) {
	issue := m.Issues.Get(issueID)
	if issue == nil {
		return m, nil
	}
	if !m.Store.Session().CanUpdateStatus(*issue) {
		m.Notifications.Add(state.LevelWarning, "Only the assignee, creator or project owner can move this issue")
		return m, nil
	}

	target, ok := board.Neighbor(issue.Status, delta)
	if !ok {
		return m, nil
	}

	move, result := m.Engine.Begin(issueID, board.ColumnTarget(target))
	switch result {
	case board.MoveStarted:
		m.followCard(issueID)
		return m, m.moveIssueCmd(issueID, move.To)
	case board.MoveBusy:
		m.Notifications.Add(state.LevelInfo, "Move still pending, hold on")
	}
	// Same column or unresolvable: nothing to do
	return m, nil
}

// followCard keeps the cursor on a card after it changes columns.
func (m Model) followCard(issueID int) {
	issue := m.Issues.Get(issueID)
	if issue == nil {
		return
	}
	col := board.ColumnIndex(issue.Status)
	if col < 0 {
		return
	}
	m.Ui.SetSelectedColumn(col)
	for i, card := range m.columnIssues(col) {
		if card.ID == issueID {
			m.Ui.SetSelectedCard(i)
			return
		}
	}
}

// handleGrab enters grab mode for the selected card.
func (m Model) handleGrab() (tea.Model, tea.Cmd) {
	issue := m.selectedIssue()
	if issue == nil {
		return m, nil
	}
	if !m.Store.Session().CanUpdateStatus(*issue) {
		m.Notifications.Add(state.LevelWarning, "Only the assignee, creator or project owner can move this issue")
		return m, nil
	}
	if m.Engine.InFlight(issue.ID) {
		m.Notifications.Add(state.LevelInfo, "Move still pending, hold on")
		return m, nil
	}
	m.Drag.Grab(issue.ID)
	m.Ui.SetMode(state.GrabMode)
	return m, nil
}

// handleGrabMode carries the grabbed card: h/l drop it one column over,
// esc puts it back.
func (m Model) handleGrabMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings
	issueID := m.Drag.Grabbed()

	switch msg.String() {
	case km.Back, km.GrabIssue:
		m.Drag.Release()
		m.Ui.SetMode(state.NormalMode)
		return m, nil
	case km.PrevColumn, "left", km.MoveIssueLeft:
		m.Drag.Release()
		m.Ui.SetMode(state.NormalMode)
		return m.beginMove(issueID, -1)
	case km.NextColumn, "right", km.MoveIssueRight:
		m.Drag.Release()
		m.Ui.SetMode(state.NormalMode)
		return m.beginMove(issueID, 1)
	}
	return m, nil
}

// handleMoveResult settles an optimistic move. Success confirms;
// failure rolls the card back and shows the move error banner for a
// few seconds.
func (m Model) handleMoveResult(msg moveResultMsg) (tea.Model, tea.Cmd) {
	if msg.err == nil {
		m.Drag.ClearError()
		m.Engine.Confirm(msg.issueID)
		return m, nil
	}

	m.Engine.Rollback(msg.issueID)
	m.followCard(msg.issueID)
	seq := m.Drag.SetError("Move failed: " + api.Message(msg.err))
	return m, dragErrorExpiryCmd(seq)
}
