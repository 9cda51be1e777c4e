// Package board groups issues into fixed status columns and runs the
// optimistic move engine behind keyboard-driven card moves.
package board

import (
	"github.com/trackdeck/trackdeck/internal/models"
)

// Columns is the fixed column order of every project board.
var Columns = []models.Status{
	models.StatusToDo,
	models.StatusInProgress,
	models.StatusDone,
}

// Grouped buckets issues by status, preserving collection order within
// each column. Issues with an unknown status are dropped.
func Grouped(issues []models.Issue) map[models.Status][]models.Issue {
	grouped := make(map[models.Status][]models.Issue, len(Columns))
	for _, col := range Columns {
		grouped[col] = nil
	}
	for _, issue := range issues {
		if _, ok := grouped[issue.Status]; !ok {
			continue
		}
		grouped[issue.Status] = append(grouped[issue.Status], issue)
	}
	return grouped
}

// ColumnIndex returns the position of a status in the column order, or
// -1 for statuses that have no column.
func ColumnIndex(status models.Status) int {
	for i, col := range Columns {
		if col == status {
			return i
		}
	}
	return -1
}

// Neighbor returns the column delta steps away from the given status.
// Moves past either edge stay on the edge column.
func Neighbor(status models.Status, delta int) (models.Status, bool) {
	i := ColumnIndex(status)
	if i < 0 {
		return "", false
	}
	i += delta
	if i < 0 {
		i = 0
	}
	if i >= len(Columns) {
		i = len(Columns) - 1
	}
	return Columns[i], true
}
