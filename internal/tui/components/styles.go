// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"

	"github.com/trackdeck/trackdeck/internal/tui/theme"
)

// CardHeight is the fixed height of an issue card including its border.
const CardHeight = 5

const cardTitleMaxLength = 24

// These are cached to avoid recomputing on every redraw.
var (
	// ColumnStyle defines the appearance of board columns
	ColumnStyle lipgloss.Style

	// SelectedColumnStyle highlights the column holding the cursor
	SelectedColumnStyle lipgloss.Style

	// CardStyle defines the appearance of individual issues as cards
	CardStyle lipgloss.Style

	// TitleStyle defines the appearance of titles (column names, app header)
	TitleStyle lipgloss.Style

	// CreateFormBoxStyle wraps creation forms (green border)
	CreateFormBoxStyle lipgloss.Style

	// EditFormBoxStyle wraps edit forms (blue border)
	EditFormBoxStyle lipgloss.Style

	// DeleteConfirmBoxStyle wraps delete confirmations (red border)
	DeleteConfirmBoxStyle lipgloss.Style

	// SubtleStyle renders secondary text
	SubtleStyle lipgloss.Style
)

// InitStyles builds the style set from the current theme colors.
// Must run after theme.Init.
func InitStyles() {
	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.ColumnBorder)).
		Padding(0, 1)

	SelectedColumnStyle = ColumnStyle.
		BorderForeground(lipgloss.Color(theme.SelectedBorder))

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.CardBorder)).
		Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	CreateFormBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Create)).
		Padding(1, 2)

	EditFormBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Edit)).
		Padding(1, 2)

	DeleteConfirmBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Delete)).
		Padding(1, 2)

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))
}
