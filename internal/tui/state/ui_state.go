package state

// View names a top-level screen.
type View int

const (
	LoginView View = iota // Email/password form, also the landing screen when logged out
	DashboardView
	BoardView
	IssueView // Full ticket with comments
)

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode               Mode = iota // Default navigation mode
	FormMode                             // A huh form owns the keyboard
	GrabMode                             // A card is grabbed and follows column moves
	ChatInputMode                        // Typing into the chat pane
	CommentInputMode                     // Typing a comment on the open issue
	DeleteIssueConfirmMode               // Confirming issue deletion
	DeleteProjectConfirmMode             // Confirming project deletion
	ResendConfirmMode                    // Confirming an invitation resend after a conflict
	HelpMode                             // Displaying help screen
)

// UIState manages the user interface state: which screen is showing,
// the interaction mode, selection indexes, and terminal dimensions.
type UIState struct {
	view View
	mode Mode

	// selectedProject is the row index on the dashboard
	selectedProject int

	// selectedColumn is the index of the currently selected board column
	selectedColumn int

	// selectedCard is the index of the selected card within the selected column
	selectedCard int

	// chatOpen shows the chat pane beside the board
	chatOpen bool

	width  int
	height int
}

// NewUIState creates a new UIState showing the login screen.
func NewUIState() *UIState {
	return &UIState{view: LoginView, mode: FormMode}
}

func (s *UIState) View() View       { return s.view }
func (s *UIState) Mode() Mode       { return s.mode }
func (s *UIState) SetMode(m Mode)   { s.mode = m }
func (s *UIState) Width() int       { return s.width }
func (s *UIState) Height() int      { return s.height }
func (s *UIState) ChatOpen() bool   { return s.chatOpen }
func (s *UIState) ToggleChat()      { s.chatOpen = !s.chatOpen }

// SetView switches screens and resets the interaction mode.
func (s *UIState) SetView(v View) {
	s.view = v
	s.mode = NormalMode
}

func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

func (s *UIState) SelectedProject() int     { return s.selectedProject }
func (s *UIState) SetSelectedProject(i int) { s.selectedProject = i }

func (s *UIState) SelectedColumn() int { return s.selectedColumn }
func (s *UIState) SelectedCard() int   { return s.selectedCard }

// SetSelectedColumn moves column selection and resets the card cursor.
func (s *UIState) SetSelectedColumn(i int) {
	s.selectedColumn = i
	s.selectedCard = 0
}

func (s *UIState) SetSelectedCard(i int) { s.selectedCard = i }

// ClampCard keeps the card cursor inside a column of the given length.
func (s *UIState) ClampCard(count int) {
	if count == 0 {
		s.selectedCard = 0
		return
	}
	if s.selectedCard >= count {
		s.selectedCard = count - 1
	}
	if s.selectedCard < 0 {
		s.selectedCard = 0
	}
}

// ResetBoardCursor returns the selection to the first card of the first
// column. Called when entering a project.
func (s *UIState) ResetBoardCursor() {
	s.selectedColumn = 0
	s.selectedCard = 0
}
