package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Issues
	AddIssue       string `yaml:"add_issue"`
	EditIssue      string `yaml:"edit_issue"`
	DeleteIssue    string `yaml:"delete_issue"`
	ViewIssue      string `yaml:"view_issue"`
	MoveIssueLeft  string `yaml:"move_issue_left"`
	MoveIssueRight string `yaml:"move_issue_right"`
	GrabIssue      string `yaml:"grab_issue"`
	AssignIssue    string `yaml:"assign_issue"`
	CommentIssue   string `yaml:"comment_issue"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevItem   string `yaml:"prev_item"`
	NextItem   string `yaml:"next_item"`
	Open       string `yaml:"open"`
	Back       string `yaml:"back"`

	// Projects
	CreateProject string `yaml:"create_project"`
	EditProject   string `yaml:"edit_project"`
	DeleteProject string `yaml:"delete_project"`
	InviteMember  string `yaml:"invite_member"`
	AcceptInvite  string `yaml:"accept_invite"`

	// Views
	ToggleChat   string `yaml:"toggle_chat"`
	FilterMode   string `yaml:"filter_mode"`
	Refresh      string `yaml:"refresh"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Logout   string `yaml:"logout"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Issues
		AddIssue:       "a",
		EditIssue:      "e",
		DeleteIssue:    "d",
		ViewIssue:      " ",
		MoveIssueLeft:  "H",
		MoveIssueRight: "L",
		GrabIssue:      "g",
		AssignIssue:    "A",
		CommentIssue:   "c",

		// Navigation
		PrevColumn: "h",
		NextColumn: "l",
		PrevItem:   "k",
		NextItem:   "j",
		Open:       "enter",
		Back:       "esc",

		// Projects
		CreateProject: "P",
		EditProject:   "E",
		DeleteProject: "D",
		InviteMember:  "i",
		AcceptInvite:  "I",

		// Views
		ToggleChat: "t",
		FilterMode: "/",
		Refresh:    "r",

		// Forms
		SaveForm: "ctrl+s",

		// Other
		ShowHelp: "?",
		Logout:   "ctrl+x",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddIssue == "" {
		k.AddIssue = defaults.AddIssue
	}
	if k.EditIssue == "" {
		k.EditIssue = defaults.EditIssue
	}
	if k.DeleteIssue == "" {
		k.DeleteIssue = defaults.DeleteIssue
	}
	if k.ViewIssue == "" {
		k.ViewIssue = defaults.ViewIssue
	}
	if k.MoveIssueLeft == "" {
		k.MoveIssueLeft = defaults.MoveIssueLeft
	}
	if k.MoveIssueRight == "" {
		k.MoveIssueRight = defaults.MoveIssueRight
	}
	if k.GrabIssue == "" {
		k.GrabIssue = defaults.GrabIssue
	}
	if k.AssignIssue == "" {
		k.AssignIssue = defaults.AssignIssue
	}
	if k.CommentIssue == "" {
		k.CommentIssue = defaults.CommentIssue
	}
	if k.PrevColumn == "" {
		k.PrevColumn = defaults.PrevColumn
	}
	if k.NextColumn == "" {
		k.NextColumn = defaults.NextColumn
	}
	if k.PrevItem == "" {
		k.PrevItem = defaults.PrevItem
	}
	if k.NextItem == "" {
		k.NextItem = defaults.NextItem
	}
	if k.Open == "" {
		k.Open = defaults.Open
	}
	if k.Back == "" {
		k.Back = defaults.Back
	}
	if k.CreateProject == "" {
		k.CreateProject = defaults.CreateProject
	}
	if k.EditProject == "" {
		k.EditProject = defaults.EditProject
	}
	if k.DeleteProject == "" {
		k.DeleteProject = defaults.DeleteProject
	}
	if k.InviteMember == "" {
		k.InviteMember = defaults.InviteMember
	}
	if k.AcceptInvite == "" {
		k.AcceptInvite = defaults.AcceptInvite
	}
	if k.ToggleChat == "" {
		k.ToggleChat = defaults.ToggleChat
	}
	if k.FilterMode == "" {
		k.FilterMode = defaults.FilterMode
	}
	if k.Refresh == "" {
		k.Refresh = defaults.Refresh
	}
	if k.SaveForm == "" {
		k.SaveForm = defaults.SaveForm
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Logout == "" {
		k.Logout = defaults.Logout
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
