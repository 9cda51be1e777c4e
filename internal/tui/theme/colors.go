package theme

import "github.com/trackdeck/trackdeck/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Subtle         string
	Normal         string
	Title          string
	Create         string
	Edit           string
	Delete         string
	ColumnBorder   string
	CardBorder     string
	CardBg         string
	SelectedBorder string
	SelectedBg     string
	InfoFg         string
	InfoBg         string
	WarningFg      string
	WarningBg      string
	ErrorFg        string
	ErrorBg        string
)

// Init initializes the theme colors from the given color scheme
func Init(scheme colors.ColorScheme) {
	Highlight = scheme.Accent
	Subtle = scheme.Subtle
	Normal = scheme.Normal
	Title = scheme.Title
	Create = scheme.Create
	Edit = scheme.Edit
	Delete = scheme.Delete
	ColumnBorder = scheme.ColumnBorder
	CardBorder = scheme.CardBorder
	CardBg = scheme.CardBackground
	SelectedBorder = scheme.SelectedBorder
	SelectedBg = scheme.SelectedBg
	InfoFg = scheme.InfoFg
	InfoBg = scheme.InfoBg
	WarningFg = scheme.WarningFg
	WarningBg = scheme.WarningBg
	ErrorFg = scheme.ErrorFg
	ErrorBg = scheme.ErrorBg
}
