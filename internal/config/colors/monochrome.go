package colors

// Monochrome returns a black and white color scheme for minimal terminals
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Create: "#FFFFFF",
		Edit:   "#FFFFFF",
		Delete: "#FFFFFF",

		ColumnBorder:   "#808080",
		CardBorder:     "#808080",
		CardBackground: "#000000",
		SelectedBorder: "#FFFFFF",
		SelectedBg:     "#303030",

		Title:  "#FFFFFF",
		Subtle: "#808080",
		Normal: "#C0C0C0",

		InfoFg:    "#FFFFFF",
		InfoBg:    "#303030",
		WarningFg: "#FFFFFF",
		WarningBg: "#303030",
		ErrorFg:   "#000000",
		ErrorBg:   "#FFFFFF",
	}
}
