package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		ColumnBorder: "#FFFFFF",
		DoneBorder:   "#FFFFFF",
		CardBorder:   "#585858",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		WipWarning: "#FFFFFF",

		PriorityLow:    "#D0D0D0",
		PriorityMedium: "#D0D0D0",
		PriorityHigh:   "#FFFFFF",
		PriorityUrgent: "#FFFFFF",

		InfoFg:    "#FFFFFF",
		WarningFg: "#FFFFFF",
		ErrorFg:   "#FFFFFF",
	}
}
