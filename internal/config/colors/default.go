package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Frames
		ColumnBorder: "#5F87D7",
		DoneBorder:   "#5FD75F",
		CardBorder:   "#585858",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		WipWarning: "#FFD700",

		// Priorities
		PriorityLow:    "#22C55E",
		PriorityMedium: "#EAB308",
		PriorityHigh:   "#F97316",
		PriorityUrgent: "#EF4444",

		// Notifications
		InfoFg:    "#00AFFF",
		WarningFg: "#FFD700",
		ErrorFg:   "#FF0000",
	}
}
