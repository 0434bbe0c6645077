package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		// Calendar
		Border:       "#585858",
		Today:        "#FFFFFF",
		OutsideMonth: "#3A3A3A",
		Weekend:      "#D0D0D0",
		Festival:     "#D0D0D0",
		Star:         "#FFFFFF",

		// Text
		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",
		Done:   "#585858",

		// Messages
		Success: "#FFFFFF",
		Warning: "#FFFFFF",
		Error:   "#FFFFFF",
	}
}
