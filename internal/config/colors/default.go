package colors

// Default returns the default color scheme, close to the system palette
// the tag colors come from
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		Accent: "#0A84FF",

		// Calendar
		Border:       "#3A3A3C",
		Today:        "#0A84FF",
		OutsideMonth: "#48484A",
		Weekend:      "#FF6961",
		Festival:     "#FF9F0A",
		Star:         "#FFD60A",

		// Text
		Title:  "#F2F2F7",
		Subtle: "#8E8E93",
		Normal: "#D1D1D6",
		Done:   "#636366",

		// Messages
		Success: "#30D158",
		Warning: "#FFD60A",
		Error:   "#FF453A",
	}
}
