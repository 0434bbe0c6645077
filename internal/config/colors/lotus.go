package colors

// Lotus returns the Kanagawa Lotus color scheme (light theme for paper-colored terminals)
func Lotus() *ColorScheme {
	return &ColorScheme{
		Preset: "lotus",

		Accent: "#624C83", // lotusViolet4

		// Calendar
		Border:       "#A09CAC", // lotusViolet1
		Today:        "#4D699B", // lotusBlue4
		OutsideMonth: "#C7C7D2", // lotusWhite4
		Weekend:      "#C84053", // lotusRed
		Festival:     "#CC6D00", // lotusOrange
		Star:         "#E98A00", // lotusOrange2

		// Text
		Title:  "#4D699B",
		Subtle: "#8A8980", // lotusGray3
		Normal: "#545464", // lotusInk1
		Done:   "#A09CAC",

		// Messages
		Success: "#6F894E", // lotusGreen
		Warning: "#E98A00",
		Error:   "#E82424", // lotusRed3
	}
}
