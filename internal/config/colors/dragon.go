package colors

// Dragon returns the Kanagawa Dragon color scheme (dark theme with warm earth tones)
func Dragon() *ColorScheme {
	return &ColorScheme{
		Preset: "dragon",

		Accent: "#8992A7", // dragonViolet

		// Calendar
		Border:       "#625E5A", // dragonBlack6
		Today:        "#8BA4B0", // dragonBlue2
		OutsideMonth: "#393836", // dragonBlack4
		Weekend:      "#C4746E", // dragonRed
		Festival:     "#C4B28A", // dragonYellow
		Star:         "#FF9E3B", // roninYellow

		// Text
		Title:  "#8BA4B0",
		Subtle: "#737C73", // dragonAsh
		Normal: "#C5C9C5", // dragonWhite
		Done:   "#625E5A",

		// Messages
		Success: "#87A987", // dragonGreen2
		Warning: "#FF9E3B",
		Error:   "#E82424", // samuraiRed
	}
}
