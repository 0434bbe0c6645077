package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for headers and highlights)
	Accent string `yaml:"accent"`

	// Calendar grid colors
	Border       string `yaml:"border"`
	Today        string `yaml:"today"`
	OutsideMonth string `yaml:"outside_month"` // Days borrowed from neighbor months
	Weekend      string `yaml:"weekend"`
	Festival     string `yaml:"festival"`
	Star         string `yaml:"star"` // Priority stars

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`
	Done   string `yaml:"done"` // Completed task content

	// Message colors
	Success string `yaml:"success"`
	Warning string `yaml:"warning"`
	Error   string `yaml:"error"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "dragon":
		return Dragon()
	case "lotus":
		return Lotus()
	default:
		return Default()
	}
}

// Presets lists the names accepted by GetPreset
func Presets() []string {
	return []string{"default", "monochrome", "dragon", "lotus"}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	fill(&c.Accent, preset.Accent)
	fill(&c.Border, preset.Border)
	fill(&c.Today, preset.Today)
	fill(&c.OutsideMonth, preset.OutsideMonth)
	fill(&c.Weekend, preset.Weekend)
	fill(&c.Festival, preset.Festival)
	fill(&c.Star, preset.Star)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.Done, preset.Done)
	fill(&c.Success, preset.Success)
	fill(&c.Warning, preset.Warning)
	fill(&c.Error, preset.Error)
}

// MergeFrom overrides colors with the non-empty values of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}

	merge(&c.Preset, other.Preset)
	merge(&c.Accent, other.Accent)
	merge(&c.Border, other.Border)
	merge(&c.Today, other.Today)
	merge(&c.OutsideMonth, other.OutsideMonth)
	merge(&c.Weekend, other.Weekend)
	merge(&c.Festival, other.Festival)
	merge(&c.Star, other.Star)
	merge(&c.Title, other.Title)
	merge(&c.Subtle, other.Subtle)
	merge(&c.Normal, other.Normal)
	merge(&c.Done, other.Done)
	merge(&c.Success, other.Success)
	merge(&c.Warning, other.Warning)
	merge(&c.Error, other.Error)
}
