package models

// Tag is a named category with a display color
type Tag struct {
	Name  string `json:"name"`
	Color string `json:"color"` // Hex color code (e.g., "#5E5CE6")
}

// FallbackTagColor is used for tasks whose tag no longer exists
const FallbackTagColor = "#8E8E93"

// DefaultTags are seeded into an empty tags table, in this order
var DefaultTags = []Tag{
	{Name: "工作", Color: "#5E5CE6"},
	{Name: "生活", Color: "#30D158"},
	{Name: "学习", Color: "#FF9F0A"},
	{Name: "健康", Color: "#FF453A"},
	{Name: "其他", Color: "#BF5AF2"},
}
