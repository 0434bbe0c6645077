package styles

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/myday/internal/config"
	"github.com/thenoetrevino/myday/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 72

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Date:", "Priority:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Description"
	DoneStyle     lipgloss.Style // Completed task content
	StarStyle     lipgloss.Style

	// Calendar styles
	WeekdayStyle  lipgloss.Style
	WeekendStyle  lipgloss.Style
	DayStyle      lipgloss.Style
	OutsideStyle  lipgloss.Style
	TodayStyle    lipgloss.Style
	FestivalStyle lipgloss.Style
	CellStyle     lipgloss.Style
	CellWidth     = 9

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true).
		MarginTop(1)

	DoneStyle = lipgloss.NewStyle().
		Strikethrough(true).
		Foreground(lipgloss.Color(colors.Done))

	StarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Star))

	WeekdayStyle = lipgloss.NewStyle().
		Bold(true).
		Width(CellWidth).
		Align(lipgloss.Center).
		Foreground(lipgloss.Color(colors.Subtle))

	WeekendStyle = WeekdayStyle.
		Foreground(lipgloss.Color(colors.Weekend))

	DayStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	OutsideStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.OutsideMonth))

	TodayStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Today)).
		Underline(true)

	FestivalStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Festival))

	CellStyle = lipgloss.NewStyle().
		Width(CellWidth).
		Height(3).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(colors.Border))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Success))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Error))

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Warning))
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// BoldColoredText renders bold text with a hex color
func BoldColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// RenderTagChip renders a tag as "[name]" in the tag's color
func RenderTagChip(name, color string) string {
	if color == "" {
		color = models.FallbackTagColor
	}
	return BoldColoredText("["+name+"]", color)
}

// RenderBadge renders a calendar day badge: a colored dot followed by the
// priority stars
func RenderBadge(summary *models.DaySummary) string {
	if summary == nil {
		return ""
	}
	badge := ColoredText("●", summary.Color)
	if summary.Priority > 0 {
		badge += StarStyle.Render(strings.Repeat("★", summary.Priority))
	}
	return badge
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}
