package calendar

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/myday/internal/cli/styles"
	calendarservice "github.com/thenoetrevino/myday/internal/services/calendar"
)

var weekdayNames = map[time.Weekday]string{
	time.Monday:    "一",
	time.Tuesday:   "二",
	time.Wednesday: "三",
	time.Thursday:  "四",
	time.Friday:    "五",
	time.Saturday:  "六",
	time.Sunday:    "日",
}

// monthResult renders a MonthView as a grid
type monthResult struct {
	*calendarservice.MonthView
}

func (m monthResult) String() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("%d年%d月", m.Year, m.Month)))
	b.WriteString("\n")

	order := calendarservice.Weekdays(m.WeekStart)
	header := make([]string, len(order))
	for i, wd := range order {
		style := styles.WeekdayStyle
		if wd == time.Saturday || wd == time.Sunday {
			style = styles.WeekendStyle
		}
		header[i] = style.Render(weekdayNames[wd])
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header...))
	b.WriteString("\n")

	for _, week := range m.Weeks {
		cells := make([]string, len(week))
		for i, day := range week {
			cells[i] = renderCell(day)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}

	return b.String()
}

// renderCell draws the day number, the festival or lunar date and the
// badge on three lines
func renderCell(day calendarservice.Day) string {
	number := fmt.Sprintf("%2d", day.Day)
	switch {
	case !day.InMonth:
		number = styles.OutsideStyle.Render(number)
	case day.Today:
		number = styles.TodayStyle.Render(number)
	default:
		number = styles.DayStyle.Render(number)
	}

	label := ""
	switch {
	case day.Label == "" || !day.InMonth:
	case day.IsFestival:
		label = styles.FestivalStyle.Render(day.Label)
	default:
		label = styles.SubtitleStyle.Render(day.Label)
	}

	return styles.CellStyle.Render(strings.Join([]string{
		number,
		label,
		styles.RenderBadge(day.Summary),
	}, "\n"))
}
