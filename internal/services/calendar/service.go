package calendar

import (
	"context"
	"time"

	"github.com/thenoetrevino/myday/internal/database"
	"github.com/thenoetrevino/myday/internal/models"
)

// Service defines the month-level read operations
type Service interface {
	MonthSummary(ctx context.Context, year, month int, activeTags []string) (models.MonthSummary, error)
	Month(ctx context.Context, req MonthRequest) (*MonthView, error)
}

// MonthRequest selects the month to lay out
type MonthRequest struct {
	Year      int
	Month     int
	Tags      []string
	WeekStart time.Weekday // time.Monday or time.Sunday
	Today     time.Time    // zero value marks no day as today
}

// Day is one cell of the month grid
type Day struct {
	Date     string             `json:"date"`
	Day      int                `json:"day"`
	InMonth  bool               `json:"in_month"`
	Today    bool               `json:"today"`
	Summary  *models.DaySummary `json:"summary,omitempty"`
	// Label is a festival name or the lunar date
	Label      string `json:"label,omitempty"`
	IsFestival bool   `json:"is_festival"`
}

// MonthView is a month laid out as full weeks
type MonthView struct {
	Year      int          `json:"year"`
	Month     int          `json:"month"`
	WeekStart time.Weekday `json:"week_start"`
	Weeks     [][7]Day     `json:"weeks"`
}

type service struct {
	repo database.CalendarReader
}

// NewService creates a new calendar service
func NewService(repo database.CalendarReader) Service {
	return &service{repo: repo}
}

// MonthSummary returns the per-day badge for one month
func (s *service) MonthSummary(ctx context.Context, year, month int, activeTags []string) (models.MonthSummary, error) {
	if err := validateMonth(year, month); err != nil {
		return nil, err
	}
	return s.repo.MonthSummary(ctx, year, month, activeTags)
}

// Month lays out the month in weeks. Days from neighbor months fill the
// first and last week but carry no summary.
func (s *service) Month(ctx context.Context, req MonthRequest) (*MonthView, error) {
	summary, err := s.MonthSummary(ctx, req.Year, req.Month, req.Tags)
	if err != nil {
		return nil, err
	}

	weekStart := req.WeekStart
	if weekStart != time.Sunday {
		weekStart = time.Monday
	}

	first := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	cursor := first.AddDate(0, 0, -leadingDays(first.Weekday(), weekStart))
	today := ""
	if !req.Today.IsZero() {
		today = req.Today.Format(models.DateLayout)
	}

	view := &MonthView{Year: req.Year, Month: req.Month, WeekStart: weekStart}
	for !cursor.After(last) {
		var week [7]Day
		for i := range week {
			date := cursor.Format(models.DateLayout)
			label, festival := Festival(cursor)
			day := Day{
				Date:       date,
				Day:        cursor.Day(),
				InMonth:    cursor.Month() == first.Month(),
				Today:      date == today,
				Label:      label,
				IsFestival: festival,
			}
			if day.InMonth {
				if badge, ok := summary[date]; ok {
					day.Summary = &badge
				}
			}
			week[i] = day
			cursor = cursor.AddDate(0, 0, 1)
		}
		view.Weeks = append(view.Weeks, week)
	}

	return view, nil
}

// Weekdays returns the column order for a week starting on weekStart
func Weekdays(weekStart time.Weekday) [7]time.Weekday {
	var days [7]time.Weekday
	for i := range days {
		days[i] = (weekStart + time.Weekday(i)) % 7
	}
	return days
}

func leadingDays(firstWeekday, weekStart time.Weekday) int {
	return (int(firstWeekday) - int(weekStart) + 7) % 7
}

func validateMonth(year, month int) error {
	if month < 1 || month > 12 {
		return ErrInvalidMonth
	}
	if year < 1 || year > 9999 {
		return ErrInvalidYear
	}
	return nil
}
