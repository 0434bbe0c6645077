package cli

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/thenoetrevino/myday/internal/models"
)

var colorHexRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidateColorHex validates that a color string is in valid hex format #RRGGBB
func ValidateColorHex(color string) error {
	if !colorHexRegex.MatchString(color) {
		return fmt.Errorf("color must be in hex format #RRGGBB (e.g., #FF0000), got: %s", color)
	}
	return nil
}

// statusAliases maps ASCII shortcuts to the stored status labels
var statusAliases = map[string]models.Status{
	"todo":  models.StatusTodo,
	"doing": models.StatusInProgress,
	"done":  models.StatusDone,
	"hold":  models.StatusOnHold,
}

// ParseStatus accepts a stored status label or one of its aliases
func ParseStatus(s string) (models.Status, error) {
	s = strings.TrimSpace(s)
	if status, ok := statusAliases[strings.ToLower(s)]; ok {
		return status, nil
	}
	for _, status := range models.KnownStatuses {
		if string(status) == s {
			return status, nil
		}
	}
	return "", fmt.Errorf("invalid status '%s' (must be: todo, doing, done, hold or %s)", s, joinStatuses())
}

func joinStatuses() string {
	labels := make([]string, len(models.KnownStatuses))
	for i, status := range models.KnownStatuses {
		labels[i] = string(status)
	}
	return strings.Join(labels, ", ")
}

// ParseTaskID parses a positional task ID argument
func ParseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("task ID must be a positive integer, got: %s", arg)
	}
	return id, nil
}

// ParseDate resolves "today", "yesterday", "tomorrow" or a YYYY-MM-DD date
// relative to now
func ParseDate(s string, now time.Time) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return now.Format(models.DateLayout), nil
	case "yesterday":
		return now.AddDate(0, 0, -1).Format(models.DateLayout), nil
	case "tomorrow":
		return now.AddDate(0, 0, 1).Format(models.DateLayout), nil
	}
	d, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date '%s' (use YYYY-MM-DD, today, yesterday or tomorrow)", s)
	}
	return d.Format(models.DateLayout), nil
}

// ResolveTags returns the requested tags, or every tag when none are given
func ResolveTags(ctx context.Context, c *CLI, requested []string) ([]string, error) {
	if len(requested) > 0 {
		return requested, nil
	}
	return c.App.TagService.Names(ctx)
}

// Stars renders a priority as repeated stars, empty for priority 0
func Stars(priority int) string {
	if priority <= 0 {
		return ""
	}
	return strings.Repeat("★", priority)
}
