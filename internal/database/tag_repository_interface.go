package database

import (
	"context"

	"github.com/thenoetrevino/myday/internal/models"
)

// TagRepository defines operations for tags.
type TagRepository interface {
	ListTags(ctx context.Context) ([]*models.Tag, error)
	AddTag(ctx context.Context, name, color string) (bool, error)
}
