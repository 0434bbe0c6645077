package database

import (
	"context"

	"github.com/thenoetrevino/myday/internal/models"
)

// DataRepository defines whole-database operations.
type DataRepository interface {
	GetStats(ctx context.Context) (models.Stats, error)
	ImportData(ctx context.Context, tags []models.Tag, tasks []models.Task) (int, error)
	BackupTo(ctx context.Context, destPath string) error
}
