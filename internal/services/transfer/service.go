package transfer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/thenoetrevino/myday/internal/database"
	"github.com/thenoetrevino/myday/internal/models"
)

// Service defines whole-database operations: export, import, backup and stats
type Service interface {
	Export(ctx context.Context, w io.Writer) error
	Import(ctx context.Context, r io.Reader) (int, error)
	Backup(ctx context.Context, dir string, now time.Time) (string, error)
	Stats(ctx context.Context) (models.Stats, error)
}

// Store is the subset of the data store the transfer service needs
type Store interface {
	database.TaskReader
	database.TagRepository
	database.DataRepository
}

type service struct {
	store Store
}

// NewService creates a new transfer service
func NewService(store Store) Service {
	return &service{store: store}
}

// Export writes every tag and task as an indented JSON document
func (s *service) Export(ctx context.Context, w io.Writer) error {
	tags, err := s.store.ListTags(ctx)
	if err != nil {
		return err
	}
	tasks, err := s.store.AllTasks(ctx)
	if err != nil {
		return err
	}

	doc := Document{
		Version: FormatVersion,
		Tags:    make([]models.Tag, 0, len(tags)),
		Tasks:   tasks,
	}
	for _, t := range tags {
		doc.Tags = append(doc.Tags, *t)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}

	slog.Info("data exported", "tags", len(doc.Tags), "tasks", len(doc.Tasks))
	return nil
}

// Import reads a document produced by Export. Tags that already exist are
// kept; every task is appended with a new ID. Nothing is written when the
// document is invalid.
func (s *service) Import(ctx context.Context, r io.Reader) (int, error) {
	var doc importDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	tags, tasks, err := doc.records()
	if err != nil {
		return 0, err
	}

	count, err := s.store.ImportData(ctx, tags, tasks)
	if err != nil {
		return 0, err
	}

	slog.Info("data imported", "tags", len(tags), "tasks", count)
	return count, nil
}

// Backup copies the database into dir as myday_backup_YYYYMMDD_HHMMSS.db and
// returns the new file's path
func (s *service) Backup(ctx context.Context, dir string, now time.Time) (string, error) {
	if dir == "" {
		return "", ErrEmptyBackupDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	path, err := freeBackupPath(dir, now)
	if err != nil {
		return "", err
	}
	if err := s.store.BackupTo(ctx, path); err != nil {
		return "", err
	}

	slog.Info("database backed up", "path", path)
	return path, nil
}

// freeBackupPath names the backup after now. VACUUM INTO refuses to
// overwrite, so a second backup within the same second gets a _2, _3, ...
// suffix.
func freeBackupPath(dir string, now time.Time) (string, error) {
	base := "myday_backup_" + now.Format("20060102_150405")
	path := filepath.Join(dir, base+".db")
	for n := 2; ; n++ {
		_, err := os.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			return path, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to check backup path: %w", err)
		}
		path = filepath.Join(dir, fmt.Sprintf("%s_%d.db", base, n))
	}
}

// Stats returns the aggregate task counters
func (s *service) Stats(ctx context.Context) (models.Stats, error) {
	return s.store.GetStats(ctx)
}
