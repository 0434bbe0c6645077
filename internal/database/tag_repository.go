package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/myday/internal/models"
)

// TagRepo handles persistence for tags
type TagRepo struct {
	db *sql.DB
}

// List retrieves all tags in storage order (defaults first)
func (r *TagRepo) List(ctx context.Context) ([]*models.Tag, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, color FROM tags ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer rows.Close()

	tags := []*models.Tag{}
	for rows.Next() {
		tag := &models.Tag{}
		if err := rows.Scan(&tag.Name, &tag.Color); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

// Add inserts a tag. It reports false, without an error, when a tag with
// the same name already exists.
func (r *TagRepo) Add(ctx context.Context, name, color string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO tags (name, color) VALUES (?, ?)`,
		name, color,
	)
	if err != nil {
		return false, fmt.Errorf("failed to add tag %q: %w", name, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

// colorsByName loads the current tag -> color table
func colorsByName(ctx context.Context, q interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
},
) (map[string]string, error) {
	rows, err := q.QueryContext(ctx, `SELECT name, color FROM tags`)
	if err != nil {
		return nil, fmt.Errorf("failed to load tag colors: %w", err)
	}
	defer rows.Close()

	colors := make(map[string]string)
	for rows.Next() {
		var name, color string
		if err := rows.Scan(&name, &color); err != nil {
			return nil, err
		}
		colors[name] = color
	}
	return colors, rows.Err()
}
