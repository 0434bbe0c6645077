package tag

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/thenoetrevino/myday/internal/database"
	"github.com/thenoetrevino/myday/internal/models"
	"github.com/thenoetrevino/myday/internal/services/validation"
)

// Service defines all tag-related business operations
type Service interface {
	ListTags(ctx context.Context) ([]*models.Tag, error)
	Names(ctx context.Context) ([]string, error)
	ColorMap(ctx context.Context) (map[string]string, error)
	AddTag(ctx context.Context, req AddTagRequest) (bool, error)
}

// AddTagRequest encapsulates the data needed to create a tag
type AddTagRequest struct {
	Name  string `validate:"required,max=50"`
	Color string `validate:"required,hexcolor"`
}

type service struct {
	repo     database.TagRepository
	validate *validator.Validate
}

// NewService creates a new tag service
func NewService(repo database.TagRepository) Service {
	return &service{
		repo:     repo,
		validate: validation.New(),
	}
}

// ListTags returns every tag in creation order
func (s *service) ListTags(ctx context.Context) ([]*models.Tag, error) {
	return s.repo.ListTags(ctx)
}

// Names returns tag names in creation order
func (s *service) Names(ctx context.Context) ([]string, error) {
	tags, err := s.repo.ListTags(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}
	return names, nil
}

// ColorMap maps tag name to color
func (s *service) ColorMap(ctx context.Context) (map[string]string, error) {
	tags, err := s.repo.ListTags(ctx)
	if err != nil {
		return nil, err
	}
	colors := make(map[string]string, len(tags))
	for _, t := range tags {
		colors[t.Name] = t.Color
	}
	return colors, nil
}

// AddTag creates a tag. It reports false, with no error, when a tag with
// the same name already exists; the existing color is kept.
func (s *service) AddTag(ctx context.Context, req AddTagRequest) (bool, error) {
	if err := s.validate.Struct(req); err != nil {
		switch validation.FirstFailure(err) {
		case "Name":
			if req.Name == "" {
				return false, ErrEmptyName
			}
			return false, ErrNameTooLong
		case "Color":
			return false, ErrInvalidColor
		}
		return false, err
	}

	added, err := s.repo.AddTag(ctx, req.Name, req.Color)
	if err != nil {
		return false, fmt.Errorf("failed to add tag %q: %w", req.Name, err)
	}
	if !added {
		slog.Debug("tag already exists", "name", req.Name)
	}
	return added, nil
}
