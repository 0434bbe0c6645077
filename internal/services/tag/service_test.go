package tag

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/myday/internal/database"
	"github.com/thenoetrevino/myday/internal/models"
	"github.com/thenoetrevino/myday/internal/testutil"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	return NewService(database.NewRepository(testutil.SetupTestDB(t)))
}

func TestListTags_Defaults(t *testing.T) {
	svc := newTestService(t)

	names, err := svc.Names(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"工作", "生活", "学习", "健康", "其他"}, names)

	colors, err := svc.ColorMap(context.Background())
	require.NoError(t, err)
	for _, tag := range models.DefaultTags {
		assert.Equal(t, tag.Color, colors[tag.Name])
	}
}

func TestAddTag(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	added, err := svc.AddTag(ctx, AddTagRequest{Name: "阅读", Color: "#123456"})
	require.NoError(t, err)
	assert.True(t, added)

	tags, err := svc.ListTags(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 6)
	assert.Equal(t, "阅读", tags[5].Name)
	assert.Equal(t, "#123456", tags[5].Color)
}

func TestAddTag_DuplicateKeepsColor(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	added, err := svc.AddTag(ctx, AddTagRequest{Name: "工作", Color: "#000000"})
	require.NoError(t, err)
	assert.False(t, added)

	colors, err := svc.ColorMap(ctx)
	require.NoError(t, err)
	assert.Equal(t, "#5E5CE6", colors["工作"])
}

func TestAddTag_Validation(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name    string
		req     AddTagRequest
		wantErr error
	}{
		{"empty name", AddTagRequest{Color: "#FFFFFF"}, ErrEmptyName},
		{"long name", AddTagRequest{Name: strings.Repeat("a", 51), Color: "#FFFFFF"}, ErrNameTooLong},
		{"missing color", AddTagRequest{Name: "x"}, ErrInvalidColor},
		{"bad color", AddTagRequest{Name: "x", Color: "red"}, ErrInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddTag(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
