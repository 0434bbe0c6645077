package cli

import (
	"context"

	"github.com/thenoetrevino/myday/internal/app"
	"github.com/thenoetrevino/myday/internal/config"
)

type contextKey string

const (
	appKey    contextKey = "app"
	configKey contextKey = "config"
)

// WithApp makes GetCLIFromContext reuse an existing app instead of opening
// the configured database
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// WithConfig passes an already loaded config to GetCLIFromContext
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// GetCLIFromContext returns a CLI backed by the app stored in ctx, or a new
// one opened from the config in ctx. Without either, the user's config is
// loaded.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, _ := ctx.Value(configKey).(*config.Config)
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		if cfg == nil {
			cfg = config.Default()
		}
		return &CLI{App: a, Config: cfg}, nil
	}

	if cfg != nil {
		return NewCLIWithConfig(ctx, cfg)
	}
	return NewCLI(ctx)
}
