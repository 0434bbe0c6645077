package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/myday/internal/app"
	"github.com/thenoetrevino/myday/internal/config"
	"github.com/thenoetrevino/myday/internal/database"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config
	db     *sql.DB // nil when the app was injected
}

// NewCLI loads the config and opens the configured database
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return NewCLIWithConfig(ctx, cfg)
}

// NewCLIWithConfig opens the database named by an already loaded config
func NewCLIWithConfig(ctx context.Context, cfg *config.Config) (*CLI, error) {
	db, err := database.InitDB(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &CLI{
		App:    app.New(db, app.WithLogger(slog.Default())),
		Config: cfg,
		db:     db,
	}, nil
}

// Close cleans up CLI resources. An injected app is left open for its owner.
func (c *CLI) Close() error {
	if err := c.App.Close(); err != nil {
		return err
	}
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}
