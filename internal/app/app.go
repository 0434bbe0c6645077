package app

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/thenoetrevino/myday/internal/database"
	calendarservice "github.com/thenoetrevino/myday/internal/services/calendar"
	tagservice "github.com/thenoetrevino/myday/internal/services/tag"
	taskservice "github.com/thenoetrevino/myday/internal/services/task"
	transferservice "github.com/thenoetrevino/myday/internal/services/transfer"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	logger *slog.Logger
	now    func() time.Time

	// Service layer (business logic)
	TaskService     taskservice.Service
	TagService      tagservice.Service
	CalendarService calendarservice.Service
	TransferService transferservice.Service
}

// New creates a new App with all services initialized.
// The caller keeps ownership of db.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	repo := database.NewRepository(db)

	return &App{
		repo:            repo,
		logger:          cfg.logger,
		now:             cfg.now,
		TaskService:     taskservice.NewService(repo),
		TagService:      tagservice.NewService(repo),
		CalendarService: calendarservice.NewService(repo),
		TransferService: transferservice.NewService(repo),
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Now returns the current time from the app clock
func (a *App) Now() time.Time {
	return a.now()
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close performs cleanup of application resources.
// The database handle belongs to the caller and is not closed here.
func (a *App) Close() error {
	a.logger.Debug("app closed")
	return nil
}
