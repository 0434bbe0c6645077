package app

import (
	"log/slog"
	"time"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger *slog.Logger
	now    func() time.Time
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithClock replaces time.Now, used for "today" and backup file names
func WithClock(now func() time.Time) Option {
	return func(cfg *appConfig) {
		if now != nil {
			cfg.now = now
		}
	}
}
