package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	DatabasePath string      `yaml:"database_path"`
	BackupDir    string      `yaml:"backup_dir"`
	Preferences  Preferences `yaml:"preferences"`
	ColorScheme  ColorScheme `yaml:"theme"`
}

// Preferences are the user-facing toggles
type Preferences struct {
	// ConfirmDelete asks before deleting a task unless --force is given
	ConfirmDelete bool `yaml:"confirm_delete"`
	// WeekStart is "monday" or "sunday"
	WeekStart string `yaml:"week_start"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	c := baseConfig()
	c.applyDefaults()
	return c
}

// baseConfig holds the defaults a config file is unmarshalled over. Paths
// stay empty so they can be derived after the file and env are applied.
func baseConfig() *Config {
	return &Config{
		Preferences: Preferences{
			ConfirmDelete: true,
			WeekStart:     "monday",
		},
	}
}

// loadThemeFile loads and merges theme from MYDAY_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("MYDAY_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// WeekStartDay converts the week_start preference to a time.Weekday
func (p Preferences) WeekStartDay() time.Weekday {
	if strings.EqualFold(p.WeekStart, "sunday") {
		return time.Sunday
	}
	return time.Monday
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	config := baseConfig()

	configPath, err := getConfigPath()
	if err == nil {
		data, err := os.ReadFile(configPath)
		switch {
		case os.IsNotExist(err):
			// Keep defaults
		case err != nil:
			return nil, err
		default:
			// Unmarshal over the defaults so missing keys keep their value
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
			}
		}
	}

	// MYDAY_DB points at a different database without touching the file
	if dbPath := os.Getenv("MYDAY_DB"); dbPath != "" {
		config.DatabasePath = dbPath
	}

	// Load theme from MYDAY_THEME_FILE if set
	loadThemeFile(config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the location Load reads from
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "myday", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "myday", "config.yaml"), nil
}

// dataDir is where the database and backups live by default
func dataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(homeDir, ".myday")
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.DatabasePath == "" {
		c.DatabasePath = filepath.Join(dataDir(), "myday.db")
	}
	if c.BackupDir == "" {
		c.BackupDir = filepath.Join(filepath.Dir(c.DatabasePath), "backups")
	}
	if c.Preferences.WeekStart == "" {
		c.Preferences.WeekStart = "monday"
	}
	c.ColorScheme.ApplyDefaults()
}
