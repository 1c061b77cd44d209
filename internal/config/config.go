// Package config loads kanban settings from a YAML file, an optional .env
// file and KANBAN_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/kanban/internal/config/colors"
)

const (
	BackendSQLite = "sqlite"
	BackendHTTP   = "http"

	DefaultServerAddr  = ":8080"
	DefaultCacheTTL    = 30 * time.Second
	DefaultMaxInFlight = 8
	DefaultLogLevel    = "info"
)

// Config represents the application configuration
type Config struct {
	Backend     BackendConfig      `yaml:"backend"`
	Persistence PersistenceConfig  `yaml:"persistence"`
	Sync        SyncConfig         `yaml:"sync"`
	Server      ServerConfig       `yaml:"server"`
	Log         LogConfig          `yaml:"log"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// BackendConfig selects where boards are stored
type BackendConfig struct {
	Kind   string `yaml:"kind"`    // sqlite or http
	URL    string `yaml:"url"`     // base URL of a kanband server, for http
	DBPath string `yaml:"db_path"` // empty means ~/.kanban/kanban.db
}

// PersistenceConfig chooses between live backend calls and simulation
type PersistenceConfig struct {
	Mode string `yaml:"mode"` // live or simulated
}

type SyncConfig struct {
	MaxInFlight int           `yaml:"max_inflight"`
	CallTimeout time.Duration `yaml:"call_timeout"` // zero means no timeout
}

type ServerConfig struct {
	Addr     string        `yaml:"addr"`
	RedisURL string        `yaml:"redis_url"` // empty disables the snapshot cache
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"` // empty means ~/.kanban/logs/kanban.log
}

// Default returns a config with every default applied
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// loadThemeFile loads and merges theme from KANBAN_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("KANBAN_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// loadDotEnv reads KANBAN_ENV_FILE, or ./.env, into the environment without
// overriding variables that are already set. A missing file is not an error.
func loadDotEnv() error {
	path := os.Getenv("KANBAN_ENV_FILE")
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	config := &Config{}
	configPath, err := getConfigPath()
	if err == nil {
		data, readErr := os.ReadFile(configPath)
		switch {
		case readErr == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
			}
		case !errors.Is(readErr, fs.ErrNotExist):
			return nil, readErr
		}
	}

	loadThemeFile(config)
	if err := config.applyEnv(); err != nil {
		return nil, err
	}
	config.applyNoColor()

	// Fill in any missing values with defaults
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
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

// Path returns the location Load reads and Save writes
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if explicit := os.Getenv("KANBAN_CONFIG"); explicit != "" {
		return explicit, nil
	}

	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "kanban", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "kanban", "config.yaml"), nil
}

// applyEnv overrides file values with KANBAN_* environment variables
func (c *Config) applyEnv() error {
	strs := map[string]*string{
		"KANBAN_BACKEND":          &c.Backend.Kind,
		"KANBAN_BACKEND_URL":      &c.Backend.URL,
		"KANBAN_DB_PATH":          &c.Backend.DBPath,
		"KANBAN_PERSISTENCE_MODE": &c.Persistence.Mode,
		"KANBAN_SERVER_ADDR":      &c.Server.Addr,
		"KANBAN_REDIS_URL":        &c.Server.RedisURL,
		"KANBAN_LOG_LEVEL":        &c.Log.Level,
		"KANBAN_LOG_PATH":         &c.Log.Path,
	}
	for key, dst := range strs {
		if v, ok := os.LookupEnv(key); ok {
			*dst = strings.TrimSpace(v)
		}
	}

	if v := os.Getenv("KANBAN_SYNC_MAX_INFLIGHT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("KANBAN_SYNC_MAX_INFLIGHT: %w", err)
		}
		c.Sync.MaxInFlight = n
	}

	durations := map[string]*time.Duration{
		"KANBAN_SYNC_CALL_TIMEOUT": &c.Sync.CallTimeout,
		"KANBAN_CACHE_TTL":         &c.Server.CacheTTL,
	}
	for key, dst := range durations {
		if v := os.Getenv(key); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			*dst = d
		}
	}
	return nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Backend.Kind == "" {
		c.Backend.Kind = BackendSQLite
	}
	if c.Persistence.Mode == "" {
		c.Persistence.Mode = "live"
	}
	if c.Sync.MaxInFlight <= 0 {
		c.Sync.MaxInFlight = DefaultMaxInFlight
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultServerAddr
	}
	if c.Server.CacheTTL <= 0 {
		c.Server.CacheTTL = DefaultCacheTTL
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	c.ColorScheme.ApplyDefaults()
}

// Validate reports the first invalid setting
func (c *Config) Validate() error {
	switch c.Backend.Kind {
	case BackendSQLite:
	case BackendHTTP:
		if c.Backend.URL == "" {
			return errors.New("backend.url is required when backend.kind is http")
		}
	default:
		return fmt.Errorf("backend.kind %q is not sqlite or http", c.Backend.Kind)
	}

	switch c.Persistence.Mode {
	case "live", "simulated":
	default:
		return fmt.Errorf("persistence.mode %q is not live or simulated", c.Persistence.Mode)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not debug, info, warn or error", c.Log.Level)
	}
	return nil
}
