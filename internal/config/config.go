// Package config gathers runtime settings from the environment.
// Command-line flags are applied on top by the cobra commands.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"
)

// Store drivers
const (
	StoreFile   = "file"
	StoreDuckDB = "duckdb"
	StoreSQLite = "sqlite"
)

// DefaultStorageKey is the key the session list is stored under
const DefaultStorageKey = "learningJourneyTopics"

// Config holds all learning-journey settings.
type Config struct {
	// DataDir holds the store and the log file (LEARNING_JOURNEY_DATA_DIR)
	DataDir string

	// Store selects the backend: file, duckdb or sqlite (LEARNING_JOURNEY_STORE)
	Store string

	// StorageKey is the key the session list lives under (LEARNING_JOURNEY_STORAGE_KEY)
	StorageKey string

	// WebhookURL enables remote topic generation when set (LEARNING_JOURNEY_WEBHOOK_URL)
	WebhookURL string

	// WebhookTimeout bounds a single generation request (LEARNING_JOURNEY_WEBHOOK_TIMEOUT)
	WebhookTimeout time.Duration

	// GenerateDelay is the simulated latency of the local generator (LEARNING_JOURNEY_GENERATE_DELAY)
	GenerateDelay time.Duration

	// DesktopNotify mirrors toasts to desktop notifications (LEARNING_JOURNEY_DESKTOP_NOTIFY)
	DesktopNotify bool

	// LogLevel is debug, info, warn or error (LEARNING_JOURNEY_LOG_LEVEL)
	LogLevel string
}

var (
	cfg     *Config
	cfgOnce sync.Once
)

// Load returns the process-wide configuration, reading the environment once.
func Load() *Config {
	cfgOnce.Do(func() {
		cfg = &Config{
			DataDir:        getEnvDefault("LEARNING_JOURNEY_DATA_DIR", defaultDataDir()),
			Store:          getEnvDefault("LEARNING_JOURNEY_STORE", StoreFile),
			StorageKey:     getEnvDefault("LEARNING_JOURNEY_STORAGE_KEY", DefaultStorageKey),
			WebhookURL:     os.Getenv("LEARNING_JOURNEY_WEBHOOK_URL"),
			WebhookTimeout: getEnvDuration("LEARNING_JOURNEY_WEBHOOK_TIMEOUT", 10*time.Second),
			GenerateDelay:  getEnvDuration("LEARNING_JOURNEY_GENERATE_DELAY", 1500*time.Millisecond),
			DesktopNotify:  getEnvBool("LEARNING_JOURNEY_DESKTOP_NOTIFY", false),
			LogLevel:       getEnvDefault("LEARNING_JOURNEY_LOG_LEVEL", "info"),
		}
	})
	return cfg
}

// Reset forgets the cached configuration (for testing).
func Reset() {
	cfgOnce = sync.Once{}
	cfg = nil
}

// StorePath returns the file backing the selected store driver.
func (c *Config) StorePath() string {
	switch c.Store {
	case StoreDuckDB:
		return filepath.Join(c.DataDir, "journey.duckdb")
	case StoreSQLite:
		return filepath.Join(c.DataDir, "journey.sqlite")
	default:
		return filepath.Join(c.DataDir, "storage.json")
	}
}

// LogPath returns the log file location
func (c *Config) LogPath() string {
	return filepath.Join(c.DataDir, "learning-journey.log")
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "learning-journey")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".learning-journey")
	}
	return ".learning-journey"
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return def
	}
	return d
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
