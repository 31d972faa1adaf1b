package config

import (
	"fmt"
	"os"
	"time"
)

const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config holds runtime settings for the MoodKeeper CLI.
type Config struct {
	Backend        string
	DatabasePath   string
	RedisAddr      string
	RedisDB        int
	RedisKeyPrefix string
	ExportDir      string
	LogLevel       string

	// AlertTimeout is how long an inline message stays on screen.
	AlertTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Backend = BackendSQLite
	c.DatabasePath = "data/moodkeeper.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.RedisDB = 0
	c.RedisKeyPrefix = "moodkeeper:"
	c.ExportDir = "exports"
	c.LogLevel = "info"
	c.AlertTimeout = 2500 * time.Millisecond
}

// Validate rejects configurations no backend can start with.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendSQLite:
		if c.DatabasePath == "" {
			return fmt.Errorf("database path is required for the %s backend", c.Backend)
		}
	case BackendRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("redis address is required for the %s backend", c.Backend)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unsupported backend %q", c.Backend)
	}
	if c.AlertTimeout < 0 {
		return fmt.Errorf("alert timeout must not be negative")
	}
	return nil
}

// LoadConfig builds a Config from defaults, the JSON file, the environment
// and os.Args, in that order.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
