package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "MOODKEEPER"

// envConfig mirrors Config for envconfig. Unset variables leave the
// pointers nil so they do not clobber earlier sources.
type envConfig struct {
	Backend        *string        `envconfig:"BACKEND"`
	DatabasePath   *string        `envconfig:"DATABASE_PATH"`
	RedisAddr      *string        `envconfig:"REDIS_ADDR"`
	RedisDB        *int           `envconfig:"REDIS_DB"`
	RedisKeyPrefix *string        `envconfig:"REDIS_KEY_PREFIX"`
	ExportDir      *string        `envconfig:"EXPORT_DIR"`
	LogLevel       *string        `envconfig:"LOG_LEVEL"`
	AlertTimeout   *time.Duration `envconfig:"ALERT_TIMEOUT"`
}

func parseEnv(cfg *Config) error {
	var ec envConfig
	if err := envconfig.Process(envPrefix, &ec); err != nil {
		return fmt.Errorf("failed to process environment variables: %w", err)
	}

	setIf(&cfg.Backend, ec.Backend)
	setIf(&cfg.DatabasePath, ec.DatabasePath)
	setIf(&cfg.RedisAddr, ec.RedisAddr)
	setIf(&cfg.RedisDB, ec.RedisDB)
	setIf(&cfg.RedisKeyPrefix, ec.RedisKeyPrefix)
	setIf(&cfg.ExportDir, ec.ExportDir)
	setIf(&cfg.LogLevel, ec.LogLevel)
	setIf(&cfg.AlertTimeout, ec.AlertTimeout)
	return nil
}
