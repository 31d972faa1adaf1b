package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/moodkeeper/internal/flagx"
	"github.com/dmitrijs2005/moodkeeper/internal/timex"
)

// JsonConfig is the DTO for the JSON config file. Pointer fields tell an
// omitted key apart from an explicit zero value.
type JsonConfig struct {
	Backend        *string         `json:"backend"`
	DatabasePath   *string         `json:"database_path"`
	RedisAddr      *string         `json:"redis_addr"`
	RedisDB        *int            `json:"redis_db"`
	RedisKeyPrefix *string         `json:"redis_key_prefix"`
	ExportDir      *string         `json:"export_dir"`
	LogLevel       *string         `json:"log_level"`
	AlertTimeout   *timex.Duration `json:"alert_timeout"`
}

// parseJson overlays cfg with the file named by -c/-config, if any.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setIf(&cfg.Backend, jc.Backend)
	setIf(&cfg.DatabasePath, jc.DatabasePath)
	setIf(&cfg.RedisAddr, jc.RedisAddr)
	setIf(&cfg.RedisDB, jc.RedisDB)
	setIf(&cfg.RedisKeyPrefix, jc.RedisKeyPrefix)
	setIf(&cfg.ExportDir, jc.ExportDir)
	setIf(&cfg.LogLevel, jc.LogLevel)
	if jc.AlertTimeout != nil {
		cfg.AlertTimeout = jc.AlertTimeout.Duration
	}
	return nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
