// Package config loads runtime configuration for the MoodKeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config (see parseJson).
//  3. Environment variables prefixed with MOODKEEPER_ (see parseEnv).
//  4. Command-line flags (see parseFlags).
//
// Later sources override earlier ones.
//
// Supported flags
//
//	-b string   storage backend: sqlite, redis or memory
//	-d string   SQLite database file
//	-r string   Redis address host:port
//	-e string   directory for exported JSON files
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
//	{
//	  "backend": "sqlite",
//	  "database_path": "data/moodkeeper.db",
//	  "redis_addr": "127.0.0.1:6379",
//	  "redis_db": 0,
//	  "redis_key_prefix": "moodkeeper:",
//	  "export_dir": "exports",
//	  "log_level": "info",
//	  "alert_timeout": "2.5s"
//	}
//
// # Environment
//
//	MOODKEEPER_BACKEND, MOODKEEPER_DATABASE_PATH, MOODKEEPER_REDIS_ADDR,
//	MOODKEEPER_REDIS_DB, MOODKEEPER_REDIS_KEY_PREFIX, MOODKEEPER_EXPORT_DIR,
//	MOODKEEPER_LOG_LEVEL, MOODKEEPER_ALERT_TIMEOUT
package config
