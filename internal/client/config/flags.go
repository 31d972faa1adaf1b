package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/moodkeeper/internal/flagx"
)

var knownFlags = []string{"-b", "-d", "-r", "-e", "-l"}

// parseFlags overlays cfg with the short flags listed in the package doc.
// Other arguments (such as -c) are filtered out beforehand.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("moodkeeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Backend, "b", cfg.Backend, "storage backend (sqlite, redis, memory)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "SQLite database file")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "Redis address")
	fs.StringVar(&cfg.ExportDir, "e", cfg.ExportDir, "export directory")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	return fs.Parse(flagx.FilterArgs(args, knownFlags))
}
