package config

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config carries process-level settings. Everything is optional; the
// canonical application state lives in the database, not here.
type Config struct {
	DBPath string
}

// Load reads an optional .env file and the environment. FITLOG_DB overrides
// the default database location; the --db flag still wins over both.
func Load(log *zap.Logger) *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, using system env")
	}
	return &Config{
		DBPath: os.Getenv("FITLOG_DB"),
	}
}
