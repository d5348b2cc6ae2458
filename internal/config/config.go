// Package config loads runtime settings from the environment, with an
// optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings.
type Config struct {
	TelegramToken string
	DataDir       string
	AdminIDs      []int64
}

// Load reads the configuration from the environment. A .env file in the
// working directory is applied first when present.
func Load() (*Config, error) {
	// Absent .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		DataDir:       os.Getenv("DATA_DIR"),
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}

	if ids := os.Getenv("ADMIN_USER_IDS"); ids != "" {
		for _, s := range strings.Split(ids, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid admin user id %q: %v", s, err)
			}
			cfg.AdminIDs = append(cfg.AdminIDs, id)
		}
	}
	return cfg, nil
}
