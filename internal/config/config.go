package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the bot needs from the environment.
type Config struct {
	TelegramToken string `env:"TELEGRAM_TOKEN,required,notEmpty"`
	AdminID       int64  `env:"ADMIN_USER_ID,required"`
	DBFile        string `env:"DB_FILE" envDefault:"players.json"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat     string `env:"LOG_FORMAT" envDefault:"console"`
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
