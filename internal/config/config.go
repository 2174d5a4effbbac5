package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration loaded from environment variables.
// BotToken is optional: when set, issued fines are announced in the
// Telegram chat identified by ChatID.
type Config struct {
	LogLevel     string        `envconfig:"LOG_LEVEL" default:"info"`  // debug|info|warn|error
	HTTPAddr     string        `envconfig:"HTTP_ADDR" default:":8080"` // healthz only
	Timezone     string        `envconfig:"TIMEZONE" default:"Europe/Stockholm"`
	ScanInterval time.Duration `envconfig:"SCAN_INTERVAL" default:"1h"`
	BotToken     string        `envconfig:"BOT_TOKEN"`
	ChatID       int64         `envconfig:"CHAT_ID"`
}

// Load reads environment variables into Config.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
