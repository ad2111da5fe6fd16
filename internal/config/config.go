package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingToken is returned when the Telegram notifier is selected but no
// bot token is configured.
var ErrMissingToken = errors.New("telegram token is required")

// Notifier backends.
const (
	NotifierTelegram = "telegram"
	NotifierDesktop  = "desktop"
	NotifierNone     = "none"
)

// Config keeps runtime settings for the assistant.
type Config struct {
	TelegramToken  string        `mapstructure:"telegram_token"`
	TelegramChatID int64         `mapstructure:"telegram_chat_id"`
	DatabaseURL    string        `mapstructure:"database_url"`
	DataDir        string        `mapstructure:"data_dir"`
	CheckInterval  time.Duration `mapstructure:"check_interval"`
	Notifier       string        `mapstructure:"notifier"`
	HTTPAddr       string        `mapstructure:"http_addr"`
	Location       string        `mapstructure:"location"`
}

// Load reads configuration from an optional config file, a .env file and
// ASSISTANT_* environment variables, in increasing priority. An empty path
// skips the config file.
func Load(path string) (Config, error) {
	// A missing .env is fine.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("assistant")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("telegram_token", "")
	v.SetDefault("telegram_chat_id", 0)
	v.SetDefault("database_url", "")
	v.SetDefault("data_dir", ".")
	v.SetDefault("check_interval", time.Minute)
	v.SetDefault("notifier", NotifierNone)
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("location", "Local")

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return Config{}, fmt.Errorf("stat config %s: %w", path, err)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.TelegramToken = strings.TrimSpace(cfg.TelegramToken)
	cfg.Notifier = strings.ToLower(strings.TrimSpace(cfg.Notifier))

	if cfg.CheckInterval <= 0 {
		cfg.CheckInterval = time.Minute
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = strings.TrimSuffix(cfg.DataDir, "/") + "/daily_assistant.db"
	}

	switch cfg.Notifier {
	case NotifierTelegram:
		if cfg.TelegramToken == "" {
			return cfg, ErrMissingToken
		}
	case NotifierDesktop, NotifierNone:
	default:
		return cfg, fmt.Errorf("unknown notifier %q", cfg.Notifier)
	}
	return cfg, nil
}

// TimeLocation resolves the configured IANA zone name.
func (c Config) TimeLocation() (*time.Location, error) {
	if c.Location == "" || strings.EqualFold(c.Location, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Location)
	if err != nil {
		return nil, fmt.Errorf("load location %s: %w", c.Location, err)
	}
	return loc, nil
}
