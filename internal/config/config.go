package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config keeps runtime settings for the service.
type Config struct {
	Listen      string `yaml:"listen"`
	DatabaseURL string `yaml:"database_url"`

	// RequireAuth decides the storage mode: when true every request must
	// carry an owner id, when false requests without one fall back to the
	// single implicit local owner.
	RequireAuth bool `yaml:"require_auth"`

	// ReminderTime is the local HH:MM at which the daily reminder sweep
	// runs. One extra sweep always runs at startup.
	ReminderTime string `yaml:"reminder_time"`

	TicketmasterAPIKey string `yaml:"ticketmaster_api_key"`

	// SearchTimeoutSeconds bounds upstream event-search calls.
	SearchTimeoutSeconds int `yaml:"search_timeout_seconds"`

	GeminiAPIKey string `yaml:"gemini_api_key"`
	GeminiModel  string `yaml:"gemini_model"`

	TelegramToken  string `yaml:"telegram_token"`
	TelegramChatID int64  `yaml:"telegram_chat_id"`

	Debug bool `yaml:"debug"`
}

// SearchTimeout returns the event-search timeout as a duration.
func (c Config) SearchTimeout() time.Duration {
	return time.Duration(c.SearchTimeoutSeconds) * time.Second
}

// Default returns the in-memory default configuration.
func Default() Config {
	return Config{
		Listen:      ":8080",
		DatabaseURL: "countdownvibes.db",
		ReminderTime:         "09:00",
		SearchTimeoutSeconds: 15,
		GeminiModel:          "gemini-2.0-flash",
	}
}

// Load reads configuration from the YAML file at path (if it exists) and
// then applies environment-variable overrides. A missing file is not an
// error; absent API keys degrade the related features rather than
// stopping the process.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %q: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist):
			// fall through to defaults + env
		default:
			return cfg, fmt.Errorf("read config %q: %w", path, err)
		}
	}

	applyEnv(&cfg)
	cfg.normalize()

	if err := validateReminderTime(cfg.ReminderTime); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("LISTEN_ADDR")); v != "" {
		cfg.Listen = v
	}
	if v := strings.TrimSpace(os.Getenv("DATABASE_URL")); v != "" {
		cfg.DatabaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("REQUIRE_AUTH")); v != "" {
		cfg.RequireAuth = v == "true" || v == "1"
	}
	if v := strings.TrimSpace(os.Getenv("REMINDER_TIME")); v != "" {
		cfg.ReminderTime = v
	}
	if v := strings.TrimSpace(os.Getenv("TICKETMASTER_API_KEY")); v != "" {
		cfg.TicketmasterAPIKey = v
	}
	if v := strings.TrimSpace(os.Getenv("GEMINI_API_KEY")); v != "" {
		cfg.GeminiAPIKey = v
	}
	if v := strings.TrimSpace(os.Getenv("GEMINI_MODEL")); v != "" {
		cfg.GeminiModel = v
	}
	if v := strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")); v != "" {
		cfg.TelegramToken = v
	}
	if v := strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID")); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.TelegramChatID = id
		}
	}
	if v := strings.TrimSpace(os.Getenv("DEBUG")); v != "" {
		cfg.Debug = v == "true" || v == "1"
	}
}

func (c *Config) normalize() {
	if c.Listen == "" {
		c.Listen = ":8080"
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = "countdownvibes.db"
	}
	if c.ReminderTime == "" {
		c.ReminderTime = "09:00"
	}
	if c.SearchTimeoutSeconds <= 0 {
		c.SearchTimeoutSeconds = 15
	}
	if c.GeminiModel == "" {
		c.GeminiModel = "gemini-2.0-flash"
	}
}

func validateReminderTime(timeStr string) error {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 2 {
		return fmt.Errorf("invalid reminder_time %q, expected HH:MM", timeStr)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return fmt.Errorf("invalid hour in reminder_time %q", timeStr)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return fmt.Errorf("invalid minute in reminder_time %q", timeStr)
	}
	return nil
}
