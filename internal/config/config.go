package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

type Config struct {
	DefaultLocale    string
	LocalesDir       string
	DatabaseURL      string
	DiscordToken     string
	DiscordChannelID string
	TimeZone         string
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when the variables come from the environment (Docker, CI, etc.).
	}

	cfg := &Config{
		DefaultLocale:    os.Getenv("PBADMIN_LOCALE"),
		LocalesDir:       os.Getenv("PBADMIN_LOCALES_DIR"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		DiscordToken:     os.Getenv("DISCORD_TOKEN"),
		DiscordChannelID: os.Getenv("DISCORD_CHANNEL_ID"),
		TimeZone:         os.Getenv("PBADMIN_TZ"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies defaults and checks every loaded value.
func (c *Config) validate() error {
	c.DefaultLocale = strings.TrimSpace(c.DefaultLocale)
	if c.DefaultLocale == "" {
		c.DefaultLocale = "en"
	}
	if _, err := language.Parse(c.DefaultLocale); err != nil {
		return fmt.Errorf("config: PBADMIN_LOCALE invalid (%q): %w", c.DefaultLocale, err)
	}

	if strings.TrimSpace(c.TimeZone) == "" {
		c.TimeZone = "UTC"
	}

	if c.LocalesDir != "" {
		info, err := os.Stat(c.LocalesDir)
		if err != nil {
			return fmt.Errorf("config: PBADMIN_LOCALES_DIR invalid (%q): %w", c.LocalesDir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("config: PBADMIN_LOCALES_DIR (%q) is not a directory", c.LocalesDir)
		}
	}

	if c.DatabaseURL != "" {
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: DATABASE_URL invalid (%q): %w", c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: DATABASE_URL invalid (%q): missing scheme or host", c.DatabaseURL)
		}
	}

	token := strings.TrimSpace(c.DiscordToken)
	channel := strings.TrimSpace(c.DiscordChannelID)
	if (token == "") != (channel == "") {
		return fmt.Errorf("config: DISCORD_TOKEN and DISCORD_CHANNEL_ID must be set together")
	}
	for _, r := range channel {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: DISCORD_CHANNEL_ID must be a Discord channel ID (digits only)")
		}
	}

	return nil
}

// RequireDatabase reports a config error when no database is configured.
func (c *Config) RequireDatabase() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("config: DATABASE_URL is required for this command")
	}
	return nil
}

// DiscordEnabled reports whether log entries should be announced.
func (c *Config) DiscordEnabled() bool {
	return c.DiscordToken != "" && c.DiscordChannelID != ""
}
