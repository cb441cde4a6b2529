package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database  DatabaseConfig
	Assistant AssistantConfig
	UI        UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// AssistantConfig holds assistant backend settings.
type AssistantConfig struct {
	Provider string
	DelayMS  int
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DateFormat     string
	CurrencySymbol string
	BuyerInitials  string
}

// Load reads configuration from file and env. Env var overrides use prefix BUYERDESK_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "buyerdesk", "buyerdesk.db"))
	v.SetDefault("assistant.provider", "canned")
	v.SetDefault("assistant.delay_ms", 1000)
	v.SetDefault("ui.date_format", "Jan 2, 2006")
	v.SetDefault("ui.currency_symbol", "$")
	v.SetDefault("ui.buyer_initials", "JD")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("BUYERDESK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "buyerdesk"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("BUYERDESK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
// Used for non-sensitive preferences edited from inside the TUI.
func Save(cfg Config) error {
	path := os.Getenv("BUYERDESK_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "buyerdesk", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("assistant.provider", cfg.Assistant.Provider)
	v.Set("assistant.delay_ms", cfg.Assistant.DelayMS)
	v.Set("ui.date_format", cfg.UI.DateFormat)
	v.Set("ui.currency_symbol", cfg.UI.CurrencySymbol)
	v.Set("ui.buyer_initials", cfg.UI.BuyerInitials)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
