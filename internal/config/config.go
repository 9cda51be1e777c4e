package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/trackdeck/trackdeck/internal/config/colors"
)

// Server holds connection settings for the tracker backend.
// Every field can be overridden from the environment so the config file
// never has to hold per-deployment values.
type Server struct {
	URL            string        `yaml:"url" env:"TRACKDECK_SERVER_URL"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"TRACKDECK_REQUEST_TIMEOUT"`
	ChatPoll       time.Duration `yaml:"chat_poll" env:"TRACKDECK_CHAT_POLL"`
}

// Config represents the application configuration
type Config struct {
	Server      Server             `yaml:"server"`
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// Load loads config from the user's config directory, applies defaults
// for missing values, then applies environment overrides on top.
// Returns the default config if the file doesn't exist.
func Load() (*Config, error) {
	config := &Config{
		Server:      defaultServer(),
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: *colors.Default(),
	}

	configPath, err := getConfigPath()
	if err == nil {
		if data, readErr := os.ReadFile(configPath); readErr == nil {
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, err
			}
		}
	}

	loadThemeFile(config)
	config.applyDefaults()

	// Environment wins over the file.
	if err := env.Parse(&config.Server); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Dir returns the per-user directory holding config, the session token
// and the snapshot cache.
func Dir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "trackdeck"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "trackdeck"), nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// loadThemeFile loads and merges theme from TRACKDECK_THEME_FILE
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("TRACKDECK_THEME_FILE")
	if themeFile == "" {
		return
	}

	if _, err := os.Stat(themeFile); err != nil {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

func defaultServer() Server {
	return Server{
		URL:            "http://localhost:8080",
		RequestTimeout: 15 * time.Second,
		ChatPoll:       5 * time.Second,
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	defaults := defaultServer()
	if c.Server.URL == "" {
		c.Server.URL = defaults.URL
	}
	if c.Server.RequestTimeout <= 0 {
		c.Server.RequestTimeout = defaults.RequestTimeout
	}
	if c.Server.ChatPoll <= 0 {
		c.Server.ChatPoll = defaults.ChatPoll
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
