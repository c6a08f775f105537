package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// OpenAIConfig holds the chat-completion backend settings.
type OpenAIConfig struct {
	// APIKey may be left empty in the file and supplied via the
	// OPENAI_API_KEY environment variable instead.
	APIKey string `yaml:"api_key"`
	// Model is the chat model name. Empty means the built-in default.
	Model string `yaml:"model"`
}

// GoogleConfig holds the OAuth client used for Calendar sync. All three
// fields must be set for the sync routes to work; otherwise they respond
// with a configuration error.
type GoogleConfig struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	RedirectURI  string `yaml:"redirect_uri"`
}

// Config is the top-level application configuration.
type Config struct {
	// Listen is the HTTP listen address.
	Listen string `yaml:"listen"`

	// Timezone is the IANA zone used for "today" and calendar timestamps.
	Timezone string `yaml:"timezone"`

	// DatabasePath is the SQLite file location.
	DatabasePath string `yaml:"database_path"`

	// SessionSecret signs session cookies. Generated on first run if empty.
	SessionSecret string `yaml:"session_secret"`

	OpenAI OpenAIConfig `yaml:"openai"`
	Google GoogleConfig `yaml:"google"`
}

// Default returns an in-memory default configuration.
func Default() *Config {
	return &Config{
		Listen:       "127.0.0.1:8080",
		Timezone:     "Local",
		DatabasePath: "dayplan.db",
	}
}

// Normalize fills in missing values so partially-filled configs still
// behave correctly.
func (c *Config) Normalize() {
	if c.Listen == "" {
		c.Listen = "127.0.0.1:8080"
	}
	if c.Timezone == "" {
		c.Timezone = "Local"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "dayplan.db"
	}
	if c.OpenAI.APIKey == "" {
		c.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if c.SessionSecret == "" {
		c.SessionSecret = randomSecret()
	}
}

// Load reads the YAML config at path. A missing file is created with
// defaults (including a fresh session secret) and 0600 permissions, so
// first runs work without manual setup.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := Default()
		cfg.Normalize()
		if err := cfg.Save(path); err != nil {
			return nil, fmt.Errorf("failed to write initial config: %w", err)
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Normalize()
	return cfg, nil
}

// Save writes the config as YAML with owner-only permissions; the file
// carries the OpenAI key and session secret.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// randomSecret returns 32 random bytes hex-encoded.
func randomSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		// rand.Read never fails on supported platforms.
		panic(err)
	}
	return hex.EncodeToString(buf)
}
