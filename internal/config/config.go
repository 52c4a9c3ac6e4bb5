package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileName is the workspace configuration file.
const FileName = "financely.yaml"

// Config represents the top-level financely.yaml configuration.
type Config struct {
	Profile  ProfileConfig  `yaml:"profile"`
	Currency CurrencyConfig `yaml:"currency"`
	AI       AIConfig       `yaml:"ai"`
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
}

// ProfileConfig names whose money this workspace tracks.
type ProfileConfig struct {
	Name string `yaml:"name"`
}

// CurrencyConfig controls how amounts are printed.
type CurrencyConfig struct {
	Symbol string `yaml:"symbol"`
}

// AIConfig selects the text-generation model used for live advice.
type AIConfig struct {
	Model     string        `yaml:"model"`
	MaxTokens int64         `yaml:"max_tokens"`
	APIKeyEnv string        `yaml:"api_key_env"` // environment variable holding the key
	BaseURL   string        `yaml:"base_url,omitempty"`
	Timeout   time.Duration `yaml:"timeout"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LogConfig sets the diagnostic log level: debug, info, warn or error.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads a financely.yaml file from disk. Missing fields keep their
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default("")
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadWorkspace reads <dir>/financely.yaml, falling back to defaults when
// the workspace has none.
func LoadWorkspace(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return Default(""), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new workspace.
func Default(profileName string) *Config {
	return &Config{
		Profile: ProfileConfig{
			Name: profileName,
		},
		Currency: CurrencyConfig{
			Symbol: "₹",
		},
		AI: AIConfig{
			Model:     "claude-sonnet-4-20250514",
			MaxTokens: 1024,
			APIKeyEnv: "ANTHROPIC_API_KEY",
			Timeout:   30 * time.Second,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// APIKey returns the live-advice credential. A .env file in dir is read
// first; variables already set in the environment win over it. An empty
// result means live advice is not configured.
func (c *Config) APIKey(dir string) (string, error) {
	if c.AI.APIKeyEnv == "" {
		return "", nil
	}
	err := godotenv.Load(filepath.Join(dir, ".env"))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("loading .env: %w", err)
	}
	return strings.TrimSpace(os.Getenv(c.AI.APIKeyEnv)), nil
}

// LogLevel parses Log.Level. Unknown values fall back to info.
func (c *Config) LogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
