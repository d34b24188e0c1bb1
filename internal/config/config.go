package config

import (
	"errors"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fitcoach/website-kb/internal/chunker"
)

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr string `yaml:"addr"`
	// AdminToken guards the admin routes when set; empty disables the guard.
	AdminToken string `yaml:"admin_token"`
}

// StorageConfig locates the persisted knowledge-base artifacts.
type StorageConfig struct {
	SourcePath       string `yaml:"source_path"`
	IndexPath        string `yaml:"index_path"`
	SiteSettingsPath string `yaml:"site_settings_path"`
}

// EmbedderConfig configures the OpenAI embeddings client.
type EmbedderConfig struct {
	BaseURL     string `yaml:"base_url"`
	APIKeyEnv   string `yaml:"api_key_env"`
	Model       string `yaml:"model"`
	Dimensions  int    `yaml:"dimensions"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// ChunkerConfig configures how the source document is split into chunks.
// OverlapChars is a pointer so an explicit 0 (overlap disabled) is
// distinguishable from an unset field.
type ChunkerConfig struct {
	MaxChars     int  `yaml:"max_chars"`
	OverlapChars *int `yaml:"overlap_chars"`
}

// Overlap returns the configured overlap in runes.
func (c ChunkerConfig) Overlap() int {
	if c.OverlapChars == nil {
		return chunker.DefaultOverlapChars
	}
	return *c.OverlapChars
}

// LogConfig configures structured logging.
type LogConfig struct {
	// Path enables rotating file output when set; empty logs to stdout.
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// SlogLevel maps the configured level name onto a slog level.
func (c LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Server   ServerConfig   `yaml:"server"`
	Storage  StorageConfig  `yaml:"storage"`
	Embedder EmbedderConfig `yaml:"embedder"`
	Chunker  ChunkerConfig  `yaml:"chunker"`
	Log      LogConfig      `yaml:"log"`
}

// Load reads a config from the given path. If the file does not exist,
// returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{}
	applyConfigDefaults(cfg)
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Storage.SourcePath == "" {
		cfg.Storage.SourcePath = "data/website_kb_source.md"
	}
	if cfg.Storage.IndexPath == "" {
		cfg.Storage.IndexPath = "data/website_kb_index.json"
	}
	if cfg.Embedder.APIKeyEnv == "" {
		cfg.Embedder.APIKeyEnv = "OPENAI_API_KEY"
	}
	if cfg.Embedder.Model == "" {
		cfg.Embedder.Model = "text-embedding-3-small"
	}
	if cfg.Embedder.Dimensions == 0 {
		cfg.Embedder.Dimensions = 1536
	}
	if cfg.Embedder.TimeoutSecs == 0 {
		cfg.Embedder.TimeoutSecs = 30
	}
	if cfg.Chunker.MaxChars == 0 {
		cfg.Chunker.MaxChars = 1200
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}
