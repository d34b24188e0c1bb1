package main

import (
	"io"
	"log/slog"
	"os"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/fitcoach/website-kb/internal/chunker"
	"github.com/fitcoach/website-kb/internal/config"
	"github.com/fitcoach/website-kb/internal/domain"
	"github.com/fitcoach/website-kb/internal/embedding/openai"
	"github.com/fitcoach/website-kb/internal/kb"
	"github.com/fitcoach/website-kb/internal/siteconfig"
	"github.com/fitcoach/website-kb/internal/store"
)

// setup loads the config, installs the global logger, and assembles the
// knowledge-base service from its collaborators.
func setup(configPath string) (*kb.Service, *config.AppConfig, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	setupLogger(cfg.Log)

	var site domain.SiteConfig
	if cfg.Storage.SiteSettingsPath != "" {
		site = siteconfig.NewFileProvider(cfg.Storage.SiteSettingsPath)
	}

	embedder := openai.NewClient(openai.Config{
		BaseURL:    cfg.Embedder.BaseURL,
		APIKeyEnv:  cfg.Embedder.APIKeyEnv,
		Model:      cfg.Embedder.Model,
		Dimensions: cfg.Embedder.Dimensions,
		Timeout:    time.Duration(cfg.Embedder.TimeoutSecs) * time.Second,
	})

	svc := kb.NewService(
		store.NewSourceFile(cfg.Storage.SourcePath),
		store.NewIndexFile(cfg.Storage.IndexPath),
		chunker.NewParagraphChunker(cfg.Chunker.MaxChars, cfg.Chunker.Overlap()),
		embedder,
		site,
	)
	return svc, cfg, nil
}

func setupLogger(cfg config.LogConfig) {
	var writer io.Writer = os.Stdout
	if cfg.Path != "" {
		writer = &lumberjack.Logger{
			Filename:   cfg.Path,
			MaxSize:    100, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
	}
	l := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(l)
}
