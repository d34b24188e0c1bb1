package openai

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/samber/lo"
	openai "github.com/sashabaranov/go-openai"

	"github.com/fitcoach/website-kb/internal/domain"
)

// Config configures the OpenAI embeddings client.
type Config struct {
	BaseURL    string
	APIKeyEnv  string
	Model      string
	Dimensions int
	Timeout    time.Duration
}

// Client produces embedding vectors via the OpenAI embeddings API.
// It implements the domain.Embedder interface.
type Client struct {
	client     *openai.Client
	apiKey     string
	model      string
	dimensions int
	timeout    time.Duration
}

func NewClient(cfg Config) *Client {
	if cfg.APIKeyEnv == "" {
		cfg.APIKeyEnv = "OPENAI_API_KEY"
	}
	if cfg.Model == "" {
		cfg.Model = string(openai.SmallEmbedding3)
	}
	if cfg.Dimensions <= 0 {
		cfg.Dimensions = 1536
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	key := os.Getenv(cfg.APIKeyEnv)
	occfg := openai.DefaultConfig(key)
	if cfg.BaseURL != "" {
		occfg.BaseURL = cfg.BaseURL
	}
	return &Client{
		client:     openai.NewClientWithConfig(occfg),
		apiKey:     key,
		model:      cfg.Model,
		dimensions: cfg.Dimensions,
		timeout:    cfg.Timeout,
	}
}

// Model returns the embedding model identifier.
func (c *Client) Model() string { return c.model }

// Dimension returns the dimensionality of the produced vectors.
func (c *Client) Dimension() int { return c.dimensions }

// Embed returns an embedding vector for the given text. It fails with
// domain.ErrNoAPIKey when no credential is configured and wraps provider
// failures in *domain.ProviderError.
func (c *Client) Embed(ctx context.Context, text string) ([]float64, error) {
	if c.apiKey == "" {
		return nil, domain.ErrNoAPIKey
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input:      []string{text},
		Model:      openai.EmbeddingModel(c.model),
		Dimensions: c.dimensions,
	})
	if err != nil {
		return nil, &domain.ProviderError{Err: err}
	}
	if len(resp.Data) == 0 || len(resp.Data[0].Embedding) == 0 {
		return nil, &domain.ProviderError{Err: errors.New("no embedding returned")}
	}
	return lo.Map(resp.Data[0].Embedding, func(v float32, _ int) float64 {
		return float64(v)
	}), nil
}
