package openai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitcoach/website-kb/internal/domain"
)

func TestEmbed_NoAPIKey(t *testing.T) {
	c := NewClient(Config{APIKeyEnv: "WEBSITE_KB_TEST_UNSET_KEY"})
	_, err := c.Embed(context.Background(), "hello")
	assert.ErrorIs(t, err, domain.ErrNoAPIKey)
}

func TestEmbed_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/embeddings", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"object":"list","model":"text-embedding-3-small","data":[{"object":"embedding","index":0,"embedding":[0.25,-0.5,1]}],"usage":{"prompt_tokens":2,"total_tokens":2}}`))
	}))
	defer srv.Close()

	t.Setenv("WEBSITE_KB_TEST_KEY", "test-key")
	c := NewClient(Config{
		BaseURL:    srv.URL,
		APIKeyEnv:  "WEBSITE_KB_TEST_KEY",
		Dimensions: 3,
	})
	assert.Equal(t, "text-embedding-3-small", c.Model())
	assert.Equal(t, 3, c.Dimension())

	vec, err := c.Embed(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, -0.5, 1}, vec)
}

func TestEmbed_ProviderFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	t.Setenv("WEBSITE_KB_TEST_KEY", "test-key")
	c := NewClient(Config{BaseURL: srv.URL, APIKeyEnv: "WEBSITE_KB_TEST_KEY"})

	_, err := c.Embed(context.Background(), "hello")
	require.Error(t, err)
	var perr *domain.ProviderError
	assert.ErrorAs(t, err, &perr)
}

func TestEmbed_EmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"object":"list","model":"text-embedding-3-small","data":[],"usage":{}}`))
	}))
	defer srv.Close()

	t.Setenv("WEBSITE_KB_TEST_KEY", "test-key")
	c := NewClient(Config{BaseURL: srv.URL, APIKeyEnv: "WEBSITE_KB_TEST_KEY"})

	_, err := c.Embed(context.Background(), "hello")
	var perr *domain.ProviderError
	assert.ErrorAs(t, err, &perr)
}
