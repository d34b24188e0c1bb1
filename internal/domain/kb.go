package domain

import (
	"context"
	"time"
)

// Chunk is a bounded slice of the knowledge-base source text paired with
// its embedding vector. It is the unit of retrieval.
type Chunk struct {
	ID        int       `json:"id"`
	Text      string    `json:"text"`
	Embedding []float64 `json:"embedding"`
}

// Index is the complete set of chunks produced by one rebuild, plus build
// metadata. It is replaced wholesale on every rebuild, never merged.
type Index struct {
	UpdatedAt time.Time `json:"updated_at"`
	Model     string    `json:"model,omitempty"`
	Dimension int       `json:"dimension,omitempty"`
	Count     int       `json:"count"`
	Chunks    []Chunk   `json:"chunks"`
}

// SearchResult is a matching chunk with its cosine-similarity score.
type SearchResult struct {
	Score float64 `json:"score"`
	Text  string  `json:"text"`
	ID    int     `json:"id"`
}

// Chunker splits a document into ordered, overlapping chunk strings.
type Chunker interface {
	Chunk(text string) []string
}

// Embedder converts free text into a fixed-length vector via an external
// embedding model. Model and Dimension identify the vector space; vectors
// from different spaces must never be compared.
type Embedder interface {
	Model() string
	Dimension() int
	Embed(ctx context.Context, text string) ([]float64, error)
}

// SourceStore persists the single knowledge-base source document.
// Read returns an empty string when no document has been saved yet.
type SourceStore interface {
	Read() (string, error)
	Write(content string) error
}

// IndexStore persists the index as one atomic blob. Read returns nil when
// no index exists or the stored blob cannot be parsed.
type IndexStore interface {
	Read() (*Index, error)
	Write(index *Index) error
}

// SiteConfig supplies site-settings lines (contact details, app
// description) appended to the source text at read time. Best-effort: the
// knowledge base ignores any error from it.
type SiteConfig interface {
	Lines() ([]string, error)
}

// KnowledgeBase defines the operations exposed by the application core.
type KnowledgeBase interface {
	SourceText() (string, error)
	SaveSourceText(content string) error
	BuildIndex(ctx context.Context) (*Index, error)
	LoadIndex() (*Index, error)
	Search(ctx context.Context, query string, topK int) ([]SearchResult, error)
}
