// Package kb implements the website knowledge base: source document
// management, index rebuilds, and cosine-similarity search.
package kb

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/fitcoach/website-kb/internal/domain"
)

const (
	// DefaultTopK is used when a caller does not specify a result count.
	DefaultTopK = 3
	// MaxTopK caps the number of results a single search may return.
	MaxTopK = 10
)

// Service orchestrates the knowledge-base operations over injected
// storage, chunking, and embedding collaborators. It keeps no state
// between calls; every operation reads whatever it needs from the
// stores at call time.
type Service struct {
	source   domain.SourceStore
	index    domain.IndexStore
	chunker  domain.Chunker
	embedder domain.Embedder
	site     domain.SiteConfig // optional, may be nil
}

func NewService(source domain.SourceStore, index domain.IndexStore, chunker domain.Chunker, embedder domain.Embedder, site domain.SiteConfig) *Service {
	return &Service{
		source:   source,
		index:    index,
		chunker:  chunker,
		embedder: embedder,
		site:     site,
	}
}

// SourceText returns the stored source document, augmented best-effort
// with site-settings lines. A failing site-config collaborator is
// silently ignored.
func (s *Service) SourceText() (string, error) {
	text, err := s.source.Read()
	if err != nil {
		return "", err
	}
	if s.site != nil {
		lines, err := s.site.Lines()
		if err == nil && len(lines) > 0 {
			text = text + "\n\n" + strings.Join(lines, "\n")
		}
	}
	return text, nil
}

// SaveSourceText overwrites the source document. An empty string clears it.
func (s *Service) SaveSourceText(content string) error {
	return s.source.Write(content)
}

// BuildIndex rebuilds the whole index from the current source text and
// persists it as one atomic blob. If any chunk's embedding call fails the
// rebuild is abandoned and the previously persisted index stays active.
func (s *Service) BuildIndex(ctx context.Context) (*domain.Index, error) {
	text, err := s.SourceText()
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	pieces := s.chunker.Chunk(text)
	chunks := make([]domain.Chunk, 0, len(pieces))
	for i, piece := range pieces {
		embedding, err := s.embedder.Embed(ctx, piece)
		if err != nil {
			return nil, fmt.Errorf("embed chunk %d/%d: %w", i+1, len(pieces), err)
		}
		chunks = append(chunks, domain.Chunk{
			ID:        i + 1,
			Text:      piece,
			Embedding: embedding,
		})
	}
	index := &domain.Index{
		UpdatedAt: time.Now().UTC(),
		Model:     s.embedder.Model(),
		Dimension: s.embedder.Dimension(),
		Count:     len(chunks),
		Chunks:    chunks,
	}
	if err := s.index.Write(index); err != nil {
		return nil, fmt.Errorf("persist index: %w", err)
	}
	return index, nil
}

// LoadIndex returns the persisted index, or nil when none exists.
func (s *Service) LoadIndex() (*domain.Index, error) {
	return s.index.Read()
}

// Search ranks the persisted chunks by cosine similarity to the query
// and returns the topK best. topK is clamped to [1, MaxTopK]. An absent
// index, a model mismatch, or an embedding failure all degrade to an
// empty result list; search never surfaces a provider error to callers.
func (s *Service) Search(ctx context.Context, query string, topK int) ([]domain.SearchResult, error) {
	if topK < 1 {
		topK = 1
	}
	if topK > MaxTopK {
		topK = MaxTopK
	}
	index, err := s.index.Read()
	if err != nil {
		return nil, err
	}
	if index == nil || len(index.Chunks) == 0 {
		return []domain.SearchResult{}, nil
	}
	if !s.compatible(index) {
		slog.Warn("kb index built with a different embedding configuration, reindex required",
			slog.String("index_model", index.Model),
			slog.String("embedder_model", s.embedder.Model()))
		return []domain.SearchResult{}, nil
	}
	queryVec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		slog.Warn("kb query embedding failed", slog.Any("error", err))
		return []domain.SearchResult{}, nil
	}
	results := make([]domain.SearchResult, 0, len(index.Chunks))
	for _, chunk := range index.Chunks {
		results = append(results, domain.SearchResult{
			Score: cosineSimilarity(queryVec, chunk.Embedding),
			Text:  chunk.Text,
			ID:    chunk.ID,
		})
	}
	// Stable keeps document order among equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if topK > len(results) {
		topK = len(results)
	}
	return results[:topK], nil
}

// compatible reports whether the persisted index was built in the same
// vector space the embedder currently produces. Untagged indexes from
// older builds are accepted as-is.
func (s *Service) compatible(index *domain.Index) bool {
	if index.Model != "" && index.Model != s.embedder.Model() {
		return false
	}
	if index.Dimension != 0 && index.Dimension != s.embedder.Dimension() {
		return false
	}
	return true
}
