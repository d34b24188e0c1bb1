package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitcoach/website-kb/internal/domain"
)

func TestSourceFile_MissingReadsEmpty(t *testing.T) {
	s := NewSourceFile(filepath.Join(t.TempDir(), "missing.md"))
	content, err := s.Read()
	require.NoError(t, err)
	assert.Equal(t, "", content)
}

func TestSourceFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb", "source.md")
	s := NewSourceFile(path)

	require.NoError(t, s.Write("سلام دنیا\nhello world"))
	content, err := s.Read()
	require.NoError(t, err)
	assert.Equal(t, "سلام دنیا\nhello world", content)

	// Empty write clears the document.
	require.NoError(t, s.Write(""))
	content, err = s.Read()
	require.NoError(t, err)
	assert.Equal(t, "", content)
}

func TestSourceFile_WriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewSourceFile(filepath.Join(dir, "source.md"))
	require.NoError(t, s.Write("one"))
	require.NoError(t, s.Write("two"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "source.md", entries[0].Name())
}

func TestIndexFile_MissingReadsNil(t *testing.T) {
	s := NewIndexFile(filepath.Join(t.TempDir(), "missing.json"))
	index, err := s.Read()
	require.NoError(t, err)
	assert.Nil(t, index)
}

func TestIndexFile_CorruptReadsNil(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := NewIndexFile(path)
	index, err := s.Read()
	require.NoError(t, err)
	assert.Nil(t, index)
}

func TestIndexFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	s := NewIndexFile(path)

	written := &domain.Index{
		UpdatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Model:     "text-embedding-3-small",
		Dimension: 3,
		Count:     2,
		Chunks: []domain.Chunk{
			{ID: 1, Text: "اولین بخش", Embedding: []float64{0.1, 0.2, 0.3}},
			{ID: 2, Text: "second chunk", Embedding: []float64{-0.5, 0, 1}},
		},
	}
	require.NoError(t, s.Write(written))

	read, err := s.Read()
	require.NoError(t, err)
	require.NotNil(t, read)
	assert.Equal(t, written, read)
}

func TestIndexFile_ReplaceNotMerge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	s := NewIndexFile(path)

	require.NoError(t, s.Write(&domain.Index{Count: 2, Chunks: []domain.Chunk{{ID: 1, Text: "a"}, {ID: 2, Text: "b"}}}))
	require.NoError(t, s.Write(&domain.Index{Count: 1, Chunks: []domain.Chunk{{ID: 1, Text: "c"}}}))

	read, err := s.Read()
	require.NoError(t, err)
	require.NotNil(t, read)
	assert.Equal(t, 1, read.Count)
	require.Len(t, read.Chunks, 1)
	assert.Equal(t, "c", read.Chunks[0].Text)
}

func TestIndexFile_EmptyChunksMarshalAsArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	s := NewIndexFile(path)

	require.NoError(t, s.Write(&domain.Index{Count: 0, Chunks: []domain.Chunk{}}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"chunks":[]`)
}
