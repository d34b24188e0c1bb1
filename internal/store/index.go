package store

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/fitcoach/website-kb/internal/domain"
)

// IndexFile persists the index as one JSON blob.
// It implements domain.IndexStore.
type IndexFile struct {
	path string
}

func NewIndexFile(path string) *IndexFile {
	return &IndexFile{path: path}
}

// Read returns the persisted index, or nil when no index has been built
// yet or the blob cannot be parsed. Only I/O errors other than a missing
// file are reported.
func (s *IndexFile) Read() (*domain.Index, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var index domain.Index
	if err := json.Unmarshal(data, &index); err != nil {
		// Corrupt blob reads the same as no index; the next rebuild
		// replaces it.
		return nil, nil
	}
	return &index, nil
}

// Write replaces the persisted index atomically.
func (s *IndexFile) Write(index *domain.Index) error {
	data, err := json.Marshal(index)
	if err != nil {
		return err
	}
	return atomicWrite(s.path, data)
}
