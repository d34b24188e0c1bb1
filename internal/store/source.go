// Package store provides file-backed persistence for the knowledge-base
// source document and index. Writes go to a temp file in the target
// directory and are renamed over the destination, so concurrent readers
// see either the fully-old or fully-new blob, never a partial one.
package store

import (
	"errors"
	"os"
	"path/filepath"
)

// SourceFile persists the source document as a single UTF-8 text file.
// It implements domain.SourceStore.
type SourceFile struct {
	path string
}

func NewSourceFile(path string) *SourceFile {
	return &SourceFile{path: path}
}

// Read returns the persisted document, or an empty string when no
// document has been saved yet.
func (s *SourceFile) Read() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return string(data), nil
}

// Write overwrites the persisted document. An empty string clears it.
func (s *SourceFile) Write(content string) error {
	return atomicWrite(s.path, []byte(content))
}

func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
