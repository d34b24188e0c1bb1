package domain

import (
	"errors"
	"fmt"
)

// ErrNoAPIKey means no embedding credential is configured. Terminal for
// the operation in progress; retrying locally will not help.
var ErrNoAPIKey = errors.New("no embedding API key configured")

// ErrModelMismatch means the persisted index was built in a different
// vector space than the current embedder produces.
var ErrModelMismatch = errors.New("index embedding model mismatch")

// ProviderError wraps a failed embedding-provider call (network error,
// bad status, malformed response). Rebuilds abort on it; search callers
// substitute an empty result set.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("embedding provider: %v", e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
