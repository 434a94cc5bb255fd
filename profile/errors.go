package profile

import "errors"

var (
	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrEmbeddingBackend indicates a total embedding backend failure.
	// Partial results are never returned alongside this error.
	ErrEmbeddingBackend = errors.New("embedding backend failure")
)
