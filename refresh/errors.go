package refresh

import "errors"

var (
	// ErrInvalidMaxAttempts is returned when maxAttempts is <= 0
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")

	// ErrRepositoryRequired is returned when a profile repository is not provided.
	ErrRepositoryRequired = errors.New("profile repository required")

	// ErrBuilderRequired is returned when a profile builder is not provided.
	ErrBuilderRequired = errors.New("profile builder required")
)
