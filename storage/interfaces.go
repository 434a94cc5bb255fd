package storage

import (
	"context"
	"time"

	"github.com/saleslens/saleslens/core"
)

// ProfileMatch is a cached profile scored against a query vector.
type ProfileMatch struct {
	Profile *core.CompanyProfile
	Score   float32
}

// Repository provides common storage operations shared across repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// ProfileRepository provides operations for cached company profiles.
// Profiles are keyed by the content hash of their normalized URL, so a
// second put for the same URL overwrites the first.
type ProfileRepository interface {
	Repository

	// PutProfile stores a profile, replacing any existing profile for the
	// same URL.
	PutProfile(ctx context.Context, profile *core.CompanyProfile) error

	// GetProfile retrieves the cached profile for a URL.
	// Returns ErrNotFound if no profile is cached.
	GetProfile(ctx context.Context, url string) (*core.CompanyProfile, error)

	// DeleteProfile removes the cached profile for a URL.
	// Returns ErrNotFound if no profile is cached.
	DeleteProfile(ctx context.Context, url string) error

	// ListProfiles retrieves all cached profiles, ordered by fetch time
	// ascending (oldest first).
	ListProfiles(ctx context.Context) ([]*core.CompanyProfile, error)

	// ListProfilesFetchedBefore retrieves profiles whose FetchedAt is
	// strictly before the cutoff, ordered by fetch time ascending.
	ListProfilesFetchedBefore(ctx context.Context, cutoff time.Time) ([]*core.CompanyProfile, error)

	// FindSimilar finds cached profiles whose combined embedding is similar
	// to the given vector. Returns profiles with similarity >= minSimilarity,
	// up to limit results, ordered by similarity score (highest first).
	FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*ProfileMatch, error)
}
