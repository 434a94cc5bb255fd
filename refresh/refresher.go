// Copyright 2025 Saleslens Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package refresh

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/saleslens/saleslens/core"
	"github.com/saleslens/saleslens/profile"
	"github.com/saleslens/saleslens/storage"
)

// Config holds configuration for the refresh operation.
type Config struct {
	// MaxAge is how old a cached profile may be before it is refreshed
	MaxAge time.Duration

	// ReportInterval is how often to report progress (number of profiles)
	ReportInterval int

	// MaxRetries is the maximum number of retry attempts for failed operations
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		MaxAge:         7 * 24 * time.Hour,
		ReportInterval: 10,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
	}
}

// Refresher re-embeds stale cached profiles from their stored content.
// This is what keeps the cache usable after an embedding model change:
// the scraped content survives, only the vectors are rebuilt.
type Refresher struct {
	repo     storage.ProfileRepository
	builder  *profile.Builder
	config   *Config
	progress io.Writer
}

// NewRefresher creates a new refresher.
// progress: where to write progress output (typically os.Stderr)
func NewRefresher(repo storage.ProfileRepository, builder *profile.Builder, config *Config, progress io.Writer) (*Refresher, error) {
	if repo == nil {
		return nil, ErrRepositoryRequired
	}
	if builder == nil {
		return nil, ErrBuilderRequired
	}
	if config == nil {
		config = DefaultConfig()
	}

	return &Refresher{
		repo:     repo,
		builder:  builder,
		config:   config,
		progress: progress,
	}, nil
}

// Run executes the refresh operation. Every profile fetched longer than
// MaxAge ago is rebuilt from its stored content and written back.
// Progress is reported to the configured writer.
func (r *Refresher) Run(ctx context.Context) error {
	cutoff := time.Now().UTC().Add(-r.config.MaxAge)

	stale, err := r.repo.ListProfilesFetchedBefore(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to query stale profiles: %w", err)
	}

	total := len(stale)
	if total == 0 {
		fmt.Fprintf(r.progress, "No stale profiles found (0 profiles)\n")
		return nil
	}

	fmt.Fprintf(r.progress, "Starting refresh of %d stale profiles (max age: %v)\n",
		total, r.config.MaxAge)

	tracker := NewProgressTracker(r.progress, total, r.config.ReportInterval)
	tracker.Start()

	for i, cached := range stale {
		if err := r.refreshOne(ctx, cached); err != nil {
			return fmt.Errorf("failed to refresh %s: %w", cached.URL, err)
		}
		tracker.Update(i + 1)
	}

	tracker.Finish()

	elapsed := tracker.Elapsed()
	fmt.Fprintf(r.progress, "Refresh complete. Processed %d profiles in %v (%.1f profiles/sec)\n",
		total, elapsed.Round(time.Second), float64(total)/elapsed.Seconds())

	return nil
}

// refreshOne rebuilds one profile's embeddings with retry and stores it.
func (r *Refresher) refreshOne(ctx context.Context, cached *core.CompanyProfile) error {
	var rebuilt *core.CompanyProfile
	err := RetryWithBackoff(ctx, func() error {
		var err error
		rebuilt, err = r.builder.BuildProfile(ctx, cached.URL, cached.RawContent, cached.PressContent)
		return err
	}, r.config.MaxRetries, r.config.RetryDelay)
	if err != nil {
		return fmt.Errorf("failed to rebuild embeddings after %d attempts: %w", r.config.MaxRetries, err)
	}

	return r.repo.PutProfile(ctx, rebuilt)
}
