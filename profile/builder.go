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

package profile

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/saleslens/saleslens/ai"
	"github.com/saleslens/saleslens/core"
)

const (
	// MaxEmbedChars bounds the text length sent to the embedding backend.
	// Longer text is silently truncated.
	MaxEmbedChars = 5000

	// MinSectionChars is the substantiality gate: sections whose extracted
	// text is this long or shorter are not embedded at all.
	MinSectionChars = 50
)

// Builder generates structured embeddings for company profiles.
type Builder struct {
	embedder ai.Embedder
	logger   *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) error {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
		return nil
	}
}

// NewBuilder creates a new profile builder.
// The embedder is a shared process-wide resource injected by the caller.
func NewBuilder(embedder ai.Embedder, opts ...Option) (*Builder, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	b := &Builder{
		embedder: embedder,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// BuildEmbeddings generates one embedding per substantial profile section,
// plus the combined description+about embedding.
//
// Sections whose extracted text is MinSectionChars or shorter are omitted
// from the result; a missing key means "not computed". The combined vector
// falls back to the whole raw content when description and about are both
// empty. Press content is used directly, without marker extraction.
//
// An embedding backend failure aborts the whole build with an error wrapping
// ErrEmbeddingBackend, so callers can tell "backend down" apart from
// "no substantial sections" (an empty map and nil error).
func (b *Builder) BuildEmbeddings(ctx context.Context, content, pressContent string) (map[core.SectionName][]float32, []float32, error) {
	embeddings := make(map[core.SectionName][]float32)

	var descText, aboutText string
	for _, section := range core.Sections() {
		var text string
		if section == core.SectionPress {
			text = strings.TrimSpace(pressContent)
		} else {
			text = ExtractSection(content, section.Marker())
		}

		switch section {
		case core.SectionCompanyDescription:
			descText = text
		case core.SectionAbout:
			aboutText = text
		}

		if len(text) <= MinSectionChars {
			b.logger.Debug("skipping insubstantial section", "section", section, "length", len(text))
			continue
		}

		vector, err := b.embed(ctx, text)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: section %s: %v", ErrEmbeddingBackend, section, err)
		}
		if len(vector) == 0 {
			// No signal from the backend; same as a missing section.
			continue
		}
		embeddings[section] = vector
	}

	// Combined embedding for general similarity matching. Must be computed
	// after description and about are extracted.
	combinedText := strings.TrimSpace(descText + " " + aboutText)
	if combinedText == "" {
		combinedText = strings.TrimSpace(content)
	}

	var combined []float32
	if combinedText != "" {
		vector, err := b.embed(ctx, combinedText)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: combined: %v", ErrEmbeddingBackend, err)
		}
		if len(vector) > 0 {
			combined = vector
		}
	}

	return embeddings, combined, nil
}

// BuildProfile collects the embedding outputs into an immutable CompanyProfile.
func (b *Builder) BuildProfile(ctx context.Context, url, content, pressContent string) (*core.CompanyProfile, error) {
	embeddings, combined, err := b.BuildEmbeddings(ctx, content, pressContent)
	if err != nil {
		return nil, err
	}

	profile := &core.CompanyProfile{
		URL:               url,
		RawContent:        content,
		PressContent:      pressContent,
		SectionEmbeddings: embeddings,
		CombinedEmbedding: combined,
		FetchedAt:         time.Now().UTC(),
	}

	if err := core.ValidateProfile(profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// embed truncates text to MaxEmbedChars and runs it through the backend.
func (b *Builder) embed(ctx context.Context, text string) ([]float32, error) {
	return b.embedder.EmbedText(ctx, truncateRunes(text, MaxEmbedChars))
}

// truncateRunes cuts s to at most n runes, never splitting a multi-byte rune.
func truncateRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
