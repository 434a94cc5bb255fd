package profile

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saleslens/saleslens/ai/mock"
	"github.com/saleslens/saleslens/core"
)

func newTestBuilder(t *testing.T, embedder *mock.MockEmbedder) *Builder {
	t.Helper()
	b, err := NewBuilder(embedder)
	require.NoError(t, err)
	return b
}

func TestNewBuilderRequiresEmbedder(t *testing.T) {
	_, err := NewBuilder(nil)
	assert.ErrorIs(t, err, ErrEmbedderRequired)
}

func TestBuildEmbeddings(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	b := newTestBuilder(t, embedder)

	press := "Acme announced a partnership with a major European systems integrator today."
	sections, combined, err := b.BuildEmbeddings(context.Background(), sampleBlob, press)
	require.NoError(t, err)

	// Substantial sections get a vector, short ones are omitted.
	assert.Contains(t, sections, core.SectionCompanyDescription)
	assert.Contains(t, sections, core.SectionAbout)
	assert.Contains(t, sections, core.SectionJobs)
	assert.Contains(t, sections, core.SectionMainContent)
	assert.Contains(t, sections, core.SectionPress)
	assert.NotContains(t, sections, core.SectionLeadership, "47 chars is under the substantiality gate")
	assert.NotContains(t, sections, core.SectionFinancial)

	assert.NotEmpty(t, combined)
	for section, vector := range sections {
		assert.NotEmpty(t, vector, "section %s has an empty vector", section)
	}
}

func TestBuildEmbeddingsEmptyContent(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	b := newTestBuilder(t, embedder)

	sections, combined, err := b.BuildEmbeddings(context.Background(), "", "")
	require.NoError(t, err)

	assert.Empty(t, sections)
	assert.Nil(t, combined)
	assert.Equal(t, 0, embedder.CallCount(), "nothing substantial should reach the backend")
}

func TestBuildEmbeddingsCombinedFallsBackToRawContent(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	b := newTestBuilder(t, embedder)

	// No markers at all, so no sections extract, but the combined vector
	// still gets built from the raw content.
	raw := strings.Repeat("Unstructured page text about logistics software. ", 4)
	sections, combined, err := b.BuildEmbeddings(context.Background(), raw, "")
	require.NoError(t, err)

	assert.Empty(t, sections)
	assert.NotEmpty(t, combined)
}

func TestBuildEmbeddingsTruncatesLongSections(t *testing.T) {
	var longest int
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		if len(text) > longest {
			longest = len(text)
		}
		return []float32{0.1, 0.2, 0.3}, nil
	}
	b := newTestBuilder(t, embedder)

	blob := "COMPANY DESCRIPTION:\n" + strings.Repeat("a", MaxEmbedChars*2) + "\nMAIN CONTENT:\nshort"
	_, _, err := b.BuildEmbeddings(context.Background(), blob, "")
	require.NoError(t, err)

	assert.LessOrEqual(t, longest, MaxEmbedChars)
}

func TestBuildEmbeddingsTruncationKeepsRunesIntact(t *testing.T) {
	var seen []string
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		seen = append(seen, text)
		return []float32{0.1, 0.2, 0.3}, nil
	}
	b := newTestBuilder(t, embedder)

	blob := "COMPANY DESCRIPTION:\n" + strings.Repeat("é", MaxEmbedChars+100) + "\nMAIN CONTENT:\nshort"
	_, _, err := b.BuildEmbeddings(context.Background(), blob, "")
	require.NoError(t, err)

	require.NotEmpty(t, seen)
	for _, text := range seen {
		assert.True(t, utf8.ValidString(text), "truncation must not split a rune")
		assert.LessOrEqual(t, utf8.RuneCountInString(text), MaxEmbedChars)
	}
}

func TestBuildEmbeddingsBackendFailure(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return nil, errors.New("connection refused")
	}
	b := newTestBuilder(t, embedder)

	sections, combined, err := b.BuildEmbeddings(context.Background(), sampleBlob, "")
	assert.ErrorIs(t, err, ErrEmbeddingBackend)
	assert.Nil(t, sections, "no partial results on backend failure")
	assert.Nil(t, combined)
}

func TestBuildProfile(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	b := newTestBuilder(t, embedder)

	p, err := b.BuildProfile(context.Background(), "https://acme.example", sampleBlob, "")
	require.NoError(t, err)

	assert.Equal(t, "https://acme.example", p.URL)
	assert.Equal(t, sampleBlob, p.RawContent)
	assert.NotEmpty(t, p.SectionEmbeddings)
	assert.NotEmpty(t, p.CombinedEmbedding)
	assert.False(t, p.FetchedAt.IsZero())
	assert.NoError(t, core.ValidateProfile(p))
}

func TestBuildProfileDeterministicVectors(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	b := newTestBuilder(t, embedder)

	first, err := b.BuildProfile(context.Background(), "https://acme.example", sampleBlob, "")
	require.NoError(t, err)
	second, err := b.BuildProfile(context.Background(), "https://acme.example", sampleBlob, "")
	require.NoError(t, err)

	assert.Equal(t, first.SectionEmbeddings, second.SectionEmbeddings)
	assert.Equal(t, first.CombinedEmbedding, second.CombinedEmbedding)
}
