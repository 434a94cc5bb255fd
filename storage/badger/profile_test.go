package badger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saleslens/saleslens/core"
	"github.com/saleslens/saleslens/storage"
)

func newTestRepo(t *testing.T) storage.ProfileRepository {
	t.Helper()
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })
	return repo
}

func profileAt(url string, fetchedAt time.Time, combined []float32) *core.CompanyProfile {
	return &core.CompanyProfile{
		URL:               url,
		RawContent:        "COMPANY DESCRIPTION:\nTest company.\n",
		CombinedEmbedding: combined,
		FetchedAt:         fetchedAt,
	}
}

func TestPutGetProfile(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	original := profileAt("https://acme.example", time.Now().UTC().Truncate(time.Microsecond), []float32{1, 0, 0})
	original.SectionEmbeddings = map[core.SectionName][]float32{
		core.SectionCompanyDescription: {0, 1, 0},
	}
	require.NoError(t, repo.PutProfile(ctx, original))

	got, err := repo.GetProfile(ctx, "https://acme.example")
	require.NoError(t, err)
	assert.Equal(t, original.URL, got.URL)
	assert.Equal(t, original.RawContent, got.RawContent)
	assert.Equal(t, original.SectionEmbeddings, got.SectionEmbeddings)
	assert.True(t, original.FetchedAt.Equal(got.FetchedAt))
}

func TestGetProfileNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetProfile(context.Background(), "https://missing.example")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPutProfileOverwrites(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.PutProfile(ctx, profileAt("https://acme.example", base, nil)))
	require.NoError(t, repo.PutProfile(ctx, profileAt("https://acme.example", base.Add(time.Hour), nil)))

	got, err := repo.GetProfile(ctx, "https://acme.example")
	require.NoError(t, err)
	assert.True(t, got.FetchedAt.Equal(base.Add(time.Hour)))

	// The stale fetch-time index entry must be gone too
	all, err := repo.ListProfiles(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestDeleteProfile(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.PutProfile(ctx, profileAt("https://acme.example", time.Now().UTC(), nil)))
	require.NoError(t, repo.DeleteProfile(ctx, "https://acme.example"))

	_, err := repo.GetProfile(ctx, "https://acme.example")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.ErrorIs(t, repo.DeleteProfile(ctx, "https://acme.example"), storage.ErrNotFound)
}

func TestListProfilesOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.PutProfile(ctx, profileAt("https://c.example", base.Add(2*time.Hour), nil)))
	require.NoError(t, repo.PutProfile(ctx, profileAt("https://a.example", base, nil)))
	require.NoError(t, repo.PutProfile(ctx, profileAt("https://b.example", base.Add(time.Hour), nil)))

	all, err := repo.ListProfiles(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "https://a.example", all[0].URL)
	assert.Equal(t, "https://b.example", all[1].URL)
	assert.Equal(t, "https://c.example", all[2].URL)
}

func TestListProfilesFetchedBefore(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.PutProfile(ctx, profileAt("https://old.example", base, nil)))
	require.NoError(t, repo.PutProfile(ctx, profileAt("https://fresh.example", base.Add(48*time.Hour), nil)))

	stale, err := repo.ListProfilesFetchedBefore(ctx, base.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.Equal(t, "https://old.example", stale[0].URL)

	// Cutoff is exclusive
	stale, err = repo.ListProfilesFetchedBefore(ctx, base)
	require.NoError(t, err)
	assert.Empty(t, stale)
}

func TestFindSimilar(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repo.PutProfile(ctx, profileAt("https://close.example", now, []float32{1, 0, 0})))
	require.NoError(t, repo.PutProfile(ctx, profileAt("https://near.example", now, []float32{0.6, 0.8, 0})))
	require.NoError(t, repo.PutProfile(ctx, profileAt("https://far.example", now, []float32{0, 1, 0})))
	require.NoError(t, repo.PutProfile(ctx, profileAt("https://none.example", now, nil)))

	matches, err := repo.FindSimilar(ctx, []float32{1, 0, 0}, 0.5, 10)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "https://close.example", matches[0].Profile.URL)
	assert.Equal(t, "https://near.example", matches[1].Profile.URL)

	// Limit caps the result set after sorting
	matches, err = repo.FindSimilar(ctx, []float32{1, 0, 0}, 0.5, 1)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "https://close.example", matches[0].Profile.URL)
}
