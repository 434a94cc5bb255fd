package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saleslens/saleslens/core"
)

func testProfile() *core.CompanyProfile {
	return &core.CompanyProfile{
		URL:          "https://acme.example",
		RawContent:   "COMPANY DESCRIPTION:\nAcme builds anvils.\n",
		PressContent: "PRESS/NEWS FROM https://acme.example:\n\nTITLE: Acme ships v2\n",
		SectionEmbeddings: map[core.SectionName][]float32{
			core.SectionCompanyDescription: {0.1, 0.2, 0.3},
			core.SectionMainContent:        {0.4, 0.5, 0.6},
		},
		CombinedEmbedding: []float32{0.7, 0.8, 0.9},
		FetchedAt:         time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC),
	}
}

func TestProfileRoundTrip(t *testing.T) {
	original := testProfile()

	data := MarshalProfile(original)
	require.NotEmpty(t, data)

	restored, err := UnmarshalProfile(data)
	require.NoError(t, err)

	assert.Equal(t, original.URL, restored.URL)
	assert.Equal(t, original.RawContent, restored.RawContent)
	assert.Equal(t, original.PressContent, restored.PressContent)
	assert.Equal(t, original.SectionEmbeddings, restored.SectionEmbeddings)
	assert.Equal(t, original.CombinedEmbedding, restored.CombinedEmbedding)
	assert.True(t, original.FetchedAt.Equal(restored.FetchedAt))
}

func TestProfileRoundTripMinimal(t *testing.T) {
	original := &core.CompanyProfile{
		URL:       "https://bare.example",
		FetchedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	restored, err := UnmarshalProfile(MarshalProfile(original))
	require.NoError(t, err)

	assert.Equal(t, original.URL, restored.URL)
	assert.Empty(t, restored.RawContent)
	assert.Empty(t, restored.SectionEmbeddings)
	assert.Empty(t, restored.CombinedEmbedding)
	assert.True(t, original.FetchedAt.Equal(restored.FetchedAt))
}

func TestUnmarshalProfileTruncated(t *testing.T) {
	data := MarshalProfile(testProfile())

	_, err := UnmarshalProfile(data[:len(data)/2])
	assert.ErrorIs(t, err, ErrSerializationFailed)
}

func TestIDRoundTrip(t *testing.T) {
	id := core.IDFromContent("https://acme.example")

	restored, err := UnmarshalID(MarshalID(id))
	require.NoError(t, err)
	assert.Equal(t, id, restored)
}

func TestUnmarshalIDEmpty(t *testing.T) {
	_, err := UnmarshalID(nil)
	assert.ErrorIs(t, err, ErrSerializationFailed)
}
