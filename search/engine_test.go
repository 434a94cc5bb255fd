package search

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saleslens/saleslens/ai/mock"
	"github.com/saleslens/saleslens/core"
)

const testBlob = `COMPANY NAME: TestCo

COMPANY DESCRIPTION:
TestCo builds cloud monitoring dashboards for engineering teams. Unlike LegacyCorp, our agents deploy in minutes.

ABOUT/MISSION:
We believe observability should be simple! Our platform watches everything in production.

MAIN CONTENT:
TestCo offers alerting, tracing and log search. Pricing starts at ten dollars per host.`

// unitAt returns a unit vector whose cosine against queryVector is exactly c.
func unitAt(c float64) []float32 {
	return []float32{float32(c), float32(math.Sqrt(1 - c*c)), 0}
}

var queryVector = []float32{1, 0, 0}

// testProfile has one section per relevance tier, plus a combined vector
// that would dominate every search if it were (wrongly) included.
func testProfile() *core.CompanyProfile {
	return &core.CompanyProfile{
		URL:        "https://testco.example",
		RawContent: testBlob,
		SectionEmbeddings: map[core.SectionName][]float32{
			core.SectionCompanyDescription: unitAt(0.9),
			core.SectionAbout:              unitAt(0.55),
			core.SectionMainContent:        unitAt(0.45),
		},
		CombinedEmbedding: unitAt(0.99),
	}
}

func fixedQueryEmbedder() *mock.MockEmbedder {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return queryVector, nil
	}
	return embedder
}

func newTestEngine(t *testing.T, embedder *mock.MockEmbedder) *Engine {
	t.Helper()
	e, err := NewEngine(embedder)
	require.NoError(t, err)
	return e
}

func TestNewEngineRequiresEmbedder(t *testing.T) {
	_, err := NewEngine(nil)
	assert.ErrorIs(t, err, ErrEmbedderRequired)
}

func TestSearch(t *testing.T) {
	e := newTestEngine(t, fixedQueryEmbedder())
	p := testProfile()

	results := e.Search(context.Background(), "cloud monitoring", p, 0.5)

	require.Len(t, results, 2)
	assert.Contains(t, results, core.SectionCompanyDescription)
	assert.Contains(t, results, core.SectionAbout)
	assert.NotContains(t, results, core.SectionMainContent, "0.45 is below the 0.5 threshold")

	desc := results[core.SectionCompanyDescription]
	assert.Equal(t, core.SectionCompanyDescription, desc.Section)
	assert.InDelta(t, 0.9, desc.Score, 1e-5)
	assert.Contains(t, desc.Content, "cloud monitoring dashboards")
	assert.NotContains(t, desc.Content, "ABOUT/MISSION", "content must stop at the next marker")
}

func TestSearchThresholdMonotonic(t *testing.T) {
	e := newTestEngine(t, fixedQueryEmbedder())
	p := testProfile()

	loose := e.Search(context.Background(), "q", p, 0.4)
	strict := e.Search(context.Background(), "q", p, 0.6)

	assert.Greater(t, len(loose), len(strict))
	for section := range strict {
		assert.Contains(t, loose, section, "raising the threshold must only remove results")
	}
}

func TestSearchIgnoresCombinedEmbedding(t *testing.T) {
	e := newTestEngine(t, fixedQueryEmbedder())
	p := testProfile()

	// Threshold between the best section (0.9) and the combined vector (0.99).
	results := e.Search(context.Background(), "q", p, 0.95)

	assert.Empty(t, results)
}

func TestSearchEmbedderFailureIsNonFatal(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return nil, errors.New("backend down")
	}
	e := newTestEngine(t, embedder)

	results := e.Search(context.Background(), "q", testProfile(), 0.4)

	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearchNilProfile(t *testing.T) {
	embedder := fixedQueryEmbedder()
	e := newTestEngine(t, embedder)

	results := e.Search(context.Background(), "q", nil, 0.4)

	assert.Empty(t, results)
	assert.Equal(t, 0, embedder.CallCount(), "no profile means no embedding call")
}

func TestSearchNoEmbeddings(t *testing.T) {
	e := newTestEngine(t, fixedQueryEmbedder())
	p := &core.CompanyProfile{URL: "https://empty.example", RawContent: testBlob}

	results := e.Search(context.Background(), "q", p, 0.4)

	assert.Empty(t, results)
}

// recordingMonitor captures every hook invocation for assertions.
type recordingMonitor struct {
	started    string
	dimensions int
	scored     map[core.SectionName]float32
	matched    []core.SectionName
	finished   bool
}

func (m *recordingMonitor) Start(query string)       { m.started = query }
func (m *recordingMonitor) QueryEmbedded(dims int)   { m.dimensions = dims }
func (m *recordingMonitor) SectionScored(s core.SectionName, score float32) {
	if m.scored == nil {
		m.scored = make(map[core.SectionName]float32)
	}
	m.scored[s] = score
}
func (m *recordingMonitor) SectionMatched(s core.SectionName, _ float32) {
	m.matched = append(m.matched, s)
}
func (m *recordingMonitor) Finish(_ map[core.SectionName]core.SearchResult) { m.finished = true }

func TestSearchWithMonitor(t *testing.T) {
	e := newTestEngine(t, fixedQueryEmbedder())
	monitor := &recordingMonitor{}

	results := e.SearchWithMonitor(context.Background(), "observability", testProfile(), 0.5, monitor)

	assert.Equal(t, "observability", monitor.started)
	assert.Equal(t, len(queryVector), monitor.dimensions)
	assert.Len(t, monitor.scored, 3, "every section with an embedding gets scored")
	assert.Len(t, monitor.matched, len(results))
	assert.True(t, monitor.finished)
}
