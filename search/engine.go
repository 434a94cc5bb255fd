package search

import (
	"context"
	"log/slog"

	"github.com/saleslens/saleslens/ai"
	"github.com/saleslens/saleslens/core"
	"github.com/saleslens/saleslens/profile"
)

// Engine performs semantic search over the section embeddings of a
// company profile.
type Engine struct {
	embedder ai.Embedder
	logger   *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewEngine creates a new search engine.
func NewEngine(embedder ai.Embedder, opts ...Option) (*Engine, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	e := &Engine{
		embedder: embedder,
		logger:   slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Search embeds the query and scores it against every section embedding of
// the profile. Sections scoring at or above threshold are returned, keyed by
// section name, with their score and freshly re-extracted section text.
//
// The combined embedding is deliberately not searched; it serves whole-profile
// comparisons, not per-section attribution.
//
// Search is non-fatal end to end: an embedding backend failure is logged and
// yields an empty result map, so one dead backend call degrades a report
// instead of aborting it.
func (e *Engine) Search(ctx context.Context, query string, p *core.CompanyProfile, threshold float32) map[core.SectionName]core.SearchResult {
	return e.SearchWithMonitor(ctx, query, p, threshold, nil)
}

// SearchWithMonitor is Search with observation hooks.
// The monitor receives callbacks at each stage of the search process.
func (e *Engine) SearchWithMonitor(ctx context.Context, query string, p *core.CompanyProfile, threshold float32, monitor SearchMonitor) map[core.SectionName]core.SearchResult {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query)

	results := make(map[core.SectionName]core.SearchResult)
	if p == nil || len(p.SectionEmbeddings) == 0 {
		monitor.Finish(results)
		return results
	}

	// Queries are embedded as-is; the length cap in profile applies only to
	// section content at build time, and queries are far shorter than that.
	queryVector, err := e.embedder.EmbedText(ctx, query)
	if err != nil {
		e.logger.Error("error generating embedding for query", "query", query, "err", err)
		monitor.Finish(results)
		return results
	}
	monitor.QueryEmbedded(len(queryVector))

	for _, section := range core.Sections() {
		vector, ok := p.SectionEmbeddings[section]
		if !ok {
			continue
		}

		score := CosineSimilarity(queryVector, vector)
		monitor.SectionScored(section, score)
		if score < threshold {
			continue
		}

		// Re-extract the section text so results always carry the current
		// content, not a stale copy from embedding time.
		results[section] = core.SearchResult{
			Section: section,
			Score:   score,
			Content: profile.SectionText(p, section),
		}
		monitor.SectionMatched(section, score)
	}

	monitor.Finish(results)

	return results
}
