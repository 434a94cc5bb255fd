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

package saleslens

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/saleslens/saleslens/ai"
	"github.com/saleslens/saleslens/ai/openai"
	"github.com/saleslens/saleslens/collector"
	"github.com/saleslens/saleslens/competitor"
	"github.com/saleslens/saleslens/core"
	"github.com/saleslens/saleslens/profile"
	"github.com/saleslens/saleslens/refresh"
	"github.com/saleslens/saleslens/report"
	"github.com/saleslens/saleslens/search"
	"github.com/saleslens/saleslens/storage"
	"github.com/saleslens/saleslens/storage/badger"
)

// Analyzer is the top-level entry point: it owns the profile cache, the AI
// provider, and the scraping client, and hands out the individual services
// wired together.
type Analyzer struct {
	backend   *badger.Backend
	profiles  storage.ProfileRepository
	provider  ai.AIProvider
	client    *collector.Client
	collector *collector.Collector
	builder   *profile.Builder
	engine    *search.Engine
	maxAge    time.Duration
	logger    *slog.Logger
}

// AnalyzerOption configures an Analyzer.
type AnalyzerOption func(*analyzerOptions)

type analyzerOptions struct {
	aiConfig *ai.Config
	provider ai.AIProvider
	client   *collector.Client
	maxAge   time.Duration
	inMemory bool
}

// WithAIConfig sets the AI provider configuration.
func WithAIConfig(config *ai.Config) AnalyzerOption {
	return func(o *analyzerOptions) {
		o.aiConfig = config
	}
}

// WithProvider injects an already-constructed AI provider, bypassing the
// OpenAI-compatible default. The analyzer takes ownership and closes it.
func WithProvider(provider ai.AIProvider) AnalyzerOption {
	return func(o *analyzerOptions) {
		o.provider = provider
	}
}

// WithCollectorClient replaces the shared scraping client, typically to
// adjust its rate limit.
func WithCollectorClient(client *collector.Client) AnalyzerOption {
	return func(o *analyzerOptions) {
		o.client = client
	}
}

// WithCacheMaxAge sets how old a cached profile may be before a new
// analysis re-scrapes the site. Default is 7 days.
func WithCacheMaxAge(maxAge time.Duration) AnalyzerOption {
	return func(o *analyzerOptions) {
		if maxAge > 0 {
			o.maxAge = maxAge
		}
	}
}

// WithInMemoryCache keeps the profile cache in memory instead of on disk.
func WithInMemoryCache() AnalyzerOption {
	return func(o *analyzerOptions) {
		o.inMemory = true
	}
}

// NewAnalyzer creates an analyzer with its profile cache at filePath.
func NewAnalyzer(filePath string, opts ...AnalyzerOption) (*Analyzer, error) {
	options := &analyzerOptions{
		aiConfig: ai.DefaultConfig(),
		maxAge:   7 * 24 * time.Hour,
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}
	profiles := badger.NewProfileRepository(backend)

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			backend.Close()
			return nil, err
		}
	}

	builder, err := profile.NewBuilder(provider.Embedder())
	if err != nil {
		provider.Close()
		backend.Close()
		return nil, err
	}

	engine, err := search.NewEngine(provider.Embedder())
	if err != nil {
		provider.Close()
		backend.Close()
		return nil, err
	}

	client := options.client
	if client == nil {
		client = collector.NewClient()
	}

	return &Analyzer{
		backend:   backend,
		profiles:  profiles,
		provider:  provider,
		client:    client,
		collector: collector.New(collector.WithClient(client)),
		builder:   builder,
		engine:    engine,
		maxAge:    options.maxAge,
		logger:    slog.Default(),
	}, nil
}

// Close releases the AI provider and the profile cache.
func (a *Analyzer) Close() error {
	if err := a.provider.Close(); err != nil {
		a.logger.Error("error closing AI provider", "err", err)
	}
	if err := a.backend.Close(); err != nil {
		a.logger.Error("error closing profile cache", "err", err)
		return err
	}
	return nil
}

// Profiles returns the underlying profile repository.
func (a *Analyzer) Profiles() storage.ProfileRepository {
	return a.profiles
}

// AnalyzeCompany scrapes a company site, builds its embedded profile, and
// caches it. Any previously cached profile for the URL is replaced.
func (a *Analyzer) AnalyzeCompany(ctx context.Context, url string) (*core.CompanyProfile, error) {
	url = collector.NormalizeURL(url)

	site, err := a.collector.Collect(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("collecting %s: %w", url, err)
	}

	p, err := a.builder.BuildProfile(ctx, site.URL, site.Content, site.PressContent)
	if err != nil {
		return nil, err
	}

	if err := a.profiles.PutProfile(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// CompanyProfile returns the profile for a URL, from cache when it is
// fresh enough, scraping otherwise.
func (a *Analyzer) CompanyProfile(ctx context.Context, url string) (*core.CompanyProfile, error) {
	url = collector.NormalizeURL(url)

	cached, err := a.profiles.GetProfile(ctx, url)
	if err == nil {
		if time.Since(cached.FetchedAt) < a.maxAge {
			return cached, nil
		}
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	return a.AnalyzeCompany(ctx, url)
}

// SearchCompany runs a semantic query against a company's profile.
func (a *Analyzer) SearchCompany(ctx context.Context, url, query string, threshold float32) (map[core.SectionName]core.SearchResult, error) {
	p, err := a.CompanyProfile(ctx, url)
	if err != nil {
		return nil, err
	}
	return a.engine.Search(ctx, query, p, threshold), nil
}

// MatchProductCategory scores a product category against a company's profile.
func (a *Analyzer) MatchProductCategory(ctx context.Context, url, category string) (core.CategoryMatches, error) {
	p, err := a.CompanyProfile(ctx, url)
	if err != nil {
		return core.CategoryMatches{}, err
	}
	return a.engine.MatchProductCategory(ctx, category, p), nil
}

// FindSemanticMentions looks for competitor-comparison language in a
// company's profile.
func (a *Analyzer) FindSemanticMentions(ctx context.Context, url, competitorName string) ([]core.SemanticMention, error) {
	p, err := a.CompanyProfile(ctx, url)
	if err != nil {
		return nil, err
	}
	return a.engine.FindSemanticMentions(ctx, competitorName, p), nil
}

// FindSimilarCompanies searches the cache for companies whose combined
// embedding is close to the query.
func (a *Analyzer) FindSimilarCompanies(ctx context.Context, query string, minSimilarity float32, limit int) ([]*storage.ProfileMatch, error) {
	vector, err := a.provider.Embedder().EmbedText(ctx, query)
	if err != nil {
		return nil, err
	}
	return a.profiles.FindSimilar(ctx, vector, minSimilarity, limit)
}

// AnalyzeCompetitors profiles each competitor site and scans the target
// company's pages for literal mentions of them.
func (a *Analyzer) AnalyzeCompetitors(ctx context.Context, companyURL string, competitorURLs []string) (*competitor.Analysis, error) {
	analyzer, err := competitor.NewAnalyzer(competitor.WithClient(a.client))
	if err != nil {
		return nil, err
	}
	defer analyzer.Release()

	return analyzer.Analyze(ctx, collector.NormalizeURL(companyURL), competitorURLs), nil
}

// ReportRequest describes one sales one-pager to generate.
type ReportRequest struct {
	ProductName      string
	ProductCategory  string
	ValueProposition string
	TargetCustomer   string

	// ProductSheetPath points at an optional PDF product overview.
	ProductSheetPath string

	CompanyURL     string
	CompetitorURLs []string
}

// GenerateReport scrapes the target company (or reuses its cached profile),
// analyzes the competitors, and renders the one-pager.
func (a *Analyzer) GenerateReport(ctx context.Context, req *ReportRequest) (string, error) {
	p, err := a.CompanyProfile(ctx, req.CompanyURL)
	if err != nil {
		return "", err
	}

	var analysis *competitor.Analysis
	if len(req.CompetitorURLs) > 0 {
		analysis, err = a.AnalyzeCompetitors(ctx, req.CompanyURL, req.CompetitorURLs)
		if err != nil {
			return "", err
		}
	}

	productSheet := ""
	if req.ProductSheetPath != "" {
		productSheet, err = collector.ParseProductSheet(req.ProductSheetPath)
		if err != nil {
			a.logger.Warn("could not parse product sheet", "path", req.ProductSheetPath, "err", err)
		}
	}

	generator, err := report.NewGenerator(a.provider.InsightGenerator())
	if err != nil {
		return "", err
	}

	return generator.Generate(ctx, &report.Request{
		ProductName:      req.ProductName,
		ProductCategory:  req.ProductCategory,
		ValueProposition: req.ValueProposition,
		TargetCustomer:   req.TargetCustomer,
		ProductSheet:     productSheet,
		Site: &collector.SiteContent{
			URL:          p.URL,
			Content:      p.RawContent,
			PressContent: p.PressContent,
		},
		Competitors: analysis,
	})
}

// RefreshCache re-embeds cached profiles older than the configured max age.
func (a *Analyzer) RefreshCache(ctx context.Context, progress io.Writer) error {
	config := refresh.DefaultConfig()
	config.MaxAge = a.maxAge

	refresher, err := refresh.NewRefresher(a.profiles, a.builder, config, progress)
	if err != nil {
		return err
	}
	return refresher.Run(ctx)
}
