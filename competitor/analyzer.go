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

package competitor

import (
	"context"
	"log/slog"
	"runtime"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/saleslens/saleslens/collector"
)

const (
	maxDescriptionChars = 500
	maxFeatureChars     = 800

	// maxRelatedPages caps how many extra target-site pages feed the
	// mention scan.
	maxRelatedPages = 3
)

// relatedPageKeywords flag target-site links likely to name other vendors.
var relatedPageKeywords = []string{
	"partner", "integrat", "app", "marketplace", "ecosystem",
	"connect", "plugin", "extension", "comparison", "vs",
	"alternative", "technology", "stack", "api",
}

// Profile is what we learn about one competitor.
type Profile struct {
	URL             string
	Name            string
	Description     string
	MainFeatures    string
	Differentiators string
	Mentions        []string
}

// Analysis holds the competitor profiles gathered for one target company.
type Analysis struct {
	CompanyURL  string
	Competitors map[string]*Profile
}

// Analyzer profiles competitor websites and cross-references them against
// the target company's site. Competitor fetches run on a worker pool; each
// competitor is independent of the others.
type Analyzer struct {
	client *collector.Client
	pool   *ants.Pool
	logger *slog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer) error

// WithPoolSize sets the worker pool size for concurrent competitor fetches.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(a *Analyzer) error {
		if size < 1 {
			size = 1
		}
		if a.pool != nil {
			a.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		a.pool = pool
		return nil
	}
}

// WithClient replaces the fetching client.
func WithClient(client *collector.Client) Option {
	return func(a *Analyzer) error {
		if client != nil {
			a.client = client
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) error {
		if logger == nil {
			logger = slog.Default()
		}
		a.logger = logger
		return nil
	}
}

// NewAnalyzer creates a competitor analyzer.
func NewAnalyzer(opts ...Option) (*Analyzer, error) {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	a := &Analyzer{
		client: collector.NewClient(),
		pool:   pool,
		logger: slog.Default(),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(a); optErr != nil {
			a.Release()
			return nil, optErr
		}
	}

	return a, nil
}

// Release releases the worker pool.
// The analyzer should not be used after calling Release.
func (a *Analyzer) Release() {
	if a.pool != nil {
		a.pool.Release()
	}
}

// Analyze profiles each competitor URL and scans the target company's
// site for mentions of them. Unreachable competitor sites produce a
// placeholder profile rather than failing the analysis.
func (a *Analyzer) Analyze(ctx context.Context, companyURL string, competitors []string) *Analysis {
	companyURL = collector.NormalizeURL(companyURL)

	analysis := &Analysis{
		CompanyURL:  companyURL,
		Competitors: make(map[string]*Profile),
	}

	targetContent := a.collectTargetContent(ctx, companyURL)

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, raw := range competitors {
		competitorURL := collector.NormalizeURL(raw)
		if competitorURL == "" {
			continue
		}

		wg.Add(1)
		submitErr := a.pool.Submit(func() {
			defer wg.Done()
			profile := a.analyzeOne(ctx, competitorURL, companyURL, targetContent)
			mu.Lock()
			analysis.Competitors[competitorURL] = profile
			mu.Unlock()
		})
		if submitErr != nil {
			wg.Done()
			a.logger.Error("error submitting competitor analysis", "url", competitorURL, "err", submitErr)
		}
	}
	wg.Wait()

	return analysis
}

// analyzeOne profiles a single competitor site.
func (a *Analyzer) analyzeOne(ctx context.Context, competitorURL, companyURL, targetContent string) *Profile {
	a.logger.Info("analyzing competitor", "url", competitorURL)

	page, err := a.client.Fetch(ctx, competitorURL)
	if err != nil {
		a.logger.Warn("could not access competitor site", "url", competitorURL, "err", err)
		return &Profile{
			URL:         competitorURL,
			Name:        "Could not access website",
			Description: "Failed to retrieve data",
		}
	}
	page = collector.StripNoise(page)

	name := CompanyName(page, competitorURL)
	description := truncate(Description(page), maxDescriptionChars)
	features := truncate(MainFeatures(page), maxFeatureChars)

	return &Profile{
		URL:             competitorURL,
		Name:            name,
		Description:     description,
		MainFeatures:    features,
		Differentiators: KnownDifferentiators(name),
		Mentions:        FormatMentions(name, companyURL, FindMentions(targetContent, name)),
	}
}

// collectTargetContent gathers the target company's homepage text plus a
// few pages likely to name other vendors (partners, integrations,
// comparisons), for the mention scan.
func (a *Analyzer) collectTargetContent(ctx context.Context, companyURL string) string {
	page, err := a.client.Fetch(ctx, companyURL)
	if err != nil {
		a.logger.Warn("could not fetch target company site", "url", companyURL, "err", err)
		return ""
	}

	var b strings.Builder
	b.WriteString(collector.PageText(page))

	visited := 0
	seen := make(map[string]bool)
	for _, link := range collector.RelatedLinks(page, companyURL, relatedPageKeywords) {
		if seen[link] {
			continue
		}
		seen[link] = true

		a.logger.Debug("checking related page for mentions", "url", link)
		sub, err := a.client.Fetch(ctx, link)
		if err != nil {
			continue
		}
		b.WriteString("\n")
		b.WriteString(collector.PageText(sub))

		visited++
		if visited == maxRelatedPages {
			break
		}
	}

	return b.String()
}

func truncate(text string, limit int) string {
	if len(text) > limit {
		return text[:limit]
	}
	return text
}
