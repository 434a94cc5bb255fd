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

package report

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/saleslens/saleslens/ai"
	"github.com/saleslens/saleslens/collector"
	"github.com/saleslens/saleslens/competitor"
)

// Request carries everything needed to build one sales one-pager.
type Request struct {
	ProductName      string
	ProductCategory  string
	ValueProposition string
	TargetCustomer   string
	ProductSheet     string

	Site        *collector.SiteContent
	Competitors *competitor.Analysis
}

// Generator renders sales intelligence one-pagers.
type Generator struct {
	insights ai.InsightGenerator
	logger   *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) error {
		if logger == nil {
			logger = slog.Default()
		}
		g.logger = logger
		return nil
	}
}

// NewGenerator creates a report generator.
func NewGenerator(insights ai.InsightGenerator, opts ...Option) (*Generator, error) {
	if insights == nil {
		return nil, ErrInsightGeneratorRequired
	}

	g := &Generator{
		insights: insights,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Generate builds the one-pager as markdown. Section order is fixed:
// company strategy, competitor mentions, leadership, product/strategy
// summary, article links.
func (g *Generator) Generate(ctx context.Context, req *Request) (string, error) {
	if req == nil || req.Site == nil {
		return "", ErrSiteContentRequired
	}

	insights, err := g.insights.GenerateInsights(ctx, &ai.InsightRequest{
		ProductName:      req.ProductName,
		ProductCategory:  req.ProductCategory,
		ValueProposition: req.ValueProposition,
		TargetCustomer:   req.TargetCustomer,
		CompanyURL:       req.Site.URL,
		CompanyContent:   req.Site.Content,
		PressContent:     req.Site.PressContent,
		ProductSheet:     req.ProductSheet,
	})
	if err != nil {
		return "", fmt.Errorf("generating insights: %w", err)
	}

	var b strings.Builder
	b.WriteString("# Sales Intelligence One-Pager\n\n")

	writeSection(&b, "Company Strategy", orMissing(insights.CompanyStrategy, "No company strategy information available."))
	writeSection(&b, "Competitor Mentions", FormatCompetitorMentions(req.Competitors))
	writeSection(&b, "Leadership Information", orMissing(insights.LeadershipInformation, "No leadership information available."))
	writeSection(&b, "Product/Strategy Summary", orMissing(insights.ProductStrategySummary, "No product strategy information available."))
	writeSection(&b, "Article Links", FormatArticleLinks(insights.ArticleLinks))

	return b.String(), nil
}

func writeSection(b *strings.Builder, title, body string) {
	fmt.Fprintf(b, "### %s\n\n%s\n\n---\n\n", title, strings.TrimSpace(body))
}

func orMissing(text, fallback string) string {
	if strings.TrimSpace(text) == "" {
		return fallback
	}
	return text
}
