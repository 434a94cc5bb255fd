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


package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/saleslens/saleslens/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// missingSection is the placeholder for report sections the model left out.
const missingSection = "Information not found in company data."

// InsightGenerator implements ai.InsightGenerator using OpenAI-compatible chat APIs.
type InsightGenerator struct {
	client llms.Model
	logger *slog.Logger
}

// onePager is an internal type used for JSON unmarshaling.
// It matches the structure requested from the LLM.
type onePager struct {
	CompanyStrategy        string `json:"company_strategy"`
	LeadershipInformation  string `json:"leadership_information"`
	ProductStrategySummary string `json:"product_strategy_summary"`
	ArticleLinks           string `json:"article_links"`
}

// newInsightGenerator is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newInsightGenerator(config *ai.Config) (*InsightGenerator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.InsightHost),
		openai.WithToken(config.Token),
		openai.WithModel(config.InsightModel),
	)
	if err != nil {
		return nil, err
	}

	return &InsightGenerator{
		client: client,
		logger: slog.Default().With("component", "openai-insights"),
	}, nil
}

// NewInsightGenerator creates a new insight generator using the provided configuration.
//
// Returns ai.InsightGenerator interface to enforce abstraction.
func NewInsightGenerator(config *ai.Config) (ai.InsightGenerator, error) {
	return newInsightGenerator(config)
}

// GenerateInsights produces a structured sales one-pager via the LLM.
// Malformed JSON responses are retried, then repaired, then parsed by section
// markers as a last resort; missing sections are backfilled with a
// placeholder so callers never see empty report sections.
func (g *InsightGenerator) GenerateInsights(ctx context.Context, req *ai.InsightRequest) (*ai.Insights, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(buildSystemPrompt()),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(buildInsightPrompt(req)),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var parsed onePager
	var rawContent string
	parseOK := false
	for attempt := 0; attempt < 3 && !parseOK; attempt++ {
		response, err := g.client.GenerateContent(ctx, content,
			llms.WithTemperature(0.3),
			llms.WithMaxTokens(2000),
			llms.WithJSONMode())
		if err != nil {
			g.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return nil, err
		}

		if len(response.Choices) < 1 {
			g.logger.Debug("no choices returned from model")
			continue
		}

		rawContent = response.Choices[0].Content

		// Strip markdown code fences if present
		responseText := strings.TrimSpace(rawContent)
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)

		// Try to repair common JSON issues
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), &parsed); err != nil {
			g.logger.Warn("error parsing insight response",
				"attempt", attempt+1,
				"err", err)
			continue
		}
		parseOK = true
	}

	insights := &ai.Insights{RawResponse: rawContent}

	if parseOK {
		insights.CompanyStrategy = parsed.CompanyStrategy
		insights.LeadershipInformation = parsed.LeadershipInformation
		insights.ProductStrategySummary = parsed.ProductStrategySummary
		insights.ArticleLinks = parsed.ArticleLinks
	} else if rawContent != "" {
		// JSON never parsed; recover sections by scanning for markers.
		g.logger.Warn("falling back to marker-based section parse")
		fallback := parseSectionsByMarker(rawContent)
		insights.CompanyStrategy = fallback.CompanyStrategy
		insights.LeadershipInformation = fallback.LeadershipInformation
		insights.ProductStrategySummary = fallback.ProductStrategySummary
		insights.ArticleLinks = fallback.ArticleLinks
	}

	backfillMissing(insights)
	return insights, nil
}

// parseSectionsByMarker extracts report sections from free-form model output
// by scanning for section headings.
func parseSectionsByMarker(text string) onePager {
	var result onePager
	var current *string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		upper := strings.ToUpper(line)

		switch {
		case strings.Contains(upper, "COMPANY STRATEGY") || strings.Contains(line, "company_strategy"):
			current = &result.CompanyStrategy
		case strings.Contains(upper, "LEADERSHIP INFORMATION") || strings.Contains(line, "leadership_information"):
			current = &result.LeadershipInformation
		case strings.Contains(upper, "PRODUCT/STRATEGY SUMMARY") || strings.Contains(line, "product_strategy_summary"):
			current = &result.ProductStrategySummary
		case strings.Contains(upper, "ARTICLE LINKS") || strings.Contains(line, "article_links"):
			current = &result.ArticleLinks
		case current != nil && line != "":
			// Strip stray JSON punctuation from the recovered text
			clean := strings.NewReplacer(`"`, "", ",", "", "{", "", "}", "").Replace(line)
			*current += clean + "\n"
		}
	}

	return result
}

// backfillMissing replaces empty report sections with a placeholder message.
func backfillMissing(insights *ai.Insights) {
	for _, field := range []*string{
		&insights.CompanyStrategy,
		&insights.LeadershipInformation,
		&insights.ProductStrategySummary,
		&insights.ArticleLinks,
	} {
		if strings.TrimSpace(*field) == "" {
			*field = missingSection
		}
	}
}
