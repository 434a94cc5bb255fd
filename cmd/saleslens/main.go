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

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/saleslens/saleslens"
	"github.com/saleslens/saleslens/ai"
	"github.com/saleslens/saleslens/core"
	"github.com/saleslens/saleslens/search"
)

func main() {
	// A .env file is optional; real deployments set the variables directly.
	_ = godotenv.Load()

	app := &cli.App{
		Name:   "saleslens",
		Usage:  "Sales intelligence assistant for company research",
		Before: setupLogger,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to the profile cache directory",
				Value:   "./saleslens_db",
				EnvVars: []string{"SALESLENS_DB"},
			},
			&cli.StringFlag{
				Name:    "host",
				Usage:   "OpenAI-compatible service host URL",
				Value:   "http://localhost:11434/v1",
				EnvVars: []string{"SALESLENS_HOST"},
			},
			&cli.StringFlag{
				Name:    "embedding-model",
				Usage:   "Embedding model name",
				Value:   "all-minilm",
				EnvVars: []string{"SALESLENS_EMBEDDING_MODEL"},
			},
			&cli.StringFlag{
				Name:    "insight-model",
				Usage:   "Chat model name for report generation",
				Value:   "qwen2.5:3b",
				EnvVars: []string{"SALESLENS_INSIGHT_MODEL"},
			},
			&cli.StringFlag{
				Name:    "token",
				Usage:   "API token for the AI service",
				EnvVars: []string{"OPENAI_API_KEY", "SALESLENS_TOKEN"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "analyze",
				Usage:     "Scrape a company site and cache its embedded profile",
				ArgsUsage: "URL",
				Action:    analyzeCommand,
			},
			{
				Name:      "search",
				Usage:     "Run a semantic query against a company's profile",
				ArgsUsage: "URL QUERY...",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.Float64Flag{
						Name:  "threshold",
						Usage: "Minimum similarity score for a hit",
						Value: float64(search.CategoryThreshold),
					},
				},
			},
			{
				Name:      "category",
				Usage:     "Score a product category against a company's profile",
				ArgsUsage: "URL CATEGORY...",
				Action:    categoryCommand,
			},
			{
				Name:      "mentions",
				Usage:     "Find competitor-comparison language on a company's site",
				ArgsUsage: "URL COMPETITOR",
				Action:    mentionsCommand,
			},
			{
				Name:      "similar",
				Usage:     "Find cached companies similar to a query",
				ArgsUsage: "QUERY...",
				Action:    similarCommand,
				Flags: []cli.Flag{
					&cli.Float64Flag{
						Name:  "threshold",
						Usage: "Minimum similarity score for a hit",
						Value: float64(search.MediumRelevance),
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of companies to return",
						Value: 5,
					},
				},
			},
			{
				Name:   "report",
				Usage:  "Generate a sales intelligence one-pager",
				Action: reportCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "company",
						Usage:    "Target company URL",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "product",
						Usage:    "Product being sold",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "product-category",
						Usage: "Product market category",
					},
					&cli.StringFlag{
						Name:  "value-proposition",
						Usage: "Pitch for the target company",
					},
					&cli.StringFlag{
						Name:  "target-customer",
						Usage: "Stakeholders at the target company",
					},
					&cli.StringFlag{
						Name:  "product-sheet",
						Usage: "Path to a PDF product overview",
					},
					&cli.StringSliceFlag{
						Name:  "competitor",
						Usage: "Competitor URL (repeatable)",
					},
				},
			},
			{
				Name:   "refresh",
				Usage:  "Re-embed stale cached profiles",
				Action: refreshCommand,
				Flags: []cli.Flag{
					&cli.DurationFlag{
						Name:  "max-age",
						Usage: "Profiles fetched longer ago than this are refreshed",
						Value: 7 * 24 * time.Hour,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newAnalyzer(c *cli.Context) (*saleslens.Analyzer, error) {
	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithInsightModel(c.String("insight-model")),
		ai.WithToken(c.String("token")),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	return saleslens.NewAnalyzer(c.String("db"), saleslens.WithAIConfig(aiConfig))
}

func analyzeCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("company URL is required")
	}

	analyzer, err := newAnalyzer(c)
	if err != nil {
		return err
	}
	defer analyzer.Close()

	profile, err := analyzer.AnalyzeCompany(context.Background(), c.Args().First())
	if err != nil {
		return err
	}

	fmt.Printf("Cached profile for %s\n", profile.URL)
	fmt.Printf("Embedded sections: %d\n", len(profile.SectionEmbeddings))
	for _, section := range core.Sections() {
		if _, ok := profile.SectionEmbeddings[section]; ok {
			fmt.Printf("  - %s\n", section)
		}
	}
	return nil
}

func searchCommand(c *cli.Context) error {
	if c.NArg() < 2 {
		return fmt.Errorf("company URL and query are required")
	}

	analyzer, err := newAnalyzer(c)
	if err != nil {
		return err
	}
	defer analyzer.Close()

	url := c.Args().First()
	query := strings.Join(c.Args().Slice()[1:], " ")

	results, err := analyzer.SearchCompany(context.Background(), url, query, float32(c.Float64("threshold")))
	if err != nil {
		return err
	}

	fmt.Printf("Found %d matching sections\n", len(results))
	for _, section := range core.Sections() {
		hit, ok := results[section]
		if !ok {
			continue
		}
		fmt.Printf("%s [%0.3f]\n%s\n\n", hit.Section, hit.Score, hit.Content)
	}
	return nil
}

func categoryCommand(c *cli.Context) error {
	if c.NArg() < 2 {
		return fmt.Errorf("company URL and category are required")
	}

	analyzer, err := newAnalyzer(c)
	if err != nil {
		return err
	}
	defer analyzer.Close()

	url := c.Args().First()
	category := strings.Join(c.Args().Slice()[1:], " ")

	matches, err := analyzer.MatchProductCategory(context.Background(), url, category)
	if err != nil {
		return err
	}

	printBucket := func(name string, bucket []core.RelevanceMatch) {
		if len(bucket) == 0 {
			return
		}
		fmt.Printf("%s relevance:\n", name)
		for _, match := range bucket {
			fmt.Printf("  %s [%0.3f]: %s\n", match.Section, match.Score, match.Snippet)
		}
	}
	printBucket("High", matches.High)
	printBucket("Medium", matches.Medium)
	printBucket("Low", matches.Low)
	return nil
}

func mentionsCommand(c *cli.Context) error {
	if c.NArg() < 2 {
		return fmt.Errorf("company URL and competitor name are required")
	}

	analyzer, err := newAnalyzer(c)
	if err != nil {
		return err
	}
	defer analyzer.Close()

	mentions, err := analyzer.FindSemanticMentions(context.Background(), c.Args().Get(0), c.Args().Get(1))
	if err != nil {
		return err
	}

	fmt.Printf("Found %d mentions\n", len(mentions))
	for _, mention := range mentions {
		fmt.Printf("%s [%0.3f]: %s\n", mention.Section, mention.Score, mention.Context)
	}
	return nil
}

func similarCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("query is required")
	}

	analyzer, err := newAnalyzer(c)
	if err != nil {
		return err
	}
	defer analyzer.Close()

	query := strings.Join(c.Args().Slice(), " ")
	matches, err := analyzer.FindSimilarCompanies(context.Background(), query,
		float32(c.Float64("threshold")), c.Int("limit"))
	if err != nil {
		return err
	}

	fmt.Printf("Found %d similar companies\n", len(matches))
	for i, match := range matches {
		fmt.Printf("%d: %s [%0.3f]\n", i+1, match.Profile.URL, match.Score)
	}
	return nil
}

func reportCommand(c *cli.Context) error {
	analyzer, err := newAnalyzer(c)
	if err != nil {
		return err
	}
	defer analyzer.Close()

	onePager, err := analyzer.GenerateReport(context.Background(), &saleslens.ReportRequest{
		ProductName:      c.String("product"),
		ProductCategory:  c.String("product-category"),
		ValueProposition: c.String("value-proposition"),
		TargetCustomer:   c.String("target-customer"),
		ProductSheetPath: c.String("product-sheet"),
		CompanyURL:       c.String("company"),
		CompetitorURLs:   c.StringSlice("competitor"),
	})
	if err != nil {
		return err
	}

	fmt.Println(onePager)
	return nil
}

func refreshCommand(c *cli.Context) error {
	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithInsightModel(c.String("insight-model")),
		ai.WithToken(c.String("token")),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	analyzer, err := saleslens.NewAnalyzer(c.String("db"),
		saleslens.WithAIConfig(aiConfig),
		saleslens.WithCacheMaxAge(c.Duration("max-age")),
	)
	if err != nil {
		return err
	}
	defer analyzer.Close()

	return analyzer.RefreshCache(context.Background(), os.Stderr)
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
