package collector

import (
	"context"
	"fmt"
	"strings"
)

var (
	pressKeywords = []string{"news", "press", "blog", "media", "announcement"}
	pressPaths    = []string{"/news", "/press", "/press-releases", "/newsroom", "/media", "/about/news", "/company/news"}
)

// maxPressArticles caps how many articles one press page contributes.
const maxPressArticles = 7

// CollectPressReleases finds the company's press or news page and pulls
// recent article titles and summaries from it. Returns an empty string
// when no press page answers; missing press is normal, not an error.
func (c *Collector) CollectPressReleases(ctx context.Context, url string) string {
	url = NormalizeURL(url)
	base := BaseURL(url)

	// Candidate pages: news-looking links from the homepage first, then
	// the conventional paths.
	var candidates []string
	seen := make(map[string]bool)
	add := func(link string) {
		if !seen[link] {
			seen[link] = true
			candidates = append(candidates, link)
		}
	}

	if page, err := c.client.Fetch(ctx, url); err == nil {
		for _, a := range extractAnchors(StripNoise(page)) {
			if matchesAnyKeyword(a, pressKeywords) {
				add(resolveLink(a.href, url))
			}
		}
	}
	for _, path := range pressPaths {
		add(base + path)
	}

	if len(candidates) > maxSubPages {
		candidates = candidates[:maxSubPages]
	}

	for _, pressURL := range candidates {
		c.logger.Debug("checking press page", "url", pressURL)
		page, err := c.client.Fetch(ctx, pressURL)
		if err != nil {
			continue
		}

		articles := extractArticles(StripNoise(page))
		if len(articles) == 0 {
			continue
		}

		return fmt.Sprintf("PRESS/NEWS FROM %s:\n\n%s\n\n", pressURL, strings.Join(articles, "\n\n"))
	}

	return ""
}

// extractArticles pairs article headings with their first following
// paragraph as a summary.
func extractArticles(page string) []string {
	var articles []string
	for _, loc := range headingTags.FindAllStringSubmatchIndex(page, -1) {
		title := flatten(page[loc[2]:loc[3]])
		if title == "" {
			continue
		}

		article := fmt.Sprintf("TITLE: %s\n", title)
		if match := paragraphTags.FindStringSubmatch(page[loc[1]:]); match != nil {
			if summary := flatten(match[1]); summary != "" {
				article += fmt.Sprintf("SUMMARY: %s\n", summary)
			}
		}

		articles = append(articles, article)
		if len(articles) == maxPressArticles {
			break
		}
	}
	return articles
}
