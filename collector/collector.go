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

package collector

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
)

const (
	// maxMainContentChars caps the MAIN CONTENT section of the blob.
	maxMainContentChars = 3000

	// maxSubPages caps how many candidate sub-pages each probe visits.
	maxSubPages = 3

	// maxJobListings caps how many postings a careers page contributes.
	maxJobListings = 10
)

// Fallback messages for sections no probe could fill. These are embedded
// like any other section text, so they are written as prose.
const (
	noJobsMessage = "No job postings found on company website. Consider checking LinkedIn, Indeed, or Glassdoor for job postings that would reveal technology stack and skill requirements."

	noFinancialsMessage = "This may be a private company. Limited public financial information is available. Consider checking Crunchbase, PitchBook, or news articles for funding rounds and financial insights."
)

var (
	leadershipKeywords = []string{"leadership", "team", "management", "executives", "board", "directors", "founders"}
	financialTerms     = []string{"annual report", "10-k", "10k", "financial report", "earnings"}

	careersPaths  = []string{"/careers", "/jobs", "/work-with-us", "/join-us", "/company/careers"}
	investorPaths = []string{"/investor-relations", "/investors", "/financials", "/annual-report", "/ir"}

	aboutHeading      = regexp.MustCompile(`(?i)(about|mission|vision|values)`)
	leaderHeadingTags = regexp.MustCompile(`(?is)<(h[2-4])[^>]*>(.*?)</h[2-4]>`)
)

// SiteContent is everything collected for one company site.
type SiteContent struct {
	URL          string
	Content      string
	PressContent string
}

// Collector scrapes company websites into the marker-delimited content
// blob the profile builder consumes.
type Collector struct {
	client *Client
	logger *slog.Logger
}

// Option configures a Collector.
type Option func(*Collector)

// WithClient replaces the fetching client.
func WithClient(client *Client) Option {
	return func(c *Collector) {
		if client != nil {
			c.client = client
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Collector) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a collector.
func New(opts ...Option) *Collector {
	c := &Collector{
		client: NewClient(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect scrapes the company site and its press pages.
// Only the homepage is load-bearing; every sub-page probe degrades to a
// fallback message or empty text when it fails.
func (c *Collector) Collect(ctx context.Context, url string) (*SiteContent, error) {
	url = NormalizeURL(url)

	content, err := c.CollectSiteContent(ctx, url)
	if err != nil {
		return nil, err
	}

	press := c.CollectPressReleases(ctx, url)

	return &SiteContent{
		URL:          url,
		Content:      content,
		PressContent: press,
	}, nil
}

// CollectSiteContent scrapes the homepage plus leadership, careers and
// investor sub-pages, and assembles the structured content blob.
//
// Every section lands on the line after its marker, so the profile
// extractor's scan rule recovers exactly the text written here.
func (c *Collector) CollectSiteContent(ctx context.Context, url string) (string, error) {
	url = NormalizeURL(url)

	page, err := c.client.Fetch(ctx, url)
	if err != nil {
		c.logger.Error("could not fetch homepage", "url", url, "err", err)
		return "", err
	}
	page = StripNoise(page)

	title := ExtractTitle(page)
	if title == "" {
		title = "No title found"
	}

	description := ExtractMetaDescription(page)
	headings := strings.Join(extractHeadings(page), "\n")
	about := c.extractAboutContent(page)
	leadership := c.collectLeadership(ctx, page, url)
	jobs := c.collectJobs(ctx, url)
	financial := c.collectFinancial(ctx, url)

	mainContent := c.extractMainContent(page)
	if len(mainContent) > maxMainContentChars {
		mainContent = mainContent[:maxMainContentChars]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "COMPANY NAME: %s\n\n", title)
	fmt.Fprintf(&b, "COMPANY DESCRIPTION:\n%s\n\n", description)
	fmt.Fprintf(&b, "MAIN HEADINGS:\n%s\n\n", headings)
	fmt.Fprintf(&b, "ABOUT/MISSION:\n%s\n\n", about)
	fmt.Fprintf(&b, "LEADERSHIP INFORMATION:\n%s\n\n", leadership)
	fmt.Fprintf(&b, "JOB POSTINGS (TECH STACK INDICATORS):\n%s\n\n", jobs)
	fmt.Fprintf(&b, "FINANCIAL INFORMATION:\n%s\n\n", financial)
	fmt.Fprintf(&b, "MAIN CONTENT:\n%s\n", mainContent)

	return b.String(), nil
}

// extractMainContent pulls the substantial paragraphs off the page.
func (c *Collector) extractMainContent(page string) string {
	var b strings.Builder
	for _, paragraph := range extractParagraphs(page) {
		if len(paragraph) > 50 {
			b.WriteString(paragraph)
			b.WriteString("\n\n")
		}
	}
	return strings.TrimSpace(b.String())
}

// extractAboutContent collects the paragraphs that sit under an
// about/mission style heading, up to the next heading.
func (c *Collector) extractAboutContent(page string) string {
	headings := headingTags.FindAllStringSubmatchIndex(page, -1)

	var b strings.Builder
	for i, loc := range headings {
		text := flatten(page[loc[2]:loc[3]])
		if !aboutHeading.MatchString(text) {
			continue
		}

		sectionEnd := len(page)
		if i+1 < len(headings) {
			sectionEnd = headings[i+1][0]
		}

		for _, paragraph := range extractParagraphs(page[loc[1]:sectionEnd]) {
			b.WriteString(paragraph)
			b.WriteString("\n\n")
		}
	}
	return strings.TrimSpace(b.String())
}

// collectLeadership looks for leadership pages linked from the homepage
// and extracts name/title pairs from them, falling back to pairs found on
// the homepage itself.
func (c *Collector) collectLeadership(ctx context.Context, page, url string) string {
	var pages []string
	seen := make(map[string]bool)
	for _, a := range extractAnchors(page) {
		if !matchesAnyKeyword(a, leadershipKeywords) {
			continue
		}
		link := resolveLink(a.href, url)
		if seen[link] {
			continue
		}
		seen[link] = true
		pages = append(pages, link)
	}

	var b strings.Builder
	if len(pages) > maxSubPages {
		pages = pages[:maxSubPages]
	}
	for _, pageURL := range pages {
		c.logger.Debug("checking leadership page", "url", pageURL)
		sub, err := c.client.Fetch(ctx, pageURL)
		if err != nil {
			c.logger.Warn("leadership page fetch failed", "url", pageURL, "err", err)
			continue
		}
		b.WriteString(extractLeadershipPairs(StripNoise(sub)))
	}

	if b.Len() == 0 {
		return extractLeadershipPairs(page)
	}
	return strings.TrimSpace(b.String())
}

// extractLeadershipPairs pairs each h2-h4 heading with its first following
// paragraph, the usual shape of a team page card.
func extractLeadershipPairs(page string) string {
	var b strings.Builder
	for _, loc := range leaderHeadingTags.FindAllStringSubmatchIndex(page, -1) {
		name := flatten(page[loc[4]:loc[5]])
		if name == "" {
			continue
		}

		rest := page[loc[1]:]
		match := paragraphTags.FindStringSubmatch(rest)
		if match == nil {
			continue
		}
		title := flatten(match[1])
		if title == "" {
			continue
		}

		fmt.Fprintf(&b, "%s - %s\n", name, title)
	}
	return strings.TrimSpace(b.String())
}

// collectJobs probes the common careers paths and lists the postings of
// the first one that answers.
func (c *Collector) collectJobs(ctx context.Context, url string) string {
	base := BaseURL(url)

	for _, path := range careersPaths {
		careersURL := base + path
		page, err := c.client.Fetch(ctx, careersURL)
		if err != nil {
			continue
		}
		page = StripNoise(page)

		var titles []string
		for _, loc := range leaderHeadingTags.FindAllStringSubmatchIndex(page, -1) {
			if title := flatten(page[loc[4]:loc[5]]); title != "" {
				titles = append(titles, title)
			}
			if len(titles) == maxJobListings {
				break
			}
		}
		if len(titles) == 0 {
			continue
		}

		var b strings.Builder
		fmt.Fprintf(&b, "## Job Postings from %s:\n\n", careersURL)
		for _, title := range titles {
			fmt.Fprintf(&b, "- %s\n", title)
		}
		return b.String()
	}

	return noJobsMessage
}

// collectFinancial probes the common investor-relations paths and pulls
// report links and financial highlights from the first page with content.
func (c *Collector) collectFinancial(ctx context.Context, url string) string {
	base := BaseURL(url)

	for _, path := range investorPaths {
		investorURL := base + path
		page, err := c.client.Fetch(ctx, investorURL)
		if err != nil {
			continue
		}
		page = StripNoise(page)

		var reports strings.Builder
		for _, a := range extractAnchors(page) {
			if !matchesAnyKeyword(a, financialTerms) {
				continue
			}
			fmt.Fprintf(&reports, "- [%s](%s)\n", a.text, resolveLink(a.href, investorURL))
		}

		var highlights strings.Builder
		for _, paragraph := range extractParagraphs(page) {
			if len(paragraph) > 20 {
				fmt.Fprintf(&highlights, "- %s\n", paragraph)
			}
		}

		if reports.Len() == 0 && highlights.Len() == 0 {
			continue
		}

		var b strings.Builder
		fmt.Fprintf(&b, "## Financial Information from %s:\n\n", investorURL)
		if reports.Len() > 0 {
			b.WriteString("### Financial Reports:\n\n")
			b.WriteString(reports.String())
		}
		if highlights.Len() > 0 {
			b.WriteString("\n### Financial Highlights:\n\n")
			b.WriteString(highlights.String())
		}
		return b.String()
	}

	return noFinancialsMessage
}

// matchesAnyKeyword reports whether any keyword appears in the anchor's
// text or href, case-insensitively.
func matchesAnyKeyword(a anchor, keywords []string) bool {
	text := strings.ToLower(a.text)
	href := strings.ToLower(a.href)
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) || strings.Contains(href, keyword) {
			return true
		}
	}
	return false
}
