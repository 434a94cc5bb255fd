package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/saleslens/saleslens/competitor"
)

// FormatCompetitorMentions renders a competitor analysis as markdown,
// one block per competitor in URL order, each leading with the mention
// count summary.
func FormatCompetitorMentions(analysis *competitor.Analysis) string {
	if analysis == nil || len(analysis.Competitors) == 0 {
		return "No competitor information available."
	}

	urls := make([]string, 0, len(analysis.Competitors))
	for url := range analysis.Competitors {
		urls = append(urls, url)
	}
	sort.Strings(urls)

	var b strings.Builder
	for _, url := range urls {
		data := analysis.Competitors[url]
		if data == nil {
			continue
		}

		summary := ""
		if len(data.Mentions) > 0 {
			first := data.Mentions[0]
			if strings.Contains(first, "Found") || strings.Contains(first, "No mentions") {
				summary = " **" + first + "**"
			}
		}

		fmt.Fprintf(&b, "### %s%s\n\n", orUnknown(data.Name), summary)
		fmt.Fprintf(&b, "**Website:** %s\n\n", url)
		fmt.Fprintf(&b, "**Description:**\n%s\n\n", orUnavailable(data.Description, "No description available"))
		fmt.Fprintf(&b, "**Key Features:**\n%s\n", orUnavailable(data.MainFeatures, "No features information available"))

		if data.Differentiators != "" {
			fmt.Fprintf(&b, "\n**Key Differentiators:**\n%s\n", data.Differentiators)
		}

		if len(data.Mentions) > 1 {
			b.WriteString("\n**Mention Details:**\n")
			for _, mention := range data.Mentions[1:] {
				if strings.HasPrefix(mention, "Context:") {
					fmt.Fprintf(&b, "- *%s*\n", mention)
				} else {
					fmt.Fprintf(&b, "- %s\n", mention)
				}
			}
		}

		b.WriteString("\n---\n")
	}

	return b.String()
}

// FormatArticleLinks normalizes the article links section for display.
func FormatArticleLinks(links string) string {
	if strings.TrimSpace(links) == "" {
		return "No article links available."
	}
	return links
}

func orUnknown(name string) string {
	if name == "" {
		return "Unknown Competitor"
	}
	return name
}

func orUnavailable(text, fallback string) string {
	if strings.TrimSpace(text) == "" {
		return fallback
	}
	return text
}
