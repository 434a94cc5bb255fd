package competitor

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/saleslens/saleslens/collector"
)

var (
	ogSiteNameTag  = regexp.MustCompile(`(?is)<meta[^>]+property=["']og:site_name["'][^>]+content=["']([^"']*)["']`)
	taglineSuffix  = regexp.MustCompile(`\s*[-|:]\s*.+$`)
	fillerWords    = regexp.MustCompile(`(?i)\b(Home|Official Site|Welcome to)\b`)
	domainFromURL  = regexp.MustCompile(`https?://(?:www\.)?([^/]+)`)
	commonTLD      = regexp.MustCompile(`\.(com|org|net|io|ai|co|us|gov|edu)$`)
	wordsInDomain  = regexp.MustCompile(`[a-zA-Z][a-z]*`)
	h2Tags         = regexp.MustCompile(`(?is)<h2[^>]*>(.*?)</h2>`)
	firstParagraph = regexp.MustCompile(`(?is)<p[^>]*>(.*?)</p>`)
)

// CompanyName pulls the core company name out of a page, trying
// progressively weaker signals: og:site_name, the title tag stripped of
// taglines, and finally a prettified domain name.
func CompanyName(page, url string) string {
	if match := ogSiteNameTag.FindStringSubmatch(page); match != nil {
		name := taglineSuffix.ReplaceAllString(strings.TrimSpace(match[1]), "")
		if len(name) > 2 {
			return name
		}
	}

	if title := collector.ExtractTitle(page); title != "" {
		title = taglineSuffix.ReplaceAllString(title, "")
		title = strings.TrimSpace(fillerWords.ReplaceAllString(title, ""))
		if len(title) > 2 {
			return title
		}
	}

	if match := domainFromURL.FindStringSubmatch(collector.NormalizeURL(url)); match != nil {
		label := strings.SplitN(match[1], ".", 2)[0]
		label = commonTLD.ReplaceAllString(label, "")
		words := wordsInDomain.FindAllString(label, -1)
		for i, word := range words {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
		if len(words) > 0 {
			return strings.Join(words, " ")
		}
	}

	return "Unknown Company"
}

// Description pulls a short company description from a page: the meta
// description if present, otherwise the first substantial paragraph.
func Description(page string) string {
	if desc := collector.ExtractMetaDescription(page); desc != "" {
		return desc
	}

	for _, match := range firstParagraph.FindAllStringSubmatch(page, -1) {
		text := flattenFragment(match[1])
		if len(text) > 100 {
			return text
		}
	}

	return "No description available"
}

// MainFeatures summarizes a page's product story as its first few h2
// headings each paired with the following paragraph.
func MainFeatures(page string) string {
	var b strings.Builder
	count := 0
	for _, loc := range h2Tags.FindAllStringSubmatchIndex(page, -1) {
		heading := flattenFragment(page[loc[2]:loc[3]])
		if heading == "" {
			continue
		}

		fmt.Fprintf(&b, "%s: ", heading)
		if match := firstParagraph.FindStringSubmatch(page[loc[1]:]); match != nil {
			fmt.Fprintf(&b, "%s\n", flattenFragment(match[1]))
		}

		count++
		if count == 3 {
			break
		}
	}

	if b.Len() == 0 {
		return "No feature information available"
	}
	return b.String()
}

var innerTags = regexp.MustCompile(`<[^>]+>`)

func flattenFragment(fragment string) string {
	fragment = innerTags.ReplaceAllString(fragment, "")
	fragment = strings.ReplaceAll(fragment, "\n", " ")
	fragment = spaceRuns.ReplaceAllString(fragment, " ")
	return strings.TrimSpace(fragment)
}
