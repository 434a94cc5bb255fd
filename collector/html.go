package collector

import (
	"html"
	"regexp"
	"strings"
)

// Pre-compiled regular expressions for HTML parsing performance.
var (
	titleTag      = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	scriptTag     = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleTag      = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	noscriptTag   = regexp.MustCompile(`(?is)<noscript[^>]*>.*?</noscript>`)
	navTag        = regexp.MustCompile(`(?is)<nav[^>]*>.*?</nav>`)
	footerTag     = regexp.MustCompile(`(?is)<footer[^>]*>.*?</footer>`)
	iframeTag     = regexp.MustCompile(`(?is)<iframe[^>]*>.*?</iframe>`)
	svgTag        = regexp.MustCompile(`(?is)<svg[^>]*>.*?</svg>`)
	htmlComments  = regexp.MustCompile(`(?s)<!--.*?-->`)
	metaDescTag   = regexp.MustCompile(`(?is)<meta[^>]+name=["']description["'][^>]*>`)
	ogDescTag     = regexp.MustCompile(`(?is)<meta[^>]+property=["']og:description["'][^>]*>`)
	metaContent   = regexp.MustCompile(`(?is)content=["']([^"']*)["']`)
	headingTags   = regexp.MustCompile(`(?is)<h[1-3][^>]*>(.*?)</h[1-3]>`)
	paragraphTags = regexp.MustCompile(`(?is)<p[^>]*>(.*?)</p>`)
	anchorTags    = regexp.MustCompile(`(?is)<a[^>]+href=["']([^"']*)["'][^>]*>(.*?)</a>`)
	blockClose    = regexp.MustCompile(`(?i)</(p|div|br|hr|h[1-6]|li|tr|blockquote|pre|table|section|article)>`)
	blockOpen     = regexp.MustCompile(`(?i)<(p|div|h[1-6]|li|tr|blockquote|pre|table|section|article)[^>]*>`)
	brTags        = regexp.MustCompile(`(?i)<br\s*/?>`)
	allTags       = regexp.MustCompile(`<[^>]+>`)
	multiSpaces   = regexp.MustCompile(`[ \t]+`)
	multiNewlines = regexp.MustCompile(`\n{3,}`)
)

// anchor is one link on a page, with its tag text already flattened.
type anchor struct {
	href string
	text string
}

// StripNoise removes the parts of a page that never carry company copy.
func StripNoise(content string) string {
	content = scriptTag.ReplaceAllString(content, "")
	content = styleTag.ReplaceAllString(content, "")
	content = noscriptTag.ReplaceAllString(content, "")
	content = navTag.ReplaceAllString(content, "")
	content = footerTag.ReplaceAllString(content, "")
	content = iframeTag.ReplaceAllString(content, "")
	content = svgTag.ReplaceAllString(content, "")
	content = htmlComments.ReplaceAllString(content, "")
	return content
}

// ExtractTitle returns the page title, or an empty string.
func ExtractTitle(content string) string {
	matches := titleTag.FindStringSubmatch(content)
	if len(matches) < 2 {
		return ""
	}
	return flatten(matches[1])
}

// ExtractMetaDescription returns the meta description, preferring the
// standard tag over og:description.
func ExtractMetaDescription(content string) string {
	for _, tag := range []*regexp.Regexp{metaDescTag, ogDescTag} {
		meta := tag.FindString(content)
		if meta == "" {
			continue
		}
		matches := metaContent.FindStringSubmatch(meta)
		if len(matches) > 1 {
			if desc := flatten(matches[1]); desc != "" {
				return desc
			}
		}
	}
	return ""
}

// extractHeadings returns the text of every h1-h3 on the page, in order.
func extractHeadings(content string) []string {
	var headings []string
	for _, match := range headingTags.FindAllStringSubmatch(content, -1) {
		if text := flatten(match[1]); text != "" {
			headings = append(headings, text)
		}
	}
	return headings
}

// extractParagraphs returns the text of every paragraph on the page, in order.
func extractParagraphs(content string) []string {
	var paragraphs []string
	for _, match := range paragraphTags.FindAllStringSubmatch(content, -1) {
		if text := flatten(match[1]); text != "" {
			paragraphs = append(paragraphs, text)
		}
	}
	return paragraphs
}

// extractAnchors returns every link on the page.
func extractAnchors(content string) []anchor {
	var anchors []anchor
	for _, match := range anchorTags.FindAllStringSubmatch(content, -1) {
		anchors = append(anchors, anchor{
			href: strings.TrimSpace(match[1]),
			text: flatten(match[2]),
		})
	}
	return anchors
}

// PageText converts a whole page to readable plain text, one block
// element per line.
func PageText(content string) string {
	content = StripNoise(content)
	content = blockOpen.ReplaceAllString(content, "\n")
	content = blockClose.ReplaceAllString(content, "\n")
	content = brTags.ReplaceAllString(content, "\n")
	content = allTags.ReplaceAllString(content, "")
	content = html.UnescapeString(content)
	content = multiSpaces.ReplaceAllString(content, " ")
	content = multiNewlines.ReplaceAllString(content, "\n\n")

	lines := strings.Split(content, "\n")
	var result []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			result = append(result, line)
		}
	}
	return strings.Join(result, "\n")
}

// flatten strips any nested tags from a fragment and collapses its
// whitespace to single spaces.
func flatten(fragment string) string {
	fragment = allTags.ReplaceAllString(fragment, "")
	fragment = html.UnescapeString(fragment)
	fragment = strings.ReplaceAll(fragment, "\n", " ")
	fragment = multiSpaces.ReplaceAllString(fragment, " ")
	return strings.TrimSpace(fragment)
}

// RelatedLinks returns the absolute URLs of same-site links whose text or
// href contains one of the keywords, in page order. Fragment links and
// links to other sites are skipped.
func RelatedLinks(page, pageURL string, keywords []string) []string {
	base := BaseURL(pageURL)

	var links []string
	for _, a := range extractAnchors(page) {
		if strings.HasPrefix(a.href, "#") {
			continue
		}
		if strings.HasPrefix(a.href, "http") && !strings.HasPrefix(a.href, base) {
			continue
		}
		if !matchesAnyKeyword(a, keywords) {
			continue
		}
		links = append(links, resolveLink(a.href, pageURL))
	}
	return links
}

// resolveLink turns a possibly relative href into an absolute URL.
func resolveLink(href, pageURL string) string {
	switch {
	case strings.HasPrefix(href, "http://"), strings.HasPrefix(href, "https://"):
		return href
	case strings.HasPrefix(href, "/"):
		return BaseURL(pageURL) + href
	default:
		return strings.TrimSuffix(NormalizeURL(pageURL), "/") + "/" + strings.TrimPrefix(href, "/")
	}
}
