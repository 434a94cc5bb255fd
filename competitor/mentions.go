package competitor

import (
	"fmt"
	"regexp"
	"strings"
)

// mentionContextChars is how much surrounding text each mention carries
// on either side.
const mentionContextChars = 100

var (
	parenthetical = regexp.MustCompile(`\s*\(.*?\)`)
	spaceRuns     = regexp.MustCompile(`\s+`)
)

// Mention is one literal occurrence of a competitor name on the target
// company's site, with surrounding context.
type Mention struct {
	Variant string
	Context string
}

// FindMentions scans content for literal occurrences of the competitor
// name. The name is matched case-insensitively in three variants: as
// given, with spaces removed, and with a .com suffix dropped. Mentions
// sharing identical context are reported once.
func FindMentions(content, competitorName string) []Mention {
	baseName := strings.TrimSpace(parenthetical.ReplaceAllString(competitorName, ""))
	if baseName == "" || content == "" {
		return nil
	}

	contentLower := strings.ToLower(content)
	nameLower := strings.ToLower(baseName)

	variants := []string{
		nameLower,
		strings.ReplaceAll(nameLower, " ", ""),
		strings.TrimSuffix(nameLower, ".com"),
	}

	var mentions []Mention
	seen := make(map[string]bool)

	for _, variant := range variants {
		if variant == "" {
			continue
		}
		pos := 0
		for {
			index := strings.Index(contentLower[pos:], variant)
			if index == -1 {
				break
			}
			index += pos

			start := index - mentionContextChars
			if start < 0 {
				start = 0
			}
			end := index + len(variant) + mentionContextChars
			if end > len(content) {
				end = len(content)
			}

			context := strings.NewReplacer("\n", " ", "\r", " ").Replace(content[start:end])
			context = "..." + strings.TrimSpace(spaceRuns.ReplaceAllString(context, " ")) + "..."

			if !seen[context] {
				seen[context] = true
				mentions = append(mentions, Mention{Variant: variant, Context: context})
			}

			pos = index + len(variant)
		}
	}

	return mentions
}

// FormatMentions renders mentions as display lines, leading with a count
// summary, or a single "no mentions" line.
func FormatMentions(name, companyURL string, mentions []Mention) []string {
	if len(mentions) == 0 {
		return []string{fmt.Sprintf("No mentions of %s found on the %s website", name, companyURL)}
	}

	lines := make([]string, 0, len(mentions)+1)
	lines = append(lines, fmt.Sprintf("Found %d mention(s) of %s on the %s website", len(mentions), name, companyURL))
	for _, mention := range mentions {
		lines = append(lines, "Context: "+mention.Context)
	}
	return lines
}
