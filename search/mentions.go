package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/saleslens/saleslens/core"
)

// comparisonWords is the vocabulary that marks a sentence as comparative.
// Matching is substring-based on the lowercased sentence, so "like" also
// covers "unlike" and "vs" covers "vs.".
var comparisonWords = []string{
	"alternative",
	"competitor",
	"similar",
	"compared",
	"versus",
	"vs",
	"unlike",
	"like",
	"better than",
}

// FindSemanticMentions looks for places where the profile talks about a
// competitor without naming it. It searches the profile with a synthesized
// "companies like X" query at MentionThreshold, then keeps only the
// comparative sentences of each matching section.
//
// The result may legitimately be empty even when sections match: a section
// can be topically close to the competitor query yet contain no comparative
// language.
func (e *Engine) FindSemanticMentions(ctx context.Context, competitor string, p *core.CompanyProfile) []core.SemanticMention {
	query := fmt.Sprintf("companies like %s or similar to %s", competitor, competitor)

	results := e.Search(ctx, query, p, MentionThreshold)

	var mentions []core.SemanticMention
	for _, section := range core.Sections() {
		result, ok := results[section]
		if !ok {
			continue
		}

		for _, sentence := range splitMentionSentences(result.Content) {
			if len(sentence) <= minMentionSentenceChars {
				continue
			}
			if !containsComparisonWord(sentence) {
				continue
			}
			mentions = append(mentions, core.SemanticMention{
				Section: section,
				Score:   result.Score,
				Context: sentence,
			})
		}
	}

	return mentions
}

func containsComparisonWord(sentence string) bool {
	lowered := strings.ToLower(sentence)
	for _, word := range comparisonWords {
		if strings.Contains(lowered, word) {
			return true
		}
	}
	return false
}
