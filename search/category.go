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

package search

import (
	"context"

	"github.com/saleslens/saleslens/core"
)

// Relevance thresholds. Scores are cosine similarities in [-1, 1]; these
// cutoffs were tuned against small-model embeddings (all-minilm class),
// where cross-topic text rarely scores above 0.3.
const (
	// CategoryThreshold is the floor for a section to count as a category
	// match at all.
	CategoryThreshold float32 = 0.4

	// MediumRelevance promotes a match out of the low bucket.
	MediumRelevance float32 = 0.5

	// HighRelevance marks strong topical alignment.
	HighRelevance float32 = 0.65

	// MentionThreshold is the floor for semantic competitor-mention matches.
	MentionThreshold float32 = 0.6
)

const snippetMaxChars = 200

// MatchProductCategory scores a product category description against every
// profile section and buckets the matches by relevance.
//
// Every section scoring at or above CategoryThreshold lands in exactly one
// bucket: high at HighRelevance and above, medium at MediumRelevance and
// above, low otherwise. Buckets hold snippets rather than full section text;
// callers wanting the full text should use Search directly.
func (e *Engine) MatchProductCategory(ctx context.Context, category string, p *core.CompanyProfile) core.CategoryMatches {
	var matches core.CategoryMatches

	results := e.Search(ctx, category, p, CategoryThreshold)
	for _, section := range core.Sections() {
		result, ok := results[section]
		if !ok {
			continue
		}

		match := core.RelevanceMatch{
			Section: section,
			Score:   result.Score,
			Snippet: makeSnippet(result.Content),
		}

		switch {
		case result.Score >= HighRelevance:
			matches.High = append(matches.High, match)
		case result.Score >= MediumRelevance:
			matches.Medium = append(matches.Medium, match)
		default:
			matches.Low = append(matches.Low, match)
		}
	}

	return matches
}

// makeSnippet condenses section content to its first few substantial
// sentence fragments, falling back to a plain prefix when the content
// has no usable sentence structure.
func makeSnippet(content string) string {
	fragments := splitSentences(content)

	kept := make([]string, 0, snippetSentences)
	for _, fragment := range fragments {
		if len(fragment) <= minSnippetFragmentChars {
			continue
		}
		kept = append(kept, fragment)
		if len(kept) == snippetSentences {
			break
		}
	}

	if len(kept) == 0 {
		return runePrefix(content, snippetMaxChars)
	}

	snippet := kept[0]
	for _, fragment := range kept[1:] {
		snippet += ". " + fragment
	}
	return snippet
}
