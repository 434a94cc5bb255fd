package search

import "strings"

const (
	// snippetSentences caps how many fragments a snippet keeps.
	snippetSentences = 3

	// minSnippetFragmentChars filters out fragments too short to carry meaning.
	minSnippetFragmentChars = 10

	// minMentionSentenceChars filters out fragments too short to be a real
	// comparative sentence.
	minMentionSentenceChars = 20
)

// splitSentences breaks text into trimmed sentence fragments on periods.
// Empty fragments are dropped.
func splitSentences(text string) []string {
	return splitOn(text, func(r rune) bool {
		return r == '.'
	})
}

// splitMentionSentences additionally treats line breaks as sentence ends.
// Scraped copy often separates standalone claims with newlines instead of
// punctuation, and a mention context must never span two of them.
func splitMentionSentences(text string) []string {
	return splitOn(text, func(r rune) bool {
		return r == '.' || r == '\n' || r == '\r'
	})
}

func splitOn(text string, isEnd func(rune) bool) []string {
	raw := strings.FieldsFunc(text, isEnd)

	fragments := make([]string, 0, len(raw))
	for _, fragment := range raw {
		fragment = strings.TrimSpace(fragment)
		if fragment != "" {
			fragments = append(fragments, fragment)
		}
	}
	return fragments
}

// runePrefix cuts s to at most n runes, never splitting a multi-byte rune.
func runePrefix(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
