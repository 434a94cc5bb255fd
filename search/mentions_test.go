package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saleslens/saleslens/core"
)

func TestFindSemanticMentions(t *testing.T) {
	e := newTestEngine(t, fixedQueryEmbedder())

	mentions := e.FindSemanticMentions(context.Background(), "LegacyCorp", testProfile())

	// Only the description clears MentionThreshold and it holds exactly one
	// comparative sentence.
	require.Len(t, mentions, 1)
	assert.Equal(t, core.SectionCompanyDescription, mentions[0].Section)
	assert.InDelta(t, 0.9, mentions[0].Score, 1e-5)
	assert.Contains(t, mentions[0].Context, "Unlike LegacyCorp")
}

func TestFindSemanticMentionsNoComparativeLanguage(t *testing.T) {
	e := newTestEngine(t, fixedQueryEmbedder())

	p := testProfile()
	p.RawContent = "COMPANY DESCRIPTION:\nTestCo builds factory automation robots for heavy industry.\nMAIN CONTENT:\nrest"

	mentions := e.FindSemanticMentions(context.Background(), "LegacyCorp", p)

	assert.Empty(t, mentions, "topical match without comparative language yields no mentions")
}

func TestFindSemanticMentionsBelowThreshold(t *testing.T) {
	e := newTestEngine(t, fixedQueryEmbedder())

	p := testProfile()
	p.SectionEmbeddings = map[core.SectionName][]float32{
		core.SectionCompanyDescription: unitAt(0.5),
	}

	mentions := e.FindSemanticMentions(context.Background(), "LegacyCorp", p)

	assert.Empty(t, mentions)
}

func TestFindSemanticMentionsSkipsShortSentences(t *testing.T) {
	e := newTestEngine(t, fixedQueryEmbedder())

	p := testProfile()
	p.RawContent = "COMPANY DESCRIPTION:\nLike them. We offer a fully managed alternative to self-hosted stacks.\nMAIN CONTENT:\nrest"

	mentions := e.FindSemanticMentions(context.Background(), "LegacyCorp", p)

	require.Len(t, mentions, 1)
	assert.Contains(t, mentions[0].Context, "fully managed alternative")
}

func TestContainsComparisonWord(t *testing.T) {
	tests := []struct {
		sentence string
		want     bool
	}{
		{"We are a cheaper alternative to the incumbents", true},
		{"Compared with legacy tools it is faster", true},
		{"Acme versus the rest of the market", true},
		{"Our product is better than anything else", true},
		{"UNLIKE OTHERS WE SHIP WEEKLY", true},
		{"We build robots for warehouses", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, containsComparisonWord(tt.sentence), "sentence: %q", tt.sentence)
	}
}

func TestFindSemanticMentionsNewlineSeparatedContent(t *testing.T) {
	e := newTestEngine(t, fixedQueryEmbedder())

	p := testProfile()
	p.RawContent = "COMPANY DESCRIPTION:\nUnlike LegacyCorp\nWe deploy agents in minutes for teams\nMAIN CONTENT:\nrest"

	mentions := e.FindSemanticMentions(context.Background(), "LegacyCorp", p)

	// The comparative fragment sits alone on its line and is too short to
	// keep; it must not absorb the following line to sneak past the filter.
	assert.Empty(t, mentions)
}

func TestFindSemanticMentionsContextIsSingleLine(t *testing.T) {
	e := newTestEngine(t, fixedQueryEmbedder())

	p := testProfile()
	p.RawContent = "COMPANY DESCRIPTION:\nWe are a modern alternative to legacy monitoring suites\nOur rollout takes one afternoon\nMAIN CONTENT:\nrest"

	mentions := e.FindSemanticMentions(context.Background(), "LegacyCorp", p)

	require.Len(t, mentions, 1)
	assert.Equal(t, "We are a modern alternative to legacy monitoring suites", mentions[0].Context)
}

func TestSplitSentences(t *testing.T) {
	got := splitSentences("One here. Two there. Three anywhere. \n\n .. ")

	assert.Equal(t, []string{"One here", "Two there", "Three anywhere"}, got)
}

func TestSplitSentencesOnlyPeriodsTerminate(t *testing.T) {
	got := splitSentences("Ship faster! Worry less? Deploy today.")

	assert.Equal(t, []string{"Ship faster! Worry less? Deploy today"}, got)
}

func TestSplitMentionSentences(t *testing.T) {
	got := splitMentionSentences("First claim here\nSecond claim there. Third claim\r\nlast one \n\n .. ")

	assert.Equal(t, []string{"First claim here", "Second claim there", "Third claim", "last one"}, got)
}
