package openai

import (
	"testing"

	"github.com/saleslens/saleslens/ai"
	"github.com/stretchr/testify/assert"
)

func TestRepairJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "valid JSON unchanged",
			input: `{"company_strategy": "expand"}`,
			want:  `{"company_strategy": "expand"}`,
		},
		{
			name:  "missing opening quote on key",
			input: `{company_strategy": "expand"}`,
			want:  `{"company_strategy": "expand"}`,
		},
		{
			name:  "missing opening quote after comma",
			input: `{"a": "1", article_links": "x"}`,
			want:  `{"a": "1", "article_links": "x"}`,
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repairJSON(tt.input))
		})
	}
}

func TestParseSectionsByMarker(t *testing.T) {
	raw := `1. COMPANY STRATEGY
They are investing in cloud observability.

2. LEADERSHIP INFORMATION
Jane Doe, CTO.

3. PRODUCT/STRATEGY SUMMARY
Strong alignment.

4. ARTICLE LINKS
- https://example.com/news
`

	got := parseSectionsByMarker(raw)

	assert.Contains(t, got.CompanyStrategy, "cloud observability")
	assert.Contains(t, got.LeadershipInformation, "Jane Doe")
	assert.Contains(t, got.ProductStrategySummary, "Strong alignment")
	assert.Contains(t, got.ArticleLinks, "https://example.com/news")
}

func TestParseSectionsByMarker_StripsJSONPunctuation(t *testing.T) {
	raw := "company_strategy\n\"Expand into EMEA\",\n"

	got := parseSectionsByMarker(raw)

	assert.Equal(t, "Expand into EMEA\n", got.CompanyStrategy)
}

func TestBackfillMissing(t *testing.T) {
	insights := &ai.Insights{
		CompanyStrategy: "present",
	}

	backfillMissing(insights)

	assert.Equal(t, "present", insights.CompanyStrategy)
	assert.Equal(t, missingSection, insights.LeadershipInformation)
	assert.Equal(t, missingSection, insights.ProductStrategySummary)
	assert.Equal(t, missingSection, insights.ArticleLinks)
}

func TestBuildInsightPrompt_Defaults(t *testing.T) {
	prompt := buildInsightPrompt(&ai.InsightRequest{})

	assert.Contains(t, prompt, "You're helping sell: N/A")
	assert.Contains(t, prompt, "our product")
	assert.NotContains(t, prompt, "PRODUCT OVERVIEW")
}

func TestBuildInsightPrompt_TruncatesContent(t *testing.T) {
	long := make([]byte, maxCompanyContentChars*2)
	for i := range long {
		long[i] = 'x'
	}

	prompt := buildInsightPrompt(&ai.InsightRequest{
		ProductName:    "Widget",
		CompanyContent: string(long),
	})

	assert.Less(t, len(prompt), len(long))
	assert.Contains(t, prompt, "Widget")
}
