package mock

import (
	"context"

	"github.com/saleslens/saleslens/ai"
)

// MockInsightGenerator is a test double for ai.InsightGenerator.
// It allows custom behavior injection via a function field.
type MockInsightGenerator struct {
	// GenerateInsightsFunc is called by GenerateInsights if set.
	// If nil, returns canned placeholder insights.
	GenerateInsightsFunc func(ctx context.Context, req *ai.InsightRequest) (*ai.Insights, error)

	callCount int
}

// NewMockInsightGenerator creates a mock insight generator with canned output.
// Note: Returns concrete type to allow test assertions via GetMockInsightGenerator().
func NewMockInsightGenerator() *MockInsightGenerator {
	return &MockInsightGenerator{}
}

// GenerateInsights returns canned insights mentioning the product name.
func (m *MockInsightGenerator) GenerateInsights(ctx context.Context, req *ai.InsightRequest) (*ai.Insights, error) {
	m.callCount++

	if m.GenerateInsightsFunc != nil {
		return m.GenerateInsightsFunc(ctx, req)
	}

	return &ai.Insights{
		CompanyStrategy:        "Mock company strategy for " + req.ProductName,
		LeadershipInformation:  "Mock leadership information",
		ProductStrategySummary: "Mock product strategy summary",
		ArticleLinks:           "- Mock article link",
		RawResponse:            "{}",
	}, nil
}

// CallCount returns the number of times GenerateInsights was called.
func (m *MockInsightGenerator) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockInsightGenerator) Reset() {
	m.callCount = 0
	m.GenerateInsightsFunc = nil
}
