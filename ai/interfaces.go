package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use and stateless per
// call; one instance is shared process-wide across all analyses.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// InsightRequest carries the inputs for one sales intelligence report.
type InsightRequest struct {
	// ProductName is the product being sold.
	ProductName string

	// ProductCategory is the product's market category.
	// Example: "Observability & Monitoring"
	ProductCategory string

	// ValueProposition is the pitch for the target company.
	ValueProposition string

	// TargetCustomer names the stakeholders at the target company.
	TargetCustomer string

	// CompanyURL is the target company being analyzed.
	CompanyURL string

	// CompanyContent is the structured content blob scraped from the
	// target company's site.
	CompanyContent string

	// PressContent is press release and news text, may be empty.
	PressContent string

	// ProductSheet is text extracted from an uploaded product overview
	// document, may be empty.
	ProductSheet string
}

// Insights is the structured sales intelligence one-pager.
// Each field holds markdown-ready text for one report section.
type Insights struct {
	CompanyStrategy        string
	LeadershipInformation  string
	ProductStrategySummary string
	ArticleLinks           string

	// RawResponse preserves the unparsed model output for debugging.
	RawResponse string
}

// InsightGenerator produces a sales intelligence one-pager from company data.
// Implementations must be thread-safe for concurrent use.
type InsightGenerator interface {
	// GenerateInsights analyzes the request data and returns a structured
	// report. Sections the model could not fill are populated with a
	// placeholder message rather than left empty.
	// Returns an error if report generation fails.
	GenerateInsights(ctx context.Context, req *InsightRequest) (*Insights, error)
}

// AIProvider aggregates AI services for convenient initialization and lifecycle management.
// A provider creates and manages Embedder and InsightGenerator instances,
// ensuring they share configuration and resources appropriately.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// InsightGenerator returns the report generation service.
	// The returned InsightGenerator is safe for concurrent use.
	InsightGenerator() InsightGenerator

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
