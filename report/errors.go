package report

import "errors"

var (
	// ErrInsightGeneratorRequired is returned when an insight generator is not provided.
	ErrInsightGeneratorRequired = errors.New("insight generator required")

	// ErrSiteContentRequired is returned when a request carries no collected site content.
	ErrSiteContentRequired = errors.New("site content required")
)
