package collector

import "errors"

var (
	// ErrFetchFailed is returned when a page could not be retrieved.
	ErrFetchFailed = errors.New("fetch failed")

	// ErrPDFParse is returned when a product sheet could not be parsed.
	ErrPDFParse = errors.New("pdf parse failed")
)
