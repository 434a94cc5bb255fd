// Package competitor profiles competitor websites and cross-references
// them against a target company's site.
//
// For each competitor URL the Analyzer extracts a name, description and
// feature summary from the competitor's homepage, attaches curated
// differentiator notes for well-known vendors, and scans the target
// company's pages for literal mentions of the competitor. Semantic
// (unnamed) mentions are the search package's job; this package only
// finds the literal ones.
package competitor
