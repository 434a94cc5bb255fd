// Package profile turns a scraped company content blob into an embedded
// CompanyProfile.
//
// The section extractor pulls named sections out of the marker-delimited
// blob produced by the collector; the builder runs each substantial section
// through the embedding backend and assembles the per-section vector map
// together with a combined description+about vector.
package profile
