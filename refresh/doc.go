// Package refresh rebuilds embeddings for stale cached company profiles.
//
// Profiles keep their scraped content forever; only the vectors go stale
// (age, or an embedding model change). The Refresher walks the fetch-time
// index, re-embeds each stale profile's stored content through the profile
// builder, and writes the result back with a fresh timestamp.
package refresh
