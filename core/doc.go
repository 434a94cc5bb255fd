// Package core defines the domain model for company intelligence analysis:
// company profiles with their section embeddings, the closed set of profile
// section names, and the result types produced by semantic search.
package core
