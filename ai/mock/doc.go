// Package mock provides test doubles for the ai package interfaces.
//
// The mock embedder generates deterministic vectors from a text hash, so
// embedding the same text twice always yields the same vector without any
// external service. Behavior can be overridden per test via function fields.
package mock
