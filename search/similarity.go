package search

import "math"

// CosineSimilarity computes the cosine of the angle between two vectors.
//
// Degenerate inputs score zero rather than erroring: empty vectors,
// mismatched lengths, and zero-norm vectors all return 0. A zero score
// never clears any matching threshold, so malformed vectors simply fall
// out of the results.
func CosineSimilarity(a, b []float32) float32 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}
