package kb

import "math"

// cosineSimilarity returns the normalized dot product of two vectors.
// It is 0.0 when the vectors differ in length, either is empty, or
// either has a zero norm, so mismatched or degenerate vectors can never
// rank above a real match.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0.0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
