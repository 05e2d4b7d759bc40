package match

import "math"

// CosineSimilarity computes the cosine similarity between two vectors.
// Returns ErrDimensionMismatch when the lengths differ, and 0 when
// either vector has zero magnitude.
func CosineSimilarity(a, b []float32) (float32, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}

	var dot, magA, magB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		magA += float64(a[i]) * float64(a[i])
		magB += float64(b[i]) * float64(b[i])
	}

	if magA == 0 || magB == 0 {
		return 0, nil
	}

	return float32(dot / (math.Sqrt(magA) * math.Sqrt(magB))), nil
}
