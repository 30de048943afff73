package services

import (
	"encoding/json"
	"math"
)

// parseVector decodes a JSON float array stored in an embedding column.
// Returns nil for empty or unparsable input.
func parseVector(raw string) []float64 {
	if raw == "" {
		return nil
	}
	var vec []float64
	if err := json.Unmarshal([]byte(raw), &vec); err != nil {
		return nil
	}
	if len(vec) == 0 {
		return nil
	}
	return vec
}

// normalizeVector returns a unit-length copy of vec, or nil when the norm is
// zero or any component is non-finite.
func normalizeVector(vec []float64) []float64 {
	if len(vec) == 0 {
		return nil
	}
	var norm float64
	for _, v := range vec {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		return nil
	}
	out := make([]float64, len(vec))
	for i, v := range vec {
		out[i] = v / norm
	}
	return out
}

func dotProduct(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}
	return dot
}

func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0
	}
	return dot / denom
}
