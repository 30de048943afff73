package services

import (
	"math"
	"testing"
)

func TestParseVector(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []float64
	}{
		{"empty string", "", nil},
		{"not json", "hello", nil},
		{"empty array", "[]", nil},
		{"valid", "[0.5,-0.5]", []float64{0.5, -0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseVector(tt.raw)
			if len(got) != len(tt.want) {
				t.Fatalf("parseVector(%q) = %v; want %v", tt.raw, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("parseVector(%q)[%d] = %v; want %v", tt.raw, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNormalizeVector(t *testing.T) {
	if got := normalizeVector(nil); got != nil {
		t.Errorf("normalizeVector(nil) = %v; want nil", got)
	}
	if got := normalizeVector([]float64{0, 0}); got != nil {
		t.Errorf("zero vector must normalize to nil, got %v", got)
	}
	if got := normalizeVector([]float64{1, math.NaN()}); got != nil {
		t.Errorf("non-finite vector must normalize to nil, got %v", got)
	}

	got := normalizeVector([]float64{3, 4})
	if got == nil {
		t.Fatal("normalizeVector([3,4]) = nil")
	}
	if !almostEqual(got[0], 0.6) || !almostEqual(got[1], 0.8) {
		t.Errorf("normalizeVector([3,4]) = %v; want [0.6 0.8]", got)
	}
	var norm float64
	for _, v := range got {
		norm += v * v
	}
	if !almostEqual(norm, 1.0) {
		t.Errorf("normalized vector has squared norm %f; want 1.0", norm)
	}
}

func TestDotProduct(t *testing.T) {
	if got := dotProduct([]float64{1, 2}, []float64{1}); got != 0 {
		t.Errorf("mismatched lengths must score 0, got %f", got)
	}
	if got := dotProduct([]float64{1, 0}, []float64{0, 1}); got != 0 {
		t.Errorf("orthogonal vectors scored %f; want 0", got)
	}
	if got := dotProduct([]float64{1, 2, 3}, []float64{4, 5, 6}); !almostEqual(got, 32) {
		t.Errorf("dotProduct = %f; want 32", got)
	}
}

func TestCosineSimilarity(t *testing.T) {
	if got := cosineSimilarity(nil, nil); got != 0 {
		t.Errorf("empty vectors scored %f; want 0", got)
	}
	if got := cosineSimilarity([]float64{0, 0}, []float64{1, 0}); got != 0 {
		t.Errorf("zero-norm vector scored %f; want 0", got)
	}
	if got := cosineSimilarity([]float64{2, 0}, []float64{5, 0}); !almostEqual(got, 1.0) {
		t.Errorf("parallel vectors scored %f; want 1.0", got)
	}
	if got := cosineSimilarity([]float64{1, 0}, []float64{-1, 0}); !almostEqual(got, -1.0) {
		t.Errorf("opposite vectors scored %f; want -1.0", got)
	}
}
