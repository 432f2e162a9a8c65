package geometry

import (
	"math"
	"testing"
)

func TestVector3Arithmetic(t *testing.T) {
	a := NewVector3(1, 2, 3)
	b := NewVector3(4, 5, 6)

	tests := []struct {
		name     string
		got      Vector3
		expected Vector3
	}{
		{"add", a.Add(b), NewVector3(5, 7, 9)},
		{"sub", b.Sub(a), NewVector3(3, 3, 3)},
		{"scale", a.Scale(2), NewVector3(2, 4, 6)},
		{"cross", NewVector3(1, 0, 0).Cross(NewVector3(0, 1, 0)), NewVector3(0, 0, 1)},
		{"min", a.Min(NewVector3(0, 9, 3)), NewVector3(0, 2, 3)},
		{"max", a.Max(NewVector3(0, 9, 3)), NewVector3(1, 9, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestVector3Dot(t *testing.T) {
	result := NewVector3(1, 2, 3).Dot(NewVector3(4, 5, 6))

	expected := 32.0 // 1*4 + 2*5 + 3*6
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("Dot failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Distance(t *testing.T) {
	distance := NewVector3(0, 0, 0).Distance(NewVector3(3, 4, 0))

	if math.Abs(distance-5.0) > 1e-10 {
		t.Errorf("Distance failed: expected 5, got %v", distance)
	}
}

func TestVector3Normalize(t *testing.T) {
	normalized := NewVector3(3, 4, 0).Normalize()
	if math.Abs(normalized.Length()-1.0) > 1e-10 {
		t.Errorf("Normalize failed: expected length 1, got %v", normalized.Length())
	}

	if zero := (Vector3{}).Normalize(); zero != (Vector3{}) {
		t.Errorf("Normalize of zero vector: expected zero, got %v", zero)
	}
}

func TestVector3String(t *testing.T) {
	s := NewVector3(1, -2.5, 0).String()
	expected := "(1.000000, -2.500000, 0.000000)"
	if s != expected {
		t.Errorf("expected %q, got %q", expected, s)
	}
}
