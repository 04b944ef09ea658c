package utils

import (
	"math"
	"testing"
)

func AssertTrue(t *testing.T, a bool) {
	t.Helper()
	if !a {
		t.Fatalf("Expected true, got false")
	}
}

func AssertEqual(t *testing.T, a interface{}, b interface{}) {
	t.Helper()
	if a != b {
		t.Fatalf("Expected equal: %v != %v\n", a, b)
	}
}

// Close reports whether a and b agree within tol, relative to the larger
// magnitude when that exceeds one and absolute otherwise.
func Close(a, b, tol float64) bool {
	scale := math.Max(math.Abs(a), math.Abs(b))
	if scale > 1 {
		return math.Abs(a-b) <= tol*scale
	}
	return math.Abs(a-b) <= tol
}

func AssertNaN(t *testing.T, v float64) {
	t.Helper()
	if !math.IsNaN(v) {
		t.Fatalf("Expected NaN, got %v", v)
	}
}

func AssertClose(t *testing.T, got, want, tol float64) {
	t.Helper()
	if !Close(got, want, tol) {
		t.Fatalf("Expected %v within %v of %v", got, tol, want)
	}
}

func AssertAllClose(t *testing.T, got, want []float64, tol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("Expected %d values, got %d", len(want), len(got))
	}
	for i := range got {
		if !Close(got[i], want[i], tol) {
			t.Fatalf("Expected %v within %v of %v at index %d", got[i], tol, want[i], i)
		}
	}
}
