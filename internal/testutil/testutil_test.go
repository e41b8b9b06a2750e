package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	a := DeterministicSine(1000, 44100, 0.5, 64)
	b := DeterministicSine(1000, 44100, 0.5, 64)

	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}

	if a[0] != 0 {
		t.Errorf("first sample = %v, want 0", a[0])
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d: repeated generation differs", i)
		}

		if math.Abs(a[i]) > 0.5 {
			t.Fatalf("index %d: sample %v exceeds amplitude", i, a[i])
		}
	}
}

func TestRequireSliceNearlyEqual(t *testing.T) {
	got := []float64{1, 2, 3}
	want := []float64{1, 2, 3.0000001}

	RequireSliceNearlyEqual(t, got, want, 1e-6)
}

func TestRequireFinite(t *testing.T) {
	RequireFinite(t, []float64{0, -1, 1, math.MaxFloat64})
}
