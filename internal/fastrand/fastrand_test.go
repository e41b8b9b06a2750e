package fastrand

import "testing"

func TestDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 1000; i++ {
		if av, bv := a.Uint32(), b.Uint32(); av != bv {
			t.Fatalf("sequence diverged at %d: %d != %d", i, av, bv)
		}
	}
}

func TestUint32Range(t *testing.T) {
	s := New(1)
	for i := 0; i < 10000; i++ {
		if v := s.Uint32(); v > Max {
			t.Fatalf("value %d exceeds Max", v)
		}
	}
}

func TestBipolarRange(t *testing.T) {
	s := New(7)

	sawLow, sawHigh := false, false
	for i := 0; i < 10000; i++ {
		v := s.Bipolar()
		if v < -1 || v > 1 {
			t.Fatalf("value %v outside [-1, 1]", v)
		}
		if v < -0.5 {
			sawLow = true
		}
		if v > 0.5 {
			sawHigh = true
		}
	}

	if !sawLow || !sawHigh {
		t.Fatal("bipolar output never reached both halves of its range")
	}
}

func TestSeedResets(t *testing.T) {
	s := New(5)
	first := s.Uint32()
	s.Uint32()

	s.Seed(5)
	if got := s.Uint32(); got != first {
		t.Fatalf("after reseed got %d, want %d", got, first)
	}
}
