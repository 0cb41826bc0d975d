package rng

import "testing"

func TestStreamReproducibility(t *testing.T) {
	s1 := New(12345)
	s2 := New(12345)

	for i := 0; i < 1000; i++ {
		v1, v2 := s1.Next(), s2.Next()
		if v1 != v2 {
			t.Fatalf("Draw %d diverged: %v != %v", i, v1, v2)
		}
	}
}

func TestStreamRange(t *testing.T) {
	s := New(42)

	for i := 0; i < 1000; i++ {
		v := s.Next()
		if v < 0 || v >= 1 {
			t.Fatalf("Draw %d out of [0,1): %v", i, v)
		}
	}

	for i := 0; i < 1000; i++ {
		n := s.Intn(7)
		if n < 0 || n >= 7 {
			t.Fatalf("Intn(7) out of range: %d", n)
		}
		r := s.Range(3, 9)
		if r < 3 || r > 9 {
			t.Fatalf("Range(3,9) out of range: %d", r)
		}
	}
}

func TestStreamDifferentSeeds(t *testing.T) {
	s1 := New(12345)
	s2 := New(54321)

	identical := true
	for i := 0; i < 100; i++ {
		if s1.Next() != s2.Next() {
			identical = false
			break
		}
	}
	if identical {
		t.Error("Streams with different seeds should not be identical")
	}
}

func TestStreamZeroSeed(t *testing.T) {
	s := New(0)

	first := s.Next()
	second := s.Next()
	if first == second {
		t.Errorf("Seed 0 stream should not be constant, got %v twice", first)
	}

	// Same seed still means same sequence.
	again := New(0)
	if again.Next() != first {
		t.Error("Seed 0 is not reproducible")
	}
}

func TestRangeDegenerate(t *testing.T) {
	s := New(7)
	if got := s.Range(5, 5); got != 5 {
		t.Errorf("Range(5,5) = %d, want 5", got)
	}
	if got := s.Range(5, 2); got != 5 {
		t.Errorf("Range(5,2) = %d, want 5", got)
	}
	if got := s.Intn(0); got != 0 {
		t.Errorf("Intn(0) = %d, want 0", got)
	}
}
