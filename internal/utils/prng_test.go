package utils

import "testing"

func TestPRNGIsReproducible(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		if a.Range(-1, 1) != b.Range(-1, 1) || a.IntRange(1, 5) != b.IntRange(1, 5) {
			t.Fatalf("sequences diverged at step %d", i)
		}
	}
}

func TestPRNGRanges(t *testing.T) {
	s := NewPRNGService(7)
	for i := 0; i < 1000; i++ {
		if v := s.Range(0.2, 0.5); v < 0.2 || v >= 0.5 {
			t.Fatalf("Range out of bounds: %v", v)
		}
		if v := s.IntRange(2, 4); v < 2 || v > 4 {
			t.Fatalf("IntRange out of bounds: %v", v)
		}
	}
	if s.Range(3, 3) != 3 || s.IntRange(5, 1) != 5 {
		t.Error("degenerate ranges must return the lower bound")
	}
	if NewPRNGService(0).Seed() == 0 {
		t.Error("zero seed must be replaced")
	}
}
