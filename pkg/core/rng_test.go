package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 64; i++ {
		if a.Chance(0.5) != b.Chance(0.5) {
			t.Fatalf("draw %d differs for identical seeds", i)
		}
	}
}

func TestRNGChanceBounds(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 32; i++ {
		if r.Chance(0) {
			t.Fatal("Chance(0) returned true")
		}
		if !r.Chance(1) {
			t.Fatal("Chance(1) returned false")
		}
		if r.Chance(-3) || !r.Chance(7) {
			t.Fatal("out-of-range probabilities must clamp")
		}
	}
}
