package core

import "testing"

func TestRNGIsDeterministicPerSeed(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 32; i++ {
		if got, want := a.IntN(1000), b.IntN(1000); got != want {
			t.Fatalf("draw %d: %d != %d for the same seed", i, got, want)
		}
	}
}

func TestIntNOfOneIsAlwaysZero(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 16; i++ {
		if got := r.IntN(1); got != 0 {
			t.Fatalf("IntN(1) = %d, expected 0", got)
		}
	}
}
