package game

import "testing"

func TestRng_SameSeedSameSequence(t *testing.T) {
	a, b := NewRng(1234), NewRng(1234)
	for i := 0; i < 1000; i++ {
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestRng_ReseedRewinds(t *testing.T) {
	g := NewRng(7)
	first := []int{g.Intn(100), g.Intn(100), g.Intn(100)}
	f := g.Float64()
	g.Seed(7)
	if g.Draws() != 0 {
		t.Fatalf("reseed should reset draws, got %d", g.Draws())
	}
	for i, want := range first {
		if got := g.Intn(100); got != want {
			t.Fatalf("draw %d after reseed = %d, want %d", i, got, want)
		}
	}
	if got := g.Float64(); got != f {
		t.Fatalf("float after reseed = %v, want %v", got, f)
	}
}

func TestRng_CountsDraws(t *testing.T) {
	g := NewRng(0)
	g.Intn(5)
	g.Float64()
	g.Intn(1)
	if g.Draws() != 3 {
		t.Fatalf("expected 3 draws, got %d", g.Draws())
	}
}

func TestRng_Ranges(t *testing.T) {
	g := NewRng(99)
	for i := 0; i < 10000; i++ {
		if v := g.Intn(20); v < 0 || v >= 20 {
			t.Fatalf("Intn(20) out of range: %d", v)
		}
		if f := g.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %v", f)
		}
	}
}
