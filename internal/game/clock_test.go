package game

import (
	"testing"
	"time"
)

func TestFrameClock(t *testing.T) {
	fc := NewFrameClock()
	t0 := time.Unix(100, 0)
	if got := fc.Tick(t0); got != 0 {
		t.Fatalf("first tick should report 0, got %v", got)
	}
	if got := fc.Tick(t0.Add(20 * time.Millisecond)); got != 20 {
		t.Fatalf("expected 20 ms, got %v", got)
	}
	if fc.FPS() != 50 {
		t.Fatalf("expected 50 fps, got %v", fc.FPS())
	}
	if got := fc.Tick(t0.Add(20 * time.Millisecond)); got != 0 {
		t.Fatalf("repeated instant should report 0, got %v", got)
	}
	if fc.FPS() != 50 {
		t.Fatal("a zero-length tick should keep the last rate")
	}
}
