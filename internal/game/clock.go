package game

import "time"

// FrameClock measures the wall time between simulation ticks.
type FrameClock struct {
	last time.Time
	fps  float64
}

// NewFrameClock returns a clock whose first Tick reports zero elapsed time.
func NewFrameClock() *FrameClock {
	return &FrameClock{}
}

// Tick records now and returns the milliseconds since the previous tick.
func (fc *FrameClock) Tick(now time.Time) float64 {
	if fc.last.IsZero() {
		fc.last = now
		return 0
	}
	tpf := float64(now.Sub(fc.last)) / float64(time.Millisecond)
	fc.last = now
	if tpf > 0 {
		fc.fps = 1000 / tpf
	}
	return tpf
}

// FPS is the instantaneous rate implied by the last non-zero tick.
func (fc *FrameClock) FPS() float64 { return fc.fps }
