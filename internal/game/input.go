package game

import "sync"

// Control is a logical driving input, independent of the physical key bound to it.
type Control uint8

const (
	ControlAccelerate Control = iota
	ControlBrake
	ControlSteerLeft
	ControlSteerRight
	controlCount // sentinel
)

func (c Control) String() string {
	switch c {
	case ControlAccelerate:
		return "accelerate"
	case ControlBrake:
		return "brake"
	case ControlSteerLeft:
		return "steer_left"
	case ControlSteerRight:
		return "steer_right"
	default:
		return "unknown"
	}
}

// Controls is an immutable snapshot of the held controls for one tick.
type Controls struct {
	Accelerate bool
	Brake      bool
	SteerLeft  bool
	SteerRight bool
}

// KeyState is the set of currently held controls. The input source writes
// it and the simulation reads snapshots; both may run on different goroutines.
type KeyState struct {
	mu   sync.RWMutex
	held [controlCount]bool
}

// NewKeyState returns an empty key set.
func NewKeyState() *KeyState {
	return &KeyState{}
}

// Set records whether c is held.
func (ks *KeyState) Set(c Control, down bool) {
	if c >= controlCount {
		return
	}
	ks.mu.Lock()
	ks.held[c] = down
	ks.mu.Unlock()
}

// Press marks c as held.
func (ks *KeyState) Press(c Control) { ks.Set(c, true) }

// Release marks c as no longer held.
func (ks *KeyState) Release(c Control) { ks.Set(c, false) }

// Held reports whether c is currently held.
func (ks *KeyState) Held(c Control) bool {
	if c >= controlCount {
		return false
	}
	ks.mu.RLock()
	defer ks.mu.RUnlock()
	return ks.held[c]
}

// Snapshot copies the held set atomically.
func (ks *KeyState) Snapshot() Controls {
	ks.mu.RLock()
	defer ks.mu.RUnlock()
	return Controls{
		Accelerate: ks.held[ControlAccelerate],
		Brake:      ks.held[ControlBrake],
		SteerLeft:  ks.held[ControlSteerLeft],
		SteerRight: ks.held[ControlSteerRight],
	}
}
