package game

import (
	"sync"
	"testing"
)

func TestKeyState_PressRelease(t *testing.T) {
	ks := NewKeyState()
	ks.Press(ControlAccelerate)
	ks.Press(ControlSteerLeft)
	got := ks.Snapshot()
	if !got.Accelerate || !got.SteerLeft || got.Brake || got.SteerRight {
		t.Fatalf("unexpected snapshot %+v", got)
	}
	ks.Release(ControlAccelerate)
	if ks.Held(ControlAccelerate) || !ks.Held(ControlSteerLeft) {
		t.Fatal("release should clear only that control")
	}
}

func TestKeyState_IgnoresUnknownControl(t *testing.T) {
	ks := NewKeyState()
	ks.Set(controlCount, true)
	ks.Set(Control(200), true)
	if ks.Held(Control(200)) || ks.Snapshot() != (Controls{}) {
		t.Fatal("unknown controls should be ignored")
	}
}

func TestKeyState_ConcurrentAccess(t *testing.T) {
	ks := NewKeyState()
	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(2)
		go func(c Control) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				ks.Set(c, i%2 == 0)
			}
		}(Control(w))
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				_ = ks.Snapshot()
			}
		}()
	}
	wg.Wait()
	// Each writer's last write was i=999, a release.
	if ks.Snapshot() != (Controls{}) {
		t.Fatalf("expected all released, got %+v", ks.Snapshot())
	}
}

func TestControl_String(t *testing.T) {
	if ControlSteerRight.String() != "steer_right" || controlCount.String() != "unknown" {
		t.Fatal("unexpected control names")
	}
}
