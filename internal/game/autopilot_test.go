package game

import "testing"

func TestAutopilot_TargetsNearest(t *testing.T) {
	ts := NewTestSim(WithClearMap(), WithoutPedestrians(),
		WithPedestrian(1000, 1000), WithPedestrian(1700, 1900), WithPedestrian(1600, 1500),
		WithCarAt(1600, 2000))
	ap := NewAutopilot()
	if got := ap.Target(ts.Sim); got != 1 {
		t.Fatalf("expected the nearest pedestrian (1), got %d", got)
	}
	ts.Sim.Pedestrians[1].Kill(0)
	if got := ap.Target(ts.Sim); got != 2 {
		t.Fatalf("dead pedestrians are not targets, got %d", got)
	}
}

func TestAutopilot_SteersTowardTarget(t *testing.T) {
	ts := NewTestSim(WithClearMap(), WithoutPedestrians(),
		WithPedestrian(1900, 2000), WithCarAt(1600, 2000), WithCarMotion(0, 100))
	ap := NewAutopilot()
	in := ap.Controls(ts.Sim)
	if !in.Accelerate || !in.SteerRight || in.SteerLeft {
		t.Fatalf("target to the right should steer right, got %+v", in)
	}
	ts.Sim.Car.Speed = -100
	if in := ap.Controls(ts.Sim); !in.SteerLeft || in.SteerRight {
		t.Fatalf("reversing should flip the steering, got %+v", in)
	}
}

func TestAutopilot_BrakesWithoutTargets(t *testing.T) {
	ts := NewTestSim(WithClearMap(), WithoutPedestrians(), WithCarAt(1600, 2000), WithCarMotion(0, 200))
	if in := NewAutopilot().Controls(ts.Sim); in != (Controls{Brake: true}) {
		t.Fatalf("expected brake only, got %+v", in)
	}
}

func TestAutopilot_KillsStraightAhead(t *testing.T) {
	ts := NewTestSim(WithClearMap(), WithoutPedestrians(),
		WithPedestrian(1600, 1500), WithCarAt(1600, 2000))
	ticks := ts.RunAutopilot(NewAutopilot(), 600)
	if ts.Sim.Over == nil || ts.Sim.Over.Reason != ReasonCleared {
		t.Fatalf("expected the only pedestrian run over, got %+v after %d ticks:\n%s",
			ts.Sim.Over, ticks, ts.SimLog.Format())
	}
	if ts.SimLog.Count(logCatCar, logKeyBounce) != 0 {
		t.Fatal("the straight run should not touch a wall")
	}
}

func TestAutopilot_RoutesAroundBuilding(t *testing.T) {
	ts := NewTestSim(WithClearMap(), WithTile(12, 11, TileBuilding), WithoutPedestrians(),
		WithPedestrian(1600, 1000), WithCarAt(1600, 2000))
	ap := NewAutopilot()
	from := ts.Sim.Car.MapCentre()
	target := point{1600, 1000}
	if hasClearLane(ts.Sim.Map, from, target, carWidth/2) {
		t.Fatal("the building should block the lane")
	}
	aim := ap.aimPoint(ts.Sim, from, target)
	if aim == target {
		t.Fatal("a blocked lane should aim along the route")
	}
	fx, fy := MapToCell(from.X, from.Y)
	ax, ay := MapToCell(aim.X, aim.Y)
	if d := abs(ax-fx) + abs(ay-fy); d != 1 {
		t.Fatalf("aim cell (%d,%d) should neighbour the car cell (%d,%d)", ax, ay, fx, fy)
	}
	if aim != CellToMap(ax, ay) {
		t.Fatalf("aim %+v should be a cell centre", aim)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
