package game

import "math"

// Autopilot drives the car at the nearest living pedestrian. It stands in
// for a player in headless runs. When buildings are in the way it follows
// an A* route over the tile grid instead of aiming straight.
type Autopilot struct {
	CruiseSpeed float64 // throttle is released above this speed
	Deadzone    float64 // no steering while the target is this close to dead ahead, as a sine

	nav    *NavGrid
	navMap *TileMap // map the nav grid was built from
}

// NewAutopilot returns a driver that stays below the wreck threshold.
func NewAutopilot() *Autopilot {
	return &Autopilot{CruiseSpeed: 350, Deadzone: 0.05}
}

// Target returns the index of the nearest alive pedestrian, or -1.
func (ap *Autopilot) Target(s *Simulation) int {
	c := s.Car.MapCentre()
	best, bestD := -1, math.Inf(1)
	for i := range s.Pedestrians {
		p := &s.Pedestrians[i]
		if !p.Alive() {
			continue
		}
		d := math.Hypot(float64(p.X)-c.X, float64(p.Y)-c.Y)
		if d < bestD {
			best, bestD = i, d
		}
	}
	return best
}

// Controls decides this tick's inputs.
func (ap *Autopilot) Controls(s *Simulation) Controls {
	var in Controls
	if s.Car.Speed < ap.CruiseSpeed {
		in.Accelerate = true
	}
	t := ap.Target(s)
	if t < 0 {
		return Controls{Brake: s.Car.Speed > 0}
	}

	c := s.Car.MapCentre()
	p := s.Pedestrians[t]
	aim := ap.aimPoint(s, c, point{X: float64(p.X), Y: float64(p.Y)})
	dx, dy := aim.X-c.X, aim.Y-c.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return in
	}
	h := s.Car.Heading()
	// Positive cross: the target lies clockwise of the heading.
	cross := (h.X*dy - h.Y*dx) / dist
	dot := (h.X*dx + h.Y*dy) / dist
	if math.Abs(cross) < ap.Deadzone && dot > 0 {
		return in
	}
	right := cross > 0 || (cross == 0 && dot < 0)
	if s.Car.Speed < 0 {
		right = !right
	}
	in.SteerRight = right
	in.SteerLeft = !right
	return in
}

// aimPoint returns where to steer: the target itself when the lane to it is
// clear, otherwise the next cell centre on the route to it.
func (ap *Autopilot) aimPoint(s *Simulation, from, target point) point {
	if hasClearLane(s.Map, from, target, carWidth/2) {
		return target
	}
	if ap.nav == nil || ap.navMap != s.Map {
		ap.nav = NewNavGrid(s.Map)
		ap.navMap = s.Map
	}
	if path := ap.nav.FindPath(from, target); len(path) >= 2 {
		return path[1]
	}
	return target
}
