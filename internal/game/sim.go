package game

import (
	"fmt"
	"math"
)

// Timer rules, in seconds.
const (
	StartTime = 60.0
	KillBonus = 1.5
)

// maxSliceMs is the longest stretch of car movement integrated at once. A
// longer tick is split so a stalled frame cannot carry the car through a wall.
const maxSliceMs = 100.0

// Simulation is the per-tick game state: the car, the pedestrians, the
// countdown and the game-over latch. It never touches the screen.
type Simulation struct {
	Map         *TileMap
	Pedestrians []Pedestrian
	Car         CarState
	TimeLeft    float64 // seconds
	Kills       int
	Over        *GameOver // nil while playing; never replaced once set
	Tick        int
	Log         *SimLog

	rng *Rng // blood variant selection
}

// NewSimulation starts a run on tm with the car at the screen anchor's
// origin position.
func NewSimulation(tm *TileMap, peds []Pedestrian, rng *Rng) *Simulation {
	return &Simulation{
		Map:         tm,
		Pedestrians: peds,
		TimeLeft:    StartTime,
		Log:         NewSimLog(),
		rng:         rng,
	}
}

// Total is the number of pedestrians on the map.
func (s *Simulation) Total() int { return len(s.Pedestrians) }

// Phase returns PhasePlaying until the run ends, then the overlay phase.
func (s *Simulation) Phase() Phase {
	if s.Over == nil {
		return PhasePlaying
	}
	return s.Over.Phase()
}

// Camera is the current map-to-screen offset.
func (s *Simulation) Camera() point { return s.Car.Camera() }

// Step advances the simulation by tpf milliseconds under the given controls.
// Negative or non-finite tick lengths count as zero.
// The world keeps moving after the game ends so the overlay fades over a
// live scene.
func (s *Simulation) Step(tpf float64, in Controls) {
	if !(tpf >= 0) || math.IsInf(tpf, 1) {
		tpf = 0
	}
	s.Tick++

	s.TimeLeft -= tpf / 1000
	if s.TimeLeft < 0 {
		s.end(ReasonTimeUp)
	}

	rest := tpf
	for {
		slice := math.Min(rest, maxSliceMs)
		s.moveCar(slice, in)
		rest -= slice
		if rest <= 0 {
			break
		}
	}

	if s.Over != nil {
		s.Over.advance(tpf)
	}
}

// moveCar integrates the car over one slice of a tick and resolves its
// collisions.
func (s *Simulation) moveCar(slice float64, in Controls) {
	s.Car.Speed = nextSpeed(s.Car.Speed, slice, in)
	s.Car.Rotation = nextRotation(s.Car.Rotation, s.Car.Speed, slice, in)
	hitbox := s.Car.Hitbox()
	s.Car.advance(slice)
	cam := s.Car.Camera()

	s.collideTiles(hitbox, cam)
	s.collidePedestrians(hitbox, cam)
}

// visibleTiles returns the column and row ranges [lo, hi) that can overlap
// the screen for camera offset cam. The range may extend past the map; those
// cells read as empty.
func visibleTiles(cam point) (c0, c1, r0, r1 int) {
	cx, cy := int(cam.X), int(cam.Y)
	c0 = -cx/RoadTileSize - 1
	c1 = (-cx+ScreenWidth)/RoadTileSize + 1
	r0 = -cy/RoadTileSize - 1
	r1 = (-cy+ScreenHeight)/RoadTileSize + 1
	return c0, c1, r0, r1
}

// collideTiles bounces the car off any solid tile its hit box overlaps.
// The speed is reflected once per tick however many tiles are touched.
func (s *Simulation) collideTiles(hitbox quad, cam point) {
	c0, c1, r0, r1 := visibleTiles(cam)
	for col := c0; col < c1; col++ {
		for row := r0; row < r1; row++ {
			if !s.Map.At(col, row).Solid() {
				continue
			}
			cell := rectF{
				X: float64(col*RoadTileSize) + cam.X,
				Y: float64(row*RoadTileSize) + cam.Y,
				W: RoadTileSize,
				H: RoadTileSize,
			}
			if !hitbox.intersects(cell) {
				continue
			}
			s.Log.Add(s.Tick, logCatCar, logKeyBounce,
				fmt.Sprintf("%s at (%d,%d) speed %.1f", s.Map.At(col, row), col, row, s.Car.Speed), s.Car.Speed)
			if s.Car.Speed > fatalImpactSpeed {
				s.Log.Add(s.Tick, logCatCar, logKeyWreck,
					fmt.Sprintf("impact at %.1f", s.Car.Speed), s.Car.Speed)
				s.end(ReasonWrecked)
			}
			s.Car.Speed = -s.Car.Speed
			return
		}
	}
}

// collidePedestrians runs over every alive pedestrian under the hit box.
func (s *Simulation) collidePedestrians(hitbox quad, cam point) {
	for i := range s.Pedestrians {
		p := &s.Pedestrians[i]
		if !p.Alive() || !hitbox.intersects(p.hitRect(cam)) {
			continue
		}
		if !p.Kill(s.rng.Intn(PedestrianVariants)) {
			continue
		}
		s.Kills++
		s.TimeLeft += KillBonus
		s.Log.Add(s.Tick, logCatPed, logKeyKilled,
			fmt.Sprintf("#%d at (%d,%d)", i, p.X, p.Y), float64(s.Kills))
		s.Log.Add(s.Tick, logCatTimer, logKeyBonus,
			fmt.Sprintf("+%.1fs -> %.2fs", KillBonus, s.TimeLeft), s.TimeLeft)
		if s.Kills == s.Total() {
			s.end(ReasonCleared)
		}
	}
}

// end latches the game-over state. Only the first reason sticks.
func (s *Simulation) end(reason GameOverReason) {
	if s.Over != nil {
		return
	}
	s.Over = newGameOver(reason, s.Tick)
	s.Log.Add(s.Tick, logCatState, logKeyGameOver, reason.String(), s.TimeLeft)
}
