package game

import "fmt"

// TestSim is a headless simulation harness used by tests and the headless
// report. It mirrors Game.Update without any Ebiten dependency and steps the
// simulation with a fixed tick length.
type TestSim struct {
	Seed       int64
	BlockCount int // 0 derives the count from the seed
	TickMs     float64
	Sim        *Simulation
	SimLog     *SimLog
	World      *World // set only by WithFullWorld

	fullWorld bool
	rng       *Rng
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota // seed, block count, tick length: applied before generation
	simOptMap                        // tile edits: applied to the generated map
	simOptActor                      // pedestrians, car, timer: applied last
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithSeed sets the seed the map and pedestrians are generated from.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.Seed = seed
	}}
}

// WithBlockCount overrides the seed-derived city size.
func WithBlockCount(n int) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.BlockCount = n
	}}
}

// WithTickMs sets the fixed tick length used by Step and RunTicks.
func WithTickMs(ms float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.TickMs = ms
	}}
}

// WithFullWorld generates the complete world, assets included, so the map
// matches what the game shows for the same seed.
func WithFullWorld() SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.fullWorld = true
	}}
}

// WithTile overwrites one map cell.
func WithTile(col, row int, k TileKind) SimOption {
	return SimOption{simOptMap, func(ts *TestSim) {
		ts.Sim.Map.Set(col, row, k)
	}}
}

// WithClearMap replaces every interior cell with empty ground, leaving the
// level boundary in place.
func WithClearMap() SimOption {
	return SimOption{simOptMap, func(ts *TestSim) {
		tm := ts.Sim.Map
		for row := 1; row < tm.Rows-1; row++ {
			for col := 1; col < tm.Cols-1; col++ {
				tm.Set(col, row, TileEmpty)
			}
		}
	}}
}

// WithoutPedestrians removes every generated pedestrian.
func WithoutPedestrians() SimOption {
	return SimOption{simOptActor, func(ts *TestSim) {
		ts.Sim.Pedestrians = nil
	}}
}

// WithPedestrian adds an alive pedestrian at map pixel (x, y).
func WithPedestrian(x, y int) SimOption {
	return SimOption{simOptActor, func(ts *TestSim) {
		ts.Sim.Pedestrians = append(ts.Sim.Pedestrians, NewPedestrian(x, y, 0))
	}}
}

// WithCarAt puts the car's pivot on map pixel (x, y).
func WithCarAt(x, y int) SimOption {
	return SimOption{simOptActor, func(ts *TestSim) {
		ts.Sim.Car.PlaceAt(x, y)
	}}
}

// WithCarMotion sets the car's rotation (half-turns) and speed.
func WithCarMotion(rotation, speed float64) SimOption {
	return SimOption{simOptActor, func(ts *TestSim) {
		ts.Sim.Car.Rotation = wrapRotation(rotation)
		ts.Sim.Car.Speed = speed
	}}
}

// WithTimeLeft sets the countdown in seconds.
func WithTimeLeft(sec float64) SimOption {
	return SimOption{simOptActor, func(ts *TestSim) {
		ts.Sim.TimeLeft = sec
	}}
}

// NewTestSim constructs a TestSim from the given options in ordered passes:
//  1. Infrastructure (seed, block count, tick length)
//  2. Generation of the map and pedestrians
//  3. Map edits
//  4. Actors (pedestrians, car, timer)
//
// It panics if generation fails, which only happens for invalid options.
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{Seed: 1, TickMs: 1000.0 / 60}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	if err := ts.generate(); err != nil {
		panic(fmt.Sprintf("NewTestSim: %v", err))
	}
	for _, o := range opts {
		if o.kind == simOptMap {
			o.fn(ts)
		}
	}
	for _, o := range opts {
		if o.kind == simOptActor {
			o.fn(ts)
		}
	}
	ts.SimLog = ts.Sim.Log
	return ts
}

func (ts *TestSim) generate() error {
	if ts.fullWorld && ts.BlockCount == 0 {
		w, err := NewWorld(ts.Seed)
		if err != nil {
			return err
		}
		ts.World = w
		ts.Sim = w.Sim
		ts.rng = w.Rng
		ts.BlockCount = BlockCountForSeed(ts.Seed)
		return nil
	}
	if ts.BlockCount == 0 {
		ts.BlockCount = BlockCountForSeed(ts.Seed)
	}
	ts.rng = NewRng(ts.Seed)
	tm, peds, err := GenerateMap(ts.BlockCount, ts.rng)
	if err != nil {
		return err
	}
	ts.Sim = NewSimulation(tm, peds, ts.rng)
	return nil
}

// Step advances one tick under the given controls.
func (ts *TestSim) Step(in Controls) {
	ts.Sim.Step(ts.TickMs, in)
}

// RunTicks advances n ticks holding the same controls.
func (ts *TestSim) RunTicks(n int, in Controls) {
	for i := 0; i < n; i++ {
		ts.Step(in)
	}
}

// RunUntil advances up to maxTicks, stopping early if predicate returns true.
// Returns the tick at which the predicate was satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int, in Controls) int {
	for i := 0; i < maxTicks; i++ {
		ts.Step(in)
		if predicate(ts) {
			return ts.Sim.Tick
		}
	}
	return -1
}

// RunAutopilot lets ap drive for up to maxTicks, stopping once the game ends.
// Returns the number of ticks run.
func (ts *TestSim) RunAutopilot(ap *Autopilot, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ts.Step(ap.Controls(ts.Sim))
		if ts.Sim.Over != nil {
			return i + 1
		}
	}
	return maxTicks
}

// AlivePedestrians counts pedestrians not yet run over.
func (ts *TestSim) AlivePedestrians() int {
	n := 0
	for i := range ts.Sim.Pedestrians {
		if ts.Sim.Pedestrians[i].Alive() {
			n++
		}
	}
	return n
}
