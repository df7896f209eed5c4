package game

import "math/rand/v2"

// rngStream is the PCG stream selector. Changing it changes every generated world.
const rngStream = 0x6361726e6f62796c

// Rng is the process-wide seeded random stream. Generation consumes it in a
// fixed order, so the same seed always produces the same world.
type Rng struct {
	src   *rand.PCG
	r     *rand.Rand
	draws uint64
}

// NewRng creates a deterministic stream for seed.
func NewRng(seed int64) *Rng {
	src := rand.NewPCG(uint64(seed), rngStream) // #nosec G404 -- deterministic world generation
	return &Rng{src: src, r: rand.New(src)}
}

// Seed rewinds the stream to the start of the sequence for seed.
func (g *Rng) Seed(seed int64) {
	g.src.Seed(uint64(seed), rngStream)
	g.draws = 0
}

// Intn returns a uniform int in [0, n). n must be > 0.
func (g *Rng) Intn(n int) int {
	g.draws++
	return g.r.IntN(n)
}

// Float64 returns a uniform float64 in [0, 1).
func (g *Rng) Float64() float64 {
	g.draws++
	return g.r.Float64()
}

// Draws reports how many values have been taken since the last (re)seed.
func (g *Rng) Draws() uint64 { return g.draws }
