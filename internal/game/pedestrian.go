package game

// PedestrianVariants is the number of distinct sprites for each of the
// pedestrian, corpse and blood asset families.
const PedestrianVariants = 20

// pedHitSize is the side of the square a pedestrian occupies for collisions.
const pedHitSize = 24

// PedState is the life state of a pedestrian. Transitions are one-way.
type PedState uint8

const (
	PedAlive PedState = iota
	PedKilled
)

func (s PedState) String() string {
	switch s {
	case PedAlive:
		return "alive"
	case PedKilled:
		return "killed"
	default:
		return "unknown"
	}
}

// Pedestrian is a stationary walker standing at a map-space pixel.
type Pedestrian struct {
	X, Y    int // map pixels, centre of the sprite
	Variant int // sprite index, shared by the alive and killed families
	State   PedState
	blood   int // blood splat index, valid only once killed
}

// NewPedestrian returns an alive pedestrian.
func NewPedestrian(x, y, variant int) Pedestrian {
	return Pedestrian{X: x, Y: y, Variant: variant, State: PedAlive}
}

// Alive reports whether the pedestrian has not been run over.
func (p *Pedestrian) Alive() bool { return p.State == PedAlive }

// Blood returns the blood splat variant and whether the pedestrian has one.
func (p *Pedestrian) Blood() (int, bool) {
	if p.State != PedKilled {
		return 0, false
	}
	return p.blood, true
}

// Kill marks the pedestrian as killed with the given blood splat. It returns
// false, and changes nothing, if the pedestrian was already dead.
func (p *Pedestrian) Kill(blood int) bool {
	if p.State != PedAlive {
		return false
	}
	p.State = PedKilled
	p.blood = blood
	return true
}

// hitRect returns the pedestrian's hit box shifted by the camera offset.
func (p *Pedestrian) hitRect(cam point) rectF {
	return rectF{
		X: float64(p.X) + cam.X - pedHitSize/2,
		Y: float64(p.Y) + cam.Y - pedHitSize/2,
		W: pedHitSize,
		H: pedHitSize,
	}
}
