package game

import "math"

// Car handling constants.
const (
	MaxSpeed         = 600.0 // pixels per second
	fatalImpactSpeed = 500.0 // forward speed above which a wall hit wrecks the car
	speedDeadband    = 0.05  // coasting speeds inside ±deadband snap to zero
	frictionAccel    = 0.1
	brakeAccel       = 2.0
	accelDivisor     = 5.0 // speed += accel * tpf / accelDivisor
	steerPeriodMs    = 2000.0
)

// Car footprint in car-local pixels. The sprite is carWidth x carLength with
// the pivot at its centre; the hit box is inset by carHitInset on each side.
const (
	carWidth    = 64
	carLength   = 128
	carHitInset = 8
)

// CarAnchorX/Y is the fixed top-left screen position of the car sprite.
const (
	CarAnchorX = ScreenWidth/2 - carWidth/2
	CarAnchorY = ScreenHeight/2 - carLength/2
)

// rectF is an axis-aligned rectangle.
type rectF struct {
	X, Y, W, H float64
}

// quad is a convex quadrilateral given clockwise or counter-clockwise.
type quad [4]point

// intersects reports whether the quad and the rectangle share interior area.
// Touching edges do not count.
func (q quad) intersects(r rectF) bool {
	rq := quad{{r.X, r.Y}, {r.X + r.W, r.Y}, {r.X + r.W, r.Y + r.H}, {r.X, r.Y + r.H}}
	axes := [4]point{
		{1, 0},
		{0, 1},
		{q[1].Y - q[0].Y, q[0].X - q[1].X},
		{q[2].Y - q[1].Y, q[1].X - q[2].X},
	}
	for _, ax := range axes {
		qMin, qMax := q.project(ax)
		rMin, rMax := rq.project(ax)
		if qMax <= rMin || rMax <= qMin {
			return false
		}
	}
	return true
}

func (q quad) project(ax point) (lo, hi float64) {
	lo = math.Inf(1)
	hi = math.Inf(-1)
	for _, p := range q {
		d := p.X*ax.X + p.Y*ax.Y
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	return lo, hi
}

// CarState is the player car. X and Y accumulate the camera offset in whole
// pixels; the car itself never leaves the screen anchor.
type CarState struct {
	X, Y     int
	Speed    float64 // signed, |Speed| <= MaxSpeed
	Rotation float64 // half-turns in (-1, 1]; 0 faces up the screen
}

// Camera returns the offset added to map coordinates to get screen coordinates.
func (c *CarState) Camera() point {
	return point{X: float64(c.X - CarAnchorX), Y: float64(c.Y - CarAnchorY)}
}

// MapCentre returns the map-space position of the car's pivot.
func (c *CarState) MapCentre() point {
	cam := c.Camera()
	return point{X: CarAnchorX + carWidth/2 - cam.X, Y: CarAnchorY + carLength/2 - cam.Y}
}

// PlaceAt moves the camera so that the car's pivot sits on map pixel (x, y).
func (c *CarState) PlaceAt(x, y int) {
	c.X = 2*CarAnchorX + carWidth/2 - x
	c.Y = 2*CarAnchorY + carLength/2 - y
}

// Heading returns the unit vector the car drives along, in map space.
func (c *CarState) Heading() point {
	s, co := math.Sincos(c.Rotation * math.Pi)
	return point{X: s, Y: -co}
}

// Hitbox returns the rotated collision rectangle in screen space.
func (c *CarState) Hitbox() quad {
	cx := float64(CarAnchorX + carWidth/2)
	cy := float64(CarAnchorY + carLength/2)
	x0 := float64(CarAnchorX + carHitInset)
	y0 := float64(CarAnchorY + carHitInset)
	x1 := x0 + carWidth - 2*carHitInset
	y1 := y0 + carLength - 2*carHitInset
	s, co := math.Sincos(c.Rotation * math.Pi)
	var q quad
	for i, p := range [4]point{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}} {
		dx, dy := p.X-cx, p.Y-cy
		q[i] = point{X: cx + dx*co - dy*s, Y: cy + dx*s + dy*co}
	}
	return q
}

// advance integrates the position over tpf milliseconds.
func (c *CarState) advance(tpf float64) {
	dt := tpf / 1000
	s, co := math.Sincos(c.Rotation * math.Pi)
	c.X = int(float64(c.X) + c.Speed*dt*-s)
	c.Y = int(float64(c.Y) + c.Speed*dt*co)
}

// nextSpeed applies one tick of throttle, brake or friction. Forward throttle
// eases along a cosine toward MaxSpeed; reversing eases toward -MaxSpeed at
// half the rate.
func nextSpeed(speed, tpf float64, in Controls) float64 {
	var accel float64
	switch {
	case in.Accelerate && in.Brake:
		return speed
	case in.Accelerate:
		accel = math.Cos(speed / MaxSpeed / 2 * math.Pi)
	case in.Brake:
		if speed > 0 {
			accel = -brakeAccel
		} else {
			accel = -math.Cos(speed/-MaxSpeed/2*math.Pi) / 2
		}
	default:
		if speed < speedDeadband && speed > -speedDeadband {
			return 0
		}
		if speed > 0 {
			accel = -frictionAccel
		} else {
			accel = frictionAccel
		}
	}
	speed += accel * tpf / accelDivisor
	return math.Max(-MaxSpeed, math.Min(MaxSpeed, speed))
}

// nextRotation turns the car in proportion to its speed. Reversing turns
// the other way, as with a real car.
func nextRotation(rotation, speed, tpf float64, in Controls) float64 {
	if in.SteerLeft != in.SteerRight {
		delta := math.Sin(tpf / steerPeriodMs * speed / MaxSpeed * math.Pi)
		if in.SteerLeft {
			rotation -= delta
		} else {
			rotation += delta
		}
	}
	return wrapRotation(rotation)
}

// wrapRotation maps any half-turn count into (-1, 1].
func wrapRotation(r float64) float64 {
	for r > 1 {
		r -= 2
	}
	for r <= -1 {
		r += 2
	}
	return r
}
