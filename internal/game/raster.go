package game

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"
)

// ellipseSegments is the polygon resolution used for ellipses and joins.
const ellipseSegments = 40

// point is a 2-D coordinate in canvas user space.
type point struct {
	X, Y float64
}

// arcKind selects how an elliptical arc is closed.
type arcKind uint8

const (
	arcOpen  arcKind = iota // closed by its chord when filled
	arcChord                // explicitly closed by its chord
	arcPie                  // closed through the ellipse centre
)

var identityAff = f64.Aff3{1, 0, 0, 0, 1, 0}

// canvas rasterizes vector shapes onto an RGBA bitmap through an affine
// transform, composing with source-over. Shapes are given in user space and
// mapped by the current transform before scan conversion.
type canvas struct {
	dst *image.RGBA
	m   f64.Aff3
	z   *vector.Rasterizer
}

func newCanvas(dst *image.RGBA) *canvas {
	b := dst.Bounds()
	return &canvas{dst: dst, m: identityAff, z: vector.NewRasterizer(b.Dx(), b.Dy())}
}

// affMul returns the transform that applies b first, then a.
func affMul(a, b f64.Aff3) f64.Aff3 {
	return f64.Aff3{
		a[0]*b[0] + a[1]*b[3], a[0]*b[1] + a[1]*b[4], a[0]*b[2] + a[1]*b[5] + a[2],
		a[3]*b[0] + a[4]*b[3], a[3]*b[1] + a[4]*b[4], a[3]*b[2] + a[4]*b[5] + a[5],
	}
}

func affApply(m f64.Aff3, p point) point {
	return point{
		X: m[0]*p.X + m[1]*p.Y + m[2],
		Y: m[3]*p.X + m[4]*p.Y + m[5],
	}
}

// translate prepends a translation to the shapes drawn from now on.
func (c *canvas) translate(tx, ty float64) {
	c.m = affMul(c.m, f64.Aff3{1, 0, tx, 0, 1, ty})
}

// rotate prepends a rotation by theta radians (clockwise on screen).
func (c *canvas) rotate(theta float64) {
	s, co := math.Sincos(theta)
	c.m = affMul(c.m, f64.Aff3{co, -s, 0, s, co, 0})
}

// fillPolygon fills the closed polygon pts with col.
func (c *canvas) fillPolygon(pts []point, col color.Color) {
	if len(pts) < 3 {
		return
	}
	b := c.dst.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	c.z.DrawOp = draw.Over
	p := affApply(c.m, pts[0])
	c.z.MoveTo(float32(p.X), float32(p.Y))
	for _, q := range pts[1:] {
		p = affApply(c.m, q)
		c.z.LineTo(float32(p.X), float32(p.Y))
	}
	c.z.ClosePath()
	c.z.Draw(c.dst, b, image.NewUniform(col), image.Point{})
}

func (c *canvas) fillRect(x, y, w, h float64, col color.Color) {
	c.fillPolygon(rectPoints(x, y, w, h), col)
}

func (c *canvas) fillEllipse(x, y, w, h float64, col color.Color) {
	c.fillPolygon(ellipsePoints(x, y, w, h), col)
}

func (c *canvas) fillRoundRect(x, y, w, h, arcW, arcH float64, col color.Color) {
	c.fillPolygon(roundRectPoints(x, y, w, h, arcW, arcH), col)
}

// strokeLine draws a straight line with square caps.
func (c *canvas) strokeLine(x1, y1, x2, y2, width float64, col color.Color) {
	c.fillPolygon(segmentQuad(point{x1, y1}, point{x2, y2}, width, true), col)
}

// strokeRect outlines a rectangle with square corners.
func (c *canvas) strokeRect(x, y, w, h, width float64, col color.Color) {
	c.strokeLine(x, y, x+w, y, width, col)
	c.strokeLine(x+w, y, x+w, y+h, width, col)
	c.strokeLine(x+w, y+h, x, y+h, width, col)
	c.strokeLine(x, y+h, x, y, width, col)
}

// strokePath outlines pts with round joins and caps. A closed path also
// strokes the segment from the last point back to the first.
func (c *canvas) strokePath(pts []point, closed bool, width float64, col color.Color) {
	n := len(pts)
	if n == 0 {
		return
	}
	segs := n - 1
	if closed {
		segs = n
	}
	for i := 0; i < segs; i++ {
		c.fillPolygon(segmentQuad(pts[i], pts[(i+1)%n], width, false), col)
	}
	r := width / 2
	for _, p := range pts {
		c.fillEllipse(p.X-r, p.Y-r, width, width, col)
	}
}

// segmentQuad returns the rectangle covering a stroked segment.
func segmentQuad(a, b point, width float64, squareCap bool) []point {
	hw := width / 2
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		if !squareCap {
			return nil
		}
		return rectPoints(a.X-hw, a.Y-hw, width, width)
	}
	ux, uy := dx/l, dy/l
	if squareCap {
		a = point{a.X - ux*hw, a.Y - uy*hw}
		b = point{b.X + ux*hw, b.Y + uy*hw}
	}
	nx, ny := -uy*hw, ux*hw
	return []point{
		{a.X + nx, a.Y + ny},
		{b.X + nx, b.Y + ny},
		{b.X - nx, b.Y - ny},
		{a.X - nx, a.Y - ny},
	}
}

func rectPoints(x, y, w, h float64) []point {
	return []point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
}

// ellipsePoints approximates the ellipse inscribed in the frame (x, y, w, h).
func ellipsePoints(x, y, w, h float64) []point {
	cx, cy := x+w/2, y+h/2
	rx, ry := w/2, h/2
	pts := make([]point, ellipseSegments)
	for i := range pts {
		s, c := math.Sincos(2 * math.Pi * float64(i) / ellipseSegments)
		pts[i] = point{cx + rx*c, cy + ry*s}
	}
	return pts
}

// arcPoints samples the arc of the ellipse framed by (x, y, w, h) starting at
// start degrees and spanning extent degrees. Angles grow counter-clockwise
// on screen with 0 at three o'clock.
func arcPoints(x, y, w, h, start, extent float64, kind arcKind) []point {
	cx, cy := x+w/2, y+h/2
	rx, ry := w/2, h/2
	steps := int(math.Abs(extent)/6) + 2
	pts := make([]point, 0, steps+1)
	for i := 0; i < steps; i++ {
		a := (start + extent*float64(i)/float64(steps-1)) * math.Pi / 180
		s, c := math.Sincos(a)
		pts = append(pts, point{cx + rx*c, cy - ry*s})
	}
	if kind == arcPie {
		pts = append(pts, point{cx, cy})
	}
	return pts
}

// roundRectPoints outlines a rectangle whose corners are quarter ellipses of
// arcW by arcH.
func roundRectPoints(x, y, w, h, arcW, arcH float64) []point {
	rx := math.Min(arcW/2, w/2)
	ry := math.Min(arcH/2, h/2)
	if rx <= 0 || ry <= 0 {
		return rectPoints(x, y, w, h)
	}
	corners := [4]struct{ cx, cy, from float64 }{
		{x + w - rx, y + ry, -math.Pi / 2},
		{x + w - rx, y + h - ry, 0},
		{x + rx, y + h - ry, math.Pi / 2},
		{x + rx, y + ry, math.Pi},
	}
	const cornerSteps = 8
	pts := make([]point, 0, 4*(cornerSteps+1))
	for _, k := range corners {
		for i := 0; i <= cornerSteps; i++ {
			s, c := math.Sincos(k.from + math.Pi/2*float64(i)/cornerSteps)
			pts = append(pts, point{k.cx + rx*c, k.cy + ry*s})
		}
	}
	return pts
}

// trapezoidPoints returns a trapezoid with top base a, bottom base b and
// height h whose bottom-left corner is (x, y+h).
func trapezoidPoints(x, y, a, b, h float64) []point {
	return []point{
		{x + (b-a)/2, y},
		{x, y + h},
		{x + b, y + h},
		{x + (b-a)/2 + a, y},
	}
}

// clipToMaxY keeps the part of the polygon with y <= maxY.
func clipToMaxY(pts []point, maxY float64) []point {
	out := make([]point, 0, len(pts)+2)
	for i, cur := range pts {
		prev := pts[(i+len(pts)-1)%len(pts)]
		curIn, prevIn := cur.Y <= maxY, prev.Y <= maxY
		switch {
		case curIn && !prevIn:
			out = append(out, crossY(prev, cur, maxY), cur)
		case curIn:
			out = append(out, cur)
		case prevIn:
			out = append(out, crossY(prev, cur, maxY))
		}
	}
	return out
}

func crossY(a, b point, y float64) point {
	t := (y - a.Y) / (b.Y - a.Y)
	return point{a.X + t*(b.X-a.X), y}
}
