package game

import (
	"image"
	"image/color"
)

// CarSpriteMargin is the transparent border around the rendered car, so
// outline strokes that leave the 64x128 footprint are not clipped.
const CarSpriteMargin = 4

// Car outline stroke widths.
const (
	carBodyStroke   = 3
	carWindowStroke = 4
	carDetailStroke = 2
)

// CarModel is the player car's vector silhouette in car-local coordinates
// (64x128, front at the top). Only its colours depend on the seed.
type CarModel struct {
	Seed     int64
	Body     color.RGBA
	Outline  color.RGBA
	AirInlet bool

	body       [][]point // union of closed shapes
	windows    [][]point // front and back, each a union of two shapes
	headlights [][]point // open arcs
	inlet      []point   // closed trapezoid, present only with AirInlet
}

// BuildCarModel colours the fixed silhouette from seed. The body takes the
// seed's low three bytes as RGB, and the outline is white on dark bodies and
// black on light ones.
func BuildCarModel(seed int64) *CarModel {
	r := uint8(seed & 0xff)         // #nosec G115 -- masked to a byte
	g := uint8((seed >> 8) & 0xff)  // #nosec G115
	b := uint8((seed >> 16) & 0xff) // #nosec G115
	cm := &CarModel{
		Seed:     seed,
		Body:     color.RGBA{R: r, G: g, B: b, A: 0xff},
		Outline:  outlineFor(r, g, b),
		AirInlet: seed&1 == 1,
	}

	cm.body = [][]point{
		rectPoints(8, 24, 48, 72),
		ellipsePoints(6, 0, 52, 58),
		clipToMaxY(ellipsePoints(6, 55, 52, 78), 122),
		arcPoints(13, 112, 38, 15, 180, 180, arcPie),
		clipToMaxY(ellipsePoints(0, 44, 16, 8), 48),
		clipToMaxY(ellipsePoints(48, 44, 16, 8), 48),
	}
	cm.windows = [][]point{
		arcPoints(8, 30, 48, 30, 40, 100, arcChord),
		trapezoidPoints(17, 35, 37, 30, 15),
		arcPoints(20, 95, 24, 20, 180, 180, arcChord),
		trapezoidPoints(20, 95, 28, 24, 10),
	}
	cm.headlights = [][]point{
		arcPoints(9, 0, 10, 10, 240, 130, arcOpen),
		arcPoints(45, 0, 10, 10, 160, 130, arcOpen),
	}
	if cm.AirInlet {
		cm.inlet = trapezoidPoints(27.5, 55, 10, 8, 5)
	}
	return cm
}

// outlineFor picks the contrasting outline for a body colour.
func outlineFor(r, g, b uint8) color.RGBA {
	if (int(r)+int(g)+int(b))/3 < 128 {
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	return color.RGBA{A: 0xff}
}

// Render rasterizes the car once. The result is (64+2m)x(128+2m) for margin
// m, with the rotation pivot at (32+m, 64+m).
func (cm *CarModel) Render() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, carWidth+2*CarSpriteMargin, carLength+2*CarSpriteMargin))
	c := newCanvas(img)
	c.translate(CarSpriteMargin, CarSpriteMargin)

	// Stroking every part and then filling every part leaves only the
	// outline of the union visible.
	cm.outlineUnion(c, cm.body, carBodyStroke)
	cm.outlineUnion(c, cm.windows, carWindowStroke)

	for _, arc := range cm.headlights {
		c.strokePath(arc, false, carDetailStroke, cm.Outline)
	}
	if cm.AirInlet {
		c.strokePath(cm.inlet, true, carDetailStroke, cm.Outline)
	}
	return img
}

func (cm *CarModel) outlineUnion(c *canvas, parts [][]point, width float64) {
	for _, p := range parts {
		c.strokePath(p, true, width, cm.Outline)
	}
	for _, p := range parts {
		c.fillPolygon(p, cm.Body)
	}
}

// CarPivot returns the rotation pivot inside the rendered sprite.
func CarPivot() (x, y float64) {
	return carWidth/2 + CarSpriteMargin, carLength/2 + CarSpriteMargin
}
