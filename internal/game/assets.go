package game

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// AssetKind names one procedurally generated bitmap recipe.
type AssetKind int

const (
	AssetGrass AssetKind = iota
	AssetCheckered
	AssetPedestrian
	AssetKilledPedestrian
	AssetBlood
	AssetAsphalt
	AssetRoadHorizontal
	AssetRoadVertical
	AssetRoadEndUp
	AssetRoadEndDown
	AssetRoadEndLeft
	AssetRoadEndRight
	AssetLevelEnd
	AssetBuilding
	assetKindCount // sentinel
)

func (k AssetKind) String() string {
	switch k {
	case AssetGrass:
		return "grass"
	case AssetCheckered:
		return "checkered"
	case AssetPedestrian:
		return "pedestrian"
	case AssetKilledPedestrian:
		return "killed_pedestrian"
	case AssetBlood:
		return "blood"
	case AssetAsphalt:
		return "asphalt"
	case AssetRoadHorizontal:
		return "road_horizontal"
	case AssetRoadVertical:
		return "road_vertical"
	case AssetRoadEndUp:
		return "road_end_up"
	case AssetRoadEndDown:
		return "road_end_down"
	case AssetRoadEndLeft:
		return "road_end_left"
	case AssetRoadEndRight:
		return "road_end_right"
	case AssetLevelEnd:
		return "level_end"
	case AssetBuilding:
		return "building"
	default:
		return "unknown"
	}
}

// Size returns the bitmap dimensions the recipe produces.
func (k AssetKind) Size() (w, h int) {
	switch k {
	case AssetGrass, AssetPedestrian, AssetKilledPedestrian, AssetBlood:
		return TileSize, TileSize
	case AssetCheckered:
		return ScreenWidth, ScreenHeight
	default:
		return RoadTileSize, RoadTileSize
	}
}

// tileAssets maps each drawable map tile to the recipe that paints it.
var tileAssets = map[TileKind]AssetKind{
	TileAsphalt:        AssetAsphalt,
	TileRoadHorizontal: AssetRoadHorizontal,
	TileRoadVertical:   AssetRoadVertical,
	TileRoadEndUp:      AssetRoadEndUp,
	TileRoadEndDown:    AssetRoadEndDown,
	TileRoadEndLeft:    AssetRoadEndLeft,
	TileRoadEndRight:   AssetRoadEndRight,
	TileLevelEnd:       AssetLevelEnd,
	TileBuilding:       AssetBuilding,
}

// Line widths used by the road and building recipes.
const (
	roadLineWidth  = 5
	buildingFrameW = 3
	bodyLineWidth  = 3
	bloodPuddles   = 16
	limbLength     = 12
)

// AssetGenerator paints bitmaps from the shared random stream. Derived road
// tiles are rotations of the most recent base bitmap of their family, so the
// generator remembers the last result of each tile recipe.
type AssetGenerator struct {
	rng  *Rng
	last map[AssetKind]*image.RGBA
}

// NewAssetGenerator returns a generator drawing from rng.
func NewAssetGenerator(rng *Rng) *AssetGenerator {
	return &AssetGenerator{rng: rng, last: make(map[AssetKind]*image.RGBA)}
}

// Generate paints a fresh bitmap of the given kind. Each call consumes a
// fixed number of random draws for that kind, except that a derived tile
// whose base was never generated paints the base first.
func (ag *AssetGenerator) Generate(kind AssetKind) (*image.RGBA, error) {
	if kind < 0 || kind >= assetKindCount {
		return nil, fmt.Errorf("generate asset: unknown kind %d", kind)
	}
	w, h := kind.Size()
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	switch kind {
	case AssetGrass:
		ag.fillNoise(img, func() color.NRGBA { return ag.sample(255, 0, 0, 25, 230, 25, 0, 25) })
	case AssetAsphalt:
		ag.fillNoise(img, func() color.NRGBA {
			if ag.rng.Intn(4) < 3 {
				return ag.sample(255, 0, 0, 40, 0, 40, 0, 40)
			}
			return ag.sample(255, 0, 80, 20, 80, 20, 80, 20)
		})
	case AssetRoadHorizontal:
		base, err := ag.base(AssetAsphalt)
		if err != nil {
			return nil, err
		}
		img = cloneRGBA(base)
		c := newCanvas(img)
		dash := premul(ag.sample(255, 0, 245, 10, 245, 10, 245, 10))
		c.strokeLine(32, RoadTileSize/2, RoadTileSize-32, RoadTileSize/2, roadLineWidth, dash)
		edge := premul(ag.sample(255, 0, 180, 20, 180, 20, 180, 20))
		c.strokeLine(0, 0, RoadTileSize, 0, roadLineWidth, edge)
		c.strokeLine(0, RoadTileSize, RoadTileSize, RoadTileSize, roadLineWidth, edge)
	case AssetRoadVertical:
		base, err := ag.base(AssetRoadHorizontal)
		if err != nil {
			return nil, err
		}
		img = rotateCW(base)
	case AssetRoadEndUp:
		base, err := ag.base(AssetRoadVertical)
		if err != nil {
			return nil, err
		}
		img = cloneRGBA(base)
		edge := premul(ag.sample(255, 0, 180, 20, 180, 20, 180, 20))
		newCanvas(img).strokeLine(0, 0, RoadTileSize, 0, roadLineWidth, edge)
	case AssetRoadEndDown, AssetRoadEndLeft, AssetRoadEndRight:
		base, err := ag.base(AssetRoadEndUp)
		if err != nil {
			return nil, err
		}
		switch kind {
		case AssetRoadEndDown:
			img = rotateHalf(base)
		case AssetRoadEndLeft:
			img = rotateCCW(base)
		default:
			img = rotateCW(base)
		}
	case AssetLevelEnd:
		p1 := premul(ag.sample(255, 0, 200, 20, 0, 10, 0, 10))
		p2 := premul(ag.sample(255, 0, 245, 10, 245, 10, 245, 10))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if (x+y)%16 < 10 {
					img.SetRGBA(x, y, p1)
				} else {
					img.SetRGBA(x, y, p2)
				}
			}
		}
	case AssetBuilding:
		ag.fillNoise(img, func() color.NRGBA { return ag.sample(255, 0, 200, 20, 200, 20, 200, 20) })
		frame := premul(ag.sample(255, 0, 100, 10, 100, 10, 100, 10))
		c := newCanvas(img)
		c.strokeLine(0, 0, 0, RoadTileSize, buildingFrameW, frame)
		c.strokeRect(0, 0, RoadTileSize, RoadTileSize, buildingFrameW, frame)
	case AssetCheckered:
		p1 := premul(ag.sample(255, 0, 170, 50, 0, 50, 0, 50))
		p2 := premul(ag.sample(255, 0, 205, 50, 205, 50, 205, 50))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if checkeredFirst(x, y) {
					img.SetRGBA(x, y, p1)
				} else {
					img.SetRGBA(x, y, p2)
				}
			}
		}
	case AssetBlood:
		ag.paintBlood(img)
	case AssetPedestrian:
		c := ag.spunCanvas(img)
		c.fillRoundRect(24, 32, 16, 5, 2, 2, premul(ag.sample(255, 0, 0, 255, 0, 255, 0, 255)))
		c.fillEllipse(28, 28, 8, 8, premul(ag.sample(255, 0, 245, 10, 120, 20, 60, 60)))
	case AssetKilledPedestrian:
		ag.paintKilled(img)
	}

	if _, derivable := derivedFrom[kind]; derivable || kind == AssetAsphalt {
		ag.last[kind] = img
	}
	return img, nil
}

// derivedFrom lists the tile recipes that start from another recipe's output.
var derivedFrom = map[AssetKind]AssetKind{
	AssetRoadHorizontal: AssetAsphalt,
	AssetRoadVertical:   AssetRoadHorizontal,
	AssetRoadEndUp:      AssetRoadVertical,
	AssetRoadEndDown:    AssetRoadEndUp,
	AssetRoadEndLeft:    AssetRoadEndUp,
	AssetRoadEndRight:   AssetRoadEndUp,
}

// base returns the last bitmap generated for kind, painting one if needed.
func (ag *AssetGenerator) base(kind AssetKind) (*image.RGBA, error) {
	if img, ok := ag.last[kind]; ok {
		return img, nil
	}
	return ag.Generate(kind)
}

func (ag *AssetGenerator) sample(a, aRange, r, rRange, g, gRange, b, bRange int) color.NRGBA {
	return sampleColor(ag.rng, a, aRange, r, rRange, g, gRange, b, bRange)
}

// fillNoise paints every pixel, column by column, with a fresh sample.
func (ag *AssetGenerator) fillNoise(img *image.RGBA, next func() color.NRGBA) {
	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x++ {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			img.SetRGBA(x, y, premul(next()))
		}
	}
}

// spunCanvas returns a canvas over a tile-sized sprite rotated by a random
// angle about the sprite centre.
func (ag *AssetGenerator) spunCanvas(img *image.RGBA) *canvas {
	c := newCanvas(img)
	c.translate(TileSize/2, TileSize/2)
	c.rotate((ag.rng.Float64() - 1) * 2 * math.Pi)
	c.translate(-TileSize/2, -TileSize/2)
	return c
}

func (ag *AssetGenerator) paintKilled(img *image.RGBA) {
	c := ag.spunCanvas(img)
	c.strokeLine(19, 24, 19, 32, bodyLineWidth, premul(ag.sample(255, 0, 245, 10, 200, 10, 185, 15)))
	c.fillEllipse(16, 16, 8, 8, premul(ag.sample(255, 0, 245, 10, 120, 20, 60, 60)))
	c.fillRoundRect(12, 25, 16, 24, 8, 8, premul(ag.sample(255, 0, 0, 255, 0, 255, 0, 255)))

	var limbs [4]point
	for i := range limbs {
		s, co := math.Sincos(float64(ag.rng.Intn(360)) * math.Pi / 180)
		limbs[i] = point{X: float64(int(s * limbLength)), Y: float64(int(co * limbLength))}
	}
	skin := premul(ag.sample(255, 0, 245, 10, 200, 10, 185, 15))
	joints := [4]point{{14, 27}, {28, 27}, {14, 48}, {28, 48}}
	for i, j := range joints {
		c.strokeLine(j.X, j.Y, j.X+limbs[i].X, j.Y+limbs[i].Y, bodyLineWidth, skin)
	}
}

func (ag *AssetGenerator) paintBlood(img *image.RGBA) {
	c := newCanvas(img)
	for i := 0; i < bloodPuddles; i++ {
		x := ag.rng.Intn(TileSize)
		y := ag.rng.Intn(TileSize)
		d := ag.rng.Intn(TileSize / 2)
		if x+d > TileSize {
			x = TileSize - d
		}
		if y+d > TileSize {
			y = TileSize - d
		}
		col := sampleColor(ag.rng, 190, 50, 200, 10, 40, 10, 30, 20)
		c.fillEllipse(float64(x), float64(y), float64(d), float64(d), col)
	}
}

// checkeredFirst reports whether (x, y) takes the first colour of the
// checkered pattern: 10-pixel dashes, shifted by half a period on every
// other 10-row band.
func checkeredFirst(x, y int) bool {
	if y%20 > 10 {
		x += 10
	}
	return x%20 < 10
}

// AssetSet holds every bitmap the game draws.
type AssetSet struct {
	Grass       *image.RGBA
	Checkered   *image.RGBA
	Tiles       map[TileKind]*image.RGBA
	Pedestrians [PedestrianVariants]*image.RGBA
	Killed      [PedestrianVariants]*image.RGBA
	Blood       [PedestrianVariants]*image.RGBA
}

// Tile returns the bitmap for a map tile, or nil for tiles that show the
// grass background.
func (as *AssetSet) Tile(k TileKind) *image.RGBA {
	return as.Tiles[k]
}

// assetOrder is the startup generation order after the pedestrian families.
var assetOrder = []AssetKind{
	AssetAsphalt,
	AssetRoadHorizontal,
	AssetRoadVertical,
	AssetRoadEndUp,
	AssetRoadEndDown,
	AssetRoadEndLeft,
	AssetRoadEndRight,
	AssetLevelEnd,
	AssetBuilding,
}

// GenerateAssets paints the complete asset set in the fixed startup order.
// Changing the order changes every world generated from a given seed.
func GenerateAssets(rng *Rng) (*AssetSet, error) {
	ag := NewAssetGenerator(rng)
	as := &AssetSet{Tiles: make(map[TileKind]*image.RGBA, len(tileAssets))}

	var err error
	if as.Grass, err = ag.Generate(AssetGrass); err != nil {
		return nil, err
	}
	if as.Checkered, err = ag.Generate(AssetCheckered); err != nil {
		return nil, err
	}
	for i := 0; i < PedestrianVariants; i++ {
		if as.Pedestrians[i], err = ag.Generate(AssetPedestrian); err != nil {
			return nil, err
		}
		if as.Killed[i], err = ag.Generate(AssetKilledPedestrian); err != nil {
			return nil, err
		}
		if as.Blood[i], err = ag.Generate(AssetBlood); err != nil {
			return nil, err
		}
	}

	byAsset := make(map[AssetKind]*image.RGBA, len(assetOrder))
	for _, kind := range assetOrder {
		img, err := ag.Generate(kind)
		if err != nil {
			return nil, fmt.Errorf("generate assets: %s: %w", kind, err)
		}
		byAsset[kind] = img
	}
	for tile, kind := range tileAssets {
		as.Tiles[tile] = byAsset[kind]
	}
	return as, nil
}
