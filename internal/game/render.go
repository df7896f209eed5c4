package game

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
)

// Sprites are the GPU copies of the generated assets.
type Sprites struct {
	Background  *ebiten.Image // grass tiled over one screen plus a tile of slack
	Checkered   *ebiten.Image
	Tiles       map[TileKind]*ebiten.Image
	Pedestrians [PedestrianVariants]*ebiten.Image
	Killed      [PedestrianVariants]*ebiten.Image
	Blood       [PedestrianVariants]*ebiten.Image
	Car         *ebiten.Image
}

// NewSprites uploads the world's bitmaps. Must be called once the Ebiten
// graphics driver is available (from Game construction onward).
func NewSprites(w *World) *Sprites {
	sp := &Sprites{
		Background: ebiten.NewImageFromImage(tileBackground(w.Assets.Grass)),
		Checkered:  ebiten.NewImageFromImage(w.Assets.Checkered),
		Tiles:      make(map[TileKind]*ebiten.Image, len(w.Assets.Tiles)),
		Car:        ebiten.NewImageFromImage(w.CarSprite),
	}
	for k, img := range w.Assets.Tiles {
		sp.Tiles[k] = ebiten.NewImageFromImage(img)
	}
	for i := 0; i < PedestrianVariants; i++ {
		sp.Pedestrians[i] = ebiten.NewImageFromImage(w.Assets.Pedestrians[i])
		sp.Killed[i] = ebiten.NewImageFromImage(w.Assets.Killed[i])
		sp.Blood[i] = ebiten.NewImageFromImage(w.Assets.Blood[i])
	}
	return sp
}

// tileBackground repeats the grass tile over a (W+64)x(H+64) bitmap so that
// one blit, shifted by the camera modulo the tile size, covers the screen.
func tileBackground(grass *image.RGBA) *image.RGBA {
	bg := image.NewRGBA(image.Rect(0, 0, ScreenWidth+TileSize, ScreenHeight+TileSize))
	for x := 0; x < (ScreenWidth+2*TileSize)/TileSize; x++ {
		for y := 0; y < (ScreenHeight+2*TileSize)/TileSize; y++ {
			r := image.Rect(x*TileSize, y*TileSize, (x+1)*TileSize, (y+1)*TileSize)
			draw.Draw(bg, r, grass, image.Point{}, draw.Src)
		}
	}
	return bg
}

// backgroundOffset returns where the background blit goes on one axis for
// camera offset cam.
func backgroundOffset(cam int) int {
	off := cam%TileSize - TileSize
	if cam < 0 {
		off += TileSize
	}
	return off
}

// drawScene renders the map, the pedestrians and the car.
func (g *Game) drawScene(screen *ebiten.Image) {
	sim := g.world.Sim
	cam := sim.Camera()
	camX, camY := int(cam.X), int(cam.Y)

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(float64(backgroundOffset(camX)), float64(backgroundOffset(camY)))
	screen.DrawImage(g.sprites.Background, &op)

	c0, c1, r0, r1 := visibleTiles(cam)
	for col := c0; col < c1; col++ {
		for row := r0; row < r1; row++ {
			img := g.sprites.Tiles[sim.Map.At(col, row)]
			if img == nil {
				continue
			}
			op.GeoM.Reset()
			op.GeoM.Translate(float64(col*RoadTileSize+camX), float64(row*RoadTileSize+camY))
			screen.DrawImage(img, &op)
		}
	}

	for i := range sim.Pedestrians {
		p := &sim.Pedestrians[i]
		if p.X <= -camX-TileSize || p.X >= -camX+ScreenWidth+TileSize/2 ||
			p.Y <= -camY-TileSize || p.Y >= -camY+ScreenHeight+TileSize/2 {
			continue
		}
		op.GeoM.Reset()
		op.GeoM.Translate(float64(p.X-TileSize/2+camX), float64(p.Y-TileSize/2+camY))
		if b, ok := p.Blood(); ok {
			screen.DrawImage(g.sprites.Blood[b], &op)
			screen.DrawImage(g.sprites.Killed[p.Variant], &op)
			continue
		}
		screen.DrawImage(g.sprites.Pedestrians[p.Variant], &op)
	}

	g.drawCar(screen)
}

// drawCar draws the car sprite rotated about its pivot at the screen anchor.
func (g *Game) drawCar(screen *ebiten.Image) {
	px, py := CarPivot()
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(-px, -py)
	op.GeoM.Rotate(g.world.Sim.Car.Rotation * math.Pi)
	op.GeoM.Translate(CarAnchorX+carWidth/2, CarAnchorY+carLength/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(g.sprites.Car, &op)
}
