package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Text scales applied to the bitmap font.
const (
	hudCounterScale = 1.0
	timerScale      = 7.0
	titleScale      = 6.0
	descScale       = 1.5
	outlineOffset   = 2.0
)

var (
	colBlack   = color.RGBA{A: 255}
	colWhite   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colGray    = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	colBlue    = color.RGBA{B: 255, A: 255}
	hudFace    = text.NewGoXFace(bitmapfont.Face)
	outlineDir = [8][2]float64{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
)

// textSize returns the drawn size of s at scale.
func textSize(s string, scale float64) (w, h float64) {
	w, h = text.Measure(s, hudFace, 0)
	return w * scale, h * scale
}

// drawPlainText draws s with its top-left at (x, y).
func drawPlainText(dst *ebiten.Image, s string, x, y, scale float64, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(dst, s, hudFace, op)
}

// drawOutlinedText draws s in fill over copies shifted around it in outline.
func drawOutlinedText(dst *ebiten.Image, s string, x, y, scale float64, fill, outline color.Color) {
	for _, d := range outlineDir {
		drawPlainText(dst, s, x+d[0]*outlineOffset, y+d[1]*outlineOffset, scale, outline)
	}
	drawPlainText(dst, s, x, y, scale, fill)
}

// drawCheckeredText draws s filled with the checkered pattern and outlined
// in outline. The glyphs are rendered white into textBuf, the pattern is
// composited over them with source-in so it survives only inside the
// glyphs, and the result is blitted onto dst.
func (g *Game) drawCheckeredText(dst *ebiten.Image, s string, x, y, scale float64, outline color.Color) {
	for _, d := range outlineDir {
		drawPlainText(dst, s, x+d[0]*outlineOffset, y+d[1]*outlineOffset, scale, outline)
	}
	g.textBuf.Clear()
	drawPlainText(g.textBuf, s, x, y, scale, colWhite)
	op := &ebiten.DrawImageOptions{Blend: ebiten.BlendSourceIn}
	op.GeoM.Translate(x, y)
	g.textBuf.DrawImage(g.sprites.Checkered, op)
	dst.DrawImage(g.textBuf, nil)
}

// drawHUD renders the kill counter in the top-left corner and the countdown
// centred along the top edge.
func (g *Game) drawHUD(screen *ebiten.Image) {
	sim := g.world.Sim
	drawOutlinedText(screen, fmt.Sprintf("%d / %d", sim.Kills, sim.Total()), 2, 2, hudCounterScale, colWhite, colBlack)

	secs := int(sim.TimeLeft)
	if secs < 0 {
		secs = 0
	}
	s := fmt.Sprint(secs)
	w, _ := textSize(s, timerScale)
	g.drawCheckeredText(screen, s, ScreenWidth/2-w/2, 4, timerScale, colBlack)

	if g.showDebug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS %.0f  TPS %.0f  seed %d  speed %.0f",
			g.clock.FPS(), ebiten.ActualTPS(), g.world.Seed, sim.Car.Speed), 4, ScreenHeight-18)
	}
}

// drawGameOver renders the end-of-run overlay: a darkening fade, then the
// checkered title and its description revealed from under a lifting curtain.
func (g *Game) drawGameOver(screen *ebiten.Image, over *GameOver) {
	f := over.Overlay()
	vector.FillRect(screen, 0, 0, ScreenWidth, ScreenHeight, alphaBlack(f.Backdrop), false)
	if !f.ShowTitle {
		return
	}

	tw, th := textSize(over.Title, titleScale)
	ty := ScreenHeight/2 - th/2
	g.drawCheckeredText(screen, over.Title, ScreenWidth/2-tw/2, ty, titleScale, colGray)

	dw, _ := textSize(over.Description, descScale)
	drawOutlinedText(screen, over.Description, ScreenWidth/2-dw/2, ty+th+8, descScale, colWhite, colBlue)

	if f.Curtain > 0 {
		vector.FillRect(screen, 0, 0, ScreenWidth, ScreenHeight, alphaBlack(f.Curtain), false)
	}
}

// alphaBlack returns black at opacity a in [0, 1].
func alphaBlack(a float64) color.RGBA {
	switch {
	case a <= 0:
		return color.RGBA{}
	case a >= 1:
		return colBlack
	}
	return color.RGBA{A: uint8(a * 255)} // #nosec G115 -- a in (0,1)
}
