package game

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Source-to-destination matrices for turning an n x n bitmap about its centre.
// Pixel centres map onto pixel centres, so nearest-neighbour sampling is exact.
func quarterTurnCW(n float64) f64.Aff3  { return f64.Aff3{0, -1, n, 1, 0, 0} }
func halfTurn(n float64) f64.Aff3       { return f64.Aff3{-1, 0, n, 0, -1, n} }
func quarterTurnCCW(n float64) f64.Aff3 { return f64.Aff3{0, 1, 0, -1, 0, n} }

// turnSquare returns a copy of the square bitmap src mapped through s2d.
func turnSquare(src *image.RGBA, s2d f64.Aff3) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, src.Bounds().Dx(), src.Bounds().Dy()))
	draw.NearestNeighbor.Transform(dst, s2d, src, src.Bounds(), draw.Src, nil)
	return dst
}

func rotateCW(src *image.RGBA) *image.RGBA {
	return turnSquare(src, quarterTurnCW(float64(src.Bounds().Dx())))
}

func rotateHalf(src *image.RGBA) *image.RGBA {
	return turnSquare(src, halfTurn(float64(src.Bounds().Dx())))
}

func rotateCCW(src *image.RGBA) *image.RGBA {
	return turnSquare(src, quarterTurnCCW(float64(src.Bounds().Dx())))
}

// cloneRGBA returns a deep copy of src anchored at the origin.
func cloneRGBA(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, src.Bounds().Dx(), src.Bounds().Dy()))
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return dst
}
