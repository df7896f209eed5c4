package game

import "image/color"

// sampleColor draws a colour whose channels lie in [base, base+range).
// A zero range yields the base value without consuming a draw. Channels are
// drawn in R, G, B, A order. Callers keep base+range within 0..255.
func sampleColor(rng *Rng, a, aRange, r, rRange, g, gRange, b, bRange int) color.NRGBA {
	return color.NRGBA{
		R: uint8(sampleChannel(rng, r, rRange)), // #nosec G115 -- recipes stay within 0..255
		G: uint8(sampleChannel(rng, g, gRange)), // #nosec G115
		B: uint8(sampleChannel(rng, b, bRange)), // #nosec G115
		A: uint8(sampleChannel(rng, a, aRange)), // #nosec G115
	}
}

func sampleChannel(rng *Rng, base, span int) int {
	if span == 0 {
		return base
	}
	return base + rng.Intn(span)
}

// premul converts a sampled colour to the premultiplied form used by image.RGBA.
func premul(c color.NRGBA) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}
