package render

import "github.com/gdamore/tcell/v2"

// RGB is a 24-bit color used for blending before handing off to tcell
type RGB struct {
	R, G, B uint8
}

// Color converts to a tcell true color
func (c RGB) Color() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Blend mixes src over dst with the given alpha, clamped to [0, 1]
func Blend(dst, src RGB, alpha float64) RGB {
	switch {
	case alpha <= 0:
		return dst
	case alpha >= 1:
		return src
	}
	return RGB{
		R: mixChannel(dst.R, src.R, alpha),
		G: mixChannel(dst.G, src.G, alpha),
		B: mixChannel(dst.B, src.B, alpha),
	}
}

func mixChannel(d, s uint8, alpha float64) uint8 {
	return uint8(float64(d) + alpha*(float64(s)-float64(d)))
}
