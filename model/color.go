package model

// RGB is an opaque device color with 8-bit components.
type RGB struct {
	R, G, B uint8
}

// Color is an RGB color with an alpha channel. Alpha 255 is fully opaque.
type Color struct {
	R, G, B, A uint8
}

// WithAlpha composes the color with a transparency fraction, where 1.0 is
// fully opaque and 0.0 fully transparent.
func (c RGB) WithAlpha(alpha float64) Color {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return Color{R: c.R, G: c.G, B: c.B, A: uint8(alpha*255 + 0.5)}
}

// Black is the default stroke and fill color.
var Black = RGB{0, 0, 0}

// clamp01 limits a component value to the 0..1 range.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// RGBFromComponents builds an RGB color from components in the 0..1 range,
// as used by content stream color operators.
func RGBFromComponents(r, g, b float64) RGB {
	return RGB{
		R: uint8(clamp01(r)*255 + 0.5),
		G: uint8(clamp01(g)*255 + 0.5),
		B: uint8(clamp01(b)*255 + 0.5),
	}
}

// RGBFromGray replicates a single gray component (0=black, 1=white) across
// all three channels.
func RGBFromGray(gray float64) RGB {
	return RGBFromComponents(gray, gray, gray)
}

// RGBFromCMYK converts CMYK components (0..1 each) to the nearest RGB color:
// R=(1-C)(1-K), G=(1-M)(1-K), B=(1-Y)(1-K).
func RGBFromCMYK(c, m, y, k float64) RGB {
	return RGBFromComponents((1-c)*(1-k), (1-m)*(1-k), (1-y)*(1-k))
}
