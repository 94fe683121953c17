// Package field is the CPU reference of the lava field: value noise, the
// aurora band, the ball field and the banded colour mapping.
//
// Everything here is a pure function of its arguments. The Kage program in
// package render is a line by line port of this package and the two must be
// kept in step.
package field

// UV converts a fragment coordinate into aspect corrected screen space:
// origin at the centre of the viewport, both axes divided by its height.
// fragCoord follows the GL convention, y grows upwards and pixel centres
// sit on .5.
func UV(fragCoord, resolution Vec2) Vec2 {
	return fragCoord.Sub(resolution.Scale(0.5)).Scale(1 / resolution.Y)
}

// PixelCenter returns the GL fragment coordinate of pixel (x, y) of an
// image whose rows are stored top to bottom.
func PixelCenter(x, y int, resolution Vec2) Vec2 {
	return V2(float64(x)+0.5, resolution.Y-(float64(y)+0.5))
}

// Shade is the colour of one pixel. The result is always within [0, 1].
func Shade(fragCoord, resolution Vec2, time float64, mode AuroraMode) RGB {
	uv := UV(fragCoord, resolution)

	c := Colorize(Lightness(uv, time))
	if mode == AuroraAdditive {
		c = c.Add(Aurora(uv, time))
	}

	return c.Clamp01()
}
