package field

const (
	// BlackPoint is subtracted after soft saturation. Anything below it is black.
	BlackPoint = 0.25
	// BandSpread stretches what is left of the range over the gradient.
	BandSpread = 5.0
	// GradientTop is where the gradient wraps around.
	GradientTop = 3.0

	// segment boundaries of the gradient
	BandLow  = 0.5
	BandHigh = 2.0

	ColorMultiplier = 0.8
)

var (
	Col0 = RGB{0, 0, 0}.Scale(ColorMultiplier)
	Col1 = RGB{0.5, 0.42, 0.2}.Scale(ColorMultiplier)
	Col2 = RGB{0.5, 0.2, 0}.Scale(ColorMultiplier)
	Col3 = RGB{0.3, 0, 0.1}.Scale(ColorMultiplier)
)

// Saturate removes the ambient floor from the summed glow and compresses
// it with x/(x+1), scaled to [0, 2).
func Saturate(lightness float64) float64 {
	l := max(lightness-AmbientFloor, 0)
	l = l / (l + 1)
	return l * 2
}

// Band applies the black point to a saturated value. lit=false below it;
// exactly at the black point the value is 0, which Gradient maps to Col0.
func Band(saturated float64) (v float64, lit bool) {
	l := saturated - BlackPoint
	if l < 0 {
		return 0, false
	}
	return l * BandSpread, true
}

// ToneMap runs the summed glow through the tone curve. It returns the
// value to feed to Gradient, or lit=false when the pixel is under the black point.
// The returned value is not reduced modulo GradientTop yet.
func ToneMap(lightness float64) (v float64, lit bool) {
	return Band(Saturate(lightness))
}

// Gradient maps a tone mapped value to colour. Values past GradientTop wrap
// around, and on the wrapped cycles the first anchor is Col3 instead of Col0
// so bright cores get their own colour.
func Gradient(v float64) RGB {
	low := Col0
	if v > GradientTop {
		low = Col3
	}

	v = Mod(v, GradientTop)

	switch {
	case v < BandLow:
		return low.Mix(Col1, segment(v, 0, BandLow))
	case v < BandHigh:
		return Col1.Mix(Col2, segment(v, BandLow, BandHigh))
	default:
		return Col2.Mix(Col3, segment(v, BandHigh, GradientTop))
	}
}

func segment(v, a, b float64) float64 {
	return Smoothstep(0, 1, (v-a)/(b-a))
}

// Colorize maps summed glow straight to colour.
func Colorize(lightness float64) RGB {
	v, lit := ToneMap(lightness)
	if !lit {
		return Black
	}
	return Gradient(v)
}
