package field

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertRGB(t *testing.T, want, got RGB, delta float64, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, want.R, got.R, delta, msgAndArgs...)
	assert.InDelta(t, want.G, got.G, delta, msgAndArgs...)
	assert.InDelta(t, want.B, got.B, delta, msgAndArgs...)
}

func TestColorizeBlackPoint(t *testing.T) {
	// 2x/(x+1) with x = l-0.5 reaches the black point at x = 1/7
	edge := AmbientFloor + 1.0/7.0

	for _, l := range []float64{0, 0.1, 0.5, 0.55, 0.6, edge - 1e-9} {
		assert.Equal(t, Black, Colorize(l), "lightness %v", l)
	}

	_, lit := ToneMap(edge - 1e-6)
	assert.False(t, lit)

	v, lit := ToneMap(edge + 0.01)
	assert.True(t, lit)
	assert.Greater(t, v, 0.0)
	assert.NotEqual(t, Black, Colorize(edge+0.1))
}

func TestBlackPointBoundary(t *testing.T) {
	// every saturated value up to and including the black point is black
	for _, s := range []float64{0, 0.1, BlackPoint - 1e-12, BlackPoint} {
		v, lit := Band(s)
		if lit {
			assert.Equal(t, Black, Gradient(v), "saturated %v", s)
		} else {
			assert.Zero(t, v)
		}
	}

	v, lit := Band(BlackPoint)
	assert.True(t, lit)
	assert.Zero(t, v)
	assert.Equal(t, RGB{0, 0, 0}, Gradient(v))

	_, lit = Band(math.Nextafter(BlackPoint, 0))
	assert.False(t, lit)

	// 0.5+1/7 is the glow whose saturated value is the black point; in
	// float64 it lands one ulp under and its successor one ulp over
	edge := AmbientFloor + 1.0/7.0
	assert.InDelta(t, BlackPoint, Saturate(edge), 1e-15)
	assert.Equal(t, Black, Colorize(edge))

	v, lit = ToneMap(math.Nextafter(edge, 1))
	assert.True(t, lit)
	assert.Less(t, v, 1e-14)
}

func TestToneMapCurve(t *testing.T) {
	tests := []struct {
		lightness float64
		want      float64
	}{
		// x=0.5 -> 2*0.5/1.5 = 2/3 -> (2/3-0.25)*5
		{1.0, (2.0/3.0 - 0.25) * 5},
		// x=1 -> 1 -> 0.75*5
		{1.5, 3.75},
		// x=3 -> 1.5 -> 1.25*5
		{3.5, 6.25},
	}

	for _, tt := range tests {
		v, lit := ToneMap(tt.lightness)
		assert.True(t, lit)
		assert.InDelta(t, tt.want, v, 1e-12, "lightness %v", tt.lightness)
	}

	// soft saturation never lets the value reach 2*5 - 0.25*5
	v, _ := ToneMap(1e9)
	assert.Less(t, v, (2-BlackPoint)*BandSpread)
}

func TestGradientAnchors(t *testing.T) {
	assertRGB(t, Col0, Gradient(0), 1e-12)
	assertRGB(t, Col1, Gradient(BandLow), 1e-12)
	assertRGB(t, Col2, Gradient(BandHigh), 1e-12)
	assertRGB(t, Col3, Gradient(GradientTop-1e-12), 1e-9)
}

func TestGradientSegmentsContinuous(t *testing.T) {
	for _, boundary := range []float64{BandLow, BandHigh} {
		for _, eps := range []float64{1e-3, 1e-6, 1e-9} {
			assertRGB(t, Gradient(boundary-eps), Gradient(boundary+eps), 10*eps, "boundary %v", boundary)
		}
	}
}

func TestGradientEased(t *testing.T) {
	// halfway through a segment smoothstep and linear agree,
	// a quarter in they don't
	assertRGB(t, Col1.Mix(Col2, 0.5), Gradient(1.25), 1e-12)
	assertRGB(t, Col1.Mix(Col2, 0.15625), Gradient(0.875), 1e-12)
}

func TestGradientWrapsToHotColor(t *testing.T) {
	// just past the top the next cycle starts from Col3, not Col0
	assertRGB(t, Col3, Gradient(GradientTop+1e-9), 1e-6)
	assertRGB(t, Col3.Mix(Col1, 0.5), Gradient(GradientTop+0.25), 1e-12)
	assertRGB(t, Col0.Mix(Col1, 0.5), Gradient(0.25), 1e-12)

	// beyond the first segment the wrapped cycle matches the first one
	assertRGB(t, Gradient(1.3), Gradient(GradientTop+1.3), 1e-9)
	assertRGB(t, Gradient(2.6), Gradient(GradientTop+2.6), 1e-9)

	// exactly at the top there is no swap and the mod lands on Col0
	assertRGB(t, Col0, Gradient(GradientTop), 1e-12)
}

func TestColorizeStaysInGamut(t *testing.T) {
	for l := 0.0; l < 60; l += 0.05 {
		c := Colorize(l)
		for _, ch := range []float64{c.R, c.G, c.B} {
			assert.GreaterOrEqual(t, ch, 0.0)
			assert.LessOrEqual(t, ch, ColorMultiplier*0.5+1e-12)
		}
	}
}
