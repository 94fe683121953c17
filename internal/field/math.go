package field

import (
	"math"

	"golang.org/x/exp/constraints"
)

func Clamp[F constraints.Float](x, lo, hi F) F {
	return min(max(x, lo), hi)
}

func Lerp[F constraints.Float](a, b, t F) F {
	return a + (b-a)*t
}

// Fract returns x - floor(x), always in [0, 1).
func Fract[F constraints.Float](x F) F {
	f := x - F(math.Floor(float64(x)))
	// x very close below an integer can round up to exactly 1
	if f >= 1 {
		return 0
	}
	return f
}

// Mod is the GLSL mod: x - y*floor(x/y). Result has the sign of y.
func Mod[F constraints.Float](x, y F) F {
	return x - y*F(math.Floor(float64(x/y)))
}

// Smoothstep works for edge0 > edge1 as well, which inverts the ramp.
func Smoothstep[F constraints.Float](edge0, edge1, x F) F {
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}
