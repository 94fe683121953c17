package field

import "math"

const (
	BallCount = 50

	// ball radius is hash*BallRadiusSpread + BallRadiusMin
	BallRadiusMin    = 0.025
	BallRadiusSpread = 0.05

	// orbit clock runs this much slower than wall time
	OrbitSpeed = 0.004
	// second noise sample of every orbit is taken this far ahead in time
	OrbitLag = 0.5

	OrbitSpanX = 3.0
	OrbitSpanY = 2.0

	// AmbientFloor is removed from the summed glow before tone mapping.
	AmbientFloor = 0.5
)

func ballSeed(i int) float64 {
	fi := float64(i)
	return Hash3(Splat(fi))
}

// BallRadius is in [BallRadiusMin, BallRadiusMin+BallRadiusSpread).
func BallRadius(i int) float64 {
	return ballSeed(i)*BallRadiusSpread + BallRadiusMin
}

// BallAt returns where ball i is at time and how large it is.
//
// The position blends two independent noise tracks per axis with weights
// p1 and 1-p1, where p1 is a slow sinusoid with a per-ball phase. As one
// track fades out the other fades in, so the orbit never repeats and no
// per-ball state has to be kept between frames.
func BallAt(i int, time float64) (center Vec2, radius float64) {
	seed := ballSeed(i)
	t := time * OrbitSpeed
	fi := float64(i) * 100

	p1 := math.Sin(t+seed*2*math.Pi)*0.5 + 0.5
	p2 := 1 - p1

	center.X += p1 * (Noise3(V3(fi, 0, t)) - 0.5) * OrbitSpanX
	center.X += p2 * (Noise3(V3(fi, 100, t+OrbitLag)) - 0.5) * OrbitSpanX
	center.Y += p1 * (Noise3(V3(fi, 200, t)) - 0.5) * OrbitSpanY
	center.Y += p2 * (Noise3(V3(fi, 300, t+OrbitLag)) - 0.5) * OrbitSpanY

	return center, BallRadius(i)
}

// Falloff is r²/(r²+d²): 1 at the centre, 0.5 at distance r, never 0.
func Falloff(uv, center Vec2, radius float64) float64 {
	d := uv.Sub(center)
	rad2 := radius * radius
	return rad2 / (rad2 + d.Dot(d))
}

// Lightness sums the glow of all balls at uv.
func Lightness(uv Vec2, time float64) float64 {
	l := 0.0
	for i := 0; i < BallCount; i++ {
		center, radius := BallAt(i, time)
		l += Falloff(uv, center, radius)
	}
	return l
}
