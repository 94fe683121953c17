package field

import "math"

const (
	Octaves = 9
	Gain    = 0.48
	// amplitude of the first octave
	FirstAmplitude = 0.5
	OctaveShift    = 101.618
)

var hashWeights = Vec3{X: 127.1, Y: 311.7, Z: 235.2}

// Hash3 maps p to a pseudo-random value in [0, 1).
// It has no state: the same p always gives the same value.
func Hash3(p Vec3) float64 {
	return Fract(math.Sin(p.Dot(hashWeights)) * 43758.5453)
}

// Noise3 is value noise: the hashes of the 8 lattice corners around p,
// blended with 3t²-2t³ weights. Range is [0, 1).
func Noise3(p Vec3) float64 {
	i := p.Floor()
	f := p.Fract()

	ux := f.X * f.X * (3 - 2*f.X)
	uy := f.Y * f.Y * (3 - 2*f.Y)
	uz := f.Z * f.Z * (3 - 2*f.Z)

	corner := func(dx, dy, dz float64) float64 {
		return Hash3(i.Add(V3(dx, dy, dz)))
	}

	near := Lerp(
		Lerp(corner(0, 0, 0), corner(1, 0, 0), ux),
		Lerp(corner(0, 1, 0), corner(1, 1, 0), ux),
		uy,
	)
	far := Lerp(
		Lerp(corner(0, 0, 1), corner(1, 0, 1), ux),
		Lerp(corner(0, 1, 1), corner(1, 1, 1), ux),
		uy,
	)

	return Lerp(near, far, uz)
}

// FBM sums Octaves octaves of Noise3. Every octave doubles the frequency and
// shifts the domain by OctaveShift so octaves don't line up.
func FBM(p Vec3) float64 {
	v := 0.0
	a := FirstAmplitude
	shift := Splat(OctaveShift)

	for i := 0; i < Octaves; i++ {
		v += a * Noise3(p)
		p = p.Scale(2).Add(shift)
		a *= Gain
	}

	return v
}

// FBMBound is the supremum of FBM: the geometric series of the octave amplitudes.
func FBMBound() float64 {
	return FirstAmplitude * (1 - math.Pow(Gain, Octaves)) / (1 - Gain)
}
