package field

import "math"

// =================================
// Vec2
// =================================

type Vec2 struct {
	X, Y float64
}

func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (p Vec2) Add(q Vec2) Vec2 {
	p.X += q.X
	p.Y += q.Y
	return p
}

func (p Vec2) Sub(q Vec2) Vec2 {
	p.X -= q.X
	p.Y -= q.Y
	return p
}

func (p Vec2) Scale(s float64) Vec2 {
	p.X *= s
	p.Y *= s
	return p
}

func (p Vec2) Dot(q Vec2) float64 {
	return p.X*q.X + p.Y*q.Y
}

// =================================
// Vec3
// =================================

type Vec3 struct {
	X, Y, Z float64
}

func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Splat returns (v, v, v).
func Splat(v float64) Vec3 {
	return Vec3{X: v, Y: v, Z: v}
}

func (p Vec3) Add(q Vec3) Vec3 {
	p.X += q.X
	p.Y += q.Y
	p.Z += q.Z
	return p
}

func (p Vec3) Scale(s float64) Vec3 {
	p.X *= s
	p.Y *= s
	p.Z *= s
	return p
}

func (p Vec3) Dot(q Vec3) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

func (p Vec3) Floor() Vec3 {
	return Vec3{X: math.Floor(p.X), Y: math.Floor(p.Y), Z: math.Floor(p.Z)}
}

func (p Vec3) Fract() Vec3 {
	return Vec3{X: Fract(p.X), Y: Fract(p.Y), Z: Fract(p.Z)}
}

// =================================
// RGB
// =================================

// RGB is a linear colour with unbounded components.
type RGB struct {
	R, G, B float64
}

var Black = RGB{}

func (c RGB) Add(d RGB) RGB {
	return RGB{R: c.R + d.R, G: c.G + d.G, B: c.B + d.B}
}

func (c RGB) Scale(s float64) RGB {
	return RGB{R: c.R * s, G: c.G * s, B: c.B * s}
}

func (c RGB) Clamp01() RGB {
	return RGB{R: Clamp(c.R, 0, 1), G: Clamp(c.G, 0, 1), B: Clamp(c.B, 0, 1)}
}

// Mix interpolates componentwise from c to d.
func (c RGB) Mix(d RGB, t float64) RGB {
	return RGB{
		R: Lerp(c.R, d.R, t),
		G: Lerp(c.G, d.G, t),
		B: Lerp(c.B, d.B, t),
	}
}
