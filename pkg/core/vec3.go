package core

import "math"

// Vec3 is a point, direction or linear RGB color. Every method returns a new value.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Multiply scales every component by s
func (v Vec3) Multiply(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// AddScaled returns v + d*t, the point at distance t along d from v
func (v Vec3) AddScaled(d Vec3, t float64) Vec3 {
	return Vec3{X: v.X + d.X*t, Y: v.Y + d.Y*t, Z: v.Z + d.Z*t}
}

func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Length is the Euclidean norm
func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length. The zero vector stays zero.
func (v Vec3) Normalize() Vec3 {
	if l := v.Length(); l != 0 {
		return Vec3{X: v.X / l, Y: v.Y / l, Z: v.Z / l}
	}
	return Vec3{}
}

// Reflect mirrors v about the unit normal n: 2(n·v)n - v.
// Both v and the result point away from the surface.
func (v Vec3) Reflect(n Vec3) Vec3 {
	return n.Multiply(2 * n.Dot(v)).Subtract(v)
}

// Luminance weights an RGB color with the Rec. 709 coefficients
func (v Vec3) Luminance() float64 {
	return 0.2126*v.X + 0.7152*v.Y + 0.0722*v.Z
}
