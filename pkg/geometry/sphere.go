package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Color    core.Vec3
	Material material.Material
}

// NewSphere creates a new sphere. Radius must be positive.
func NewSphere(center core.Vec3, radius float64, color core.Vec3, mat material.Material) Sphere {
	return Sphere{
		Center:   center,
		Radius:   radius,
		Color:    color,
		Material: mat,
	}
}

// IntersectSphere returns the distance to the near intersection of the ray with the sphere.
// Only the near root is considered, so a ray starting inside the sphere misses it.
func IntersectSphere(ray core.Ray, s Sphere) (float64, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, false
	}

	t := (-b - math.Sqrt(discriminant)) / (2 * a)
	if t < 0 {
		return 0, false
	}
	return t, true
}

// Intersect implements Primitive
func (s Sphere) Intersect(ray core.Ray) (float64, bool) {
	return IntersectSphere(ray, s)
}

// NormalAt returns the outward normal from the center through the point
func (s Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}

// Surface implements Primitive
func (s Sphere) Surface() Surface {
	return Surface{Color: s.Color, Material: s.Material}
}

// Kind implements Primitive
func (s Sphere) Kind() Kind { return KindSphere }

func (Sphere) primitive() {}
