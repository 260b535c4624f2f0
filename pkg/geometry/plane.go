package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// ParallelEpsilon is the smallest |direction·normal| for which a ray is
// considered to cross a plane rather than run parallel to it.
const ParallelEpsilon = 1e-4

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3 // A point on the plane
	Normal   core.Vec3 // Unit normal
	Color    core.Vec3
	Material material.Material
}

// NewPlane creates a new plane
func NewPlane(point, normal, color core.Vec3, mat material.Material) Plane {
	return Plane{
		Point:    point,
		Normal:   normal.Normalize(), // Ensure normal is normalized
		Color:    color,
		Material: mat,
	}
}

// IntersectPlane returns the distance along the ray to the plane.
// Parallel and coplanar rays never intersect.
func IntersectPlane(ray core.Ray, p Plane) (float64, bool) {
	denominator := ray.Direction.Dot(p.Normal)
	if math.Abs(denominator) < ParallelEpsilon {
		return 0, false
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t <= 0 {
		return 0, false
	}
	return t, true
}

// Intersect implements Primitive
func (p Plane) Intersect(ray core.Ray) (float64, bool) {
	return IntersectPlane(ray, p)
}

// NormalAt returns the stored plane normal for every point
func (p Plane) NormalAt(core.Vec3) core.Vec3 {
	return p.Normal
}

// Surface implements Primitive
func (p Plane) Surface() Surface {
	return Surface{Color: p.Color, Material: p.Material}
}

// Kind implements Primitive
func (p Plane) Kind() Kind { return KindPlane }

func (Plane) primitive() {}
