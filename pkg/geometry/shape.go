package geometry

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Kind identifies which primitive variant a Primitive is
type Kind int

const (
	KindSphere Kind = iota
	KindPlane
)

// String returns the lowercase name of the primitive kind
func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindPlane:
		return "plane"
	default:
		return "unknown"
	}
}

// Primitive is a renderable shape. The set of implementations is closed:
// only Sphere and Plane satisfy it.
type Primitive interface {
	// Intersect returns the distance along the ray to the surface
	Intersect(ray core.Ray) (float64, bool)
	// NormalAt returns the unit surface normal at a point on the surface
	NormalAt(point core.Vec3) core.Vec3
	// Surface returns the shading attributes of the primitive
	Surface() Surface
	Kind() Kind

	primitive()
}

// Surface contains the color and Phong material of a primitive
type Surface struct {
	Color    core.Vec3 // Linear RGB in [0,1]
	Material material.Material
}

// Intersection describes the nearest hit of a ray against a primitive list.
// Index is the primitive's position in that list and serves as its identity.
type Intersection struct {
	T         float64
	Index     int
	Primitive Primitive
	Point     core.Vec3
	Normal    core.Vec3 // Unit length, never flipped toward the viewer
}

// CalculateNormal returns the surface normal of a primitive at a point
func CalculateNormal(p Primitive, point core.Vec3) core.Vec3 {
	return p.NormalAt(point)
}

// FindClosestIntersection scans all primitives and returns the nearest hit with t > 0.
// On exact ties the primitive that appears first in the list wins.
func FindClosestIntersection(ray core.Ray, primitives []Primitive) (*Intersection, bool) {
	closestIndex := -1
	closestSoFar := 0.0

	for i, p := range primitives {
		t, ok := p.Intersect(ray)
		if !ok || t <= 0 {
			continue
		}
		if closestIndex < 0 || t < closestSoFar {
			closestIndex = i
			closestSoFar = t
		}
	}

	if closestIndex < 0 {
		return nil, false
	}

	hit := primitives[closestIndex]
	point := ray.At(closestSoFar)
	return &Intersection{
		T:         closestSoFar,
		Index:     closestIndex,
		Primitive: hit,
		Point:     point,
		Normal:    CalculateNormal(hit, point),
	}, true
}
