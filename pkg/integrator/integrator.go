package integrator

import (
	"image/color"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// World is the read-only geometry and lighting an integrator traces against
type World struct {
	Primitives []geometry.Primitive
	Lights     []lights.PointLight
}

// Integrator defines the interface for turning a camera ray into a pixel color
type Integrator interface {
	// RayColor returns the shaded color for the ray, or false when the ray
	// hits nothing and the caller should use its background.
	RayColor(ray core.Ray, world World) (color.RGBA, bool)
}
