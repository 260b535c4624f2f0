package lights

import "github.com/df07/go-phong-raytracer/pkg/core"

// PointLight is an infinitely small light source
type PointLight struct {
	Position  core.Vec3
	Intensity float64 // Only applied when the shader is configured to
}

// NewPointLight creates a new point light
func NewPointLight(position core.Vec3, intensity float64) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

// DirectionFrom returns the unit direction from point toward the light and the distance to it
func (l PointLight) DirectionFrom(point core.Vec3) (core.Vec3, float64) {
	toLight := l.Position.Subtract(point)
	distance := toLight.Length()
	return toLight.Normalize(), distance
}
