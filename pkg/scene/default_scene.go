package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
)

// groundMaterial is the matte finish shared by the built-in ground planes
var groundMaterial = material.NewMaterial(0.2, 0.8, 0.3, 16)

// NewDefaultScene creates three spheres resting on a ground plane, lit by two point lights
func NewDefaultScene() *Scene {
	s := NewScene("default")
	s.Camera = renderer.CameraConfig{
		Center: core.NewVec3(0, 1, -4), // Raised and pulled back
		LookAt: core.NewVec3(0, 1, 0),
		Up:     core.NewVec3(0, 1, 0),
	}

	s.AddSphere(core.NewVec3(-1.6, 0.75, 1), 0.75, core.NewVec3(0.9, 0.2, 0.2), material.Default())
	s.AddSphere(core.NewVec3(0, 1, 2), 1, core.NewVec3(0.2, 0.8, 0.3), material.Default().WithShininess(64))
	s.AddSphere(core.NewVec3(1.5, 0.5, 0.5), 0.5, core.NewVec3(0.2, 0.3, 0.9), material.Default().WithSpecular(0.9))
	s.AddPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), core.NewVec3(0.5, 0.5, 0.5), groundMaterial)

	s.AddLight(core.NewVec3(5, 6, -3), 1.0)
	s.AddLight(core.NewVec3(-4, 4, -2), 0.5)

	return s
}

// NewPlaneScene creates a single ground plane under an overhead light, viewed
// from one unit above the plane looking straight down
func NewPlaneScene() *Scene {
	s := NewScene("plane")
	s.Camera = renderer.CameraConfig{
		Center:         core.NewVec3(0, 1, 0),
		LookAt:         core.NewVec3(0, 0, 0),
		Up:             core.NewVec3(0, 0, 1),
		OrientToLookAt: true,
	}
	s.Width, s.Height = 256, 256

	s.AddPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), core.NewVec3(0.5, 0.25, 1.0), groundMaterial)
	s.AddLight(core.NewVec3(0, 5, 0), 1.0)

	return s
}

// NewShadowScene creates a sphere floating above a plane so it casts a shadow
func NewShadowScene() *Scene {
	s := NewScene("shadow")
	s.Camera = renderer.CameraConfig{
		Center: core.NewVec3(0, 1.5, -3),
		LookAt: core.NewVec3(0, 1.5, 0),
		Up:     core.NewVec3(0, 1, 0),
	}

	s.AddSphere(core.NewVec3(0, 1.5, 1), 0.6, core.NewVec3(1.0, 0.6, 0.1), material.Default())
	s.AddPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), core.NewVec3(0.8, 0.8, 0.8), groundMaterial)
	s.AddLight(core.NewVec3(0, 6, 1), 1.0)

	return s
}
