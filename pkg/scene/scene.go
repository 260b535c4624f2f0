package scene

import (
	"image/color"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
)

// Default frame size for scenes that do not set one
const (
	DefaultWidth  = 400
	DefaultHeight = 300
)

// SkyBackground is the background used by the built-in scenes
var SkyBackground = color.RGBA{R: 135, G: 206, B: 235, A: 255}

// Scene contains all the elements needed for rendering. It is built once and
// must not be modified while a render is running. A primitive's identity is
// its index in Primitives.
type Scene struct {
	Name       string
	Camera     renderer.CameraConfig
	Primitives []geometry.Primitive // Objects in the scene, in intersection order
	Lights     []lights.PointLight  // Lights in the scene
	Background color.RGBA           // Written verbatim for rays that hit nothing
	Width      int                  // Preferred frame width
	Height     int                  // Preferred frame height
}

// NewScene creates an empty scene with a forward-looking camera at the origin
func NewScene(name string) *Scene {
	return &Scene{
		Name: name,
		Camera: renderer.CameraConfig{
			Center: core.NewVec3(0, 0, 0),
			LookAt: core.NewVec3(0, 0, 1),
			Up:     core.NewVec3(0, 1, 0),
		},
		Primitives: make([]geometry.Primitive, 0),
		Lights:     make([]lights.PointLight, 0),
		Background: SkyBackground,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
	}
}

// AddSphere adds a sphere and returns its primitive index
func (s *Scene) AddSphere(center core.Vec3, radius float64, color core.Vec3, mat material.Material) int {
	return s.AddPrimitive(geometry.NewSphere(center, radius, color, mat))
}

// AddPlane adds an infinite plane and returns its primitive index
func (s *Scene) AddPlane(point, normal, color core.Vec3, mat material.Material) int {
	return s.AddPrimitive(geometry.NewPlane(point, normal, color, mat))
}

// AddPrimitive appends a primitive and returns its index
func (s *Scene) AddPrimitive(p geometry.Primitive) int {
	s.Primitives = append(s.Primitives, p)
	return len(s.Primitives) - 1
}

// AddLight adds a point light and returns its index
func (s *Scene) AddLight(position core.Vec3, intensity float64) int {
	s.Lights = append(s.Lights, lights.NewPointLight(position, intensity))
	return len(s.Lights) - 1
}

// GetPrimitiveCount returns the number of primitives in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Primitives)
}

// GetCameraConfig implements renderer.Scene
func (s *Scene) GetCameraConfig() renderer.CameraConfig {
	return s.Camera
}

// GetPrimitives implements renderer.Scene
func (s *Scene) GetPrimitives() []geometry.Primitive {
	return s.Primitives
}

// GetLights implements renderer.Scene
func (s *Scene) GetLights() []lights.PointLight {
	return s.Lights
}

// GetBackgroundColor implements renderer.Scene
func (s *Scene) GetBackgroundColor() color.RGBA {
	return s.Background
}

// Render renders the scene at its preferred size
func (s *Scene) Render() *renderer.FrameBuffer {
	return renderer.Render(s, s.Width, s.Height)
}
