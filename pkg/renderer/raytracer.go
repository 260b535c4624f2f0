package renderer

import (
	"image"
	"image/color"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/integrator"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// Scene interface to avoid circular imports
type Scene interface {
	GetCameraConfig() CameraConfig
	GetPrimitives() []geometry.Primitive
	GetLights() []lights.PointLight
	GetBackgroundColor() color.RGBA
}

// Raytracer renders a scene into a frame buffer, one full pass per call.
// The scene must not change while a pass is running.
type Raytracer struct {
	scene      Scene
	width      int
	height     int
	camera     *Camera
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer creates a new raytracer using the default Phong shading
func NewRaytracer(scene Scene, width, height int) *Raytracer {
	return &Raytracer{
		scene:      scene,
		width:      width,
		height:     height,
		camera:     NewCamera(scene.GetCameraConfig()),
		integrator: integrator.NewPhongIntegrator(integrator.DefaultShadingConfig()),
	}
}

// SetIntegrator replaces the integrator used for primary hits
func (rt *Raytracer) SetIntegrator(integratorInst integrator.Integrator) {
	rt.integrator = integratorInst
}

// SetLogger enables a one-line summary per render pass
func (rt *Raytracer) SetLogger(logger core.Logger) {
	rt.logger = logger
}

// Render is the single entry point of the core: it renders scene at the given
// size with default settings and returns a freshly allocated frame buffer.
func Render(scene Scene, width, height int) *FrameBuffer {
	fb, _ := NewRaytracer(scene, width, height).RenderPass()
	return fb
}

// RenderPass renders one full frame into a new frame buffer
func (rt *Raytracer) RenderPass() (*FrameBuffer, RenderStats) {
	fb := NewFrameBuffer(rt.width, rt.height)
	stats := rt.RenderInto(fb)
	return fb, stats
}

// RenderInto renders one full frame, overwriting every pixel of fb.
// fb must have the raytracer's dimensions.
func (rt *Raytracer) RenderInto(fb *FrameBuffer) RenderStats {
	startTime := time.Now()

	var stats RenderStats
	// Rows are independent and could be split across goroutines; this pass
	// covers the whole frame on the calling goroutine.
	stats.merge(rt.RenderBounds(fb.Bounds(), fb))
	stats.Duration = time.Since(startTime)

	if rt.logger != nil {
		rt.logger.Printf("Rendered %dx%d: %d hits, %d background in %v\n",
			rt.width, rt.height, stats.HitPixels, stats.BackgroundPixels, stats.Duration)
	}
	return stats
}

// RenderBounds renders the pixels inside bounds, y outer and x inner
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, fb *FrameBuffer) RenderStats {
	world := integrator.World{
		Primitives: rt.scene.GetPrimitives(),
		Lights:     rt.scene.GetLights(),
	}
	background := rt.scene.GetBackgroundColor()

	var stats RenderStats
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ray := rt.camera.GetRay(x, y, rt.width, rt.height)

			pixel, isHit := rt.integrator.RayColor(ray, world)
			if isHit {
				stats.HitPixels++
			} else {
				pixel = background
				stats.BackgroundPixels++
			}

			fb.SetRGBA(x, y, pixel)
			stats.TotalPixels++
		}
	}

	return stats
}
