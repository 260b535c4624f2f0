package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/df07/go-phong-raytracer/pkg/display"
	"github.com/df07/go-phong-raytracer/pkg/integrator"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// windowSurface is the drivers.Displayer the frame is blitted onto before it
// is uploaded to the window
type windowSurface struct {
	img   *image.RGBA
	dirty bool
}

func newWindowSurface(width, height int) *windowSurface {
	return &windowSurface{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (w *windowSurface) Size() (x, y int16) {
	b := w.img.Bounds()
	return display.ClampSize(b.Dx()), display.ClampSize(b.Dy())
}

func (w *windowSurface) SetPixel(x, y int16, c color.RGBA) {
	w.img.SetRGBA(int(x), int(y), c)
}

func (w *windowSurface) Display() error {
	w.dirty = true
	return nil
}

// viewer shows one rendered frame in a window. The frame is re-rendered only
// when a shading toggle changes.
type viewer struct {
	scene     *scene.Scene
	width     int
	height    int
	label     string
	intensity bool
	orient    bool

	surface *windowSurface
	frame   *ebiten.Image
}

func newViewer(s *scene.Scene, label string) (*viewer, error) {
	v := &viewer{
		scene:   s,
		width:   s.Width,
		height:  s.Height,
		label:   label,
		orient:  s.Camera.OrientToLookAt,
		surface: newWindowSurface(s.Width, s.Height),
	}
	if err := v.render(); err != nil {
		return nil, err
	}
	return v, nil
}

// render traces the scene and presents it on the window surface
func (v *viewer) render() error {
	v.scene.Camera.OrientToLookAt = v.orient

	raytracer := renderer.NewRaytracer(v.scene, v.width, v.height)
	raytracer.SetLogger(renderer.NewDefaultLogger())
	raytracer.SetIntegrator(integrator.NewPhongIntegrator(integrator.ShadingConfig{
		ApplyLightIntensity: v.intensity,
	}))
	fb, _ := raytracer.RenderPass()

	if err := display.Blit(v.surface, fb); err != nil {
		return err
	}
	// The caption is drawn on the window surface only, never into the frame
	if v.label != "" {
		if err := display.DrawCaption(v.surface, v.label); err != nil {
			return fmt.Errorf("failed to draw label: %w", err)
		}
	}
	return nil
}

// Update toggles shading options: I for light intensity, O for camera orientation
func (v *viewer) Update() error {
	changed := false
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		v.intensity = !v.intensity
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		v.orient = !v.orient
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if changed {
		return v.render()
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if v.frame == nil {
		v.frame = ebiten.NewImage(v.width, v.height)
	}
	if v.surface.dirty {
		v.frame.WritePixels(v.surface.img.Pix)
		v.surface.dirty = false
	}
	screen.DrawImage(v.frame, nil)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.width, v.height
}

func main() {
	sceneName := flag.String("scene", "default", "Scene name: default, plane or shadow")
	scale := flag.Int("scale", 2, "Window scale factor")
	label := flag.String("label", "", "Caption drawn along the bottom of the frame")
	flag.Parse()

	s, err := scene.Create(*sceneName)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	v, err := newViewer(s, *label)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	ebiten.SetWindowTitle(fmt.Sprintf("Phong Raytracer - %s", s.Name))
	ebiten.SetWindowSize(v.width*(*scale), v.height*(*scale))
	ebiten.SetTPS(30)
	if err := ebiten.RunGame(v); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
