package display

import (
	"fmt"
	"image/color"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// CaptionHeight is the height of the strip DrawCaption fills at the bottom of a display
const CaptionHeight = 12

var (
	colorCaptionBG = color.RGBA{R: 0x18, G: 0x18, B: 0x18, A: 0xff}
	colorCaptionFG = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
)

// FrameDisplay exposes a frame buffer as a drivers.Displayer
type FrameDisplay struct {
	fb       *renderer.FrameBuffer
	presents int
}

// NewFrameDisplay wraps fb. Pixels drawn on the display land in fb directly.
func NewFrameDisplay(fb *renderer.FrameBuffer) *FrameDisplay {
	return &FrameDisplay{fb: fb}
}

// ClampSize converts a pixel dimension to the int16 range of drivers.Displayer.
// Larger frames are exposed only up to math.MaxInt16.
func ClampSize(n int) int16 {
	return int16(max(0, min(n, math.MaxInt16)))
}

func (d *FrameDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return ClampSize(d.fb.Width), ClampSize(d.fb.Height)
}

func (d *FrameDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil {
		return
	}
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width || iy < 0 || iy >= d.fb.Height {
		return
	}
	d.fb.SetRGBA(ix, iy, c)
}

// Display counts presents; the frame buffer is always up to date
func (d *FrameDisplay) Display() error {
	d.presents++
	return nil
}

// Presents returns how many times Display was called
func (d *FrameDisplay) Presents() int {
	return d.presents
}

// Blit copies fb onto dst, clipped to the display size, then presents it
func Blit(dst drivers.Displayer, fb *renderer.FrameBuffer) error {
	w, h := dst.Size()
	width := min(int(w), fb.Width)
	height := min(int(h), fb.Height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dst.SetPixel(int16(x), int16(y), fb.RGBAAt(x, y))
		}
	}

	if err := dst.Display(); err != nil {
		return fmt.Errorf("failed to present frame: %w", err)
	}
	return nil
}

// DrawCaption fills a strip along the bottom of dst and writes text into it
func DrawCaption(dst drivers.Displayer, text string) error {
	return DrawCaptionColor(dst, text, colorCaptionFG)
}

// DrawCaptionColor is DrawCaption with a custom text color
func DrawCaptionColor(dst drivers.Displayer, text string, c color.RGBA) error {
	if text == "" {
		return nil
	}

	w, h := dst.Size()
	if h < CaptionHeight || w <= 0 {
		return fmt.Errorf("display %dx%d too small for caption", w, h)
	}

	for y := h - CaptionHeight; y < h; y++ {
		for x := int16(0); x < w; x++ {
			dst.SetPixel(x, y, colorCaptionBG)
		}
	}

	// y is the text baseline
	tinyfont.WriteLine(dst, &proggy.TinySZ8pt7b, 2, h-3, text, c)

	if err := dst.Display(); err != nil {
		return fmt.Errorf("failed to present caption: %w", err)
	}
	return nil
}
