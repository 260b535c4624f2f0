package display

import (
	"errors"
	"image/color"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"tinygo.org/x/drivers"
)

// Compile-time check that FrameDisplay is a driver display
var _ drivers.Displayer = (*FrameDisplay)(nil)

// mockDisplay records pixels written through the Displayer interface
type mockDisplay struct {
	width, height int16
	pixels        map[[2]int16]color.RGBA
	presents      int
	err           error
}

func newMockDisplay(width, height int16) *mockDisplay {
	return &mockDisplay{width: width, height: height, pixels: make(map[[2]int16]color.RGBA)}
}

func (m *mockDisplay) Size() (x, y int16) { return m.width, m.height }

func (m *mockDisplay) SetPixel(x, y int16, c color.RGBA) {
	m.pixels[[2]int16{x, y}] = c
}

func (m *mockDisplay) Display() error {
	m.presents++
	return m.err
}

func gradientFrame(width, height int) *renderer.FrameBuffer {
	fb := renderer.NewFrameBuffer(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			fb.SetRGBA(x, y, color.RGBA{R: uint8(x * 10), G: uint8(y * 10), B: 7, A: 255})
		}
	}
	return fb
}

func TestFrameDisplay(t *testing.T) {
	fb := renderer.NewFrameBuffer(4, 3)
	d := NewFrameDisplay(fb)

	if w, h := d.Size(); w != 4 || h != 3 {
		t.Errorf("Expected size 4x3, got %dx%d", w, h)
	}

	red := color.RGBA{R: 255, A: 255}
	d.SetPixel(1, 2, red)
	d.SetPixel(-1, 0, red)
	d.SetPixel(4, 0, red)
	d.SetPixel(0, 3, red)

	if fb.RGBAAt(1, 2) != red {
		t.Errorf("Expected pixel written to frame buffer, got %v", fb.RGBAAt(1, 2))
	}
	written := 0
	for i := 0; i < len(fb.Pix); i += 4 {
		if fb.Pix[i] == 255 {
			written++
		}
	}
	if written != 1 {
		t.Errorf("Expected out-of-bounds writes to be dropped, %d pixels written", written)
	}

	if err := d.Display(); err != nil || d.Presents() != 1 {
		t.Errorf("Expected one present, got %d (err=%v)", d.Presents(), err)
	}
}

func TestBlit(t *testing.T) {
	fb := gradientFrame(5, 4)

	tests := []struct {
		name          string
		width, height int16
		wantPixels    int
	}{
		{"same size", 5, 4, 20},
		{"smaller display clips", 3, 2, 6},
		{"larger display", 8, 8, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := newMockDisplay(tt.width, tt.height)
			if err := Blit(dst, fb); err != nil {
				t.Fatalf("Blit() error = %v", err)
			}
			if len(dst.pixels) != tt.wantPixels {
				t.Errorf("Expected %d pixels, got %d", tt.wantPixels, len(dst.pixels))
			}
			if dst.presents != 1 {
				t.Errorf("Expected one present, got %d", dst.presents)
			}
			if got := dst.pixels[[2]int16{1, 1}]; got != fb.RGBAAt(1, 1) {
				t.Errorf("Expected pixel (1,1) %v, got %v", fb.RGBAAt(1, 1), got)
			}
		})
	}
}

func TestBlit_DisplayError(t *testing.T) {
	dst := newMockDisplay(2, 2)
	dst.err = errors.New("bus fault")

	if err := Blit(dst, gradientFrame(2, 2)); !errors.Is(err, dst.err) {
		t.Errorf("Expected wrapped display error, got %v", err)
	}
}

func TestBlit_IntoFrameDisplay(t *testing.T) {
	src := gradientFrame(6, 6)
	dst := renderer.NewFrameBuffer(6, 6)

	if err := Blit(NewFrameDisplay(dst), src); err != nil {
		t.Fatalf("Blit() error = %v", err)
	}
	for i := range src.Pix {
		if src.Pix[i] != dst.Pix[i] {
			t.Fatalf("Expected identical copy, byte %d differs", i)
		}
	}
}

func TestDrawCaption(t *testing.T) {
	fb := renderer.NewFrameBuffer(64, 32)
	d := NewFrameDisplay(fb)
	text := color.RGBA{R: 0x01, G: 0xfe, B: 0x02, A: 0xff}

	if err := DrawCaptionColor(d, "phong", text); err != nil {
		t.Fatalf("DrawCaptionColor() error = %v", err)
	}

	textPixels := 0
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := fb.RGBAAt(x, y)
			if y < fb.Height-CaptionHeight-2 && c != (color.RGBA{}) {
				t.Fatalf("Expected pixels above the caption untouched, (%d,%d) is %v", x, y, c)
			}
			if c == text {
				textPixels++
			}
		}
	}
	if textPixels == 0 {
		t.Error("Expected caption text to be drawn")
	}
	if fb.RGBAAt(fb.Width-1, fb.Height-1) != colorCaptionBG {
		t.Errorf("Expected caption background in the corner, got %v", fb.RGBAAt(fb.Width-1, fb.Height-1))
	}
	if d.Presents() != 1 {
		t.Errorf("Expected one present, got %d", d.Presents())
	}
}

func TestDrawCaption_EdgeCases(t *testing.T) {
	small := NewFrameDisplay(renderer.NewFrameBuffer(16, CaptionHeight-1))
	if err := DrawCaption(small, "x"); err == nil {
		t.Error("Expected error for display shorter than the caption")
	}

	empty := NewFrameDisplay(renderer.NewFrameBuffer(16, 16))
	if err := DrawCaption(empty, ""); err != nil || empty.Presents() != 0 {
		t.Errorf("Expected empty caption to be a no-op, got err=%v presents=%d", err, empty.Presents())
	}
}

func TestClampSize(t *testing.T) {
	tests := []struct {
		input    int
		expected int16
	}{
		{0, 0},
		{-5, 0},
		{640, 640},
		{32767, 32767},
		{40000, 32767},
	}

	for _, tt := range tests {
		if got := ClampSize(tt.input); got != tt.expected {
			t.Errorf("ClampSize(%d) = %d, want %d", tt.input, got, tt.expected)
		}
	}
}

func TestDrawCaption_WideFrame(t *testing.T) {
	fb := renderer.NewFrameBuffer(40000, CaptionHeight)
	d := NewFrameDisplay(fb)

	if w, h := d.Size(); w != 32767 || h != CaptionHeight {
		t.Fatalf("Expected clamped size 32767x%d, got %dx%d", CaptionHeight, w, h)
	}
	if err := DrawCaption(d, "wide"); err != nil {
		t.Fatalf("DrawCaption() error = %v", err)
	}
	if got := fb.RGBAAt(32766, 0); got != colorCaptionBG {
		t.Errorf("Expected caption strip at the last addressable column, got %v", got)
	}
	if got := fb.RGBAAt(32767, 0); got != (color.RGBA{}) {
		t.Errorf("Expected columns past the display range untouched, got %v", got)
	}
}
