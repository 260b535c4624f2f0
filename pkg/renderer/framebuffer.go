package renderer

import (
	"image"
	"image/color"
)

// FrameBuffer holds an RGBA image as row-major bytes, top row first
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []byte // len == Width*Height*4
}

// NewFrameBuffer allocates a frame buffer of the given size
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*4),
	}
}

// Offset returns the index of the first byte of pixel (x, y)
func (fb *FrameBuffer) Offset(x, y int) int {
	return (y*fb.Width + x) * 4
}

// SetRGBA writes one pixel
func (fb *FrameBuffer) SetRGBA(x, y int, c color.RGBA) {
	i := fb.Offset(x, y)
	fb.Pix[i+0] = c.R
	fb.Pix[i+1] = c.G
	fb.Pix[i+2] = c.B
	fb.Pix[i+3] = c.A
}

// RGBAAt reads one pixel
func (fb *FrameBuffer) RGBAAt(x, y int) color.RGBA {
	i := fb.Offset(x, y)
	return color.RGBA{R: fb.Pix[i+0], G: fb.Pix[i+1], B: fb.Pix[i+2], A: fb.Pix[i+3]}
}

// Bounds returns the frame rectangle
func (fb *FrameBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.Width, fb.Height)
}

// Image returns an *image.RGBA view that shares the frame's pixel bytes
func (fb *FrameBuffer) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    fb.Pix,
		Stride: fb.Width * 4,
		Rect:   fb.Bounds(),
	}
}
