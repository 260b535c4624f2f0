package renderer

import (
	"image"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// RenderStats contains statistics about a render pass
type RenderStats struct {
	TotalPixels      int           // Total number of pixels written
	HitPixels        int           // Pixels whose primary ray hit a primitive
	BackgroundPixels int           // Pixels filled with the background color
	Duration         time.Duration // Wall time of the pass
}

// HitRatio returns the fraction of pixels that hit geometry
func (s RenderStats) HitRatio() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.HitPixels) / float64(s.TotalPixels)
}

// merge adds the counters of another stats value
func (s *RenderStats) merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.HitPixels += other.HitPixels
	s.BackgroundPixels += other.BackgroundPixels
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of an image in [0,1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	pixelCount := bounds.Dx() * bounds.Dy()
	if pixelCount == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			total += core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			).Luminance()
		}
	}

	return total / float64(pixelCount)
}
