package lights

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
)

// ShadowEpsilon offsets shadow ray origins toward the light to avoid shadow acne
const ShadowEpsilon = 1e-3

// IsInShadow reports whether any primitive other than the one at index self
// lies between point and the light. The first blocker found ends the search.
func IsInShadow(point, lightPosition core.Vec3, primitives []geometry.Primitive, self int) bool {
	toLight := lightPosition.Subtract(point)
	lightDistance := toLight.Length()
	lightDir := toLight.Normalize()

	shadowRay := core.NewRay(point.AddScaled(lightDir, ShadowEpsilon), lightDir)

	for i, p := range primitives {
		if i == self {
			continue
		}
		if t, ok := p.Intersect(shadowRay); ok && t > 0 && t < lightDistance {
			return true
		}
	}
	return false
}
