package integrator

import (
	"image/color"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// ShadingConfig contains shading options
type ShadingConfig struct {
	// ApplyLightIntensity scales diffuse and specular terms by each light's
	// intensity. Off by default: lights contribute at full strength.
	ApplyLightIntensity bool
}

// DefaultShadingConfig returns the shading configuration used by Render
func DefaultShadingConfig() ShadingConfig {
	return ShadingConfig{
		ApplyLightIntensity: false,
	}
}

var white = core.NewVec3(1, 1, 1)

// PhongIntegrator shades primary hits with ambient, diffuse and specular terms
// and a binary shadow test per light. It keeps no per-ray state.
type PhongIntegrator struct {
	config ShadingConfig
}

// NewPhongIntegrator creates a new Phong integrator
func NewPhongIntegrator(config ShadingConfig) *PhongIntegrator {
	return &PhongIntegrator{config: config}
}

// RayColor implements the Integrator interface
func (p *PhongIntegrator) RayColor(ray core.Ray, world World) (color.RGBA, bool) {
	hit, isHit := geometry.FindClosestIntersection(ray, world.Primitives)
	if !isHit {
		return color.RGBA{}, false
	}

	viewDirection := ray.Origin.Subtract(hit.Point).Normalize()
	return p.Shade(hit, viewDirection, world.Lights, world.Primitives), true
}

// Shade computes the Phong color of an intersection as opaque RGBA bytes
func (p *PhongIntegrator) Shade(hit *geometry.Intersection, viewDirection core.Vec3, lightList []lights.PointLight, primitives []geometry.Primitive) color.RGBA {
	c := p.radiance(hit, viewDirection, lightList, primitives)
	return color.RGBA{
		R: ChannelToByte(c.X),
		G: ChannelToByte(c.Y),
		B: ChannelToByte(c.Z),
		A: 255,
	}
}

// radiance returns the unclamped linear color of the intersection
func (p *PhongIntegrator) radiance(hit *geometry.Intersection, viewDirection core.Vec3, lightList []lights.PointLight, primitives []geometry.Primitive) core.Vec3 {
	surface := hit.Primitive.Surface()
	mat := surface.Material

	// Ambient is added once regardless of the number of lights
	result := surface.Color.Multiply(mat.Ambient)

	for _, light := range lightList {
		lightDir, _ := light.DirectionFrom(hit.Point)

		if lights.IsInShadow(hit.Point, light.Position, primitives, hit.Index) {
			continue
		}

		diffuseFactor := math.Max(0, hit.Normal.Dot(lightDir))
		diffuse := surface.Color.Multiply(diffuseFactor).Multiply(mat.Diffuse)

		// Highlights are always white
		reflectDir := lightDir.Reflect(hit.Normal).Normalize()
		specularFactor := math.Pow(math.Max(0, reflectDir.Dot(viewDirection)), mat.Shininess)
		specular := white.Multiply(specularFactor).Multiply(mat.Specular)

		if p.config.ApplyLightIntensity {
			diffuse = diffuse.Multiply(light.Intensity)
			specular = specular.Multiply(light.Intensity)
		}

		result = result.Add(diffuse).Add(specular)
	}

	return result
}

// CalculatePhongLighting shades an intersection with the default shading configuration
func CalculatePhongLighting(hit *geometry.Intersection, viewDirection core.Vec3, lightList []lights.PointLight, primitives []geometry.Primitive) color.RGBA {
	return NewPhongIntegrator(DefaultShadingConfig()).Shade(hit, viewDirection, lightList, primitives)
}

// ChannelToByte maps a linear channel value to a byte as clamp(floor(c*255), 0, 255).
// Clamping happens after scaling so values above 1 saturate at 255.
func ChannelToByte(c float64) uint8 {
	v := math.Floor(c * 255)
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
