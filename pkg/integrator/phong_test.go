package integrator

import (
	"image/color"
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

var groundMaterial = material.NewMaterial(0.2, 0.8, 0.3, 16)

// planeWorld is the single plane under an overhead light
func planeWorld(planeColor core.Vec3) World {
	plane := geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), planeColor, groundMaterial)
	return World{
		Primitives: []geometry.Primitive{plane},
		Lights:     []lights.PointLight{lights.NewPointLight(core.NewVec3(0, 5, 0), 1.0)},
	}
}

// expectedChannel evaluates ambient + diffuse + specular in the same order as the shader
func expectedChannel(c, diffuseFactor, specularFactor float64, m material.Material) uint8 {
	return ChannelToByte(c*m.Ambient + c*diffuseFactor*m.Diffuse + 1*specularFactor*m.Specular)
}

func closeTo(got uint8, approx float64) bool {
	return math.Abs(float64(got)-approx) <= 1
}

func TestPhong_PlaneStraightDown(t *testing.T) {
	planeColor := core.NewVec3(0.5, 0.25, 1.0)
	world := planeWorld(planeColor)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	hit, ok := geometry.FindClosestIntersection(ray, world.Primitives)
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}
	if hit.T != 1 || hit.Point != core.NewVec3(0, 0, 0) || hit.Normal != core.NewVec3(0, 1, 0) {
		t.Fatalf("Unexpected intersection: t=%f point=%v normal=%v", hit.T, hit.Point, hit.Normal)
	}
	if lights.IsInShadow(hit.Point, world.Lights[0].Position, world.Primitives, hit.Index) {
		t.Fatal("Expected plane point to be lit")
	}

	phong := NewPhongIntegrator(DefaultShadingConfig())

	t.Run("view along the normal", func(t *testing.T) {
		// Camera sits on the mirror direction of the light, so the highlight is at full strength
		got, ok := phong.RayColor(ray, world)
		if !ok {
			t.Fatal("Expected RayColor to report a hit")
		}
		expected := color.RGBA{
			R: expectedChannel(planeColor.X, 1, 1, groundMaterial),
			G: expectedChannel(planeColor.Y, 1, 1, groundMaterial),
			B: expectedChannel(planeColor.Z, 1, 1, groundMaterial),
			A: 255,
		}
		if got != expected {
			t.Errorf("Expected %v, got %v", expected, got)
		}
		// 0.1+0.4+0.3, 0.05+0.2+0.3, and 1.3 clamped
		if !closeTo(got.R, 204) || !closeTo(got.G, 140) || got.B != 255 {
			t.Errorf("Channel values out of expected range: %v", got)
		}
	})

	t.Run("view perpendicular to reflection", func(t *testing.T) {
		got := phong.Shade(hit, core.NewVec3(1, 0, 0), world.Lights, world.Primitives)
		expected := color.RGBA{
			R: expectedChannel(planeColor.X, 1, 0, groundMaterial),
			G: expectedChannel(planeColor.Y, 1, 0, groundMaterial),
			B: expectedChannel(planeColor.Z, 1, 0, groundMaterial),
			A: 255,
		}
		if got != expected {
			t.Errorf("Expected %v, got %v", expected, got)
		}
		if !closeTo(got.R, 127) || !closeTo(got.G, 63) || !closeTo(got.B, 255) {
			t.Errorf("Channel values out of expected range: %v", got)
		}
	})
}

func TestPhong_ShadowedPointGetsAmbientOnly(t *testing.T) {
	planeColor := core.NewVec3(0.5, 0.25, 1.0)
	world := planeWorld(planeColor)
	world.Primitives = append(world.Primitives,
		geometry.NewSphere(core.NewVec3(0, 2.5, 0), 1, core.NewVec3(1, 1, 1), material.Default()))

	ray := core.NewRay(core.NewVec3(0.01, 0.5, 0), core.NewVec3(0, -1, 0))
	got, ok := NewPhongIntegrator(DefaultShadingConfig()).RayColor(ray, world)
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}

	expected := color.RGBA{
		R: ChannelToByte(planeColor.X * groundMaterial.Ambient),
		G: ChannelToByte(planeColor.Y * groundMaterial.Ambient),
		B: ChannelToByte(planeColor.Z * groundMaterial.Ambient),
		A: 255,
	}
	if got != expected {
		t.Errorf("Expected ambient-only %v, got %v", expected, got)
	}
}

func TestPhong_LightBehindSurface(t *testing.T) {
	planeColor := core.NewVec3(0.5, 0.5, 0.5)
	world := planeWorld(planeColor)
	world.Lights = []lights.PointLight{lights.NewPointLight(core.NewVec3(0, -5, 0), 1.0)}

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	got, _ := NewPhongIntegrator(DefaultShadingConfig()).RayColor(ray, world)

	ambientOnly := ChannelToByte(0.5 * groundMaterial.Ambient)
	if got.R != ambientOnly || got.G != ambientOnly || got.B != ambientOnly {
		t.Errorf("Expected ambient-only %d, got %v", ambientOnly, got)
	}
}

func TestPhong_LightsAccumulate(t *testing.T) {
	planeColor := core.NewVec3(0.2, 0.2, 0.2)
	world := planeWorld(planeColor)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	hit, _ := geometry.FindClosestIntersection(ray, world.Primitives)
	view := core.NewVec3(1, 0, 0)

	phong := NewPhongIntegrator(DefaultShadingConfig())
	one := phong.radiance(hit, view, world.Lights, world.Primitives)

	twoLights := append([]lights.PointLight{}, world.Lights[0], world.Lights[0])
	two := phong.radiance(hit, view, twoLights, world.Primitives)

	ambient := planeColor.Multiply(groundMaterial.Ambient)
	perLight := one.Subtract(ambient)
	expected := ambient.Add(perLight.Multiply(2))
	if two.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected ambient once plus two light contributions %v, got %v", expected, two)
	}
}

func TestPhong_LightIntensity(t *testing.T) {
	planeColor := core.NewVec3(0.5, 0.5, 0.5)
	full := planeWorld(planeColor)
	dim := planeWorld(planeColor)
	dim.Lights[0].Intensity = 0.25

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	ignoring := NewPhongIntegrator(DefaultShadingConfig())
	fullColor, _ := ignoring.RayColor(ray, full)
	dimColor, _ := ignoring.RayColor(ray, dim)
	if fullColor != dimColor {
		t.Errorf("Expected intensity to be ignored by default: %v vs %v", fullColor, dimColor)
	}

	applying := NewPhongIntegrator(ShadingConfig{ApplyLightIntensity: true})
	scaled, _ := applying.RayColor(ray, dim)
	// 0.5*0.2 + 0.25*(0.5*0.8 + 0.3) = 0.275
	if !closeTo(scaled.R, 0.275*255) {
		t.Errorf("Expected red near %f, got %d", 0.275*255, scaled.R)
	}
	if scaled.R >= dimColor.R {
		t.Errorf("Expected scaled color %v to be darker than %v", scaled, dimColor)
	}
}

func TestPhong_IsPure(t *testing.T) {
	world := planeWorld(core.NewVec3(0.3, 0.6, 0.9))
	world.Primitives = append(world.Primitives,
		geometry.NewSphere(core.NewVec3(1, 1, 3), 1, core.NewVec3(0.9, 0.1, 0.1), material.Default()))
	world.Lights = append(world.Lights, lights.NewPointLight(core.NewVec3(-4, 6, -2), 0.7))

	ray := core.NewRay(core.NewVec3(0, 1, -3), core.NewVec3(0.2, -0.1, 1).Normalize())
	hit, ok := geometry.FindClosestIntersection(ray, world.Primitives)
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}
	view := ray.Origin.Subtract(hit.Point).Normalize()

	first := CalculatePhongLighting(hit, view, world.Lights, world.Primitives)
	second := CalculatePhongLighting(hit, view, world.Lights, world.Primitives)
	if first != second {
		t.Errorf("Expected identical output for identical input, got %v and %v", first, second)
	}
}

func TestChannelToByte(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected uint8
	}{
		{"negative", -0.5, 0},
		{"zero", 0, 0},
		{"half", 0.5, 127},
		{"one", 1.0, 255},
		{"just above one", 1.0001, 255},
		{"far above one", 1e9, 255},
		{"NaN", math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChannelToByte(tt.input); got != tt.expected {
				t.Errorf("ChannelToByte(%f) = %d, expected %d", tt.input, got, tt.expected)
			}
		})
	}
}
