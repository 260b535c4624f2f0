package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/integrator"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for pixel inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	Index        int                    `json:"index"` // Primitive index in the scene
	GeometryType string                 `json:"geometryType"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Color        [4]uint8               `json:"color"` // Final pixel RGBA
	Lights       []LightVisibility      `json:"lights"`
	Properties   map[string]interface{} `json:"properties"`
}

// LightVisibility reports whether a light reaches the hit point
type LightVisibility struct {
	Index    int        `json:"index"`
	Position [3]float64 `json:"position"`
	Shadowed bool       `json:"shadowed"`
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// extractMaterialInfo describes the surface of a primitive
func extractMaterialInfo(surface geometry.Surface) map[string]interface{} {
	c := surface.Color
	return map[string]interface{}{
		"albedo": vecArray(c),
		"color": fmt.Sprintf("#%02x%02x%02x",
			integrator.ChannelToByte(c.X), integrator.ChannelToByte(c.Y), integrator.ChannelToByte(c.Z)),
		"ambient":   surface.Material.Ambient,
		"diffuse":   surface.Material.Diffuse,
		"specular":  surface.Material.Specular,
		"shininess": surface.Material.Shininess,
	}
}

// extractGeometryInfo describes the shape of a primitive
func extractGeometryInfo(p geometry.Primitive) map[string]interface{} {
	properties := make(map[string]interface{})

	switch geom := p.(type) {
	case geometry.Sphere:
		properties["center"] = vecArray(geom.Center)
		properties["radius"] = geom.Radius
	case geometry.Plane:
		properties["point"] = vecArray(geom.Point)
		properties["normal"] = vecArray(geom.Normal)
	}

	return properties
}

// inspectPixel casts the primary ray through a pixel and reports what it hits
func inspectPixel(sceneObj *scene.Scene, config integrator.ShadingConfig, width, height, pixelX, pixelY int) InspectResponse {
	camera := renderer.NewCamera(sceneObj.Camera)
	ray := camera.GetRay(pixelX, pixelY, width, height)

	hit, isHit := geometry.FindClosestIntersection(ray, sceneObj.Primitives)
	if !isHit {
		bg := sceneObj.Background
		return InspectResponse{Hit: false, Index: -1, Color: [4]uint8{bg.R, bg.G, bg.B, bg.A}}
	}

	visibility := make([]LightVisibility, len(sceneObj.Lights))
	for i, light := range sceneObj.Lights {
		visibility[i] = LightVisibility{
			Index:    i,
			Position: vecArray(light.Position),
			Shadowed: lights.IsInShadow(hit.Point, light.Position, sceneObj.Primitives, hit.Index),
		}
	}

	viewDirection := camera.GetCenter().Subtract(hit.Point).Normalize()
	shaded := integrator.NewPhongIntegrator(config).Shade(hit, viewDirection, sceneObj.Lights, sceneObj.Primitives)

	return InspectResponse{
		Hit:          true,
		Index:        hit.Index,
		GeometryType: hit.Primitive.Kind().String(),
		Point:        vecArray(hit.Point),
		Normal:       vecArray(hit.Normal),
		Distance:     hit.T,
		Color:        [4]uint8{shaded.R, shaded.G, shaded.B, shaded.A},
		Lights:       visibility,
		Properties: map[string]interface{}{
			"material": extractMaterialInfo(hit.Primitive.Surface()),
			"geometry": extractGeometryInfo(hit.Primitive),
		},
	}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	inspectReq, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	sceneObj, err := s.createScene(inspectReq)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	if pixelX < 0 || pixelX >= inspectReq.Width || pixelY < 0 || pixelY >= inspectReq.Height {
		writeJSONError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	config := integrator.ShadingConfig{ApplyLightIntensity: inspectReq.Intensity}
	writeJSON(w, http.StatusOK, inspectPixel(sceneObj, config, inspectReq.Width, inspectReq.Height, pixelX, pixelY))
}
