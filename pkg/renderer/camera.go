package renderer

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	Center core.Vec3 // Camera position and ray origin
	LookAt core.Vec3 // Point the camera is looking at
	Up     core.Vec3 // Up direction

	// OrientToLookAt expresses rays in the basis built from LookAt and Up.
	// When false the camera always looks down +Z with +Y up.
	OrientToLookAt bool
}

// ndcTransform maps normalized pixel coordinates u=x/width, v=y/height in [0,1]
// to normalized device coordinates: ndcX = 2u - 1, ndcY = 1 - 2v.
var ndcTransform = matrix.Scale(2, -2).Translate(-1, 1)

// Camera generates primary ray directions for a fixed image plane at z=1
type Camera struct {
	center  core.Vec3
	right   core.Vec3
	up      core.Vec3
	forward core.Vec3
	orient  bool
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	camera := &Camera{
		center:  config.Center,
		right:   core.NewVec3(1, 0, 0),
		up:      core.NewVec3(0, 1, 0),
		forward: core.NewVec3(0, 0, 1),
		orient:  config.OrientToLookAt,
	}

	if config.OrientToLookAt {
		forward := config.LookAt.Subtract(config.Center).Normalize()
		right := config.Up.Cross(forward).Normalize()
		camera.forward = forward
		camera.right = right
		camera.up = forward.Cross(right)
	}

	return camera
}

// GetCenter returns the camera position
func (c *Camera) GetCenter() core.Vec3 {
	return c.center
}

// ToNDC maps a pixel coordinate to normalized device coordinates.
// Row 0 is the top of the image, so Y is flipped.
func ToNDC(pixelX, pixelY, width, height int) vec.Vec2 {
	var ndc vec.Vec2
	ndc.X, ndc.Y = ndcTransform.Apply(float64(pixelX)/float64(width), float64(pixelY)/float64(height))
	return ndc
}

// GetRayDirection returns the normalized direction of the primary ray through a pixel.
// The image plane spans [-1,1] in both axes regardless of aspect ratio.
func (c *Camera) GetRayDirection(pixelX, pixelY, width, height int) core.Vec3 {
	ndc := ToNDC(pixelX, pixelY, width, height)

	if !c.orient {
		return core.NewVec3(ndc.X, ndc.Y, 1).Normalize()
	}

	return c.right.Multiply(ndc.X).
		Add(c.up.Multiply(ndc.Y)).
		Add(c.forward).
		Normalize()
}

// GetRay returns the primary ray through a pixel
func (c *Camera) GetRay(pixelX, pixelY, width, height int) core.Ray {
	return core.NewRay(c.center, c.GetRayDirection(pixelX, pixelY, width, height))
}

// GetRayDirection maps a pixel to a ray direction for the fixed forward-Z camera
func GetRayDirection(pixelX, pixelY, width, height int) core.Vec3 {
	ndc := ToNDC(pixelX, pixelY, width, height)
	return core.NewVec3(ndc.X, ndc.Y, 1).Normalize()
}
