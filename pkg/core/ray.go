package core

// Ray is a half-line from Origin along Direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns Origin + Direction*t
func (r Ray) At(t float64) Vec3 {
	return r.Origin.AddScaled(r.Direction, t)
}
