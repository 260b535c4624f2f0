package material

// Material holds the Phong reflection coefficients of a surface.
// Coefficients are nominally in [0, 1]; this is not enforced.
type Material struct {
	Ambient   float64 // Fraction of the surface color always visible
	Diffuse   float64 // Lambertian response per unshadowed light
	Specular  float64 // Strength of the white highlight
	Shininess float64 // Specular exponent, must be positive
}

// NewMaterial creates a new Phong material
func NewMaterial(ambient, diffuse, specular, shininess float64) Material {
	return Material{
		Ambient:   ambient,
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
	}
}

var defaultMaterial = Material{
	Ambient:   0.1,
	Diffuse:   0.7,
	Specular:  0.5,
	Shininess: 32,
}

// Default returns the material shared by primitives that don't override it.
// Material is a value type, so callers always receive a copy.
func Default() Material {
	return defaultMaterial
}

// WithAmbient returns a copy of m with the ambient coefficient replaced
func (m Material) WithAmbient(ambient float64) Material {
	m.Ambient = ambient
	return m
}

// WithDiffuse returns a copy of m with the diffuse coefficient replaced
func (m Material) WithDiffuse(diffuse float64) Material {
	m.Diffuse = diffuse
	return m
}

// WithSpecular returns a copy of m with the specular coefficient replaced
func (m Material) WithSpecular(specular float64) Material {
	m.Specular = specular
	return m
}

// WithShininess returns a copy of m with the specular exponent replaced
func (m Material) WithShininess(shininess float64) Material {
	m.Shininess = shininess
	return m
}
