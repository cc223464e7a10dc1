package scenepkg

// SurfaceKind is the BRDF family a material implements.
type SurfaceKind int

const (
	Diffuse SurfaceKind = iota
	Specular
	Refractive
)

// Surface carries the BRDF kind plus the one parameter Refractive needs:
// the medium's index of refraction. It is ignored for Diffuse/Specular.
type Surface struct {
	Kind SurfaceKind
	IOR  float64
}

func NewDiffuse() Surface           { return Surface{Kind: Diffuse} }
func NewSpecular() Surface          { return Surface{Kind: Specular} }
func NewRefractive(ior float64) Surface { return Surface{Kind: Refractive, IOR: ior} }

// Material is a texture paired with a surface model.
type Material struct {
	Texture Texture
	Surface Surface
}
