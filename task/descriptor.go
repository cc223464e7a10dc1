// Package task loads JSON task descriptors (spec §6) and drives a
// render from them: building the scene, camera and estimator the
// descriptor names, dispatching to render.PT or render.PPM, and writing
// the resulting image through imageio.Image.Dump.
package task

// Descriptor is the top-level JSON task file shape.
type Descriptor struct {
	Scene      sceneDTO    `json:"scene"`
	Camera     cameraDTO   `json:"camera"`
	Renderer   rendererDTO `json:"renderer"`
	NumThreads int         `json:"num_threads"`
}

type sceneDTO struct {
	Objects []objectDTO `json:"objects"`
	Env     [3]float64  `json:"env"`
	N       float64     `json:"n"`
}

type objectDTO struct {
	Shape    shapeDTO   `json:"shape"`
	Material materialDTO `json:"material"`
	Flux     [3]float64 `json:"flux"`
}

type cameraDTO struct {
	Center    [3]float64 `json:"center"`
	Direction [3]float64 `json:"direction"`
	Up        [3]float64 `json:"up"`
	Dis       float64    `json:"dis"`
	W         int        `json:"w"`
	H         int        `json:"h"`
	AntiAlias int        `json:"anti_alias"`
	Focal     *float64   `json:"focal,omitempty"`
	R         float64    `json:"r"`
}

// rendererDTO is a tagged union: exactly one of PT/PPM must be non-nil.
type rendererDTO struct {
	PT  *ptDTO  `json:"PT,omitempty"`
	PPM *ppmDTO `json:"PPM,omitempty"`
}

type ptDTO struct {
	Samples  int `json:"samples"`
	MaxDepth int `json:"max_depth"`
}

type ppmDTO struct {
	Pa         float64 `json:"pa"`
	InitRadius float64 `json:"init_radius"`
	Alpha      float64 `json:"alpha"`
	PhotonNum  int     `json:"photon_num"`
}

// shapeDTO is a tagged union over the six shape kinds spec §6 names.
// Exactly one field should be non-nil; which one is the shape's tag.
type shapeDTO struct {
	Sphere    *sphereDTO    `json:"Sphere,omitempty"`
	Plane     *planeDTO     `json:"Plane,omitempty"`
	Rectangle *rectangleDTO `json:"Rectangle,omitempty"`
	Circle    *circleDTO    `json:"Circle,omitempty"`
	Mesh      *meshDTO      `json:"Mesh,omitempty"`
	Bezier    *bezierDTO    `json:"Bezier,omitempty"`
}

type sphereDTO struct {
	Center [3]float64 `json:"center"`
	Radius float64    `json:"radius"`
}

type planeDTO struct {
	Normal [3]float64 `json:"normal"`
	D      float64    `json:"d"`
}

type rectangleDTO struct {
	W      float64    `json:"w"`
	H      float64    `json:"h"`
	Origin [3]float64 `json:"origin"`
	Normal [3]float64 `json:"normal"`
	X      [3]float64 `json:"x"`
}

type circleDTO struct {
	Origin [3]float64 `json:"origin"`
	Normal [3]float64 `json:"normal"`
	Radius float64    `json:"radius"`
}

type rotateDTO struct {
	Dim    int     `json:"dim"`
	Degree float64 `json:"degree"`
}

type meshDTO struct {
	Path    string      `json:"path"`
	Shift   [3]float64  `json:"shift"`
	Scale   [3]float64  `json:"scale"`
	Rotates []rotateDTO `json:"rotates"`
}

type bezierDTO struct {
	Points [][2]float64 `json:"points"`
	Shift  [3]float64   `json:"shift"`
}

// materialDTO pairs a tagged texture with a tagged surface.
type materialDTO struct {
	Texture textureDTO `json:"texture"`
	Surface surfaceDTO `json:"surface"`
}

type textureDTO struct {
	Pure  *[3]float64  `json:"Pure,omitempty"`
	Image *imageTexDTO `json:"Image,omitempty"`
}

type imageTexDTO struct {
	Path string `json:"path"`
	LR   bool   `json:"lr"`
	UD   bool   `json:"ud"`
}

type surfaceDTO struct {
	Diffuse    bool     `json:"Diffuse,omitempty"`
	Specular   bool     `json:"Specular,omitempty"`
	Refractive *float64 `json:"Refractive,omitempty"`
}
