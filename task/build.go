package task

import (
	"fmt"
	"strings"

	"lumenray/camera"
	"lumenray/core"
	"lumenray/imageio"
	lmath "lumenray/math"
	"lumenray/meshio"
	"lumenray/scenepkg"
	"lumenray/shapes"
)

func vec(a [3]float64) lmath.Vector3 { return lmath.NewVector3(a[0], a[1], a[2]) }
func col(a [3]float64) core.Color    { return core.NewColor(a[0], a[1], a[2]) }

// buildScene converts a sceneDTO into a scenepkg.Scene, resolving every
// object's shape, texture and surface.
func buildScene(path string, dto sceneDTO) (*scenepkg.Scene, error) {
	scene := &scenepkg.Scene{
		Env:    col(dto.Env),
		EnvIOR: dto.N,
	}
	for i, obj := range dto.Objects {
		shape, err := buildShape(obj.Shape)
		if err != nil {
			return nil, &ConfigError{Path: path, Err: fmt.Errorf("object %d: %w", i, err)}
		}
		texture, err := buildTexture(obj.Material.Texture)
		if err != nil {
			return nil, &ConfigError{Path: path, Err: fmt.Errorf("object %d: %w", i, err)}
		}
		surface, err := buildSurface(obj.Material.Surface)
		if err != nil {
			return nil, &ConfigError{Path: path, Err: fmt.Errorf("object %d: %w", i, err)}
		}
		scene.Objects = append(scene.Objects, scenepkg.NewObject(
			shape,
			scenepkg.Material{Texture: texture, Surface: surface},
			col(obj.Flux),
		))
	}
	return scene, nil
}

func buildShape(dto shapeDTO) (shapes.Shape, error) {
	switch {
	case dto.Sphere != nil:
		return shapes.NewSphere(vec(dto.Sphere.Center), dto.Sphere.Radius), nil
	case dto.Plane != nil:
		return shapes.NewPlane(vec(dto.Plane.Normal), dto.Plane.D), nil
	case dto.Rectangle != nil:
		r := dto.Rectangle
		return shapes.NewRectangle(vec(r.Origin), vec(r.Normal), vec(r.X), r.W, r.H), nil
	case dto.Circle != nil:
		c := dto.Circle
		return shapes.NewCircle(vec(c.Origin), vec(c.Normal), c.Radius), nil
	case dto.Mesh != nil:
		return buildMesh(dto.Mesh)
	case dto.Bezier != nil:
		b := dto.Bezier
		return shapes.NewBezierRotate(b.Points, vec(b.Shift)), nil
	default:
		return nil, fmt.Errorf("shape descriptor names no known tag")
	}
}

func buildMesh(dto *meshDTO) (shapes.Mesh, error) {
	rotations := make([]meshio.Rotation, len(dto.Rotates))
	for i, r := range dto.Rotates {
		if r.Dim < 0 || r.Dim > 2 {
			return shapes.Mesh{}, fmt.Errorf("rotation %d: dim must be 0, 1 or 2, got %d", i, r.Dim)
		}
		rotations[i] = meshio.Rotation{Dim: r.Dim, Degree: r.Degree}
	}
	shift, scale := vec(dto.Shift), vec(dto.Scale)

	if strings.HasSuffix(strings.ToLower(dto.Path), ".gltf") || strings.HasSuffix(strings.ToLower(dto.Path), ".glb") {
		return meshio.LoadGLTFMesh(dto.Path, shift, scale, rotations)
	}
	return meshio.LoadOBJMesh(dto.Path, shift, scale, rotations)
}

func buildTexture(dto textureDTO) (scenepkg.Texture, error) {
	switch {
	case dto.Pure != nil:
		return scenepkg.NewPureTexture(col(*dto.Pure)), nil
	case dto.Image != nil:
		img, err := imageio.LoadTexture(dto.Image.Path, dto.Image.LR, dto.Image.UD)
		if err != nil {
			return scenepkg.Texture{}, err
		}
		return scenepkg.NewImageTexture(img), nil
	default:
		return scenepkg.Texture{}, fmt.Errorf("texture descriptor names no known tag")
	}
}

func buildSurface(dto surfaceDTO) (scenepkg.Surface, error) {
	switch {
	case dto.Refractive != nil:
		return scenepkg.NewRefractive(*dto.Refractive), nil
	case dto.Specular:
		return scenepkg.NewSpecular(), nil
	case dto.Diffuse:
		return scenepkg.NewDiffuse(), nil
	default:
		return scenepkg.Surface{}, fmt.Errorf("surface descriptor names no known tag")
	}
}

// buildCamera converts a cameraDTO into a camera.Camera, deriving the
// Right axis as Up x Direction so (Right, Up, Direction) is right-handed,
// and validating the orthonormality invariant the loader is responsible
// for enforcing (spec §7). Direction and up are normalized but not
// re-orthogonalized, so a non-orthogonal pair is a ConfigError.
func buildCamera(path string, dto cameraDTO) (camera.Camera, error) {
	dir := vec(dto.Direction).Normalize()
	up := vec(dto.Up).Normalize()
	right := up.Cross(dir).Normalize()

	cam := camera.Camera{
		Center:    vec(dto.Center),
		Right:     right,
		Up:        up,
		Direction: dir,
		Dis:       dto.Dis,
		W:         dto.W,
		H:         dto.H,
		AntiAlias: dto.AntiAlias,
	}
	if dto.Focal != nil {
		cam.Lens = &camera.Lens{Focal: *dto.Focal, Aperture: dto.R}
	}
	if err := cam.Validate(); err != nil {
		return camera.Camera{}, &ConfigError{Path: path, Err: err}
	}
	return cam, nil
}
