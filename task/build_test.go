package task

import (
	"testing"

	lmath "lumenray/math"
	"lumenray/scenepkg"
)

func TestBuildSceneSphereObject(t *testing.T) {
	dto := sceneDTO{
		Objects: []objectDTO{
			{
				Shape:    shapeDTO{Sphere: &sphereDTO{Center: [3]float64{0, 0, 0}, Radius: 1}},
				Material: materialDTO{Texture: textureDTO{Pure: &[3]float64{1, 1, 1}}, Surface: surfaceDTO{Diffuse: true}},
				Flux:     [3]float64{0, 0, 0},
			},
		},
		Env: [3]float64{0.1, 0.1, 0.1},
		N:   1.0,
	}
	scene, err := buildScene("test.json", dto)
	if err != nil {
		t.Fatalf("buildScene: %v", err)
	}
	if len(scene.Objects) != 1 {
		t.Fatalf("got %d objects, want 1", len(scene.Objects))
	}
	if scene.Objects[0].Material.Surface.Kind != scenepkg.Diffuse {
		t.Errorf("expected a diffuse surface")
	}
	if scene.EnvIOR != 1.0 {
		t.Errorf("envIOR = %v, want 1.0", scene.EnvIOR)
	}
}

func TestBuildSceneUnknownShapeTag(t *testing.T) {
	dto := sceneDTO{
		Objects: []objectDTO{
			{Shape: shapeDTO{}, Material: materialDTO{Texture: textureDTO{Pure: &[3]float64{}}, Surface: surfaceDTO{Diffuse: true}}},
		},
	}
	if _, err := buildScene("test.json", dto); err == nil {
		t.Fatal("expected an error for a shape descriptor with no tag")
	} else if _, ok := err.(*ConfigError); !ok {
		t.Errorf("expected a *ConfigError, got %T", err)
	}
}

func TestBuildSurfaceRefractive(t *testing.T) {
	ior := 1.5
	surf, err := buildSurface(surfaceDTO{Refractive: &ior})
	if err != nil {
		t.Fatalf("buildSurface: %v", err)
	}
	if surf.Kind != scenepkg.Refractive || surf.IOR != 1.5 {
		t.Errorf("got %+v, want Refractive IOR=1.5", surf)
	}
}

func TestBuildCameraOrthonormalFrame(t *testing.T) {
	dto := cameraDTO{
		Center:    [3]float64{0, 0, -5},
		Direction: [3]float64{0, 0, 1},
		Up:        [3]float64{0, 1, 0},
		Dis:       10,
		W:         64,
		H:         64,
		AntiAlias: 1,
	}
	cam, err := buildCamera("test.json", dto)
	if err != nil {
		t.Fatalf("buildCamera: %v", err)
	}
	if err := cam.Validate(); err != nil {
		t.Errorf("built camera failed its own invariant: %v", err)
	}
	if cam.Lens != nil {
		t.Error("expected a pinhole camera (no focal given)")
	}
}

func TestBuildCameraWithLens(t *testing.T) {
	focal := 5.0
	dto := cameraDTO{
		Direction: [3]float64{0, 0, 1},
		Up:        [3]float64{0, 1, 0},
		Dis:       10, W: 32, H: 32, AntiAlias: 1,
		Focal: &focal,
		R:     0,
	}
	cam, err := buildCamera("test.json", dto)
	if err != nil {
		t.Fatalf("buildCamera: %v", err)
	}
	if cam.Lens == nil || cam.Lens.Focal != 5 || cam.Lens.Aperture != 0 {
		t.Errorf("got lens %+v, want focal=5 aperture=0", cam.Lens)
	}
}

func TestBuildMeshRejectsInvalidDim(t *testing.T) {
	dto := &meshDTO{Path: "x.obj", Rotates: []rotateDTO{{Dim: 5, Degree: 90}}}
	if _, err := buildMesh(dto); err == nil {
		t.Fatal("expected an error for an out-of-range rotation dim")
	}
}

func TestVecHelper(t *testing.T) {
	v := vec([3]float64{1, 2, 3})
	want := lmath.NewVector3(1, 2, 3)
	if v != want {
		t.Errorf("vec() = %v, want %v", v, want)
	}
}
