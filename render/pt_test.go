package render

import (
	stdmath "math"
	"math/rand"
	"testing"

	"lumenray/core"
	lmath "lumenray/math"
	"lumenray/scenepkg"
	"lumenray/shapes"
)

func diffuseWhiteMaterial() scenepkg.Material {
	return scenepkg.Material{Texture: scenepkg.NewPureTexture(core.ColorWhite), Surface: scenepkg.NewDiffuse()}
}

// TestPTTraceMiss checks a ray hitting nothing returns the scene's
// environment radiance unchanged.
func TestPTTraceMiss(t *testing.T) {
	scene := &scenepkg.Scene{Env: core.NewColor(0.1, 0.2, 0.3), EnvIOR: 1.0}
	pt := PT{Samples: 1, MaxDepth: 3}
	rng := rand.New(rand.NewSource(1))
	ray := lmath.NewRay(lmath.NewVector3(0, 0, -5), lmath.NewVector3(0, 1, 0))
	got := pt.trace(scene, ray, newIORStack(scene.EnvIOR), 0, rng)
	if got != scene.Env {
		t.Errorf("got %v, want env %v", got, scene.Env)
	}
}

// TestPTTraceDiffuseAtMaxDepth checks a diffuse hit one bounce before
// MaxDepth returns exactly its own flux, since the recursive bounce is
// cut off at the environment before any further intersection — true
// regardless of the randomly sampled hemisphere direction.
func TestPTTraceDiffuseAtMaxDepth(t *testing.T) {
	scene := &scenepkg.Scene{Env: core.ColorBlack, EnvIOR: 1.0}
	scene.Objects = []scenepkg.Object{
		scenepkg.NewObject(shapes.NewSphere(lmath.Vector3{}, 1), diffuseWhiteMaterial(), core.ColorWhite),
	}
	pt := PT{Samples: 1, MaxDepth: 1}
	rng := rand.New(rand.NewSource(42))
	ray := lmath.NewRay(lmath.NewVector3(0, 0, -5), lmath.NewVector3(0, 0, 1))
	got := pt.trace(scene, ray, newIORStack(scene.EnvIOR), 0, rng)
	if got != core.ColorWhite {
		t.Errorf("got %v, want white", got)
	}
}

// TestPTTraceSpecularReflection fires a ray at a mirror sphere off its
// center so the reflection is deterministic (not a normal-incidence
// bounce straight back at the camera), and checks it lands exactly on a
// red diffuse plane placed to catch it.
func TestPTTraceSpecularReflection(t *testing.T) {
	scene := &scenepkg.Scene{Env: core.ColorBlack, EnvIOR: 1.0}
	mirror := scenepkg.Material{Texture: scenepkg.NewPureTexture(core.ColorWhite), Surface: scenepkg.NewSpecular()}
	redPlane := scenepkg.Material{Texture: scenepkg.NewPureTexture(core.ColorWhite), Surface: scenepkg.NewDiffuse()}
	scene.Objects = []scenepkg.Object{
		scenepkg.NewObject(shapes.NewSphere(lmath.Vector3{}, 1), mirror, core.ColorBlack),
		scenepkg.NewObject(shapes.NewPlane(lmath.NewVector3(1, 0, 0), 5), redPlane, core.NewColor(1, 0, 0)),
	}
	pt := PT{Samples: 1, MaxDepth: 2}
	rng := rand.New(rand.NewSource(7))

	s2 := 1 / stdmath.Sqrt2
	ray := lmath.NewRay(lmath.NewVector3(s2, 0, -5), lmath.NewVector3(0, 0, 1))
	got := pt.trace(scene, ray, newIORStack(scene.EnvIOR), 0, rng)
	want := core.NewColor(1, 0, 0)
	if got.Sub(want).Length() > 1e-9 {
		t.Errorf("got %v, want %v", got, want)
	}
}

// TestPTTraceRefractiveGlass fires a ray straight through a glass
// sphere (normal incidence throughout, so every refraction event is
// undeviated) onto a blue plane behind it. At MaxDepth=3 the ray has
// exactly enough bounces to cross the sphere's two surfaces (entry and
// exit) and reach the plane on the far side; the internal-reflection
// branches at each surface never escape within that budget and so
// contribute exactly zero, leaving transmittance^2 of the plane's flux
// as the exact expected result — both Fresnel events share the same R0
// since normal incidence makes Schlick's (1-cos)^5 term vanish.
func TestPTTraceRefractiveGlass(t *testing.T) {
	scene := &scenepkg.Scene{Env: core.ColorBlack, EnvIOR: 1.0}
	glass := scenepkg.Material{Texture: scenepkg.NewPureTexture(core.ColorWhite), Surface: scenepkg.NewRefractive(1.5)}
	bluePlane := scenepkg.Material{Texture: scenepkg.NewPureTexture(core.ColorWhite), Surface: scenepkg.NewDiffuse()}
	scene.Objects = []scenepkg.Object{
		scenepkg.NewObject(shapes.NewSphere(lmath.Vector3{}, 1), glass, core.ColorBlack),
		scenepkg.NewObject(shapes.NewPlane(lmath.NewVector3(0, 0, 1), 5), bluePlane, core.NewColor(0, 0, 1)),
	}
	pt := PT{Samples: 1, MaxDepth: 3}
	rng := rand.New(rand.NewSource(3))
	ray := lmath.NewRay(lmath.NewVector3(0, 0, -5), lmath.NewVector3(0, 0, 1))
	got := pt.trace(scene, ray, newIORStack(scene.EnvIOR), 0, rng)

	r0 := (1.5 - 1.0) / (1.5 + 1.0)
	r0 *= r0
	transmit := 1 - r0
	want := core.NewColor(0, 0, transmit*transmit)
	if got.Sub(want).Length() > 1e-9 {
		t.Errorf("got %v, want %v", got, want)
	}
	if got.Z <= got.X {
		t.Errorf("expected blue channel to exceed red: %v", got)
	}
}

func BenchmarkPTTrace(b *testing.B) {
	scene := &scenepkg.Scene{Env: core.NewColor(0.1, 0.1, 0.1), EnvIOR: 1.0}
	scene.Objects = []scenepkg.Object{
		scenepkg.NewObject(shapes.NewSphere(lmath.Vector3{}, 1), diffuseWhiteMaterial(), core.ColorBlack),
	}
	pt := PT{Samples: 1, MaxDepth: 3}
	rng := rand.New(rand.NewSource(1))
	ray := lmath.NewRay(lmath.NewVector3(0, 0, -5), lmath.NewVector3(0, 0, 1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pt.trace(scene, ray, newIORStack(scene.EnvIOR), 0, rng)
	}
}
