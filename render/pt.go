package render

import (
	"math/rand"

	"lumenray/camera"
	"lumenray/core"
	"lumenray/imageio"
	lmath "lumenray/math"
	"lumenray/scenepkg"
)

// PT is the unbiased path-tracing estimator (spec §4.8): Samples
// recursions are averaged per primary ray, MaxDepth bounces before a
// path is forced to terminate at the environment radiance.
type PT struct {
	Samples  int
	MaxDepth int
}

// trace recurses one bounce at a time, carrying the refraction nesting
// stack down each branch. It returns the radiance arriving at the ray's
// origin along -ray.Direction.
func (pt PT) trace(scene *scenepkg.Scene, ray lmath.Ray, stack iorStack, depth int, rng *rand.Rand) core.Color {
	if depth == pt.MaxDepth {
		return scene.Env
	}
	hit, ok := scene.Intersect(ray, EPS)
	if !ok {
		return scene.Env
	}
	k := hit.Object.ColorAt(hit.Pos, hit.UV)
	incoming := pt.illuminate(scene, ray, hit, stack, depth, rng)
	return hit.Object.Flux.Add(k.MulElem(incoming))
}

func (pt PT) illuminate(scene *scenepkg.Scene, ray lmath.Ray, hit scenepkg.Hit, stack iorStack, depth int, rng *rand.Rand) core.Color {
	normal := hit.Normal
	switch hit.Object.Material.Surface.Kind {
	case scenepkg.Diffuse:
		if normal.Dot(ray.Direction) > 0 {
			normal = normal.Negate()
		}
		dir := lmath.UniformHemisphere(normal, rng)
		return pt.trace(scene, lmath.NewRay(hit.Pos, dir), stack, depth+1, rng)

	case scenepkg.Specular:
		reflectDir := ray.Direction.Reflect(normal)
		return pt.trace(scene, lmath.NewRay(hit.Pos, reflectDir), stack, depth+1, rng)

	default: // Refractive
		inside := normal.Dot(ray.Direction) > 0
		if inside {
			normal = normal.Negate()
		}
		n1, n2, nextStack := stack.resolve(inside, hit.Object.Material.Surface.IOR)
		refractDir, R, refracts := fresnel(ray.Direction, normal, n1, n2)
		reflectDir := ray.Direction.Reflect(normal)
		reflected := pt.trace(scene, lmath.NewRay(hit.Pos, reflectDir), stack, depth+1, rng)
		if !refracts {
			return reflected
		}
		refracted := pt.trace(scene, lmath.NewRay(hit.Pos, refractDir), nextStack, depth+1, rng)
		return reflected.Scale(R).Add(refracted.Scale(1 - R))
	}
}

// Render traces Samples*AntiAlias paths per pixel, averages and clamps
// each channel to [0,1], and writes the result once per pixel (spec
// §4.8, §5: the image mutex is "acquired once per pixel after all
// samples complete" — here that's simply a disjoint-index write, since
// no two workers ever touch the same pixel).
func (pt PT) Render(scene *scenepkg.Scene, cam camera.Camera, numThreads int, seed int64) *imageio.Image {
	img := imageio.NewImage(cam.W, cam.H)
	forEachPixel(cam.W, cam.H, numThreads, seed, func(x, y int, rng *rand.Rand) {
		var pixel core.Color
		for a := 0; a < cam.AntiAlias; a++ {
			ray := cam.GenRay(x, y, rng)
			var sum core.Color
			for s := 0; s < pt.Samples; s++ {
				sum = sum.Add(pt.trace(scene, ray, newIORStack(scene.EnvIOR), 0, rng))
			}
			pixel = pixel.Add(sum.Scale(1 / float64(pt.Samples)).Clamp01())
		}
		img.Set(x, y, pixel.Scale(1/float64(cam.AntiAlias)))
	})
	return img
}
