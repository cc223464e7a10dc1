package render

import (
	"fmt"
	stdmath "math"
	"math/rand"
	"sync"

	"lumenray/camera"
	"lumenray/core"
	"lumenray/imageio"
	"lumenray/kdtree"
	lmath "lumenray/math"
	"lumenray/scenepkg"
	"lumenray/shapes"
)

// ViewPoint is a diffuse hit along an eye path at which photons are
// later gathered (spec §3). Pos satisfies kdtree.Positionable is not
// needed here — only Photon is stored in the photon map — but ViewPoint
// carries its own Radius that the update pass shrinks every iteration.
type ViewPoint struct {
	Pos          lmath.Vector3
	IncomingDir  lmath.Vector3
	Pixel        [2]int
	Throughput   core.Color
	AccumPhotons int
	Radius       float64
	AccumFlux    core.Color
}

// update applies the progressive radiance-estimate rule from spec §4.9
// to the photons gathered within the view point's current radius.
func (vp *ViewPoint) update(photons []Photon, alpha float64) {
	m := len(photons)
	if m == 0 {
		return
	}
	gain := stdmath.Floor(alpha * float64(m))
	ratio := (float64(vp.AccumPhotons) + gain) / (float64(vp.AccumPhotons) + float64(m))
	vp.AccumPhotons += int(gain)
	vp.Radius *= stdmath.Sqrt(ratio)

	var sum core.Color
	for _, p := range photons {
		sum = sum.Add(vp.Throughput.MulElem(p.Flux))
	}
	vp.AccumFlux = vp.AccumFlux.Add(sum).Scale(ratio)
}

// Photon is a deposited unit of flux arriving at pos from dir. P (rather
// than Pos) is the field name so the type can also implement
// kdtree.Positionable's Pos() method without a name collision.
type Photon struct {
	P    lmath.Vector3
	Dir  lmath.Vector3
	Flux core.Color
}

func (p Photon) Pos() lmath.Vector3 { return p.P }

var _ kdtree.Positionable = Photon{}

// PPM is the stochastic progressive photon mapping estimator (spec
// §4.9): Pa is the Russian-roulette absorption probability, InitRadius
// seeds every view point's initial gather radius, Alpha is the
// progressive radius-reduction factor, PhotonNum is the photon budget
// per iteration.
type PPM struct {
	Pa         float64
	InitRadius float64
	Alpha      float64
	PhotonNum  int
}

// eyeTrace walks one eye subpath, depositing a ViewPoint the first time
// it reaches a diffuse surface and otherwise continuing through
// specular/refractive bounces. Its return value is the direct radiance
// (self-emission composited along the way) destined for the fixed
// "direct image" that every iteration's gathered output is added to.
func (ppm PPM) eyeTrace(scene *scenepkg.Scene, ray lmath.Ray, stack iorStack, pixel [2]int, depth int, weight core.Color, viewPoints *[]ViewPoint, rng *rand.Rand) core.Color {
	if depth > 4 && rng.Float64() < ppm.Pa {
		return scene.Env
	}
	hit, ok := scene.Intersect(ray, EPS)
	if !ok {
		return scene.Env
	}
	color := hit.Object.ColorAt(hit.Pos, hit.UV)
	weight = weight.MulElem(color)
	normal := hit.Normal

	var illum core.Color
	switch hit.Object.Material.Surface.Kind {
	case scenepkg.Diffuse:
		if normal.Dot(ray.Direction) > 0 {
			normal = normal.Negate()
		}
		*viewPoints = append(*viewPoints, ViewPoint{
			Pos:         hit.Pos,
			IncomingDir: ray.Direction.Negate(),
			Pixel:       pixel,
			Throughput:  weight,
			Radius:      ppm.InitRadius,
		})
		illum = core.ColorBlack

	case scenepkg.Specular:
		reflectDir := ray.Direction.Reflect(normal)
		illum = ppm.eyeTrace(scene, lmath.NewRay(hit.Pos, reflectDir), stack, pixel, depth+1, weight, viewPoints, rng)

	default: // Refractive
		inside := normal.Dot(ray.Direction) > 0
		if inside {
			normal = normal.Negate()
		}
		n1, n2, nextStack := stack.resolve(inside, hit.Object.Material.Surface.IOR)
		refractDir, R, refracts := fresnel(ray.Direction, normal, n1, n2)
		reflectDir := ray.Direction.Reflect(normal)
		reflected := ppm.eyeTrace(scene, lmath.NewRay(hit.Pos, reflectDir), stack, pixel, depth+1, weight.Scale(R), viewPoints, rng)
		illum = reflected.Scale(R)
		if refracts {
			refracted := ppm.eyeTrace(scene, lmath.NewRay(hit.Pos, refractDir), nextStack, pixel, depth+1, weight.Scale(1-R), viewPoints, rng)
			illum = illum.Add(refracted.Scale(1 - R))
		}
	}
	return hit.Object.Flux.Add(color.MulElem(illum))
}

// photonTrace propagates a photon's flux through the scene, depositing
// one Photon per diffuse bounce. Per spec §4.9/§9 (Open Question 2), a
// refractive bounce takes BOTH the reflect and refract branches each
// weighted by R and T respectively, matching the documented source
// behavior rather than stochastic branch selection.
func (ppm PPM) photonTrace(scene *scenepkg.Scene, ray lmath.Ray, stack iorStack, flux core.Color, depth int, photons *[]Photon, rng *rand.Rand) {
	if depth > 2 && rng.Float64() < ppm.Pa {
		return
	}
	hit, ok := scene.Intersect(ray, EPS)
	if !ok {
		return
	}
	color := hit.Object.ColorAt(hit.Pos, hit.UV)
	normal := hit.Normal

	switch hit.Object.Material.Surface.Kind {
	case scenepkg.Diffuse:
		if normal.Dot(ray.Direction) > 0 {
			normal = normal.Negate()
		}
		*photons = append(*photons, Photon{P: hit.Pos, Dir: ray.Direction, Flux: flux})
		dir := lmath.UniformHemisphere(normal, rng)
		ppm.photonTrace(scene, lmath.NewRay(hit.Pos, dir), stack, flux.MulElem(color), depth+1, photons, rng)

	case scenepkg.Specular:
		reflectDir := ray.Direction.Reflect(normal)
		ppm.photonTrace(scene, lmath.NewRay(hit.Pos, reflectDir), stack, flux.MulElem(color), depth+1, photons, rng)

	default: // Refractive
		flux = flux.MulElem(color)
		inside := normal.Dot(ray.Direction) > 0
		if inside {
			normal = normal.Negate()
		}
		n1, n2, nextStack := stack.resolve(inside, hit.Object.Material.Surface.IOR)
		refractDir, R, refracts := fresnel(ray.Direction, normal, n1, n2)
		reflectDir := ray.Direction.Reflect(normal)
		ppm.photonTrace(scene, lmath.NewRay(hit.Pos, reflectDir), stack, flux.Scale(R), depth+1, photons, rng)
		if refracts {
			ppm.photonTrace(scene, lmath.NewRay(hit.Pos, refractDir), nextStack, flux.Scale(1-R), depth+1, photons, rng)
		}
	}
}

// emitPhotons partitions PhotonNum photons across emitter objects
// proportional to the L1 norm of their flux (spec §4.9) and propagates
// each from a shape-specific emission ray (shapes.Emitter.RandOut).
func (ppm PPM) emitPhotons(scene *scenepkg.Scene, numThreads int, seed int64) []Photon {
	type emitter struct {
		idx    int
		energy float64
	}
	var emitters []emitter
	var total float64
	for i := range scene.Objects {
		obj := &scene.Objects[i]
		if !obj.IsEmitter() {
			continue
		}
		e := obj.Flux.L1Norm()
		if e <= 0 {
			continue
		}
		emitters = append(emitters, emitter{i, e})
		total += e
	}
	if total == 0 {
		return nil
	}

	var mu sync.Mutex
	var photons []Photon
	for _, em := range emitters {
		obj := &scene.Objects[em.idx]
		count := int(float64(ppm.PhotonNum)*em.energy/total + 0.5)
		if count <= 0 {
			continue
		}
		fluxPerPhoton := obj.Flux.Scale(1 / float64(count))
		emitterShape, ok := obj.Shape.(shapes.Emitter)
		if !ok {
			continue
		}
		forEachIndex(count, numThreads, seed+int64(em.idx)*104729, func(i int, rng *rand.Rand) {
			pos, dir := emitterShape.RandOut(rng)
			var local []Photon
			ppm.photonTrace(scene, lmath.NewRay(pos, dir), newIORStack(scene.EnvIOR), fluxPerPhoton, 0, &local, rng)
			mu.Lock()
			photons = append(photons, local...)
			mu.Unlock()
		})
	}
	return photons
}

// Render runs the eye pass once, then loops the photon-emission and
// update passes indefinitely, invoking onIteration with the accumulated
// image after each round. It returns when stop is closed, checked
// between iterations per spec §5's cooperative cancellation model.
func (ppm PPM) Render(scene *scenepkg.Scene, cam camera.Camera, numThreads int, seed int64, stop <-chan struct{}, onIteration func(iter int, img *imageio.Image)) {
	direct := imageio.NewImage(cam.W, cam.H)
	var viewPoints []ViewPoint
	var vpMu sync.Mutex

	fmt.Println("eye pass")
	forEachPixel(cam.W, cam.H, numThreads, seed, func(x, y int, rng *rand.Rand) {
		var local []ViewPoint
		var sum core.Color
		for a := 0; a < cam.AntiAlias; a++ {
			ray := cam.GenRay(x, y, rng)
			sum = sum.Add(ppm.eyeTrace(scene, ray, newIORStack(scene.EnvIOR), [2]int{x, y}, 0, core.ColorWhite, &local, rng))
		}
		direct.Set(x, y, sum.Scale(1/float64(cam.AntiAlias)))
		if len(local) > 0 {
			vpMu.Lock()
			viewPoints = append(viewPoints, local...)
			vpMu.Unlock()
		}
	})
	fmt.Printf("view points: %d\n", len(viewPoints))

	for iter := 1; ; iter++ {
		select {
		case <-stop:
			return
		default:
		}

		fmt.Printf("iteration %d: emitting photons\n", iter)
		photons := ppm.emitPhotons(scene, numThreads, seed+int64(iter)*7919)
		tree := kdtree.Build(photons)

		img := direct.Clone()
		var imgMu sync.Mutex
		denom := float64(iter * cam.AntiAlias)
		forEachIndex(len(viewPoints), numThreads, seed+int64(iter)*15485863, func(i int, rng *rand.Rand) {
			vp := &viewPoints[i]
			vp.update(tree.Within(vp.Pos, vp.Radius), ppm.Alpha)
			contribution := vp.AccumFlux.Scale(1 / (denom * vp.Radius * vp.Radius))
			imgMu.Lock()
			img.Add(vp.Pixel[0], vp.Pixel[1], contribution)
			imgMu.Unlock()
		})

		onIteration(iter, img)
	}
}
