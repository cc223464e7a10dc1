// Package camera implements the pinhole and thin-lens camera models:
// given a pixel and a random generator, it produces a jittered primary
// ray in world space.
package camera

import (
	"fmt"
	stdmath "math"
	"math/rand"

	lmath "lumenray/math"
)

// Lens holds the thin-lens parameters; a nil *Lens on Camera means
// pinhole.
type Lens struct {
	Focal    float64
	Aperture float64
}

// Camera is a right-handed orthonormal frame (Right, Up, Direction) plus
// an image-plane distance, pixel resolution, per-pixel sample count, and
// an optional thin lens.
type Camera struct {
	Center    lmath.Vector3
	Right     lmath.Vector3
	Up        lmath.Vector3
	Direction lmath.Vector3
	Dis       float64
	W, H      int
	AntiAlias int
	Lens      *Lens
}

// Validate checks the orthonormality invariant the task loader must
// enforce before rendering starts: |up| = |dir| = 1 and up.dir ~ 0.
func (c Camera) Validate() error {
	const tol = 1e-6
	if absF(c.Up.Length()-1) > tol {
		return fmt.Errorf("camera up vector is not unit length: %v", c.Up.Length())
	}
	if absF(c.Direction.Length()-1) > tol {
		return fmt.Errorf("camera direction vector is not unit length: %v", c.Direction.Length())
	}
	if absF(c.Up.Dot(c.Direction)) > tol {
		return fmt.Errorf("camera up and direction are not orthogonal: dot=%v", c.Up.Dot(c.Direction))
	}
	return nil
}

func absF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func (c Camera) basis() lmath.Matrix3 {
	return lmath.FromColumns(c.Right, c.Up, c.Direction)
}

// GenRay produces one jittered primary ray for pixel (x, y). Local
// coordinates are formed in camera space, and — when a lens is present —
// the lens sampling and focal-point construction happen in that same
// local space before the final origin/direction are rotated into world
// space by the camera basis. With Lens == nil this reduces to the
// pinhole case; with Lens.Aperture == 0 the lens case also reduces to an
// identical ray (up to floating-point noise), since the lens-plane
// sample is then always the origin.
func (c Camera) GenRay(x, y int, rng *rand.Rand) lmath.Ray {
	px := float64(x) + rng.Float64() - float64(c.W)/2
	py := float64(y) + rng.Float64() - float64(c.H)/2
	dLocal := lmath.Vector3{X: px, Y: py, Z: c.Dis}.Normalize()

	var originLocal, dirLocal lmath.Vector3
	if c.Lens != nil {
		focalPoint := dLocal.Scale(c.Lens.Focal / dLocal.Z)
		theta := rng.Float64() * 2 * lmath.Pi
		r := c.Lens.Aperture * rng.Float64()
		originLocal = lmath.Vector3{X: r * stdmath.Cos(theta), Y: r * stdmath.Sin(theta), Z: 0}
		dirLocal = focalPoint.Sub(originLocal).Normalize()
	} else {
		dirLocal = dLocal
	}

	basis := c.basis()
	originWorld := c.Center.Add(basis.MulVec(originLocal))
	dirWorld := basis.MulVec(dirLocal).Normalize()
	return lmath.NewRay(originWorld, dirWorld)
}

