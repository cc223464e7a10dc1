// Package shapes implements the ray/primitive intersection layer: bounded
// primitives, a triangle mesh accelerated by a kd-tree, and a Bezier
// surface of revolution solved by damped Newton iteration.
package shapes

import (
	"math/rand"

	lmath "lumenray/math"
)

// HitTemp is the result of a primitive intersection: the ray parameter,
// the surface normal at the hit, and an optional intrinsic (u,v)
// parametrization. UV is nil for shapes without one (plane, rectangle's
// carrier, circle) — texture mapping for those goes through TextureMap.
type HitTemp struct {
	T      float64
	Normal lmath.Vector3
	UV     *[2]float64
}

// Shape is the tagged-union capability set every primitive variant
// implements. Modeled as an interface satisfied by a small closed set of
// concrete types (Sphere, Plane, Rectangle, Circle, Triangle, Mesh,
// BezierRotate) rather than runtime inheritance: call sites that need to
// distinguish variants do so with a type switch, which keeps the hot
// intersection loop branch-predictable.
type Shape interface {
	// Hit intersects the shape with r, accepting only t > tMin.
	Hit(r lmath.Ray, tMin float64) (HitTemp, bool)
	// Bounds returns a conservative AABB enclosing the shape.
	Bounds() lmath.AABB
	// TextureMap converts a point known to lie on the shape's surface
	// into (u,v) texture coordinates for image-textured materials.
	TextureMap(pos lmath.Vector3) (u, v float64)
}

// Emitter is implemented by shapes that can serve as a photon source in
// the progressive photon mapper's emission pass: sphere, plane,
// rectangle and circle, matching spec §4.9's shape-specific rand_out.
type Emitter interface {
	RandOut(rng *rand.Rand) (pos, dir lmath.Vector3)
}
