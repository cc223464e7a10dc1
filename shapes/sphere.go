package shapes

import (
	stdmath "math"
	"math/rand"

	lmath "lumenray/math"
)

// Sphere is a ray-intersectable sphere defined by center and radius.
type Sphere struct {
	Center lmath.Vector3
	Radius float64
}

func NewSphere(center lmath.Vector3, radius float64) Sphere {
	return Sphere{Center: center, Radius: radius}
}

// Hit solves t^2 + 2(d_hat.oc)t + (|oc|^2 - r^2) = 0 after normalizing
// the ray direction, returning the smaller positive root above tMin, or
// the larger one if the smaller is not valid.
func (s Sphere) Hit(r lmath.Ray, tMin float64) (HitTemp, bool) {
	d := r.Direction.Normalize()
	oc := r.Origin.Sub(s.Center)
	b := d.Dot(oc)
	c := oc.LengthSqr() - s.Radius*s.Radius
	disc := b*b - c
	if disc < 0 {
		return HitTemp{}, false
	}
	sd := stdmath.Sqrt(disc)
	t1 := -b - sd
	t2 := -b + sd
	var t float64
	switch {
	case t1 > tMin:
		t = t1
	case t2 > tMin:
		t = t2
	default:
		return HitTemp{}, false
	}
	hitPos := r.Origin.Add(d.Scale(t))
	normal := hitPos.Sub(s.Center).Scale(1 / s.Radius)
	return HitTemp{T: t, Normal: normal}, true
}

func (s Sphere) Bounds() lmath.AABB {
	rv := lmath.Vector3{X: s.Radius, Y: s.Radius, Z: s.Radius}
	return lmath.AABB{Min: s.Center.Sub(rv), Max: s.Center.Add(rv)}
}

// TextureMap projects onto spherical coordinates. acos(x/sqrt(x^2+y^2))
// discards the sign of x, so the seam along +x/-x is left undefined —
// kept as-is rather than patched with an atan2-based remap, since doing
// so would silently change the texture orientation of any asset tuned
// against this mapping.
func (s Sphere) TextureMap(pos lmath.Vector3) (float64, float64) {
	p := pos.Sub(s.Center)
	u := stdmath.Acos(p.X / stdmath.Sqrt(p.X*p.X+p.Y*p.Y))
	v := stdmath.Acos(p.Z / s.Radius)
	return u, v
}

// RandOut emits from a surface point whose direction from the center is
// drawn with lmath.UniformSphere (uniform in its angles, not in area),
// with an emission direction drawn from the hemisphere around the
// outward normal at that point.
func (s Sphere) RandOut(rng *rand.Rand) (lmath.Vector3, lmath.Vector3) {
	dir := lmath.UniformSphere(rng)
	pos := s.Center.Add(dir.Scale(s.Radius))
	normal := dir
	return pos, lmath.UniformHemisphere(normal, rng)
}
