package shapes

import (
	stdmath "math"
	"math/rand"

	lmath "lumenray/math"
)

// Rectangle is a finite planar quad: a carrier plane through Center with
// the given Normal, an in-plane Tangent axis, width W along tangent and
// height H along the derived bitangent (normal x tangent).
type Rectangle struct {
	Center    lmath.Vector3
	Normal    lmath.Vector3
	Tangent   lmath.Vector3
	W, H      float64
	bitangent lmath.Vector3
}

func NewRectangle(center, normal, tangent lmath.Vector3, w, h float64) Rectangle {
	n := normal.Normalize()
	// Re-orthogonalize tangent against normal so an imprecise task
	// descriptor still yields a right-angled basis.
	t := tangent.Sub(n.Scale(n.Dot(tangent))).Normalize()
	return Rectangle{Center: center, Normal: n, Tangent: t, W: w, H: h, bitangent: n.Cross(t)}
}

func (r Rectangle) Hit(ray lmath.Ray, tMin float64) (HitTemp, bool) {
	denom := r.Normal.Dot(ray.Direction)
	if denom == 0 {
		return HitTemp{}, false
	}
	t := r.Normal.Dot(r.Center.Sub(ray.Origin)) / denom
	if t <= tMin {
		return HitTemp{}, false
	}
	p := ray.At(t).Sub(r.Center)
	u := p.Dot(r.Tangent)
	v := p.Dot(r.bitangent)
	if stdmath.Abs(u) > r.W/2 || stdmath.Abs(v) > r.H/2 {
		return HitTemp{}, false
	}
	return HitTemp{T: t, Normal: r.Normal}, true
}

func (r Rectangle) Bounds() lmath.AABB {
	hw, hh := r.W/2, r.H/2
	corners := [4]lmath.Vector3{
		r.Center.Add(r.Tangent.Scale(hw)).Add(r.bitangent.Scale(hh)),
		r.Center.Add(r.Tangent.Scale(hw)).Add(r.bitangent.Scale(-hh)),
		r.Center.Add(r.Tangent.Scale(-hw)).Add(r.bitangent.Scale(hh)),
		r.Center.Add(r.Tangent.Scale(-hw)).Add(r.bitangent.Scale(-hh)),
	}
	b := lmath.EmptyAABB()
	for _, c := range corners {
		b = b.Extend(c)
	}
	return b
}

func (r Rectangle) TextureMap(pos lmath.Vector3) (float64, float64) {
	p := pos.Sub(r.Center)
	u := p.Dot(r.Tangent)/r.W + 0.5
	v := p.Dot(r.bitangent)/r.H + 0.5
	return u, v
}

// RandOut emits from a point sampled uniformly over the rectangle's area
// with a direction in the hemisphere around the outward normal.
func (r Rectangle) RandOut(rng *rand.Rand) (lmath.Vector3, lmath.Vector3) {
	u := (rng.Float64()*2 - 1) * r.W / 2
	v := (rng.Float64()*2 - 1) * r.H / 2
	pos := r.Center.Add(r.Tangent.Scale(u)).Add(r.bitangent.Scale(v))
	return pos, lmath.UniformHemisphere(r.Normal, rng)
}
