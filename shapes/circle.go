package shapes

import (
	stdmath "math"
	"math/rand"

	lmath "lumenray/math"
)

// Circle is a disk of the given radius lying in the plane through Center
// with the given Normal.
type Circle struct {
	Center    lmath.Vector3
	Normal    lmath.Vector3
	Radius    float64
	tangent   lmath.Vector3
	bitangent lmath.Vector3
}

func NewCircle(center, normal lmath.Vector3, radius float64) Circle {
	n := normal.Normalize()
	x := n.Orthogonal()
	return Circle{Center: center, Normal: n, Radius: radius, tangent: x, bitangent: n.Cross(x)}
}

func (c Circle) Hit(ray lmath.Ray, tMin float64) (HitTemp, bool) {
	denom := c.Normal.Dot(ray.Direction)
	if denom == 0 {
		return HitTemp{}, false
	}
	t := c.Normal.Dot(c.Center.Sub(ray.Origin)) / denom
	if t <= tMin {
		return HitTemp{}, false
	}
	p := ray.At(t).Sub(c.Center)
	if p.LengthSqr() > c.Radius*c.Radius {
		return HitTemp{}, false
	}
	return HitTemp{T: t, Normal: c.Normal}, true
}

func (c Circle) Bounds() lmath.AABB {
	rv := c.tangent.Scale(c.Radius)
	bv := c.bitangent.Scale(c.Radius)
	b := lmath.EmptyAABB()
	for _, s := range []lmath.Vector3{rv, rv.Negate(), bv, bv.Negate()} {
		b = b.Extend(c.Center.Add(s))
	}
	return b
}

func (c Circle) TextureMap(pos lmath.Vector3) (float64, float64) {
	p := pos.Sub(c.Center)
	u := p.Dot(c.tangent)/(2*c.Radius) + 0.5
	v := p.Dot(c.bitangent)/(2*c.Radius) + 0.5
	return u, v
}

// RandOut samples a uniform point on the disk via rejection-free polar
// sampling (r = radius*sqrt(xi) keeps the distribution area-uniform),
// with direction in the hemisphere around the outward normal.
func (c Circle) RandOut(rng *rand.Rand) (lmath.Vector3, lmath.Vector3) {
	theta := rng.Float64() * 2 * lmath.Pi
	radius := c.Radius * stdmath.Sqrt(rng.Float64())
	pos := c.Center.Add(c.tangent.Scale(radius * stdmath.Cos(theta))).Add(c.bitangent.Scale(radius * stdmath.Sin(theta)))
	return pos, lmath.UniformHemisphere(c.Normal, rng)
}
