package shapes

import (
	stdmath "math"
	"math/rand"

	lmath "lumenray/math"
)

// Plane is the infinite plane n.x = d, carrying an in-plane basis
// (Tangent, Bitangent) used for texture tiling and emission sampling.
type Plane struct {
	Normal    lmath.Vector3
	D         float64
	Tangent   lmath.Vector3
	Bitangent lmath.Vector3
}

// NewPlane builds a plane from its implicit form, deriving an in-plane
// basis from the normal's deterministic orthogonal vector.
func NewPlane(normal lmath.Vector3, d float64) Plane {
	n := normal.Normalize()
	x := n.Orthogonal()
	y := n.Cross(x)
	return Plane{Normal: n, D: d, Tangent: x, Bitangent: y}
}

func (p Plane) origin() lmath.Vector3 {
	return p.Normal.Scale(p.D)
}

// Hit solves t = (d - n.o)/(n.dir); uv is always none for the bare
// plane, texture coordinates are recovered separately via TextureMap.
func (p Plane) Hit(r lmath.Ray, tMin float64) (HitTemp, bool) {
	denom := p.Normal.Dot(r.Direction)
	if denom == 0 {
		return HitTemp{}, false
	}
	t := (p.D - p.Normal.Dot(r.Origin)) / denom
	if t <= tMin {
		return HitTemp{}, false
	}
	return HitTemp{T: t, Normal: p.Normal}, true
}

// Bounds is unbounded in-plane; planes are never placed inside a mesh
// kd-tree so this wide box only matters for scene-level sanity checks.
func (p Plane) Bounds() lmath.AABB {
	return lmath.AABB{
		Min: lmath.Vector3{X: -lmath.Inf, Y: -lmath.Inf, Z: -lmath.Inf},
		Max: lmath.Vector3{X: lmath.Inf, Y: lmath.Inf, Z: lmath.Inf},
	}
}

// TextureMap projects the hit point onto the in-plane basis and tiles
// with integer modulo, offset by 1.5 widths so negative coordinates wrap
// the same way positive ones do.
func (p Plane) TextureMap(pos lmath.Vector3) (float64, float64) {
	rel := pos.Sub(p.origin())
	u := rel.Dot(p.Tangent)
	v := rel.Dot(p.Bitangent)
	const tileW = 1.0
	u = stdmath.Mod(u+tileW*1.5, tileW)
	v = stdmath.Mod(v+tileW*1.5, tileW)
	if u < 0 {
		u += tileW
	}
	if v < 0 {
		v += tileW
	}
	return u, v
}

// RandOut emits from a large in-plane rectangle centered at the plane's
// origin, direction drawn over the full sphere with lmath.UniformSphere
// (uniform in its angles, not in area; the plane has no "outward" side
// by itself).
func (p Plane) RandOut(rng *rand.Rand) (lmath.Vector3, lmath.Vector3) {
	const extent = 1e3
	u := (rng.Float64()*2 - 1) * extent
	v := (rng.Float64()*2 - 1) * extent
	pos := p.origin().Add(p.Tangent.Scale(u)).Add(p.Bitangent.Scale(v))
	return pos, lmath.UniformSphere(rng)
}
