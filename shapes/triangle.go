package shapes

import lmath "lumenray/math"

// Triangle is a ray-intersectable triangle, with precomputed edge
// vectors and geometric normal. Per-vertex normals are optional; when
// present the returned normal is barycentric-interpolated instead of
// using the flat geometric one.
type Triangle struct {
	V0, V1, V2    lmath.Vector3
	N0, N1, N2    lmath.Vector3
	HasVertexNorm bool
	normal        lmath.Vector3
	e1, e2        lmath.Vector3
}

func NewTriangle(v0, v1, v2 lmath.Vector3) Triangle {
	e1 := v1.Sub(v0)
	e2 := v2.Sub(v0)
	return Triangle{
		V0: v0, V1: v1, V2: v2,
		normal: e1.Cross(e2).Normalize(),
		e1:     e1, e2: e2,
	}
}

func (t *Triangle) SetVertexNormals(n0, n1, n2 lmath.Vector3) {
	t.N0, t.N1, t.N2 = n0, n1, n2
	t.HasVertexNorm = true
}

// Hit solves o + t*d = v0 + beta*e1 + gamma*e2 (e1 = v1-v0, e2 = v2-v0)
// for (t, beta, gamma) via
// Cramer's rule on the 3x3 system, using the triple-product form of each
// determinant so no intermediate matrix needs constructing.
func (t Triangle) Hit(r lmath.Ray, tMin float64) (HitTemp, bool) {
	pvec := r.Direction.Cross(t.e2)
	det := t.e1.Dot(pvec)
	if det > -1e-12 && det < 1e-12 {
		return HitTemp{}, false
	}
	invDet := 1 / det
	tvec := r.Origin.Sub(t.V0)
	beta := tvec.Dot(pvec) * invDet
	if beta < 0 || beta > 1 {
		return HitTemp{}, false
	}
	qvec := tvec.Cross(t.e1)
	gamma := r.Direction.Dot(qvec) * invDet
	if gamma < 0 || beta+gamma > 1 {
		return HitTemp{}, false
	}
	tt := t.e2.Dot(qvec) * invDet
	if tt <= tMin {
		return HitTemp{}, false
	}
	normal := t.normal
	if t.HasVertexNorm {
		alpha := 1 - beta - gamma
		normal = t.N0.Scale(alpha).Add(t.N1.Scale(beta)).Add(t.N2.Scale(gamma)).Normalize()
	}
	uv := [2]float64{beta, gamma}
	return HitTemp{T: tt, Normal: normal, UV: &uv}, true
}

func (t Triangle) Bounds() lmath.AABB {
	b := lmath.EmptyAABB()
	b = b.Extend(t.V0)
	b = b.Extend(t.V1)
	b = b.Extend(t.V2)
	return b
}

// TextureMap is a fallback for callers outside a Hit call (the hit's
// barycentric UV is already carried by HitTemp): it returns the
// projections of pos-V0 onto e1 and e2, each divided by that edge's
// squared length. These equal the barycentric coordinates only when the
// two edges are perpendicular.
func (t Triangle) TextureMap(pos lmath.Vector3) (float64, float64) {
	rel := pos.Sub(t.V0)
	return rel.Dot(t.e1) / t.e1.LengthSqr(), rel.Dot(t.e2) / t.e2.LengthSqr()
}
