package math

// AABB is an axis-aligned bounding box with Min <= Max componentwise.
type AABB struct {
	Min, Max Vector3
}

// EmptyAABB returns a box primed so the first Extend call replaces both
// corners; used by mesh/Bezier bounding-box construction.
func EmptyAABB() AABB {
	return AABB{
		Min: Vector3{Inf, Inf, Inf},
		Max: Vector3{-Inf, -Inf, -Inf},
	}
}

// BoundPoints builds the tight AABB around a non-empty point set. An
// empty slice is a configuration error at the call site (spec: "empty
// point set fed to AABB builder"); callers validate before calling this.
func BoundPoints(points []Vector3) AABB {
	b := EmptyAABB()
	for _, p := range points {
		b = b.Extend(p)
	}
	return b
}

func (b AABB) Extend(p Vector3) AABB {
	return AABB{
		Min: Vector3{min(b.Min.X, p.X), min(b.Min.Y, p.Y), min(b.Min.Z, p.Z)},
		Max: Vector3{max(b.Max.X, p.X), max(b.Max.Y, p.Y), max(b.Max.Z, p.Z)},
	}
}

func (b AABB) Union(o AABB) AABB {
	return AABB{
		Min: Vector3{min(b.Min.X, o.Min.X), min(b.Min.Y, o.Min.Y), min(b.Min.Z, o.Min.Z)},
		Max: Vector3{max(b.Max.X, o.Max.X), max(b.Max.Y, o.Max.Y), max(b.Max.Z, o.Max.Z)},
	}
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Intersect applies the classic slab method. For each axis it computes
// the entry/exit parametric distances, swaps them if the ray travels in
// the negative direction on that axis, and clamps a negative entry to 0
// (ray starts inside the slab or behind it). Returns the intersection
// interval and whether it is non-empty.
func (b AABB) Intersect(r Ray) (tEnter, tExit float64, ok bool) {
	tEnter, tExit = 0, Inf
	axisMin := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	axisMax := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}
	origin := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float64{r.Direction.X, r.Direction.Y, r.Direction.Z}

	for i := 0; i < 3; i++ {
		l := (axisMin[i] - origin[i]) / dir[i]
		rr := (axisMax[i] - origin[i]) / dir[i]
		if l > rr {
			l, rr = rr, l
		}
		if l < 0 {
			l = 0
		}
		if l > tEnter {
			tEnter = l
		}
		if rr < tExit {
			tExit = rr
		}
	}
	return tEnter, tExit, tEnter <= tExit
}

// Contains reports whether o is fully enclosed by b.
func (b AABB) Contains(o AABB) bool {
	return b.Min.X <= o.Min.X && b.Min.Y <= o.Min.Y && b.Min.Z <= o.Min.Z &&
		b.Max.X >= o.Max.X && b.Max.Y >= o.Max.Y && b.Max.Z >= o.Max.Z
}

// SquaredLowerBound computes the squared distance from p to the nearest
// point of b, 0 if p is inside b. Used by both kd-tree pruning rules
// (knn and within).
func (b AABB) SquaredLowerBound(p Vector3) float64 {
	d := 0.0
	d += sqrAxisGap(p.X, b.Min.X, b.Max.X)
	d += sqrAxisGap(p.Y, b.Min.Y, b.Max.Y)
	d += sqrAxisGap(p.Z, b.Min.Z, b.Max.Z)
	return d
}

func sqrAxisGap(p, lo, hi float64) float64 {
	g := max(0, max(lo-p, p-hi))
	return g * g
}
