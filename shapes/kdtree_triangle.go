package shapes

import (
	"sort"

	lmath "lumenray/math"
)

// TriangleTree is a kd-tree over triangles, splitting on the median of
// the union of per-triangle AABB extents along a rotating axis.
// Triangles that straddle the split plane are retained at the current
// node instead of being duplicated into both children, trading deeper
// traversal for smaller memory.
type TriangleTree struct {
	bounds      lmath.AABB
	cur         []Triangle
	left, right *TriangleTree
}

// BuildTriangleTree constructs the tree over an arbitrary triangle set.
// A nil/empty slice yields a nil tree (no intersection ever found).
func BuildTriangleTree(tris []Triangle) *TriangleTree {
	if len(tris) == 0 {
		return nil
	}
	return buildTriTree(tris, 0)
}

func buildTriTree(tris []Triangle, axis int) *TriangleTree {
	bounds := boundsOfTriangles(tris)
	if len(tris) <= 1 {
		return &TriangleTree{bounds: bounds, cur: tris}
	}

	median := medianExtent(tris, axis)
	var left, right, cur []Triangle
	for _, t := range tris {
		lo, hi := triExtent(t, axis)
		switch {
		case hi <= median:
			left = append(left, t)
		case lo >= median:
			right = append(right, t)
		default:
			cur = append(cur, t)
		}
	}

	if (len(left) == 0 && len(cur) == 0) || (len(cur) == 0 && len(right) == 0) {
		return &TriangleTree{bounds: bounds, cur: tris}
	}

	node := &TriangleTree{bounds: bounds, cur: cur}
	nextAxis := (axis + 1) % 3
	if len(left) > 0 {
		node.left = buildTriTree(left, nextAxis)
	}
	if len(right) > 0 {
		node.right = buildTriTree(right, nextAxis)
	}
	return node
}

func triExtent(t Triangle, axis int) (lo, hi float64) {
	b := t.Bounds()
	switch axis {
	case 0:
		return b.Min.X, b.Max.X
	case 1:
		return b.Min.Y, b.Max.Y
	default:
		return b.Min.Z, b.Max.Z
	}
}

func medianExtent(tris []Triangle, axis int) float64 {
	vals := make([]float64, 0, len(tris)*2)
	for _, t := range tris {
		lo, hi := triExtent(t, axis)
		vals = append(vals, lo, hi)
	}
	sort.Float64s(vals)
	return vals[len(vals)/2]
}

func boundsOfTriangles(tris []Triangle) lmath.AABB {
	b := lmath.EmptyAABB()
	for _, t := range tris {
		b = b.Union(t.Bounds())
	}
	return b
}

// Bounds returns the tree's overall bounding box.
func (n *TriangleTree) Bounds() lmath.AABB {
	if n == nil {
		return lmath.EmptyAABB()
	}
	return n.bounds
}

// Hit intersects the tree, returning the closest accepted hit across the
// current node and both subtrees. Children are visited nearer-first
// using their AABB entry distance, and a subtree is skipped entirely
// once its entry point is farther than the best hit found so far.
func (n *TriangleTree) Hit(r lmath.Ray, tMin, tMax float64) (HitTemp, bool) {
	if n == nil {
		return HitTemp{}, false
	}
	found := false
	var best HitTemp
	curMax := tMax

	for i := range n.cur {
		if h, ok := n.cur[i].Hit(r, tMin); ok && h.T < curMax {
			curMax = h.T
			best = h
			found = true
		}
	}

	first, second := n.left, n.right
	if first != nil && second != nil {
		le, _, lok := first.bounds.Intersect(r)
		re, _, rok := second.bounds.Intersect(r)
		if (rok && !lok) || (lok && rok && re < le) {
			first, second = second, first
		}
	}

	for _, child := range [2]*TriangleTree{first, second} {
		if child == nil {
			continue
		}
		entry, _, ok := child.bounds.Intersect(r)
		if !ok || entry > curMax {
			continue
		}
		if h, ok := child.Hit(r, tMin, curMax); ok {
			curMax = h.T
			best = h
			found = true
		}
	}

	return best, found
}
