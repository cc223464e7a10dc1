package shapes

import lmath "lumenray/math"

// Mesh is a triangle soup accelerated by a kd-tree, with a precomputed
// bounding box gating the tree traversal.
type Mesh struct {
	Triangles []Triangle
	tree      *TriangleTree
	bounds    lmath.AABB
}

// NewMesh builds the acceleration structure over the given triangles.
func NewMesh(triangles []Triangle) Mesh {
	return Mesh{
		Triangles: triangles,
		tree:      BuildTriangleTree(triangles),
		bounds:    boundsOfTriangles(triangles),
	}
}

func (m Mesh) Hit(r lmath.Ray, tMin float64) (HitTemp, bool) {
	if _, _, ok := m.bounds.Intersect(r); !ok {
		return HitTemp{}, false
	}
	return m.tree.Hit(r, tMin, lmath.Inf)
}

func (m Mesh) Bounds() lmath.AABB {
	return m.bounds
}

// TextureMap is not meaningfully defined at the mesh level — individual
// triangles carry their own barycentric UV through HitTemp. This exists
// only to satisfy the Shape interface for code paths that address a mesh
// generically before dispatching to its hit triangle.
func (m Mesh) TextureMap(pos lmath.Vector3) (float64, float64) {
	return 0, 0
}
